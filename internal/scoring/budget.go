package scoring

import (
	"fmt"

	"github.com/scout2retire/town-match/internal/types"
)

// Budget category constants. The tax-neutral credit is flat until tax data
// is modeled. An unknown cost is treated as a data gap, not an open
// preference: it earns 20 points rather than full credit or zero.
const (
	budgetUnknownCostPoints = 20
	budgetTaxNeutralPoints  = 15
	budgetRentBonusFull     = 20
	budgetRentBonusPartial  = 10
	budgetHealthcareBonus   = 10
)

// budgetRatioBuckets maps the budget/cost ratio to a base score, highest
// bucket first. Bonuses never depend on which bucket applies, so setting
// extra sub-budgets can only raise the score.
var budgetRatioBuckets = []struct {
	minRatio float64
	base     int
	label    string
}{
	{2.0, 70, "Excellent value"},
	{1.5, 65, "Very comfortable budget"},
	{1.2, 60, "Comfortable budget fit"},
	{1.0, 55, "Budget matches cost"},
	{0.9, 45, "Budget slightly tight"},
	{0.8, 30, "Budget challenging"},
	{0, 15, "Over budget"},
}

// scoreBudget computes the budget category: a ratio-bucketed base, additive
// rent and healthcare bonuses, and the flat tax-neutral credit, capped at 100.
func scoreBudget(prefs *types.UserPreferences, town *types.TownProfile) categoryResult {
	var r categoryResult
	cat := types.CategoryBudget

	if !prefs.HasBudgetPreferences() {
		r.add(cat, "Open to any budget situation", 100)
		return r
	}

	townCost := town.CostProxy()
	if prefs.TotalMonthlyBudget <= 0 || townCost <= 0 {
		r.add(cat, "Cost data unavailable", budgetUnknownCostPoints)
	} else {
		ratio := prefs.TotalMonthlyBudget / townCost
		for _, bucket := range budgetRatioBuckets {
			if ratio >= bucket.minRatio {
				r.add(cat, fmt.Sprintf("%s (budget $%.0f vs cost $%.0f)",
					bucket.label, prefs.TotalMonthlyBudget, townCost), bucket.base)
				break
			}
		}
	}

	// Rent bonus, only when the user set a rent budget and the town has data.
	if prefs.MaxMonthlyRent > 0 && town.TypicalRent1Bed > 0 {
		switch {
		case prefs.MaxMonthlyRent >= town.TypicalRent1Bed:
			r.add(cat, "Rent within budget (bonus)", budgetRentBonusFull)
		case prefs.MaxMonthlyRent >= town.TypicalRent1Bed*0.8:
			r.add(cat, "Rent slightly over budget (partial bonus)", budgetRentBonusPartial)
		}
	}

	// Healthcare bonus, same gating.
	if prefs.MonthlyHealthcareBudget > 0 && town.HealthcareCostMonthly > 0 &&
		prefs.MonthlyHealthcareBudget >= town.HealthcareCostMonthly {
		r.add(cat, "Healthcare affordable (bonus)", budgetHealthcareBonus)
	}

	r.add(cat, "Tax neutral", budgetTaxNeutralPoints)

	r.score = clampScore(r.score)
	return r
}
