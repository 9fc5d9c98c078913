package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scout2retire/town-match/internal/types"
)

func TestScoreBudget_OpenWhenNoBudgetSet(t *testing.T) {
	result := scoreBudget(&types.UserPreferences{}, &types.TownProfile{CostOfLivingUSD: 2000})

	assert.Equal(t, 100, result.score)
}

func TestScoreBudget_RatioBuckets(t *testing.T) {
	town := &types.TownProfile{CostOfLivingUSD: 1000}

	cases := []struct {
		budget float64
		want   int // base + 15 tax neutral
	}{
		{2500, 85}, // ratio 2.5 -> 70
		{1600, 80}, // ratio 1.6 -> 65
		{1250, 75}, // ratio 1.25 -> 60
		{1000, 70}, // ratio 1.0 -> 55
		{950, 60},  // ratio 0.95 -> 45
		{850, 45},  // ratio 0.85 -> 30
		{700, 30},  // ratio 0.7 -> 15
	}
	for _, tc := range cases {
		prefs := &types.UserPreferences{TotalMonthlyBudget: tc.budget}
		result := scoreBudget(prefs, town)
		assert.Equal(t, tc.want, result.score, "budget %.0f", tc.budget)
	}
}

func TestScoreBudget_UnknownCostPartialCredit(t *testing.T) {
	prefs := &types.UserPreferences{TotalMonthlyBudget: 3000}
	town := &types.TownProfile{}

	result := scoreBudget(prefs, town)

	// 20 (unknown cost) + 15 (tax neutral): a data gap is neither an open
	// preference nor a dealbreaker.
	assert.Equal(t, 35, result.score)
	assert.Contains(t, factorDescriptions(result.factors), "Cost data unavailable")
}

func TestScoreBudget_CostProxyFallback(t *testing.T) {
	prefs := &types.UserPreferences{TotalMonthlyBudget: 2000}
	town := &types.TownProfile{TypicalMonthlyLivingCost: 1000}

	result := scoreBudget(prefs, town)

	// ratio 2.0 via the fallback cost field
	assert.Equal(t, 85, result.score)
}

func TestScoreBudget_RentBonusTiers(t *testing.T) {
	town := &types.TownProfile{CostOfLivingUSD: 2000, TypicalRent1Bed: 1000}

	full := scoreBudget(&types.UserPreferences{TotalMonthlyBudget: 2000, MaxMonthlyRent: 1100}, town)
	partial := scoreBudget(&types.UserPreferences{TotalMonthlyBudget: 2000, MaxMonthlyRent: 850}, town)
	none := scoreBudget(&types.UserPreferences{TotalMonthlyBudget: 2000, MaxMonthlyRent: 700}, town)

	assert.Equal(t, 90, full.score)    // 55 + 20 + 15
	assert.Equal(t, 80, partial.score) // 55 + 10 + 15
	assert.Equal(t, 70, none.score)    // 55 + 15
}

func TestScoreBudget_HealthcareBonus(t *testing.T) {
	town := &types.TownProfile{CostOfLivingUSD: 2000, HealthcareCostMonthly: 200}
	prefs := &types.UserPreferences{TotalMonthlyBudget: 2000, MonthlyHealthcareBudget: 250}

	result := scoreBudget(prefs, town)

	assert.Equal(t, 80, result.score) // 55 + 10 + 15
}

func TestScoreBudget_NoDoublePenaltyForThoroughUsers(t *testing.T) {
	town := &types.TownProfile{
		CostOfLivingUSD:       2000,
		TypicalRent1Bed:       900,
		HealthcareCostMonthly: 300,
	}
	simple := &types.UserPreferences{TotalMonthlyBudget: 2400}
	thorough := &types.UserPreferences{
		TotalMonthlyBudget:      2400,
		MaxMonthlyRent:          1000,
		MonthlyHealthcareBudget: 350,
	}

	base := scoreBudget(simple, town)
	detailed := scoreBudget(thorough, town)

	// Setting more budget fields must never lower the category score.
	assert.GreaterOrEqual(t, detailed.score, base.score)
	assert.Equal(t, 75, base.score)     // ratio 1.2 -> 60 + 15
	assert.Equal(t, 100, detailed.score) // 60 + 20 + 10 + 15, capped
}

func TestScoreBudget_MonotonicInBudget(t *testing.T) {
	town := &types.TownProfile{CostOfLivingUSD: 1500}

	prev := -1
	for budget := 500.0; budget <= 4000; budget += 50 {
		result := scoreBudget(&types.UserPreferences{TotalMonthlyBudget: budget}, town)
		assert.GreaterOrEqual(t, result.score, prev, "budget %.0f", budget)
		prev = result.score
	}
}

func TestScoreBudget_CappedAtHundred(t *testing.T) {
	town := &types.TownProfile{
		CostOfLivingUSD:       800,
		TypicalRent1Bed:       400,
		HealthcareCostMonthly: 100,
	}
	prefs := &types.UserPreferences{
		TotalMonthlyBudget:      4000,
		MaxMonthlyRent:          1500,
		MonthlyHealthcareBudget: 400,
	}

	result := scoreBudget(prefs, town)

	// 70 + 20 + 10 + 15 = 115 before the cap
	assert.Equal(t, 100, result.score)
}
