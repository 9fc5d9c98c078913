package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/scout2retire/town-match/internal/types"
)

// Score computes the weighted match between one user and one town. A nil
// weights pointer selects DefaultWeights. Missing or malformed data never
// produces an error; the only failure mode is a structurally invalid call
// (nil inputs or weights that do not sum to 100).
func Score(prefs *types.UserPreferences, town *types.TownProfile, weights *Weights) (*types.MatchResult, error) {
	if prefs == nil {
		return nil, fmt.Errorf("user preferences must not be nil")
	}
	if town == nil {
		return nil, fmt.Errorf("town profile must not be nil")
	}

	w := DefaultWeights()
	if weights != nil {
		w = *weights
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	region := scoreRegion(prefs, town)
	climate := scoreClimate(prefs, town)
	culture := scoreCulture(prefs, town)
	hobbies := scoreHobbies(prefs, town)
	admin := scoreAdministration(prefs, town)
	budget := scoreBudget(prefs, town)

	scores := types.CategoryScores{
		Region:         region.score,
		Climate:        climate.score,
		Culture:        culture.score,
		Hobbies:        hobbies.score,
		Administration: admin.score,
		Budget:         budget.score,
	}

	weighted := float64(scores.Region*w.Region+
		scores.Climate*w.Climate+
		scores.Culture*w.Culture+
		scores.Hobbies*w.Hobbies+
		scores.Administration*w.Administration+
		scores.Budget*w.Budget) / 100

	factors := make([]types.Factor, 0,
		len(region.factors)+len(climate.factors)+len(culture.factors)+
			len(hobbies.factors)+len(admin.factors)+len(budget.factors))
	factors = append(factors, region.factors...)
	factors = append(factors, climate.factors...)
	factors = append(factors, culture.factors...)
	factors = append(factors, hobbies.factors...)
	factors = append(factors, admin.factors...)
	factors = append(factors, budget.factors...)

	// Ordered by descending contribution, stable so equal-point factors keep
	// category order. Explainability only; never affects the score.
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Points > factors[j].Points
	})

	result := &types.MatchResult{
		TownID:         town.ID,
		TownName:       town.Name,
		OverallScore:   clampScore(int(math.Round(weighted))),
		CategoryScores: scores,
		Factors:        factors,
	}
	annotate(result, prefs, town)
	return result, nil
}
