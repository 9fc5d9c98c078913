package scoring

import (
	"fmt"

	"github.com/scout2retire/town-match/internal/types"
)

// categoryResult is one category's internal outcome: a 0-100 score plus the
// factors that produced it.
type categoryResult struct {
	score   int
	factors []types.Factor
}

func (r *categoryResult) add(category, description string, points int) {
	r.score += points
	r.factors = append(r.factors, types.Factor{
		Category:    category,
		Description: description,
		Points:      points,
	})
}

// clampScore bounds a category or overall score to [0,100].
func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// scoreOrderedAxis applies the shared missing-data policy and the ordered
// one-step-away rule to a single categorical axis:
//   - preference unset: full allocation (open preference)
//   - preference set, town value missing: zero, flagged as data unavailable
//   - exact match: full allocation; one step away: half; farther: zero
//
// A town value not on the scale is treated as missing data, never an error.
func scoreOrderedAxis(result *categoryResult, category, axis string, scale []string, pref, actual string, alloc int) {
	if normalizeValue(pref) == "" {
		result.add(category, fmt.Sprintf("Open to any %s", axis), alloc)
		return
	}
	if normalizeValue(actual) == "" {
		result.add(category, fmt.Sprintf("%s data unavailable", axis), 0)
		return
	}
	switch scaleDistance(scale, pref, actual) {
	case 0:
		result.add(category, fmt.Sprintf("%s matches (%s)", axis, normalizeValue(actual)), alloc)
	case 1:
		result.add(category, fmt.Sprintf("%s close match (%s)", axis, normalizeValue(actual)), alloc/2)
	case -1:
		result.add(category, fmt.Sprintf("%s data unrecognized (%s)", axis, normalizeValue(actual)), 0)
	default:
		result.add(category, fmt.Sprintf("%s mismatch (%s)", axis, normalizeValue(actual)), 0)
	}
}
