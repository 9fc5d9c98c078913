package scoring

import (
	"fmt"
	"math"

	"github.com/scout2retire/town-match/internal/types"
)

// scoreHobbies uses proportional set overlap rather than the all-or-nothing
// rule the other set axes use:
//
//	score = (|activities ∩ available| + |interests ∩ supported|)
//	        / (|activities| + |interests|) * 100
//
// computed only over the axes the user actually specified. The matched
// counts are combined before rounding so the score comes from a single
// ratio; the per-axis factors carry their own rounded shares and may be
// off by a point from the total.
func scoreHobbies(prefs *types.UserPreferences, town *types.TownProfile) categoryResult {
	var r categoryResult
	cat := types.CategoryHobbies

	wantedActivities := normalizeSet(prefs.Activities)
	wantedInterests := normalizeSet(prefs.Interests)
	total := len(wantedActivities) + len(wantedInterests)
	if total == 0 {
		r.add(cat, "Open to any activities", 100)
		return r
	}

	share := func(matched int) int {
		return int(math.Round(float64(matched) / float64(total) * 100))
	}

	matched := 0
	if len(wantedActivities) > 0 {
		if len(town.ActivitiesAvailable) == 0 {
			r.add(cat, "Activity data unavailable", 0)
		} else {
			n := overlapCount(wantedActivities, normalizeSet(town.ActivitiesAvailable))
			matched += n
			r.add(cat, fmt.Sprintf("%d of %d activities available", n, len(wantedActivities)), share(n))
		}
	}
	if len(wantedInterests) > 0 {
		if len(town.InterestsSupported) == 0 {
			r.add(cat, "Interest data unavailable", 0)
		} else {
			n := overlapCount(wantedInterests, normalizeSet(town.InterestsSupported))
			matched += n
			r.add(cat, fmt.Sprintf("%d of %d interests supported", n, len(wantedInterests)), share(n))
		}
	}

	r.score = clampScore(share(matched))
	return r
}
