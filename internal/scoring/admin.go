package scoring

import (
	"fmt"
	"math"

	"github.com/scout2retire/town-match/internal/types"
)

// Internal point split for the administration category.
const (
	adminHealthcarePoints = 40
	adminSafetyPoints     = 40
	adminVisaPoints       = 20
)

// qualityThresholds maps a minimum-quality preference to the 1-10 score a
// town must reach for full credit on that axis.
var qualityThresholds = map[string]float64{
	types.QualityBasic:      2,
	types.QualityFunctional: 4,
	types.QualityGood:       7,
	types.QualityExcellent:  9,
}

// scoreAdministration covers healthcare adequacy, safety adequacy and visa
// compatibility. Healthcare and safety use linear partial credit below the
// threshold; visa never drops below half credit because visa-on-arrival and
// long-stay options usually exist even when not enumerated in the data.
func scoreAdministration(prefs *types.UserPreferences, town *types.TownProfile) categoryResult {
	var r categoryResult
	cat := types.CategoryAdministration

	if !prefs.HasAdminPreferences() {
		r.add(cat, "Open to any administrative situation", 100)
		return r
	}

	scoreAdequacyAxis(&r, "healthcare", prefs.HealthcareQualityMin, town.HealthcareScore, adminHealthcarePoints)
	scoreAdequacyAxis(&r, "safety", prefs.SafetyImportance, town.SafetyScore, adminSafetyPoints)
	scoreVisaAxis(&r, prefs.Citizenship, town.VisaOnArrivalCountries)

	r.score = clampScore(r.score)
	return r
}

// scoreAdequacyAxis awards full credit when the town's 1-10 score meets the
// user's threshold, then linear partial credit down to zero at threshold-3.
func scoreAdequacyAxis(r *categoryResult, axis, pref string, actual float64, alloc int) {
	cat := types.CategoryAdministration
	p := normalizeValue(pref)
	if p == "" {
		r.add(cat, "No minimum "+axis+" requirement", alloc)
		return
	}
	threshold, ok := qualityThresholds[p]
	if !ok {
		// Unrecognized preference value reads as non-matching, never an error.
		r.add(cat, "Unrecognized "+axis+" requirement", 0)
		return
	}
	if actual <= 0 {
		r.add(cat, axis+" data unavailable", 0)
		return
	}
	if actual >= threshold {
		r.add(cat, fmt.Sprintf("%s meets requirements (%.1f/10)", axis, actual), alloc)
		return
	}
	credit := (actual - (threshold - 3)) / 3
	if credit < 0 {
		credit = 0
	}
	points := int(math.Round(credit * float64(alloc)))
	r.add(cat, fmt.Sprintf("%s below requirements (%.1f/10)", axis, actual), points)
}

// scoreVisaAxis gives full credit when the town's visa-on-arrival list
// includes the user's citizenship, half credit otherwise.
func scoreVisaAxis(r *categoryResult, citizenship string, visaCountries []string) {
	cat := types.CategoryAdministration
	c := normalizeValue(citizenship)
	if c == "" {
		r.add(cat, "No citizenship specified", adminVisaPoints)
		return
	}
	if _, ok := normalizeSet(visaCountries)[c]; ok {
		r.add(cat, "Easy visa access for "+citizenship+" citizens", adminVisaPoints)
		return
	}
	r.add(cat, "Visa options not enumerated, long-stay routes likely", adminVisaPoints/2)
}
