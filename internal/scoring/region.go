package scoring

import "github.com/scout2retire/town-match/internal/types"

// Internal point split for the region category. Country matches earn more
// than broad region matches; feature and vegetation axes carry equal weight.
const (
	regionCountryPoints    = 40
	regionRegionPoints     = 30
	regionGeoFeaturePoints = 30
	regionVegetationPoints = 30
)

// scoreRegion computes the region category on a 100-point internal scale:
// country/region match, geographic feature overlap, vegetation overlap.
func scoreRegion(prefs *types.UserPreferences, town *types.TownProfile) categoryResult {
	var r categoryResult
	cat := types.CategoryRegion

	if !prefs.HasRegionPreferences() {
		r.add(cat, "Open to any location", 100)
		return r
	}

	// Country/region axis. Country takes priority and short-circuits.
	hasCountryPrefs := len(prefs.Countries) > 0
	hasRegionPrefs := len(prefs.Regions) > 0
	switch {
	case !hasCountryPrefs && !hasRegionPrefs:
		r.add(cat, "Open to any country or region", regionCountryPoints)
	case hasCountryPrefs && countryMatches(prefs.Countries, town.Country):
		r.add(cat, "Country match ("+town.Country+")", regionCountryPoints)
	case hasRegionPrefs && anyOverlap(normalizeSet(prefs.Regions), normalizeSet(town.Regions)):
		r.add(cat, "Region match", regionRegionPoints)
	case normalizeValue(town.Country) == "" && len(town.Regions) == 0:
		r.add(cat, "Location data unavailable", 0)
	default:
		r.add(cat, "No location match", 0)
	}

	scoreSetAxis(&r, cat, "geographic features", prefs.GeographicFeatures,
		town.GeographicFeaturesActual, relatedGeographicFeatures, regionGeoFeaturePoints)
	scoreSetAxis(&r, cat, "vegetation", prefs.VegetationTypes,
		town.VegetationTypeActual, relatedVegetation, regionVegetationPoints)

	r.score = clampScore(r.score)
	return r
}

// countryMatches reports whether the town's country appears in the user's
// wanted set, case-insensitively.
func countryMatches(wanted []string, country string) bool {
	if normalizeValue(country) == "" {
		return false
	}
	_, ok := normalizeSet(wanted)[normalizeValue(country)]
	return ok
}

// scoreSetAxis handles one "any common element" set axis with the shared
// missing-data policy and half credit for related values.
func scoreSetAxis(r *categoryResult, cat, axis string, wanted, have []string, related map[string][]string, alloc int) {
	if len(wanted) == 0 {
		r.add(cat, "Open to any "+axis, alloc)
		return
	}
	if len(have) == 0 {
		r.add(cat, axis+" data unavailable", 0)
		return
	}
	wantedSet := normalizeSet(wanted)
	haveSet := normalizeSet(have)
	switch {
	case anyOverlap(wantedSet, haveSet):
		r.add(cat, axis+" match", alloc)
	case relatedOverlap(related, wantedSet, haveSet):
		r.add(cat, "Related "+axis+" (partial match)", alloc/2)
	default:
		r.add(cat, "No "+axis+" match", 0)
	}
}
