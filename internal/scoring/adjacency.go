package scoring

import "github.com/scout2retire/town-match/internal/types"

// Ordered scales for categorical climate and culture axes. A one-step
// mismatch on a scale earns half credit; anything farther earns zero.
var (
	temperatureScale   = []string{types.ClimateCold, types.ClimateCool, types.ClimateMild, types.ClimateWarm, types.ClimateHot}
	humidityScale      = []string{types.HumidityDry, types.HumidityBalanced, types.HumidityHumid}
	sunshineScale      = []string{types.SunshineLessSunny, types.SunshineBalanced, types.SunshineOftenSunny}
	precipitationScale = []string{types.PrecipitationMostlyDry, types.PrecipitationBalanced, types.PrecipitationLessDry}
	paceScale          = []string{types.PaceRelaxed, types.PaceModerate, types.PaceFast}
	urbanRuralScale    = []string{types.UrbanRuralRural, types.UrbanRuralSuburban, types.UrbanRuralUrban}
	expatScale         = []string{types.ExpatSmall, types.ExpatModerate, types.ExpatLarge}
)

// English proficiency levels a town can carry, ordered lowest to highest.
var englishProficiencyScale = []string{"low", "moderate", "high", "very_high", "native"}

// Related geographic features: water features are largely interchangeable
// for lifestyle purposes, mountain terrain clusters with valleys and
// forests. A related (but not exact) overlap earns half the axis allocation.
var relatedGeographicFeatures = map[string][]string{
	"coastal":  {"island", "lake", "river"},
	"island":   {"coastal"},
	"lake":     {"coastal", "river"},
	"river":    {"lake", "coastal"},
	"mountain": {"valley", "forest"},
	"valley":   {"mountain", "river"},
	"forest":   {"mountain", "valley"},
	"plains":   {"valley"},
	"desert":   {},
}

// Related vegetation types: Mediterranean and subtropical are both warm,
// dry climates and read as near-matches.
var relatedVegetation = map[string][]string{
	"mediterranean": {"subtropical"},
	"subtropical":   {"mediterranean", "tropical"},
	"tropical":      {"subtropical"},
	"forest":        {"grassland"},
	"grassland":     {"forest"},
}

// scaleIndex returns the position of the normalized value on the scale, or
// -1 when the value is absent or unrecognized.
func scaleIndex(scale []string, value string) int {
	n := normalizeValue(value)
	if n == "" {
		return -1
	}
	for i, s := range scale {
		if s == n {
			return i
		}
	}
	return -1
}

// scaleDistance returns the absolute distance between two values on an
// ordered scale. Returns -1 when either value is not on the scale.
func scaleDistance(scale []string, a, b string) int {
	ai := scaleIndex(scale, a)
	bi := scaleIndex(scale, b)
	if ai < 0 || bi < 0 {
		return -1
	}
	if ai > bi {
		return ai - bi
	}
	return bi - ai
}

// relatedOverlap reports whether any element of wanted is related (per the
// given map) to any element of have. Both sets must be normalized.
func relatedOverlap(related map[string][]string, wanted, have map[string]struct{}) bool {
	for w := range wanted {
		for _, r := range related[w] {
			if _, ok := have[r]; ok {
				return true
			}
		}
	}
	return false
}
