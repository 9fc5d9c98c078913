package scoring

import "github.com/scout2retire/town-match/internal/types"

// climateAxisPoints is the equal share each of the five climate axes
// (summer, winter, humidity, sunshine, precipitation) carries of the
// category's 100 internal points.
const climateAxisPoints = 20

// scoreClimate compares the five categorical climate axes. Exact match on
// an axis earns the full share, a one-band miss earns half, anything
// farther earns nothing.
func scoreClimate(prefs *types.UserPreferences, town *types.TownProfile) categoryResult {
	var r categoryResult
	cat := types.CategoryClimate

	if !prefs.HasClimatePreferences() {
		r.add(cat, "Open to any climate", 100)
		return r
	}

	scoreOrderedAxis(&r, cat, "summer climate", temperatureScale,
		prefs.SummerClimate, town.SummerClimateActual, climateAxisPoints)
	scoreOrderedAxis(&r, cat, "winter climate", temperatureScale,
		prefs.WinterClimate, town.WinterClimateActual, climateAxisPoints)
	scoreOrderedAxis(&r, cat, "humidity", humidityScale,
		prefs.HumidityLevel, town.HumidityLevelActual, climateAxisPoints)
	scoreOrderedAxis(&r, cat, "sunshine", sunshineScale,
		prefs.SunshineLevel, town.SunshineLevelActual, climateAxisPoints)
	scoreOrderedAxis(&r, cat, "precipitation", precipitationScale,
		prefs.PrecipitationLevel, town.PrecipitationLevelActual, climateAxisPoints)

	r.score = clampScore(r.score)
	return r
}
