package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scout2retire/town-match/internal/types"
)

func TestScoreClimate_OpenToAnyClimate(t *testing.T) {
	prefs := &types.UserPreferences{}
	town := &types.TownProfile{SummerClimateActual: "hot"}

	result := scoreClimate(prefs, town)

	assert.Equal(t, 100, result.score)
}

func TestScoreClimate_AllAxesExactMatch(t *testing.T) {
	prefs := &types.UserPreferences{
		SummerClimate:      "warm",
		WinterClimate:      "mild",
		HumidityLevel:      "balanced",
		SunshineLevel:      "often_sunny",
		PrecipitationLevel: "mostly_dry",
	}
	town := &types.TownProfile{
		SummerClimateActual:      "warm",
		WinterClimateActual:      "mild",
		HumidityLevelActual:      "balanced",
		SunshineLevelActual:      "often_sunny",
		PrecipitationLevelActual: "mostly_dry",
	}

	result := scoreClimate(prefs, town)

	assert.Equal(t, 100, result.score)
}

func TestScoreClimate_AdjacentBandHalfCredit(t *testing.T) {
	prefs := &types.UserPreferences{SummerClimate: "warm"}
	town := &types.TownProfile{SummerClimateActual: "hot"}

	result := scoreClimate(prefs, town)

	// 10 (adjacent summer) + 4 x 20 (open axes)
	assert.Equal(t, 90, result.score)
}

func TestScoreClimate_FarMismatchNoCredit(t *testing.T) {
	prefs := &types.UserPreferences{SummerClimate: "hot"}
	town := &types.TownProfile{SummerClimateActual: "cold"}

	result := scoreClimate(prefs, town)

	assert.Equal(t, 80, result.score)
}

func TestScoreClimate_MissingTownDataFlagged(t *testing.T) {
	prefs := &types.UserPreferences{HumidityLevel: "dry"}
	town := &types.TownProfile{}

	result := scoreClimate(prefs, town)

	assert.Equal(t, 80, result.score)
	assert.Contains(t, factorDescriptions(result.factors), "humidity data unavailable")
}

func TestScoreClimate_UnrecognizedTownValueReadsAsMissingData(t *testing.T) {
	prefs := &types.UserPreferences{SunshineLevel: "balanced"}
	town := &types.TownProfile{SunshineLevelActual: "sometimes-ish"}

	result := scoreClimate(prefs, town)

	// Malformed value degrades to a data gap, never an error or a mismatch.
	assert.Equal(t, 80, result.score)
	assert.Contains(t, factorDescriptions(result.factors), "sunshine data unrecognized (sometimes-ish)")
}

func TestScoreClimate_CaseInsensitiveComparison(t *testing.T) {
	prefs := &types.UserPreferences{WinterClimate: " MILD "}
	town := &types.TownProfile{WinterClimateActual: "Mild"}

	result := scoreClimate(prefs, town)

	assert.Equal(t, 100, result.score)
}
