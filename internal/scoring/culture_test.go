package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scout2retire/town-match/internal/types"
)

func TestScoreCulture_OpenToAnyCulture(t *testing.T) {
	result := scoreCulture(&types.UserPreferences{}, &types.TownProfile{})

	assert.Equal(t, 100, result.score)
}

func TestScoreCulture_EnglishOnlyNeedsHighProficiency(t *testing.T) {
	prefs := &types.UserPreferences{LanguageComfort: "english_only"}

	high := scoreCulture(prefs, &types.TownProfile{EnglishProficiencyLevel: "high"})
	native := scoreCulture(prefs, &types.TownProfile{EnglishProficiencyLevel: "native"})
	moderate := scoreCulture(prefs, &types.TownProfile{EnglishProficiencyLevel: "moderate"})
	low := scoreCulture(prefs, &types.TownProfile{EnglishProficiencyLevel: "low"})

	// Other three axes are open (75 base).
	assert.Equal(t, 100, high.score)
	assert.Equal(t, 100, native.score)
	assert.Equal(t, 87, moderate.score) // 75 + 12 (half of 25)
	assert.Equal(t, 75, low.score)
}

func TestScoreCulture_WillingToLearnForgiving(t *testing.T) {
	prefs := &types.UserPreferences{LanguageComfort: "willing_to_learn"}

	moderate := scoreCulture(prefs, &types.TownProfile{EnglishProficiencyLevel: "moderate"})
	low := scoreCulture(prefs, &types.TownProfile{EnglishProficiencyLevel: "low"})

	assert.Equal(t, 100, moderate.score)
	assert.Equal(t, 87, low.score)
}

func TestScoreCulture_ComfortableAlwaysFullCredit(t *testing.T) {
	prefs := &types.UserPreferences{LanguageComfort: "comfortable"}
	town := &types.TownProfile{} // no proficiency data at all

	result := scoreCulture(prefs, town)

	assert.Equal(t, 100, result.score)
}

func TestScoreCulture_LanguagePreferenceSetNoTownData(t *testing.T) {
	prefs := &types.UserPreferences{LanguageComfort: "english_only"}
	town := &types.TownProfile{}

	result := scoreCulture(prefs, town)

	assert.Equal(t, 75, result.score)
	assert.Contains(t, factorDescriptions(result.factors), "English proficiency data unavailable")
}

func TestScoreCulture_PaceAdjacencyHalfCredit(t *testing.T) {
	prefs := &types.UserPreferences{PaceOfLife: "relaxed"}

	exact := scoreCulture(prefs, &types.TownProfile{PaceOfLifeActual: "relaxed"})
	adjacent := scoreCulture(prefs, &types.TownProfile{PaceOfLifeActual: "moderate"})
	opposite := scoreCulture(prefs, &types.TownProfile{PaceOfLifeActual: "fast"})

	assert.Equal(t, 100, exact.score)
	assert.Equal(t, 87, adjacent.score)
	assert.Equal(t, 75, opposite.score)
}

func TestScoreCulture_UrbanRuralAndExpatEquality(t *testing.T) {
	prefs := &types.UserPreferences{
		UrbanRural:         "suburban",
		ExpatCommunitySize: "moderate",
	}
	town := &types.TownProfile{
		UrbanRuralCharacter: "suburban",
		ExpatCommunitySize:  "moderate",
	}

	result := scoreCulture(prefs, town)

	assert.Equal(t, 100, result.score)
}
