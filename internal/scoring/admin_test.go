package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scout2retire/town-match/internal/types"
)

func TestScoreAdministration_OpenWhenNoPreferences(t *testing.T) {
	result := scoreAdministration(&types.UserPreferences{}, &types.TownProfile{})

	assert.Equal(t, 100, result.score)
}

func TestScoreAdministration_HealthcareMeetsThreshold(t *testing.T) {
	prefs := &types.UserPreferences{HealthcareQualityMin: "good"}
	town := &types.TownProfile{HealthcareScore: 7.5}

	result := scoreAdministration(prefs, town)

	// 40 (healthcare) + 40 (safety open) + 20 (no citizenship)
	assert.Equal(t, 100, result.score)
}

func TestScoreAdministration_HealthcareLinearPartialCredit(t *testing.T) {
	prefs := &types.UserPreferences{HealthcareQualityMin: "good"} // threshold 7
	town := &types.TownProfile{HealthcareScore: 5.5}

	result := scoreAdministration(prefs, town)

	// (5.5 - 4) / 3 = 50% of 40 points = 20, plus open safety and visa axes.
	assert.Equal(t, 80, result.score)
}

func TestScoreAdministration_HealthcareZeroAtThresholdMinusThree(t *testing.T) {
	prefs := &types.UserPreferences{HealthcareQualityMin: "excellent"} // threshold 9
	town := &types.TownProfile{HealthcareScore: 6}

	result := scoreAdministration(prefs, town)

	assert.Equal(t, 60, result.score)
}

func TestScoreAdministration_SafetySamePatternAsHealthcare(t *testing.T) {
	prefs := &types.UserPreferences{SafetyImportance: "functional"} // threshold 4
	town := &types.TownProfile{SafetyScore: 4}

	result := scoreAdministration(prefs, town)

	assert.Equal(t, 100, result.score)
}

func TestScoreAdministration_MissingScoreDataFlagged(t *testing.T) {
	prefs := &types.UserPreferences{HealthcareQualityMin: "good"}
	town := &types.TownProfile{}

	result := scoreAdministration(prefs, town)

	assert.Equal(t, 60, result.score)
	assert.Contains(t, factorDescriptions(result.factors), "healthcare data unavailable")
}

func TestScoreAdministration_VisaListedCitizenshipFullCredit(t *testing.T) {
	prefs := &types.UserPreferences{Citizenship: "USA"}
	town := &types.TownProfile{VisaOnArrivalCountries: []string{"usa", "canada"}}

	result := scoreAdministration(prefs, town)

	assert.Equal(t, 100, result.score)
}

func TestScoreAdministration_VisaNeverZero(t *testing.T) {
	prefs := &types.UserPreferences{Citizenship: "USA"}
	town := &types.TownProfile{VisaOnArrivalCountries: []string{"canada"}}

	result := scoreAdministration(prefs, town)

	// 40 + 40 + 10: unlisted citizenship still earns half credit because
	// long-stay routes usually exist even when not enumerated.
	assert.Equal(t, 90, result.score)
}

func TestScoreAdministration_VisaEmptyListStillHalfCredit(t *testing.T) {
	prefs := &types.UserPreferences{Citizenship: "USA"}
	town := &types.TownProfile{}

	result := scoreAdministration(prefs, town)

	assert.Equal(t, 90, result.score)
}
