package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout2retire/town-match/internal/types"
)

func sampleTown() *types.TownProfile {
	return &types.TownProfile{
		ID:                       uuid.New(),
		Name:                     "Valencia",
		Country:                  "Spain",
		Regions:                  []string{"Mediterranean", "Southern Europe"},
		GeographicFeaturesActual: []string{"coastal"},
		VegetationTypeActual:     []string{"mediterranean"},
		SummerClimateActual:      "hot",
		WinterClimateActual:      "mild",
		HumidityLevelActual:      "balanced",
		SunshineLevelActual:      "often_sunny",
		PrecipitationLevelActual: "mostly_dry",
		EnglishProficiencyLevel:  "moderate",
		PaceOfLifeActual:         "relaxed",
		UrbanRuralCharacter:      "urban",
		ExpatCommunitySize:       "large",
		ActivitiesAvailable:      []string{"hiking", "sailing", "golf"},
		InterestsSupported:       []string{"wine", "museums", "history"},
		HealthcareScore:          8,
		SafetyScore:              7.5,
		VisaOnArrivalCountries:   []string{"usa", "canada", "uk"},
		CostOfLivingUSD:          1800,
		TypicalRent1Bed:          850,
		HealthcareCostMonthly:    150,
	}
}

func TestScore_EmptyPreferencesScoreHundred(t *testing.T) {
	result, err := Score(&types.UserPreferences{}, sampleTown(), nil)

	require.NoError(t, err)
	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, 100, result.CategoryScores.Region)
	assert.Equal(t, 100, result.CategoryScores.Climate)
	assert.Equal(t, 100, result.CategoryScores.Culture)
	assert.Equal(t, 100, result.CategoryScores.Hobbies)
	assert.Equal(t, 100, result.CategoryScores.Administration)
	assert.Equal(t, 100, result.CategoryScores.Budget)
}

func TestScore_EmptyTownDoesNotRaise(t *testing.T) {
	prefs := &types.UserPreferences{
		Countries:            []string{"Spain"},
		SummerClimate:        "warm",
		LanguageComfort:      "english_only",
		Activities:           []string{"hiking"},
		HealthcareQualityMin: "good",
		TotalMonthlyBudget:   2500,
	}

	result, err := Score(prefs, &types.TownProfile{}, nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
}

func TestScore_CaseAndWhitespaceInsensitive(t *testing.T) {
	prefs := &types.UserPreferences{
		Countries:          []string{"spain"},
		GeographicFeatures: []string{"COASTAL"},
		SummerClimate:      "hot",
		Activities:         []string{"Sailing"},
		TotalMonthlyBudget: 2000,
	}
	town := sampleTown()
	shuffled := sampleTown()
	shuffled.ID = town.ID
	shuffled.Country = "  SPAIN "
	shuffled.GeographicFeaturesActual = []string{" Coastal "}
	shuffled.SummerClimateActual = "HOT"
	shuffled.ActivitiesAvailable = []string{"  SAILING", "Golf ", "hiking"}

	a, err := Score(prefs, town, nil)
	require.NoError(t, err)
	b, err := Score(prefs, shuffled, nil)
	require.NoError(t, err)

	assert.Equal(t, a.OverallScore, b.OverallScore)
	assert.Equal(t, a.CategoryScores, b.CategoryScores)
}

func TestScore_Boundedness(t *testing.T) {
	prefs := &types.UserPreferences{
		Countries:            []string{"Japan"},
		Regions:              []string{"Asia"},
		GeographicFeatures:   []string{"mountain"},
		VegetationTypes:      []string{"tropical"},
		SummerClimate:        "cold",
		WinterClimate:        "hot",
		HumidityLevel:        "dry",
		SunshineLevel:        "less_sunny",
		PrecipitationLevel:   "less_dry",
		LanguageComfort:      "english_only",
		PaceOfLife:           "fast",
		UrbanRural:           "rural",
		ExpatCommunitySize:   "small",
		Activities:           []string{"skiing"},
		Interests:            []string{"opera"},
		HealthcareQualityMin: "excellent",
		SafetyImportance:     "excellent",
		Citizenship:          "Japan",
		TotalMonthlyBudget:   500,
	}

	result, err := Score(prefs, sampleTown(), nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	for _, s := range []int{
		result.CategoryScores.Region, result.CategoryScores.Climate,
		result.CategoryScores.Culture, result.CategoryScores.Hobbies,
		result.CategoryScores.Administration, result.CategoryScores.Budget,
	} {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestScore_EndToEndSpainScenario(t *testing.T) {
	prefs := &types.UserPreferences{
		Countries:          []string{"Spain"},
		Regions:            []string{"Mediterranean"},
		GeographicFeatures: []string{"Coastal"},
		VegetationTypes:    []string{"Mediterranean"},
		TotalMonthlyBudget: 2500,
	}
	town := &types.TownProfile{
		ID:                       uuid.New(),
		Name:                     "Alicante",
		Country:                  "Spain",
		Regions:                  []string{"Mediterranean"},
		GeographicFeaturesActual: []string{"coastal"},
		VegetationTypeActual:     []string{"mediterranean"},
		CostOfLivingUSD:          2000,
	}

	result, err := Score(prefs, town, nil)

	require.NoError(t, err)
	assert.Equal(t, 100, result.CategoryScores.Region)
	// ratio 1.25 -> base 60, +15 tax neutral, no bonuses
	assert.Equal(t, 75, result.CategoryScores.Budget)
	// five open/full categories at weight 90 plus budget 75 at weight 10
	assert.Equal(t, 98, result.OverallScore)
}

func TestScore_FactorsOrderedByContribution(t *testing.T) {
	prefs := &types.UserPreferences{
		Countries:          []string{"Spain"},
		SummerClimate:      "warm",
		TotalMonthlyBudget: 2500,
	}

	result, err := Score(prefs, sampleTown(), nil)

	require.NoError(t, err)
	for i := 1; i < len(result.Factors); i++ {
		assert.GreaterOrEqual(t, result.Factors[i-1].Points, result.Factors[i].Points)
	}
}

func TestScore_CustomWeightsApplied(t *testing.T) {
	weights := &Weights{Region: 100}
	prefs := &types.UserPreferences{Countries: []string{"Spain"}}

	result, err := Score(prefs, sampleTown(), weights)

	require.NoError(t, err)
	assert.Equal(t, result.CategoryScores.Region, result.OverallScore)
}

func TestScore_InvalidWeightsFatal(t *testing.T) {
	weights := &Weights{Region: 50, Climate: 40} // sums to 90

	_, err := Score(&types.UserPreferences{}, sampleTown(), weights)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 100")
}

func TestScore_NilInputsFatal(t *testing.T) {
	_, err := Score(nil, sampleTown(), nil)
	require.Error(t, err)

	_, err = Score(&types.UserPreferences{}, nil, nil)
	require.Error(t, err)
}
