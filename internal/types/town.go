package types

import "github.com/google/uuid"

// TownProfile is one candidate town's attributes as stored by the enrichment
// pipeline. The engine treats it as read-only. Most fields are nullable in
// the database, so empty strings, empty slices and zero numerics all mean
// "no data" here; scoring degrades per the missing-data policy instead of
// failing.
type TownProfile struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Country string    `json:"country,omitempty"`

	// Region
	Regions                  []string `json:"regions,omitempty"`
	GeographicFeaturesActual []string `json:"geographic_features_actual,omitempty"`
	VegetationTypeActual     []string `json:"vegetation_type_actual,omitempty"`

	// Climate actuals
	SummerClimateActual      string `json:"summer_climate_actual,omitempty"`
	WinterClimateActual      string `json:"winter_climate_actual,omitempty"`
	HumidityLevelActual      string `json:"humidity_level_actual,omitempty"`
	SunshineLevelActual      string `json:"sunshine_level_actual,omitempty"`
	PrecipitationLevelActual string `json:"precipitation_level_actual,omitempty"`

	// Culture
	EnglishProficiencyLevel string `json:"english_proficiency_level,omitempty"`
	PaceOfLifeActual        string `json:"pace_of_life_actual,omitempty"`
	UrbanRuralCharacter     string `json:"urban_rural_character,omitempty"`
	ExpatCommunitySize      string `json:"expat_community_size,omitempty"`

	// Hobbies
	ActivitiesAvailable []string `json:"activities_available,omitempty"`
	InterestsSupported  []string `json:"interests_supported,omitempty"`

	// Administration (scores on a 1-10 scale, zero = no data)
	HealthcareScore        float64  `json:"healthcare_score,omitempty"`
	SafetyScore            float64  `json:"safety_score,omitempty"`
	VisaOnArrivalCountries []string `json:"visa_on_arrival_countries,omitempty"`

	// Costs (monthly, USD; zero = no data)
	CostOfLivingUSD          float64 `json:"cost_of_living_usd,omitempty"`
	TypicalMonthlyLivingCost float64 `json:"typical_monthly_living_cost,omitempty"`
	TypicalRent1Bed          float64 `json:"typical_rent_1bed,omitempty"`
	HealthcareCostMonthly    float64 `json:"healthcare_cost_monthly,omitempty"`
}

// CostProxy returns the best available monthly cost figure for the town, in
// priority order: cost_of_living_usd, then typical_monthly_living_cost.
// Zero means no cost data exists.
func (t *TownProfile) CostProxy() float64 {
	if t.CostOfLivingUSD > 0 {
		return t.CostOfLivingUSD
	}
	return t.TypicalMonthlyLivingCost
}
