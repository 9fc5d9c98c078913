// Package types provides type definitions for structured data used throughout the town-match system.
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Climate preference values, ordered from coldest to hottest.
const (
	ClimateCold = "cold"
	ClimateCool = "cool"
	ClimateMild = "mild"
	ClimateWarm = "warm"
	ClimateHot  = "hot"
)

// Humidity preference values.
const (
	HumidityDry      = "dry"
	HumidityBalanced = "balanced"
	HumidityHumid    = "humid"
)

// Sunshine preference values.
const (
	SunshineLessSunny  = "less_sunny"
	SunshineBalanced   = "balanced"
	SunshineOftenSunny = "often_sunny"
)

// Precipitation preference values.
const (
	PrecipitationMostlyDry = "mostly_dry"
	PrecipitationBalanced  = "balanced"
	PrecipitationLessDry   = "less_dry"
)

// Language comfort values.
const (
	LanguageEnglishOnly    = "english_only"
	LanguageWillingToLearn = "willing_to_learn"
	LanguageComfortable    = "comfortable"
)

// Pace of life values.
const (
	PaceRelaxed  = "relaxed"
	PaceModerate = "moderate"
	PaceFast     = "fast"
)

// Urban/rural character values.
const (
	UrbanRuralRural    = "rural"
	UrbanRuralSuburban = "suburban"
	UrbanRuralUrban    = "urban"
)

// Expat community size values.
const (
	ExpatSmall    = "small"
	ExpatModerate = "moderate"
	ExpatLarge    = "large"
)

// Quality minimum values used for healthcare and safety requirements.
const (
	QualityBasic      = "basic"
	QualityFunctional = "functional"
	QualityGood       = "good"
	QualityExcellent  = "excellent"
)

// UserPreferences holds one user's retirement preferences as captured by the
// onboarding flow. Every field is optional: an empty slice or empty string
// means the user expressed no preference on that axis and is open to any
// value. Numeric budgets use zero as the unset marker.
type UserPreferences struct {
	UserID uuid.UUID `json:"user_id,omitempty"`

	// Region
	Countries          []string `json:"countries,omitempty"`
	Regions            []string `json:"regions,omitempty"`
	GeographicFeatures []string `json:"geographic_features,omitempty"`
	VegetationTypes    []string `json:"vegetation_types,omitempty"`

	// Climate
	SummerClimate      string `json:"summer_climate,omitempty" validate:"omitempty,oneof=cold cool mild warm hot"`
	WinterClimate      string `json:"winter_climate,omitempty" validate:"omitempty,oneof=cold cool mild warm hot"`
	HumidityLevel      string `json:"humidity_level,omitempty" validate:"omitempty,oneof=dry balanced humid"`
	SunshineLevel      string `json:"sunshine_level,omitempty" validate:"omitempty,oneof=less_sunny balanced often_sunny"`
	PrecipitationLevel string `json:"precipitation_level,omitempty" validate:"omitempty,oneof=mostly_dry balanced less_dry"`

	// Culture
	LanguageComfort    string `json:"language_comfort,omitempty" validate:"omitempty,oneof=english_only willing_to_learn comfortable"`
	PaceOfLife         string `json:"pace_of_life,omitempty" validate:"omitempty,oneof=relaxed moderate fast"`
	UrbanRural         string `json:"urban_rural,omitempty" validate:"omitempty,oneof=rural suburban urban"`
	ExpatCommunitySize string `json:"expat_community_size,omitempty" validate:"omitempty,oneof=small moderate large"`

	// Hobbies
	Activities []string `json:"activities,omitempty"`
	Interests  []string `json:"interests,omitempty"`

	// Administration
	HealthcareQualityMin string `json:"healthcare_quality_min,omitempty" validate:"omitempty,oneof=basic functional good excellent"`
	SafetyImportance     string `json:"safety_importance,omitempty" validate:"omitempty,oneof=basic functional good excellent"`
	Citizenship          string `json:"citizenship,omitempty"`

	// Budget (monthly, USD; zero means unset)
	TotalMonthlyBudget      float64 `json:"total_monthly_budget,omitempty" validate:"gte=0"`
	MaxMonthlyRent          float64 `json:"max_monthly_rent,omitempty" validate:"gte=0"`
	MonthlyHealthcareBudget float64 `json:"monthly_healthcare_budget,omitempty" validate:"gte=0"`
}

// Validate validates the preference payload using the validator.
func (p *UserPreferences) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// HasRegionPreferences reports whether the user constrained any region axis.
func (p *UserPreferences) HasRegionPreferences() bool {
	return len(p.Countries) > 0 || len(p.Regions) > 0 ||
		len(p.GeographicFeatures) > 0 || len(p.VegetationTypes) > 0
}

// HasClimatePreferences reports whether the user constrained any climate axis.
func (p *UserPreferences) HasClimatePreferences() bool {
	return p.SummerClimate != "" || p.WinterClimate != "" || p.HumidityLevel != "" ||
		p.SunshineLevel != "" || p.PrecipitationLevel != ""
}

// HasCulturePreferences reports whether the user constrained any culture axis.
func (p *UserPreferences) HasCulturePreferences() bool {
	return p.LanguageComfort != "" || p.PaceOfLife != "" || p.UrbanRural != "" ||
		p.ExpatCommunitySize != ""
}

// HasHobbyPreferences reports whether the user listed any activities or interests.
func (p *UserPreferences) HasHobbyPreferences() bool {
	return len(p.Activities) > 0 || len(p.Interests) > 0
}

// HasAdminPreferences reports whether the user constrained any administration axis.
func (p *UserPreferences) HasAdminPreferences() bool {
	return p.HealthcareQualityMin != "" || p.SafetyImportance != "" || p.Citizenship != ""
}

// HasBudgetPreferences reports whether the user set any budget amount.
func (p *UserPreferences) HasBudgetPreferences() bool {
	return p.TotalMonthlyBudget > 0 || p.MaxMonthlyRent > 0 || p.MonthlyHealthcareBudget > 0
}
