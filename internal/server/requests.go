package server

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/scout2retire/town-match/internal/scoring"
	"github.com/scout2retire/town-match/internal/types"
)

// RankRequest asks for a ranked list of towns for one user. Preferences can
// be supplied inline or looked up by user ID; inline wins when both are set.
type RankRequest struct {
	UserID      uuid.UUID              `json:"user_id,omitempty"`
	Preferences *types.UserPreferences `json:"preferences,omitempty"`
	Weights     *scoring.Weights       `json:"weights,omitempty"`

	// Optional pre-filters applied before scoring
	Country            string  `json:"country,omitempty"`
	MinHealthcareScore float64 `json:"min_healthcare_score,omitempty" validate:"gte=0,lte=10"`
	MinSafetyScore     float64 `json:"min_safety_score,omitempty" validate:"gte=0,lte=10"`
	Limit              int     `json:"limit,omitempty" validate:"gte=0"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Preferences != nil {
		return r.Preferences.Validate()
	}
	return nil
}

// ScoreRequest asks for a single user-to-town score with its full breakdown.
type ScoreRequest struct {
	UserID      uuid.UUID              `json:"user_id,omitempty"`
	Preferences *types.UserPreferences `json:"preferences,omitempty"`
	TownID      uuid.UUID              `json:"town_id"`
	Weights     *scoring.Weights       `json:"weights,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Preferences != nil {
		return r.Preferences.Validate()
	}
	return nil
}
