package types

import "github.com/google/uuid"

// Category names for the six weighted scoring axes.
const (
	CategoryRegion         = "region"
	CategoryClimate        = "climate"
	CategoryCulture        = "culture"
	CategoryHobbies        = "hobbies"
	CategoryAdministration = "administration"
	CategoryBudget         = "budget"
)

// Factor is one human-readable contribution to a category score: what
// matched (or didn't), and how many internal points it was worth.
type Factor struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// CategoryScores holds the six 0-100 category sub-scores.
type CategoryScores struct {
	Region         int `json:"region"`
	Climate        int `json:"climate"`
	Culture        int `json:"culture"`
	Hobbies        int `json:"hobbies"`
	Administration int `json:"administration"`
	Budget         int `json:"budget"`
}

// MatchResult is the ephemeral outcome of scoring one user against one town.
// It is returned to the caller and never persisted by the engine.
type MatchResult struct {
	TownID   uuid.UUID `json:"town_id"`
	TownName string    `json:"town_name"`

	OverallScore   int            `json:"overall_score"`
	CategoryScores CategoryScores `json:"category_scores"`
	Factors        []Factor       `json:"factors"`

	// Explanation extras. Presentational only; never affect the score.
	Insights           []string `json:"insights,omitempty"`
	Warnings           []string `json:"warnings,omitempty"`
	Highlights         []string `json:"highlights,omitempty"`
	Confidence         string   `json:"confidence,omitempty"`
	MatchQuality       string   `json:"match_quality,omitempty"`
	PreferenceCoverage float64  `json:"preference_coverage"`
	PersonalizationNote string  `json:"personalization_note,omitempty"`
}
