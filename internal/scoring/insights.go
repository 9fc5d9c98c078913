package scoring

import (
	"fmt"
	"sort"

	"github.com/scout2retire/town-match/internal/types"
)

// annotate fills the presentational fields of a MatchResult: insights,
// warnings, highlights, confidence tier, match-quality label and preference
// coverage. None of this affects the score.
func annotate(result *types.MatchResult, prefs *types.UserPreferences, town *types.TownProfile) {
	s := result.CategoryScores

	if s.Region >= 80 && town.Country != "" {
		result.Insights = append(result.Insights, "Excellent location match in "+town.Country)
	}
	if s.Climate >= 80 {
		result.Insights = append(result.Insights, "Climate aligns well with your preferences")
	}
	if s.Culture >= 80 {
		result.Insights = append(result.Insights, "Cultural fit matches your lifestyle")
	}
	if s.Hobbies >= 80 {
		result.Insights = append(result.Insights, "Many activities you enjoy are available")
	}
	if s.Administration >= 80 {
		result.Insights = append(result.Insights, "Healthcare and safety meet your standards")
	}
	if s.Budget >= 80 {
		result.Insights = append(result.Insights, "Very affordable for your budget")
	}

	if town.SafetyScore > 0 && town.SafetyScore < 5 {
		result.Warnings = append(result.Warnings, "Safety concerns may need investigation")
	}
	if town.HealthcareScore > 0 && town.HealthcareScore < 5 {
		result.Warnings = append(result.Warnings, "Healthcare may be limited")
	}
	if prefs.TotalMonthlyBudget > 0 && town.CostProxy() == 0 {
		result.Warnings = append(result.Warnings, "No cost of living data for this town")
	}

	result.Highlights = topHighlights(s)
	result.Confidence = confidenceTier(s)
	result.MatchQuality = matchQuality(result.OverallScore)
	result.PreferenceCoverage = preferenceCoverage(prefs)
	if result.PreferenceCoverage < 0.4 && result.OverallScore >= 80 {
		result.PersonalizationNote = "Limited personalization: you provided very few preferences. Complete your profile for sharper matches."
	}
}

// topHighlights names the strongest category matches, best first.
func topHighlights(s types.CategoryScores) []string {
	entries := []struct {
		name  string
		score int
	}{
		{"region", s.Region},
		{"climate", s.Climate},
		{"culture", s.Culture},
		{"hobbies", s.Hobbies},
		{"administration", s.Administration},
		{"budget", s.Budget},
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })

	var highlights []string
	for _, e := range entries[:3] {
		if e.score >= 70 {
			highlights = append(highlights, fmt.Sprintf("Strong %s match (%d%%)", e.name, e.score))
		}
	}
	return highlights
}

func confidenceTier(s types.CategoryScores) string {
	avg := (s.Region + s.Climate + s.Culture + s.Hobbies + s.Administration + s.Budget) / 6
	switch {
	case avg >= 80:
		return "High"
	case avg >= 60:
		return "Medium"
	default:
		return "Low"
	}
}

func matchQuality(overall int) string {
	switch {
	case overall >= 85:
		return "Excellent"
	case overall >= 70:
		return "Good"
	case overall >= 55:
		return "Fair"
	default:
		return "Poor"
	}
}

// preferenceCoverage is the share of the six categories where the user
// expressed any preference at all.
func preferenceCoverage(prefs *types.UserPreferences) float64 {
	n := 0
	for _, has := range []bool{
		prefs.HasRegionPreferences(),
		prefs.HasClimatePreferences(),
		prefs.HasCulturePreferences(),
		prefs.HasHobbyPreferences(),
		prefs.HasAdminPreferences(),
		prefs.HasBudgetPreferences(),
	} {
		if has {
			n++
		}
	}
	return float64(n) / 6
}
