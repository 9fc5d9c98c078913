// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/scout2retire/town-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRankedMatches outputs the top ranked towns with their overall and
// category scores.
func (p *Printer) PrintRankedMatches(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Towns ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%d%%, %s)\n", i+1, r.TownName, r.OverallScore, r.MatchQuality))
		sb.WriteString(fmt.Sprintf("    R:%d C:%d Cu:%d H:%d A:%d B:%d\n",
			r.CategoryScores.Region, r.CategoryScores.Climate,
			r.CategoryScores.Culture, r.CategoryScores.Hobbies,
			r.CategoryScores.Administration, r.CategoryScores.Budget))
		if len(r.Highlights) > 0 {
			highlights := strings.Join(r.Highlights, "; ")
			if len(highlights) > 44 {
				highlights = highlights[:41] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", highlights))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchBreakdown outputs one town's full scoring breakdown with its
// strongest contributing factors and any warnings.
func (p *Printer) PrintMatchBreakdown(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Town:       %s\n", result.TownName))
	sb.WriteString(fmt.Sprintf("Overall:    %d%% (%s)\n", result.OverallScore, result.MatchQuality))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", result.Confidence))
	sb.WriteString("\n")

	sb.WriteString("Categories:\n")
	sb.WriteString(fmt.Sprintf("  Region          %3d%%\n", result.CategoryScores.Region))
	sb.WriteString(fmt.Sprintf("  Climate         %3d%%\n", result.CategoryScores.Climate))
	sb.WriteString(fmt.Sprintf("  Culture         %3d%%\n", result.CategoryScores.Culture))
	sb.WriteString(fmt.Sprintf("  Hobbies         %3d%%\n", result.CategoryScores.Hobbies))
	sb.WriteString(fmt.Sprintf("  Administration  %3d%%\n", result.CategoryScores.Administration))
	sb.WriteString(fmt.Sprintf("  Budget          %3d%%\n", result.CategoryScores.Budget))

	if len(result.Factors) > 0 {
		sb.WriteString("\nTop factors:\n")
		count := min(len(result.Factors), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := result.Factors[i]
			sb.WriteString(fmt.Sprintf("  • %s (+%d)\n", f.Description, f.Points))
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
	}

	p.printBox("MATCH BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTownProfile outputs a short human-readable summary of a town.
func (p *Printer) PrintTownProfile(town *types.TownProfile) {
	if town == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:    %s\n", town.Name))
	sb.WriteString(fmt.Sprintf("Country: %s\n", town.Country))
	if cost := town.CostProxy(); cost > 0 {
		sb.WriteString(fmt.Sprintf("Cost:    $%.0f/month\n", cost))
	}
	if town.HealthcareScore > 0 {
		sb.WriteString(fmt.Sprintf("Healthcare: %.1f/10\n", town.HealthcareScore))
	}
	if town.SafetyScore > 0 {
		sb.WriteString(fmt.Sprintf("Safety:     %.1f/10\n", town.SafetyScore))
	}
	if len(town.ActivitiesAvailable) > 0 {
		activities := strings.Join(town.ActivitiesAvailable, ", ")
		if len(activities) > 44 {
			activities = activities[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("Activities: %s\n", activities))
	}

	p.printBox("TOWN PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}
