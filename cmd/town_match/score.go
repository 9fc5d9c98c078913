package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scout2retire/town-match/internal/config"
	"github.com/scout2retire/town-match/internal/observability"
	"github.com/scout2retire/town-match/internal/scoring"
	"github.com/scout2retire/town-match/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one town against a user's preferences",
	Long:  "Scores a single town and prints the full breakdown: category scores, contributing factors, insights and warnings.",
	RunE:  runScore,
}

var (
	scorePrefsFile  string
	scoreTownsFile  string
	scoreTownName   string
	scoreConfigPath string
	scoreOutput     string
)

func init() {
	scoreCmd.Flags().StringVarP(&scorePrefsFile, "prefs-file", "p", "", "Path to user preferences JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreTownsFile, "towns-file", "t", "", "Path to candidate towns JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreTownName, "town", "n", "", "Name or UUID of the town to score (required)")
	scoreCmd.Flags().StringVarP(&scoreConfigPath, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to write the match result JSON")

	if err := scoreCmd.MarkFlagRequired("prefs-file"); err != nil {
		panic(fmt.Sprintf("failed to mark prefs-file flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("towns-file"); err != nil {
		panic(fmt.Sprintf("failed to mark towns-file flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("town"); err != nil {
		panic(fmt.Sprintf("failed to mark town flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(scoreConfigPath, config.Config{
		PreferencesFile: scorePrefsFile,
		TownsFile:       scoreTownsFile,
	})
	if err != nil {
		return err
	}

	prefs, err := loadPreferences(cfg)
	if err != nil {
		return err
	}

	towns, err := loadTowns(cfg)
	if err != nil {
		return err
	}

	town := findTown(towns, scoreTownName)
	if town == nil {
		return fmt.Errorf("town %q not found in %s", scoreTownName, cfg.TownsFile)
	}

	result, err := scoring.Score(prefs, town, weightsFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to score town: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchBreakdown(result)

	if scoreOutput != "" {
		if err := writeResults(scoreOutput, []types.MatchResult{*result}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote match result to %s\n", scoreOutput)
	}

	return nil
}

// findTown matches by UUID first, then by case-insensitive name.
func findTown(towns []types.TownProfile, nameOrID string) *types.TownProfile {
	for i := range towns {
		if towns[i].ID.String() == strings.ToLower(strings.TrimSpace(nameOrID)) {
			return &towns[i]
		}
	}
	for i := range towns {
		if strings.EqualFold(strings.TrimSpace(towns[i].Name), strings.TrimSpace(nameOrID)) {
			return &towns[i]
		}
	}
	return nil
}
