package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scout2retire/town-match/internal/config"
	"github.com/scout2retire/town-match/internal/db"
	"github.com/scout2retire/town-match/internal/observability"
	"github.com/scout2retire/town-match/internal/schemas"
	"github.com/scout2retire/town-match/internal/scoring"
	"github.com/scout2retire/town-match/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate towns for one user",
	Long:  "Scores every candidate town against the user's preferences and prints the towns sorted best-first. Towns and preferences come from JSON files, or from the database when --user and DATABASE_URL are set.",
	RunE:  runRank,
}

var (
	rankPrefsFile  string
	rankTownsFile  string
	rankUser       string
	rankConfigPath string
	rankOutput     string
	rankTop        int
	rankMinHealth  float64
	rankMinSafety  float64
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankPrefsFile, "prefs-file", "p", "", "Path to user preferences JSON file")
	rankCmd.Flags().StringVarP(&rankTownsFile, "towns-file", "t", "", "Path to candidate towns JSON file")
	rankCmd.Flags().StringVarP(&rankUser, "user", "u", "", "User UUID for database-backed runs")
	rankCmd.Flags().StringVarP(&rankConfigPath, "config", "c", "", "Path to JSON config file")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to write ranked results JSON")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "Only keep the top N towns (0 = all)")
	rankCmd.Flags().Float64Var(&rankMinHealth, "min-healthcare", 0, "Drop towns below this healthcare score before ranking")
	rankCmd.Flags().Float64Var(&rankMinSafety, "min-safety", 0, "Drop towns below this safety score before ranking")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed scoring output")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(rankConfigPath, config.Config{
		PreferencesFile:    rankPrefsFile,
		TownsFile:          rankTownsFile,
		UserID:             rankUser,
		Limit:              rankTop,
		MinHealthcareScore: rankMinHealth,
		MinSafetyScore:     rankMinSafety,
		Verbose:            rankVerbose,
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
	if len(towns) == 0 {
		return fmt.Errorf("no candidate towns to rank")
	}

	weights := weightsFromConfig(cfg)
	results, err := scoring.Rank(prefs, towns, weights)
	if err != nil {
		return fmt.Errorf("failed to rank towns: %w", err)
	}

	if cfg.Limit > 0 && len(results) > cfg.Limit {
		results = results[:cfg.Limit]
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRankedMatches(results)
	} else {
		for i, r := range results {
			fmt.Fprintf(os.Stdout, "%3d. %-30s %3d%%  %s\n", i+1, r.TownName, r.OverallScore, r.MatchQuality)
		}
	}

	if rankOutput != "" {
		if err := writeResults(rankOutput, results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %d ranked towns to %s\n", len(results), rankOutput)
	}

	return nil
}

// resolveConfig merges CLI flag values over an optional config file.
func resolveConfig(path string, flags config.Config) (*config.Config, error) {
	cfg := flags
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = flags.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// weightsFromConfig converts a config weight override into scoring weights.
func weightsFromConfig(cfg *config.Config) *scoring.Weights {
	if cfg.Weights == nil {
		return nil
	}
	return &scoring.Weights{
		Region:         cfg.Weights.Region,
		Climate:        cfg.Weights.Climate,
		Culture:        cfg.Weights.Culture,
		Hobbies:        cfg.Weights.Hobbies,
		Administration: cfg.Weights.Administration,
		Budget:         cfg.Weights.Budget,
	}
}

// loadPreferences reads preferences from the configured file, or from the
// database when a user ID is given instead.
func loadPreferences(cfg *config.Config) (*types.UserPreferences, error) {
	if cfg.PreferencesFile != "" {
		warnIfSchemaInvalid("schemas/user_preferences.schema.json", cfg.PreferencesFile)

		content, err := os.ReadFile(cfg.PreferencesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read preferences file %s: %w", cfg.PreferencesFile, err)
		}
		var prefs types.UserPreferences
		if err := json.Unmarshal(content, &prefs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferences JSON: %w", err)
		}
		return &prefs, nil
	}

	if cfg.UserID == "" {
		return nil, fmt.Errorf("either --prefs-file or --user is required")
	}
	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID %q: %w", cfg.UserID, err)
	}

	database, err := connectFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	prefs, err := database.GetUserPreferences(context.Background(), userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return nil, fmt.Errorf("no preferences found for user %s", userID)
	}
	return prefs, nil
}

// loadTowns reads candidate towns from the configured file, or lists them
// from the database applying the configured pre-filters.
func loadTowns(cfg *config.Config) ([]types.TownProfile, error) {
	if cfg.TownsFile != "" {
		warnIfSchemaInvalid("schemas/towns_file.schema.json", cfg.TownsFile)

		content, err := os.ReadFile(cfg.TownsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read towns file %s: %w", cfg.TownsFile, err)
		}
		var towns []types.TownProfile
		if err := json.Unmarshal(content, &towns); err != nil {
			return nil, fmt.Errorf("failed to unmarshal towns JSON: %w", err)
		}
		return filterTowns(towns, cfg), nil
	}

	database, err := connectFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	return database.ListTowns(context.Background(), db.TownFilters{
		MinHealthcareScore: cfg.MinHealthcareScore,
		MinSafetyScore:     cfg.MinSafetyScore,
	})
}

// filterTowns applies the healthcare and safety pre-filters to a file-loaded
// town set, mirroring what the database query does.
func filterTowns(towns []types.TownProfile, cfg *config.Config) []types.TownProfile {
	if cfg.MinHealthcareScore <= 0 && cfg.MinSafetyScore <= 0 {
		return towns
	}
	filtered := make([]types.TownProfile, 0, len(towns))
	for _, t := range towns {
		if cfg.MinHealthcareScore > 0 && t.HealthcareScore < cfg.MinHealthcareScore {
			continue
		}
		if cfg.MinSafetyScore > 0 && t.SafetyScore < cfg.MinSafetyScore {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func connectFromConfig(cfg *config.Config) (*db.DB, error) {
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for database-backed runs")
	}
	return db.Connect(context.Background(), databaseURL)
}

// warnIfSchemaInvalid checks an input file against its schema when the
// schema can be located. Validation problems are reported but not fatal;
// the scorer itself degrades gracefully on unknown values.
func warnIfSchemaInvalid(schemaRelPath, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s failed schema validation: %v\n", jsonPath, err)
	}
}

func writeResults(path string, results []types.MatchResult) error {
	jsonOutput, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	return nil
}
