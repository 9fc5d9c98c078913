package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scout2retire/town-match/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate town and preference files against their schemas",
	Long:  "Checks JSON input files against the bundled JSON Schemas before a ranking run, reporting every field error.",
	RunE:  runValidate,
}

var (
	validateTownsFile string
	validatePrefsFile string
)

func init() {
	validateCmd.Flags().StringVarP(&validateTownsFile, "towns-file", "t", "", "Path to candidate towns JSON file")
	validateCmd.Flags().StringVarP(&validatePrefsFile, "prefs-file", "p", "", "Path to user preferences JSON file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateTownsFile == "" && validatePrefsFile == "" {
		return fmt.Errorf("at least one of --towns-file or --prefs-file is required")
	}

	failed := false

	if validateTownsFile != "" {
		if err := validateAgainst("schemas/towns_file.schema.json", validateTownsFile); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", validateTownsFile, err)
			failed = true
		} else {
			fmt.Fprintf(os.Stdout, "%s: OK\n", validateTownsFile)
		}
	}

	if validatePrefsFile != "" {
		if err := validateAgainst("schemas/user_preferences.schema.json", validatePrefsFile); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", validatePrefsFile, err)
			failed = true
		} else {
			fmt.Fprintf(os.Stdout, "%s: OK\n", validatePrefsFile)
		}
	}

	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func validateAgainst(schemaRelPath, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return fmt.Errorf("could not locate schema %s", schemaRelPath)
	}
	return schemas.ValidateJSON(schemaPath, jsonPath)
}
