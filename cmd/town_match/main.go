// Package main provides the town-match CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "town_match",
	Short: "Retirement town matching engine",
	Long:  "Town Match scores candidate retirement towns against a user's preferences across region, climate, culture, hobbies, administration and budget, and ranks them best-first via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
