// Package main provides the entry point for the latin_phrases command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "latin_phrases",
	Short: "Latin phrase collector and word analyzer",
	Long: `latin_phrases downloads the list of Latin phrases, saves the Latin and Translation
columns to a spreadsheet, reports the most common words of each column and
generates Spanish sentences from the most common translation words.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
