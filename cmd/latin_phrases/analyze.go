package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/latin-phrases/internal/config"
	"github.com/jonathan/latin-phrases/internal/observability"
	"github.com/jonathan/latin-phrases/internal/pipeline"
	"github.com/jonathan/latin-phrases/internal/sentences"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a previously saved phrase spreadsheet",
	Long: `Reads a spreadsheet written by "run", prints the most common words of the Latin
and Translation columns and generates sentences, without fetching the page again.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

var (
	analyzeInput     string
	analyzeSheet     string
	analyzeMinLength int
	analyzeFiller    string
	analyzeVerbose   bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeInput, "in", "i", "", "Spreadsheet file to analyze (required)")
	analyzeCommand.Flags().StringVar(&analyzeSheet, "sheet", "", "Worksheet name (default: first sheet)")
	analyzeCommand.Flags().IntVar(&analyzeMinLength, "min-length", 0, "Shortest word counted in the analysis (default 4)")
	analyzeCommand.Flags().StringVar(&analyzeFiller, "filler", "", "Keyword used when fewer than five words are found (default \"vida\")")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := analyzeCommand.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		SheetName:     analyzeSheet,
		MinWordLength: analyzeMinLength,
		Filler:        analyzeFiller,
		Verbose:       analyzeVerbose,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	logger := observability.NewLogger(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	_, err := pipeline.AnalyzeFile(cmd.Context(), pipeline.RunOptions{
		InputPath:     analyzeInput,
		SheetName:     analyzeSheet,
		MinWordLength: cfg.MinWordLength,
		TopN:          cfg.TopN,
		Filler:        cfg.Filler,
		Templates:     sentences.DefaultTemplates(),
		Verbose:       cfg.Verbose,
		Out:           cmd.OutOrStdout(),
		Logger:        logger,
	})
	return err
}
