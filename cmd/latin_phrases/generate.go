package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/latin-phrases/internal/config"
	"github.com/jonathan/latin-phrases/internal/observability"
	"github.com/jonathan/latin-phrases/internal/sentences"
)

var generateCommand = &cobra.Command{
	Use:   "generate [keywords...]",
	Short: "Generate sentences from the given keywords",
	Long: `Fills the five sentence templates with the given keywords in order.
Missing keywords are replaced by the filler word; extra keywords are ignored.`,
	RunE: runGenerate,
}

var generateFiller string

func init() {
	generateCommand.Flags().StringVar(&generateFiller, "filler", "", "Keyword used when fewer than five keywords are given (default \"vida\")")

	rootCmd.AddCommand(generateCommand)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Config{Filler: generateFiller}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	generated := sentences.Generate(args, sentences.DefaultTemplates(), cfg.Filler)
	observability.NewPrinter(cmd.OutOrStdout()).PrintSentences(generated)
	return nil
}
