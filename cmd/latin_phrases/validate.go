package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/latin-phrases/internal/config"
	"github.com/jonathan/latin-phrases/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file against the config schema",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var validateConfigPath string

func init() {
	validateCommand.Flags().StringVar(&validateConfigPath, "config", "", "Path to config.json file (required)")
	if err := validateCommand.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCommand)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.LoadConfig(validateConfigPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(out, "Validation failed:")
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			for _, fe := range schemaErr.Errors {
				fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
			}
		} else {
			fmt.Fprintf(out, "  - %v\n", err)
		}
		return fmt.Errorf("invalid config %s", validateConfigPath)
	}

	fmt.Fprintf(out, "Validation passed: %s\n", validateConfigPath)
	return nil
}
