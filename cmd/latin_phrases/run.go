package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/latin-phrases/internal/config"
	"github.com/jonathan/latin-phrases/internal/fetch"
	"github.com/jonathan/latin-phrases/internal/observability"
	"github.com/jonathan/latin-phrases/internal/pipeline"
	"github.com/jonathan/latin-phrases/internal/sentences"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Fetch the phrase list, save it and analyze it",
	Long: `Runs the whole process: fetch page -> extract Latin/Translation columns -> save spreadsheet -> count words -> generate sentences.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values;
LATIN_PHRASES_URL and LATIN_PHRASES_OUTPUT are used when neither sets the page URL or output file.`,
	Args: cobra.NoArgs,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runURL        string
	runOut        string
	runSheet      string
	runUserAgent  string
	runMinLength  int
	runFiller     string
	runTimeout    int
	runUseBrowser bool
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runURL, "url", "u", "", "Page holding the Latin phrase tables")
	runCommand.Flags().StringVarP(&runOut, "out", "o", "", "Spreadsheet file to write (default \""+config.Defaults().OutputFile+"\")")
	runCommand.Flags().StringVar(&runSheet, "sheet", "", "Worksheet name (default \""+config.Defaults().SheetName+"\")")
	runCommand.Flags().StringVar(&runUserAgent, "user-agent", "", "User-Agent header sent with the request")
	runCommand.Flags().IntVar(&runMinLength, "min-length", 0, "Shortest word counted in the analysis (default 4)")
	runCommand.Flags().StringVar(&runFiller, "filler", "", "Keyword used when fewer than five words are found (default \"vida\")")
	runCommand.Flags().IntVar(&runTimeout, "timeout", 0, "Fetch timeout in seconds (default 30)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Render the page with a headless browser (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("url") {
		cfg.PageURL = runURL
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputFile = runOut
	}
	if cmd.Flags().Changed("sheet") {
		cfg.SheetName = runSheet
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent = runUserAgent
	}
	if cmd.Flags().Changed("min-length") {
		cfg.MinWordLength = runMinLength
	}
	if cmd.Flags().Changed("filler") {
		cfg.Filler = runFiller
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = runTimeout
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Environment, then defaults for unset values
	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())

	// Step 4: Validate merged values
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := observability.NewLogger(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	opts := pipeline.RunOptions{
		PageURL:       cfg.PageURL,
		OutputPath:    cfg.OutputFile,
		SheetName:     cfg.SheetName,
		MinWordLength: cfg.MinWordLength,
		TopN:          cfg.TopN,
		Filler:        cfg.Filler,
		Templates:     sentences.DefaultTemplates(),
		FetchOptions: &fetch.Options{
			Timeout:   cfg.Timeout(),
			UserAgent: cfg.UserAgent,
		},
		UseBrowser: cfg.UseBrowser,
		Timeout:    cfg.Timeout(),
		Verbose:    cfg.Verbose,
		Out:        cmd.OutOrStdout(),
		Logger:     logger,
	}

	_, err := pipeline.RunPipeline(cmd.Context(), opts)
	return err
}
