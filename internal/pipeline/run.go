// Package pipeline provides the high-level orchestration of a phrase run:
// acquisition, persistence, word analysis and sentence generation.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/latin-phrases/internal/acquisition"
	"github.com/jonathan/latin-phrases/internal/analysis"
	"github.com/jonathan/latin-phrases/internal/export"
	"github.com/jonathan/latin-phrases/internal/fetch"
	"github.com/jonathan/latin-phrases/internal/observability"
	"github.com/jonathan/latin-phrases/internal/pipeline/steps"
	"github.com/jonathan/latin-phrases/internal/sentences"
	"github.com/jonathan/latin-phrases/internal/tables"
	"github.com/jonathan/latin-phrases/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	PageURL       string
	InputPath     string // spreadsheet read by AnalyzeFile
	OutputPath    string
	SheetName     string
	MinWordLength int
	TopN          int
	Filler        string
	Templates     *sentences.Templates
	FetchOptions  *fetch.Options
	UseBrowser    bool
	Timeout       time.Duration
	Verbose       bool
	Out           io.Writer
	Logger        *zap.Logger
	Source        acquisition.Source // overrides the HTTP/browser source
	OnProgress    ProgressCallback
}

// Analysis holds the pure results computed from a phrase table
type Analysis struct {
	LatinWords       types.TopWords `json:"latin_words"`
	TranslationWords types.TopWords `json:"translation_words"`
	Sentences        []string       `json:"sentences"`
}

// Result is the outcome of a completed run
type Result struct {
	RunID      string
	Phrases    *types.PhraseTable
	OutputPath string
	Analysis   *Analysis
}

// withDefaults fills unset options.
func (o RunOptions) withDefaults() RunOptions {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.PageURL == "" {
		o.PageURL = acquisition.DefaultPageURL
	}
	if o.OutputPath == "" {
		o.OutputPath = export.DefaultFileName
	}
	if o.SheetName == "" {
		o.SheetName = export.DefaultSheet
	}
	if o.MinWordLength == 0 {
		o.MinWordLength = analysis.DefaultMinLength
	}
	if o.TopN == 0 {
		o.TopN = analysis.DefaultTopN
	}
	if o.Filler == "" {
		o.Filler = sentences.DefaultFiller
	}
	if o.Templates == nil {
		o.Templates = sentences.DefaultTemplates()
	}
	if o.Timeout == 0 {
		o.Timeout = fetch.DefaultTimeout
	}
	if o.Source == nil {
		o.Source = o.defaultSource()
	}
	return o
}

func (o RunOptions) defaultSource() acquisition.Source {
	if o.UseBrowser {
		return acquisition.BrowserSource{Timeout: o.Timeout}
	}
	if o.FetchOptions != nil {
		return acquisition.HTTPSource{Options: o.FetchOptions}
	}
	fetchOpts := fetch.DefaultOptions()
	fetchOpts.Timeout = o.Timeout
	return acquisition.HTTPSource{Options: fetchOpts}
}

// runState tracks the current plan position for progress output.
type runState struct {
	opts  *RunOptions
	runID string
	plan  []string
	index int
}

// begin prints the label of the next step in the plan.
//
//nolint:errcheck // progress output; write errors are not recoverable
func (s *runState) begin() string {
	name := s.plan[s.index]
	fmt.Fprintf(s.opts.Out, "%s...\n", steps.Label(s.plan, s.index))
	s.opts.Logger.Debug("step started", zap.String("run_id", s.runID), zap.String("step", name))
	s.index++
	return name
}

// emitProgress calls the progress callback if configured
func (s *runState) emitProgress(step, message string, content any) {
	if s.opts.OnProgress == nil {
		return
	}
	s.opts.OnProgress(ProgressEvent{
		Step:     step,
		Category: steps.StepRegistry[step].Category,
		Message:  message,
		RunID:    s.runID,
		Content:  content,
	})
}

// RunPipeline fetches the phrase page, saves the dataset as a spreadsheet,
// prints the most common words of both columns and the generated sentences.
//
// When the page cannot be fetched or holds no usable table, the failure is
// reported on the output and RunPipeline returns (nil, nil): there is no data
// to analyze and no sentences are produced. Errors are returned for invalid
// options and for persistence failures.
//
//nolint:errcheck // progress output; write errors are not recoverable
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	opts = opts.withDefaults()
	if err := steps.ValidatePlan(steps.RunPlan); err != nil {
		return nil, err
	}

	state := &runState{opts: &opts, runID: uuid.New().String(), plan: steps.RunPlan}
	log := opts.Logger.With(zap.String("run_id", state.runID))
	printer := observability.NewPrinter(opts.Out)

	// Step 1: Fetch page
	step := state.begin()
	html, err := opts.Source.Fetch(ctx, opts.PageURL)
	if err != nil {
		return reportAbsence(opts.Out, log, "fetch failed", err)
	}
	log.Debug("page fetched", zap.String("url", opts.PageURL), zap.Int("bytes", len(html)))
	state.emitProgress(step, "Fetched phrase page", nil)

	// Step 2: Extract columns
	step = state.begin()
	parsed, err := tables.Parse(html)
	if err != nil {
		return reportAbsence(opts.Out, log, "table parsing failed", err)
	}
	fmt.Fprintf(opts.Out, "Tables found: %d\n", len(parsed))
	phrases, err := acquisition.Extract(parsed)
	if err != nil {
		return reportAbsence(opts.Out, log, "column extraction failed", err)
	}
	state.emitProgress(step, fmt.Sprintf("Extracted %d phrases", phrases.Len()), phrases)

	// Step 3: Save spreadsheet
	step = state.begin()
	fmt.Fprintf(opts.Out, "Saving %d records to %s...\n", phrases.Len(), opts.OutputPath)
	if err := export.WriteXLSX(opts.OutputPath, opts.SheetName, phrases); err != nil {
		log.Error("spreadsheet export failed", zap.Error(err))
		return nil, fmt.Errorf("saving spreadsheet failed: %w", err)
	}
	log.Info("spreadsheet saved", zap.String("path", opts.OutputPath), zap.Int("rows", phrases.Len()))
	if opts.Verbose {
		printer.PrintDataset(phrases, opts.OutputPath)
	}
	state.emitProgress(step, "Saved phrase spreadsheet", opts.OutputPath)

	result := runAnalysis(state, printer, phrases, &opts)

	return &Result{
		RunID:      state.runID,
		Phrases:    phrases,
		OutputPath: opts.OutputPath,
		Analysis:   result,
	}, nil
}

// AnalyzeFile loads a previously saved spreadsheet and runs the analysis steps on it.
func AnalyzeFile(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.InputPath == "" {
		return nil, fmt.Errorf("input spreadsheet path is required")
	}
	sheet := opts.SheetName
	opts = opts.withDefaults()
	if err := steps.ValidatePlan(steps.AnalyzePlan); err != nil {
		return nil, err
	}

	state := &runState{opts: &opts, runID: uuid.New().String(), plan: steps.AnalyzePlan}
	printer := observability.NewPrinter(opts.Out)

	// Step 1: Load spreadsheet; an unset sheet means the first one
	step := state.begin()
	phrases, err := export.ReadXLSX(opts.InputPath, sheet)
	if err != nil {
		return nil, fmt.Errorf("loading spreadsheet failed: %w", err)
	}
	opts.Logger.Info("spreadsheet loaded",
		zap.String("run_id", state.runID),
		zap.String("path", opts.InputPath),
		zap.Int("rows", phrases.Len()))
	if opts.Verbose {
		printer.PrintDataset(phrases, opts.InputPath)
	}
	state.emitProgress(step, fmt.Sprintf("Loaded %d phrases", phrases.Len()), phrases)

	result := runAnalysis(state, printer, phrases, &opts)

	return &Result{
		RunID:      state.runID,
		Phrases:    phrases,
		OutputPath: opts.InputPath,
		Analysis:   result,
	}, nil
}

// runAnalysis executes the count_words and generate_sentences steps.
//
//nolint:errcheck // progress output; write errors are not recoverable
func runAnalysis(state *runState, printer *observability.Printer, phrases *types.PhraseTable, opts *RunOptions) *Analysis {
	result := Analyze(phrases, opts.MinWordLength, opts.TopN, opts.Templates, opts.Filler)

	// Count words
	step := state.begin()
	printer.PrintTopWords("MOST COMMON LATIN WORDS", result.LatinWords)
	printer.PrintTopWords("MOST COMMON ENGLISH WORDS", result.TranslationWords)
	state.emitProgress(step, "Counted most common words", result.TranslationWords)

	// Generate sentences
	step = state.begin()
	printer.PrintSentences(result.Sentences)
	state.emitProgress(step, fmt.Sprintf("Generated %d sentences", len(result.Sentences)), result.Sentences)

	return result
}

// Analyze computes the top words of both columns and the sentences built
// from the Translation column's top words. It performs no output.
func Analyze(phrases *types.PhraseTable, minLength, topN int, templates *sentences.Templates, filler string) *Analysis {
	translationWords := analysis.TopWords(phrases.TranslationColumn(), minLength, topN)
	return &Analysis{
		LatinWords:       analysis.TopWords(phrases.LatinColumn(), minLength, topN),
		TranslationWords: translationWords,
		Sentences:        sentences.Generate(translationWords.Words(), templates, filler),
	}
}

// reportAbsence prints an acquisition failure and ends the run without data.
//
//nolint:errcheck // progress output; write errors are not recoverable
func reportAbsence(out io.Writer, log *zap.Logger, reason string, err error) (*Result, error) {
	log.Warn(reason, zap.Error(err))
	fmt.Fprintf(out, "An error occurred while retrieving the data:\n%v\n", err)
	fmt.Fprintln(out, "No data available; skipping analysis.")
	return nil, nil
}
