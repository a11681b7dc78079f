// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/latin-phrases/internal/acquisition"
	"github.com/jonathan/latin-phrases/internal/analysis"
	"github.com/jonathan/latin-phrases/internal/export"
	"github.com/jonathan/latin-phrases/internal/fetch"
	"github.com/jonathan/latin-phrases/internal/schemas"
	"github.com/jonathan/latin-phrases/internal/sentences"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvPageURL    = "LATIN_PHRASES_URL"
	EnvOutputFile = "LATIN_PHRASES_OUTPUT"
)

// Config represents the run configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Source
	PageURL        string `json:"page_url,omitempty" validate:"omitempty,url"`         // Page holding the phrase tables
	UserAgent      string `json:"user_agent,omitempty"`                                // User-Agent header for the fetch
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0"`          // HTTP/browser timeout
	UseBrowser     bool   `json:"use_browser,omitempty"`                               // Render with headless Chrome

	// Output
	OutputFile string `json:"output_file,omitempty" validate:"omitempty,endswith=.xlsx"` // Spreadsheet path
	SheetName  string `json:"sheet_name,omitempty" validate:"omitempty,max=31"`         // Worksheet name

	// Analysis
	MinWordLength int    `json:"min_word_length,omitempty" validate:"gte=0"`  // Shortest counted word
	Filler        string `json:"filler,omitempty" validate:"omitempty,alpha"` // Padding keyword

	// TopN is fixed by the program; it cannot be set from a file.
	TopN int `json:"-" validate:"gte=0"`

	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		PageURL:        acquisition.DefaultPageURL,
		UserAgent:      fetch.DefaultUserAgent,
		TimeoutSeconds: int(fetch.DefaultTimeout / time.Second),
		OutputFile:     export.DefaultFileName,
		SheetName:      export.DefaultSheet,
		MinWordLength:  analysis.DefaultMinLength,
		TopN:           analysis.DefaultTopN,
		Filler:         sentences.DefaultFiller,
	}
}

// LoadConfig loads configuration from a JSON file.
// The document is checked against the config JSON Schema before decoding.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var loadErr *schemas.SchemaLoadError
	if err := schemas.ValidateConfig(data); err != nil && !errors.As(err, &loadErr) {
		return nil, fmt.Errorf("config file %s does not match schema: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Zero values are accepted; they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("config error: %w", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "url":
		return fmt.Errorf("config error: '%s' must be an absolute URL", fe.Field())
	case "gte":
		return fmt.Errorf("config error: '%s' must be non-negative", fe.Field())
	case "alpha":
		return fmt.Errorf("config error: '%s' must contain only ASCII letters", fe.Field())
	case "endswith":
		return fmt.Errorf("config error: '%s' must end with %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Errorf("config error: '%s' must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("config error: '%s' failed '%s' validation", fe.Field(), fe.Tag())
	}
}

// ApplyEnv fills the page URL and output file from the environment when they are unset.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvPageURL); ok && c.PageURL == "" {
		c.PageURL = v
	}
	if v, ok := os.LookupEnv(EnvOutputFile); ok && c.OutputFile == "" {
		c.OutputFile = v
	}
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.PageURL == "" {
		result.PageURL = defaults.PageURL
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.OutputFile == "" {
		result.OutputFile = defaults.OutputFile
	}
	if result.SheetName == "" {
		result.SheetName = defaults.SheetName
	}
	if result.Filler == "" {
		result.Filler = defaults.Filler
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.MinWordLength == 0 {
		result.MinWordLength = defaults.MinWordLength
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

// Timeout returns TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
