// Package acquisition turns a remote page of HTML tables into the two-column phrase dataset.
package acquisition

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/latin-phrases/internal/fetch"
	"github.com/jonathan/latin-phrases/internal/tables"
	"github.com/jonathan/latin-phrases/internal/types"
)

// DefaultPageURL is the reference page listing Latin phrases.
const DefaultPageURL = "https://en.wikipedia.org/wiki/List_of_Latin_phrases_(full)"

var (
	// ErrNoTables is returned when the page contains no HTML table.
	ErrNoTables = errors.New("no tables found")
	// ErrMissingColumns is returned when the tables lack the Latin or Translation column.
	ErrMissingColumns = errors.New("required columns not found")
)

// Source fetches the HTML of a page.
type Source interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPSource fetches pages with a single plain HTTP GET.
type HTTPSource struct {
	Options *fetch.Options
}

// Fetch implements Source.
func (s HTTPSource) Fetch(ctx context.Context, url string) (string, error) {
	result, err := fetch.URL(ctx, url, s.Options)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// BrowserSource renders pages in a headless browser before reading them.
type BrowserSource struct {
	Timeout time.Duration
}

// Fetch implements Source.
func (s BrowserSource) Fetch(ctx context.Context, url string) (string, error) {
	return fetch.WithBrowser(ctx, url, s.Timeout)
}

// Acquire fetches url from src and extracts its phrase dataset.
// Any failure (network, parsing, missing columns) is returned as an error;
// callers treat it as absence of data.
func Acquire(ctx context.Context, src Source, url string) (*types.PhraseTable, error) {
	html, err := src.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	parsed, err := tables.Parse(html)
	if err != nil {
		return nil, err
	}

	return Extract(parsed)
}

// Extract concatenates all tables and keeps the Latin and Translation columns.
// A table lacking one of the columns contributes only missing values for it, so
// its rows are dropped. Rows with a missing value in either column are dropped.
func Extract(parsed []tables.Table) (*types.PhraseTable, error) {
	if len(parsed) == 0 {
		return nil, ErrNoTables
	}

	hasLatin, hasTranslation := false, false
	for _, t := range parsed {
		hasLatin = hasLatin || t.ColumnIndex(types.ColumnLatin) >= 0
		hasTranslation = hasTranslation || t.ColumnIndex(types.ColumnTranslation) >= 0
	}
	if !hasLatin || !hasTranslation {
		return nil, fmt.Errorf("%w: need %q and %q", ErrMissingColumns, types.ColumnLatin, types.ColumnTranslation)
	}

	result := &types.PhraseTable{Phrases: []types.Phrase{}}
	for _, t := range parsed {
		li := t.ColumnIndex(types.ColumnLatin)
		ti := t.ColumnIndex(types.ColumnTranslation)
		if li < 0 || ti < 0 {
			continue
		}
		for _, row := range t.Rows {
			latin, translation := row[li], row[ti]
			if IsMissing(latin) || IsMissing(translation) {
				continue
			}
			result.Phrases = append(result.Phrases, types.Phrase{Latin: latin, Translation: translation})
		}
	}

	return result, nil
}

// missingMarkers are cell values read as "no value", in addition to blank cells.
var missingMarkers = map[string]bool{
	"#N/A": true, "#N/A N/A": true, "#NA": true,
	"-1.#IND": true, "-1.#QNAN": true, "-NaN": true, "-nan": true,
	"1.#IND": true, "1.#QNAN": true, "<NA>": true,
	"N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// IsMissing reports whether a cell value counts as absent.
func IsMissing(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || missingMarkers[trimmed]
}
