// Package types provides type definitions for structured data used throughout the latin-phrases system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Column names expected in the source tables.
const (
	ColumnLatin       = "Latin"
	ColumnTranslation = "Translation"
)

// Phrase is a single row of the dataset: a Latin phrase and its translation.
type Phrase struct {
	Latin       string `json:"latin"`
	Translation string `json:"translation"`
}

// PhraseTable is the two-column dataset produced by acquisition.
// Rows with a missing value in either column have already been removed.
type PhraseTable struct {
	Phrases []Phrase `json:"phrases"`
}

// Len returns the number of rows. A nil table has no rows.
func (t *PhraseTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Phrases)
}

// LatinColumn returns the Latin values in row order.
func (t *PhraseTable) LatinColumn() []string {
	return t.column(func(p Phrase) string { return p.Latin })
}

// TranslationColumn returns the Translation values in row order.
func (t *PhraseTable) TranslationColumn() []string {
	return t.column(func(p Phrase) string { return p.Translation })
}

// Column returns the values of the named column, or nil for an unknown name.
func (t *PhraseTable) Column(name string) []string {
	switch name {
	case ColumnLatin:
		return t.LatinColumn()
	case ColumnTranslation:
		return t.TranslationColumn()
	default:
		return nil
	}
}

func (t *PhraseTable) column(pick func(Phrase) string) []string {
	values := make([]string, 0, t.Len())
	if t == nil {
		return values
	}
	for _, p := range t.Phrases {
		values = append(values, pick(p))
	}
	return values
}
