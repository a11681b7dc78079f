package analysis

import (
	"testing"

	"github.com/jonathan/latin-phrases/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopWords_ReferenceScenario(t *testing.T) {
	column := []string{"Ars longa, vita brevis", "Vita brevis"}

	top := TopWords(column, 4, 5)

	expected := types.TopWords{
		{Word: "vita", Count: 2},
		{Word: "brevis", Count: 2},
		{Word: "longa", Count: 1},
	}
	assert.Equal(t, expected, top)
}

func TestTopWords_EmptyColumn(t *testing.T) {
	top := TopWords(nil, 4, 5)
	assert.NotNil(t, top)
	assert.Empty(t, top)

	top = TopWords([]string{}, 4, 5)
	assert.Empty(t, top)
}

func TestTopWords_NonPositiveTopN(t *testing.T) {
	column := []string{"veritas veritas amor"}

	assert.Empty(t, TopWords(column, 4, 0))
	assert.Empty(t, TopWords(column, 4, -3))
}

func TestTopWords_NoQualifyingTokens(t *testing.T) {
	column := []string{"a b c", "in re", "ad hoc"}

	assert.Empty(t, TopWords(column, 4, 5))
}

func TestTopWords_LimitsToTopN(t *testing.T) {
	column := []string{"alpha bravo charlie delta echoes foxtrot golfer"}

	top := TopWords(column, 4, 5)
	require.Len(t, top, 5)
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echoes"}, top.Words())
}

func TestTopWords_LengthIsMinOfTopNAndDistinct(t *testing.T) {
	tests := []struct {
		name     string
		column   []string
		topN     int
		expected int
	}{
		{"fewer distinct than topN", []string{"amor vincit omnia"}, 5, 3},
		{"more distinct than topN", []string{"amor vincit omnia semper fidelis tempus fugit"}, 5, 5},
		{"duplicates collapse", []string{"amor amor amor"}, 5, 1},
		{"topN of one", []string{"amor vincit omnia"}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, TopWords(tt.column, 4, tt.topN), tt.expected)
		})
	}
}

func TestTopWords_SortedByCountThenFirstOccurrence(t *testing.T) {
	column := []string{
		"omnia tempus",
		"fugit tempus omnia",
		"fugit tempus",
	}

	top := TopWords(column, 4, 5)

	expected := types.TopWords{
		{Word: "tempus", Count: 3},
		{Word: "omnia", Count: 2},
		{Word: "fugit", Count: 2},
	}
	assert.Equal(t, expected, top)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count)
	}
}

func TestTopWords_CaseInsensitive(t *testing.T) {
	top := TopWords([]string{"Veritas VERITAS veritas"}, 4, 5)

	assert.Equal(t, types.TopWords{{Word: "veritas", Count: 3}}, top)
}

func TestTopWords_ValuesDoNotMerge(t *testing.T) {
	// Without a separator "carpe" + "diem" would become one token
	top := TopWords([]string{"carpe", "diem"}, 4, 5)

	assert.Equal(t, []string{"carpe", "diem"}, top.Words())
}

func TestTopWords_Idempotent(t *testing.T) {
	column := []string{"Ars longa, vita brevis", "Vita brevis", "Memento mori"}

	first := TopWords(column, 4, 5)
	second := TopWords(column, 4, 5)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Ars longa, vita brevis", "Vita brevis", "Memento mori"}, column)
}

func TestDefaultTopWords(t *testing.T) {
	column := []string{"the truth is the truth", "what is love"}

	top := DefaultTopWords(column)
	assert.Equal(t, []string{"truth", "what", "love"}, top.Words())
}

func TestTokenize_DropsDisallowedRuns(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"plain words", "Ars longa vita brevis", []string{"longa", "vita", "brevis"}},
		{"digits drop the whole run", "anno1 domini", []string{"domini"}},
		{"accented letters drop the whole run", "café sine qua non", []string{"sine"}},
		{"underscore joins a run", "snake_case words", []string{"words"}},
		{"punctuation separates", "ad-hoc,veritas;amor's", []string{"veritas", "amor"}},
		{"apostrophe splits", "don't", nil},
		{"decomposed accent ends the run", "cafe\u0301 latte", []string{"cafe", "latte"}},
		{"numbers only", "1999 2024", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.text, 4))
		})
	}
}

func TestTokenize_LowerCases(t *testing.T) {
	assert.Equal(t, []string{"memento", "mori"}, Tokenize("MEMENTO Mori", 4))
}

func TestTokenize_MinLength(t *testing.T) {
	text := "a ab abc abcd abcde"

	assert.Equal(t, []string{"abcd", "abcde"}, Tokenize(text, 4))
	assert.Equal(t, []string{"abcde"}, Tokenize(text, 5))
	assert.Equal(t, []string{"a", "ab", "abc", "abcd", "abcde"}, Tokenize(text, 0))
}

func TestTokenize_TokensMatchPattern(t *testing.T) {
	text := "Quid pro quo! Ipso-facto, 2 e.g. naïve Æsop status_quo rerum"

	for _, token := range Tokenize(text, 4) {
		assert.GreaterOrEqual(t, len(token), 4)
		for _, r := range token {
			assert.True(t, r >= 'a' && r <= 'z', "unexpected rune %q in %q", r, token)
		}
	}
}

func TestCounter_TracksOrderAndCounts(t *testing.T) {
	c := NewCounter()
	for _, w := range []string{"amor", "vincit", "amor", "omnia", "amor"} {
		c.Add(w)
	}

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Count("amor"))
	assert.Equal(t, 1, c.Count("omnia"))
	assert.Equal(t, 0, c.Count("missing"))
	assert.Equal(t, []string{"amor", "vincit", "omnia"}, c.Words())
}

func TestCounter_MostCommon(t *testing.T) {
	c := NewCounter()
	for _, w := range []string{"beta", "alpha", "alpha", "gamma", "beta"} {
		c.Add(w)
	}

	expected := types.TopWords{
		{Word: "beta", Count: 2},
		{Word: "alpha", Count: 2},
		{Word: "gamma", Count: 1},
	}
	assert.Equal(t, expected, c.MostCommon(10))
	assert.Equal(t, expected[:2], c.MostCommon(2))
	assert.Empty(t, c.MostCommon(0))
	assert.Empty(t, NewCounter().MostCommon(3))
}
