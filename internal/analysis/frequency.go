// Package analysis provides word-frequency analysis over text columns.
package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/latin-phrases/internal/types"
)

const (
	// DefaultMinLength is the shortest token counted by DefaultTopWords.
	DefaultMinLength = 4
	// DefaultTopN is the number of words returned by DefaultTopWords.
	DefaultTopN = 5
)

// DefaultTopWords returns the five most frequent words of at least four letters.
func DefaultTopWords(column []string) types.TopWords {
	return TopWords(column, DefaultMinLength, DefaultTopN)
}

// TopWords returns the topN most frequent tokens across all values of column.
// Values are joined with a single space so tokens never merge across values.
// Ties keep first-occurrence order. An empty column, a non-positive topN or a
// column without qualifying tokens yields an empty result.
func TopWords(column []string, minLength, topN int) types.TopWords {
	if topN <= 0 || len(column) == 0 {
		return types.TopWords{}
	}

	counter := NewCounter()
	for _, token := range Tokenize(strings.Join(column, " "), minLength) {
		counter.Add(token)
	}
	return counter.MostCommon(topN)
}

// Tokenize lower-cases text and returns its tokens in order of appearance.
//
// A token is a maximal run of word characters (letters, numbers, underscore)
// made only of ASCII letters and at least minLength long. Runs that contain
// any other word character are dropped whole rather than truncated, so
// "café" and "anno1" produce nothing. A minLength below 1 is treated as 1.
func Tokenize(text string, minLength int) []string {
	if minLength < 1 {
		minLength = 1
	}

	lower := strings.ToLower(text)
	var tokens []string

	start := -1
	asciiOnly := true
	flush := func(end int) {
		if start >= 0 && asciiOnly && end-start >= minLength {
			tokens = append(tokens, lower[start:end])
		}
		start = -1
		asciiOnly = true
	}

	for i, r := range lower {
		if !isWordRune(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		if !isASCIILetter(r) {
			asciiOnly = false
		}
	}
	flush(len(lower))

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Counter counts words and remembers the order in which each was first seen.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add records one occurrence of word.
func (c *Counter) Add(word string) {
	if _, seen := c.counts[word]; !seen {
		c.order = append(c.order, word)
	}
	c.counts[word]++
}

// Count returns the number of occurrences of word.
func (c *Counter) Count(word string) int {
	return c.counts[word]
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	return len(c.order)
}

// Words returns the distinct words in first-occurrence order.
func (c *Counter) Words() []string {
	return append([]string(nil), c.order...)
}

// MostCommon returns up to n words with the highest counts.
func (c *Counter) MostCommon(n int) types.TopWords {
	if n <= 0 || len(c.order) == 0 {
		return types.TopWords{}
	}

	ranked := make(types.TopWords, 0, len(c.order))
	for _, word := range c.order {
		ranked = append(ranked, types.WordCount{Word: word, Count: c.counts[word]})
	}

	// Stable so equal counts stay in first-occurrence order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
