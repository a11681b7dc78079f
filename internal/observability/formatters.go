// Package observability provides console output and structured logging for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/latin-phrases/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// innerWidth is the text width inside a box
	innerWidth = boxWidth - 4
)

// Printer handles formatted output of run results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
// Lines wider than the box are wrapped at spaces.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padRight(title, innerWidth))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, innerWidth) {
			fmt.Fprintf(p.out, "│ %s │\n", padRight(wrapped, innerWidth))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTopWords outputs a numbered list of words with their counts.
func (p *Printer) PrintTopWords(title string, words types.TopWords) {
	if len(words) == 0 {
		p.printBox(title, "(no words found)")
		return
	}

	var sb strings.Builder
	for i, wc := range words {
		sb.WriteString(fmt.Sprintf("%d. %s (%d)\n", i+1, wc.Word, wc.Count))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSentences outputs the generated sentences numbered from 1.
func (p *Printer) PrintSentences(sentences []string) {
	if len(sentences) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range sentences {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, s))
	}
	p.printBox("GENERATED SENTENCES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDataset outputs a short summary of the saved dataset.
func (p *Printer) PrintDataset(table *types.PhraseTable, path string) {
	if table == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records:  %d\n", table.Len()))
	sb.WriteString(fmt.Sprintf("File:     %s", path))
	if table.Len() > 0 {
		first := table.Phrases[0]
		sb.WriteString(fmt.Sprintf("\nFirst:    %s = %s", first.Latin, first.Translation))
	}
	p.printBox("PHRASE DATASET", sb.String())
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// wrap splits line into pieces of at most width runes, breaking at spaces
// where possible and hard-splitting words longer than width.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	var lines []string
	var current []rune
	for _, word := range strings.Fields(line) {
		w := []rune(word)
		for len(w) > width {
			if len(current) > 0 {
				lines = append(lines, string(current))
				current = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(current) == 0:
			current = w
		case len(current)+1+len(w) <= width:
			current = append(append(current, ' '), w...)
		default:
			lines = append(lines, string(current))
			current = w
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
