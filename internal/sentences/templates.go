// Package sentences builds template sentences from frequent keywords.
package sentences

import "strings"

// Slot marks the single insertion point inside a template.
const Slot = "{}"

// DefaultFiller pads keyword lists that are shorter than the template list.
const DefaultFiller = "vida"

// defaultTemplateText is the fixed set of sentence templates used by the CLI.
var defaultTemplateText = []string{
	"El concepto de '{}' ha marcado la historia.",
	"Muchos pensadores hablaron sobre '{}'.",
	"'{}' es una idea fundamental en la filosofía.",
	"La sociedad moderna aún depende de '{}'.",
	"Comprender '{}' nos ayuda a reflexionar.",
}

// Templates is an ordered, validated list of sentence templates.
type Templates struct {
	items []string
}

// NewTemplates validates items and returns them as a Templates list.
// Each item must contain exactly one Slot; otherwise a *FormatError is returned.
func NewTemplates(items ...string) (*Templates, error) {
	for i, item := range items {
		if n := strings.Count(item, Slot); n != 1 {
			return nil, &FormatError{Index: i, Template: item, Slots: n}
		}
	}
	return &Templates{items: append([]string(nil), items...)}, nil
}

// MustTemplates is like NewTemplates but panics on an invalid template.
// It is intended for package-level template definitions.
func MustTemplates(items ...string) *Templates {
	t, err := NewTemplates(items...)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultTemplates returns the five built-in Spanish templates.
func DefaultTemplates() *Templates {
	return MustTemplates(defaultTemplateText...)
}

// Len returns the number of templates. A nil list has none.
func (t *Templates) Len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}

// Items returns a copy of the raw template strings.
func (t *Templates) Items() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.items...)
}

// Format fills the slot of template i with keyword.
func (t *Templates) Format(i int, keyword string) string {
	return strings.Replace(t.items[i], Slot, keyword, 1)
}
