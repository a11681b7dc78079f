package sentences

import "fmt"

// FormatError reports a template that does not contain exactly one slot.
type FormatError struct {
	Index    int
	Template string
	Slots    int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: template %d %q has %d slots, want exactly 1", e.Index, e.Template, e.Slots)
}
