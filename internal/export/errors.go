package export

import "fmt"

// Error represents a failure reading or writing a spreadsheet.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("spreadsheet error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("spreadsheet error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
