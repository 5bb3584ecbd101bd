package questionbank

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a source lacks required columns.
// The whole source is rejected.
type ValidationError struct {
	Source  string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

// MalformedError describes a row whose answer key does not match its choices.
type MalformedError struct {
	Question string
	Reason   string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed question %q: %s", e.Question, e.Reason)
}
