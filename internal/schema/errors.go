package schema

import (
	"fmt"
	"strings"
)

// Kind classifies a single field-level violation
type Kind string

const (
	KindMissing      Kind = "missing"
	KindTypeMismatch Kind = "type_mismatch"
	KindOutOfRange   Kind = "out_of_range"
)

// Violation describes one field that does not match the expected shape.
// Field is a JSON path such as "results[2].latitude"; "$" is the payload root.
type Violation struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationError is returned when a payload fails validation against a shape
type ValidationError struct {
	Shape      string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("invalid %s payload: %s", e.Shape, strings.Join(parts, "; "))
}

// Has reports whether any violation of the given kind names the given field
func (e *ValidationError) Has(field string, kind Kind) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}
