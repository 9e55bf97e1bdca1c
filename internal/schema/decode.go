package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

const rootField = "$"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so violations line up with the remote payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// decode maps an untyped JSON value onto T and then checks T's validate tags.
// Weak typing is off, so a string where a number belongs is a type mismatch.
func decode[T any](shape string, raw any) (*T, error) {
	if raw == nil {
		return nil, &ValidationError{
			Shape:      shape,
			Violations: []Violation{{Field: rootField, Kind: KindMissing, Message: "payload is empty"}},
		}
	}

	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: false,
		Result:           &out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := dec.Decode(raw); err != nil {
		return nil, &ValidationError{Shape: shape, Violations: typeViolations(err)}
	}

	if err := validate.Struct(&out); err != nil {
		return nil, &ValidationError{Shape: shape, Violations: fieldViolations(err)}
	}

	return &out, nil
}

// typeViolations flattens a decode error into one violation per failing field.
// Each leaf message starts with the quoted field path, e.g.
// 'results[0].latitude' expected type 'float64', got unconvertible type 'string'
func typeViolations(err error) []Violation {
	var violations []Violation
	for _, leaf := range leafErrors(err) {
		for _, line := range strings.Split(leaf.Error(), "\n") {
			line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
			field, ok := quotedField(line)
			if !ok {
				continue
			}
			violations = append(violations, Violation{
				Field:   field,
				Kind:    KindTypeMismatch,
				Message: line,
			})
		}
	}

	if len(violations) == 0 {
		violations = append(violations, Violation{
			Field:   rootField,
			Kind:    KindTypeMismatch,
			Message: err.Error(),
		})
	}

	return violations
}

func leafErrors(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var leaves []error
		for _, e := range joined.Unwrap() {
			leaves = append(leaves, leafErrors(e)...)
		}
		return leaves
	}
	return []error{err}
}

func quotedField(line string) (string, bool) {
	start := strings.IndexByte(line, '\'')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(line[start+1:], '\'')
	if end < 0 {
		return "", false
	}

	field := line[start+1 : start+1+end]
	if field == "" {
		field = rootField
	}
	return field, true
}

func fieldViolations(err error) []Violation {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: rootField, Kind: KindTypeMismatch, Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		// Namespace is "<structName>.<json path>"; drop the Go type name
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}

		v := Violation{Field: field}
		switch fe.Tag() {
		case "required":
			v.Kind = KindMissing
			v.Message = "is required"
		case "gte":
			v.Kind = KindOutOfRange
			v.Message = fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
		case "lte":
			v.Kind = KindOutOfRange
			v.Message = fmt.Sprintf("must be <= %s, got %v", fe.Param(), fe.Value())
		default:
			v.Kind = KindOutOfRange
			v.Message = fmt.Sprintf("failed %q check", fe.Tag())
		}
		violations = append(violations, v)
	}

	return violations
}
