package webconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField       = errors.New("unknown web config field")
	ErrMissingField       = errors.New("required field is not set")
	ErrPlaceholderValue   = errors.New("field still holds a placeholder value")
	ErrConfigurationError = errors.New("configuration error")
	ErrMissingProjectID   = errors.New("firebase project ID is required")
	ErrUnknownFormat      = errors.New("unknown render format")
)

// ValidationError lists the fields that keep a web configuration from being usable
type ValidationError struct {
	Missing      []string
	Placeholders []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Placeholders) > 0 {
		parts = append(parts, fmt.Sprintf("placeholder: %s", strings.Join(e.Placeholders, ", ")))
	}
	return "invalid firebase web config (" + strings.Join(parts, "; ") + ")"
}

// Unwrap lets errors.Is match ErrMissingField and ErrPlaceholderValue
func (e *ValidationError) Unwrap() []error {
	var errs []error
	if len(e.Missing) > 0 {
		errs = append(errs, ErrMissingField)
	}
	if len(e.Placeholders) > 0 {
		errs = append(errs, ErrPlaceholderValue)
	}
	return errs
}
