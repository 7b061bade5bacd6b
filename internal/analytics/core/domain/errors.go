package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSchema           = errors.New("schema error")
	ErrInsufficientData = errors.New("insufficient data")
)

// SchemaError reports a requested field that the dataset does not expose.
type SchemaError struct {
	Dataset string
	Field   string
}

func (e *SchemaError) Error() string {
	if e.Dataset == "" {
		return fmt.Sprintf("field %q does not exist", e.Field)
	}
	return fmt.Sprintf("field %q does not exist in dataset %q", e.Field, e.Dataset)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// InsufficientDataError reports a derivation that needs more periods than
// the result holds.
type InsufficientDataError struct {
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("need at least %d periods, got %d", e.Need, e.Got)
}

func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }
