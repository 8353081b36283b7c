package spiro

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a curve is given a non-positive radius
// or step.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError reports which parameter was rejected.
type ParamError struct {
	Field string
	Value int
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s must be positive, got %d", ErrInvalidParameter, e.Field, e.Value)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }
