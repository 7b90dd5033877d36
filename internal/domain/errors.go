package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedYear is returned when parameters are requested for a fiscal
// year that has no published parameter table.
var ErrUnsupportedYear = errors.New("unsupported fiscal year")

// ErrMissingParameters is returned when a calculator is constructed for a
// year whose parameter tree lacks the block the calculator needs.
var ErrMissingParameters = errors.New("missing calculator parameters")

// InvalidHouseholdError reports a structural problem with the household
// snapshot. It is raised once at the engine entry point; calculators never
// see an invalid household.
type InvalidHouseholdError struct {
	Field  string
	Reason string
}

func (e *InvalidHouseholdError) Error() string {
	return fmt.Sprintf("invalid household: %s: %s", e.Field, e.Reason)
}

// CalculationError wraps an internal invariant violation raised by a named
// calculator. There is no transient failure mode in pure computation, so
// these are never retried; they propagate to the caller.
type CalculationError struct {
	Calculator string
	Err        error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculator %s: %v", e.Calculator, e.Err)
}

func (e *CalculationError) Unwrap() error { return e.Err }
