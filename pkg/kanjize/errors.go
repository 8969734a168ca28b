package kanjize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumeral is the root of every parse failure.
	ErrInvalidNumeral = errors.New("invalid kanji numeral")

	// ErrInvalidConfiguration is returned when a Configuration cannot be built.
	ErrInvalidConfiguration = errors.New("invalid kanjize configuration")

	// ErrOutOfRange is returned when a value has no representation in the
	// requested form.
	ErrOutOfRange = errors.New("number out of range")
)

// Reason categorizes why a numeral was rejected.
type Reason string

const (
	ReasonEmpty            Reason = "empty"             // Empty input
	ReasonSignOnly         Reason = "sign_only"         // A sign with nothing after it
	ReasonMissingQuantity  Reason = "missing_quantity"  // Big unit with no leading quantity
	ReasonUnitOrder        Reason = "unit_order"        // Big units repeated or increasing
	ReasonFragmentOverflow Reason = "fragment_overflow" // Fragment reaches the previous unit
	ReasonInvalidCharacter Reason = "invalid_character" // Character outside the short-segment class
	ReasonPartOrder        Reason = "part_order"        // Little-unit parts out of order
	ReasonMalformedLiteral Reason = "malformed_literal" // Coefficient is not an integer or decimal
	ReasonTooPrecise       Reason = "too_precise"       // Fraction not absorbed by its unit
)

// NumeralError describes a rejected numeral.
type NumeralError struct {
	Input  string // Full input as given by the caller
	Reason Reason // Category of failure
	Detail string // Human-readable explanation
}

// Error implements the error interface.
func (e *NumeralError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid kanji numeral %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid kanji numeral %q: %s", e.Input, e.Detail)
}

// Unwrap returns ErrInvalidNumeral so callers can match with errors.Is.
func (e *NumeralError) Unwrap() error {
	return ErrInvalidNumeral
}

func newNumeralError(input string, reason Reason, format string, args ...any) *NumeralError {
	return &NumeralError{
		Input:  input,
		Reason: reason,
		Detail: fmt.Sprintf(format, args...),
	}
}

// ConfigurationError reports an option value that is not recognized.
type ConfigurationError struct {
	Field string
	Value string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid kanjize configuration: unknown %s %q", e.Field, e.Value)
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// ReasonOf returns the Reason of a parse error, or "" when err is not a
// *NumeralError.
func ReasonOf(err error) Reason {
	var ne *NumeralError
	if errors.As(err, &ne) {
		return ne.Reason
	}
	return ""
}
