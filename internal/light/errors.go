package light

import (
	"errors"
	"fmt"
)

// Domain errors for the light package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, light.ErrOutOfRange) {
//	    // reject with a client error
//	}
//
// The concrete *RangeError and *ModeError types carry the rejected value and
// the legal domain; retrieve them with errors.As() to build structured
// rejection responses.
var (
	// ErrOutOfRange is returned when brightness or colour temperature is
	// outside its declared bounds.
	ErrOutOfRange = errors.New("light: value out of range")

	// ErrInvalidMode is returned when a mode is not in the available set.
	ErrInvalidMode = errors.New("light: invalid mode")
)

// RangeError describes a numeric field rejected for being outside its bounds.
type RangeError struct {
	Field string // "brightness" or "color_temperature"
	Min   int
	Max   int
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("light: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) work on RangeError values.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// ModeError describes a mode rejected for not being in the available set.
type ModeError struct {
	Mode    Mode
	Allowed []Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("light: mode %q not in available modes %v", e.Mode, e.Allowed)
}

// Unwrap makes errors.Is(err, ErrInvalidMode) work on ModeError values.
func (e *ModeError) Unwrap() error { return ErrInvalidMode }
