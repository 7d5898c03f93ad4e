package sift

import (
	"errors"
	"fmt"
)

// Error codes reported by Process. Custom validators may fail with any
// other code; such codes pass through untouched.
const (
	CodeRequired = "required"
	CodeInvalid  = "invalid"
)

// Error is the single validation failure Process reports. Processing is
// fail-fast, so one call yields at most one Error.
type Error struct {
	Path Path   // Location of the failing field (never empty).
	Code string // CodeRequired, CodeInvalid, or a custom validator's code.
}

// Error renders like "invalid at /items/2/price".
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Code, e.Path)
}

// AsError extracts an *Error from an error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
