package unit

import (
	"errors"
	"fmt"
)

// Error kinds. Errors returned from this module wrap one of these; check
// with errors.Is.
var (
	// ErrMalformed flags text which is not a valid distance literal.
	ErrMalformed = errors.New("malformed distance")
	// ErrMissingReference flags a conversion involving a reference dependent unit,
	// called without a reference length.
	ErrMissingReference = errors.New("missing reference distance")
	// ErrUnknownName flags a unit name which is not registered.
	ErrUnknownName = errors.New("no unit matches name")
)

func missingReference(u *Unit) error {
	return fmt.Errorf("%w: a reference distance is needed to compute distances in [%s]",
		ErrMissingReference, u.Name())
}

// UnknownName creates an error of kind ErrUnknownName for a unit name.
func UnknownName(name string) error {
	return fmt.Errorf("%w [%s]", ErrUnknownName, name)
}

// Malformed creates an error of kind ErrMalformed for a distance text.
func Malformed(text string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: incorrect format for distance %q: %v", ErrMalformed, text, cause)
	}
	return fmt.Errorf("%w: incorrect format for distance %q", ErrMalformed, text)
}
