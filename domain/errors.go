package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparsable is the cause of an [ErrCoerce] when the raw value has a
	// supported shape but its content does not denote a value of the kind.
	ErrUnparsable = errors.New("unparsable value")
	// ErrUnsupported is the cause of an [ErrCoerce] when the raw value
	// cannot be converted to the kind at all.
	ErrUnsupported = errors.New("unsupported value")
	// ErrNoKeyName is returned when a key is declared with an empty name.
	ErrNoKeyName = errors.New("key name cannot be empty")
	// ErrNotEmbedded is returned when an embedded document is built from
	// something other than an attribute mapping.
	ErrNotEmbedded = errors.New("attributes must be a mapping")
)

// ErrInvalidArgument is returned when a finder query is built from a value
// that is not a mapping.
type ErrInvalidArgument struct {
	Value any
}

// Error implements [error].
func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("finder query input must be a mapping, got %T", e.Value)
}

// ErrCoerce is returned by [Coercer.TryCoerce] when a value cannot be
// converted to the declared kind.
type ErrCoerce struct {
	Kind  Kind
	Value any
	Err   error
}

// Error implements [error].
func (e ErrCoerce) Error() string {
	return fmt.Sprintf("cannot coerce %T to %s: %v", e.Value, e.Kind, e.Err)
}

// Unwrap returns the cause of the failure.
func (e ErrCoerce) Unwrap() error { return e.Err }
