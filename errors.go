package formkit

import "errors"

var (
	// ErrInvalidForm wraps request body parsing failures.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrNoFieldName is returned when a field is requested with an empty name.
	ErrNoFieldName = errors.New("field name required")

	// ErrInvalidPath is returned for malformed field paths such as "user..name".
	ErrInvalidPath = errors.New("invalid field path")

	// ErrUnknownRoot is returned when a path's first token matches neither a
	// bound value nor anything submitted. Misspelled roots fail fast instead
	// of rendering empty controls.
	ErrUnknownRoot = errors.New("unknown field root")

	// ErrNotSequence is returned when iterating a scope whose value is not a
	// slice or array.
	ErrNotSequence = errors.New("field is not a sequence")

	// ErrInvalidMessages wraps message catalog parsing failures.
	ErrInvalidMessages = errors.New("invalid messages document")
)
