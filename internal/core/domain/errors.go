package domain

import "errors"

// Domain errors represent conversion failures.
// These are distinct from I/O errors.
var (
	// ErrInvalidRecordFormat indicates a matched record whose data field
	// cannot be decoded into whole bytes.
	ErrInvalidRecordFormat = errors.New("invalid record format")

	// ErrInvalidOption indicates an unrecognised or out-of-range option value.
	ErrInvalidOption = errors.New("invalid option")

	// ErrMissingPath indicates a command needs a file path that was not given.
	ErrMissingPath = errors.New("missing path")
)
