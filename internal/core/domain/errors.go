package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Drink Machine Errors.

	// ErrConstructionFailure indicates a registered factory could not be built.
	// The machine is never returned in a partially populated state.
	ErrConstructionFailure = errors.New("factory construction failed")

	// ErrNoSuchProduct indicates no registered factory has the requested name.
	ErrNoSuchProduct = errors.New("no such product")

	// ErrAmbiguousProduct indicates more than one registered factory has the
	// requested name.
	ErrAmbiguousProduct = errors.New("ambiguous product")
)
