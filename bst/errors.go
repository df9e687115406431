package bst

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bst: invalid configuration")
	// ErrInvalidArgument signals an absent key (or a nil argument) handed to
	// a tree operation.
	ErrInvalidArgument = errors.New("bst: invalid argument")
	// ErrInvariantViolation signals a broken structural invariant. Under correct
	// use of the API this error is unreachable.
	ErrInvariantViolation = errors.New("bst: invariant violation")
)
