// Package nfa provides a Thompson NFA (Non-deterministic Finite Automaton)
// for the minire pattern language.
//
// The package builds an automaton from the postfix token stream produced by
// the syntax package and simulates it against input strings. States live in
// an append-only arena and refer to each other only by StateID, so cycles
// introduced by '*' and '+' need no special ownership handling.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrInvalidState indicates an invalid NFA state ID was encountered
	ErrInvalidState = errors.New("invalid NFA state")

	// ErrTooManyTransitions indicates a third transition was added to a state
	ErrTooManyTransitions = errors.New("state already has the maximum number of transitions")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
	Err     error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap returns the underlying sentinel, if any
func (e *BuildError) Unwrap() error {
	return e.Err
}
