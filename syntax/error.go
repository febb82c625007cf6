package syntax

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is the sentinel wrapped by every *Error.
var ErrInvalidPattern = errors.New("invalid pattern")

// ErrorCode classifies why a pattern failed validation.
type ErrorCode uint8

const (
	// ErrUnmatchedCloseParen: a ')' with no open group.
	ErrUnmatchedCloseParen ErrorCode = iota + 1

	// ErrGroupNotSingleExpression: a group reduced to zero or several units,
	// e.g. "()" or "(a|)".
	ErrGroupNotSingleExpression

	// ErrUnmatchedOpenParen: a '(' still open at the end of the pattern.
	ErrUnmatchedOpenParen

	// ErrMissingOperand: an operator with nothing to apply to, e.g. "|a" or "*".
	ErrMissingOperand

	// ErrNotSingleExpression: the pattern does not reduce to exactly one
	// expression. This includes the empty pattern.
	ErrNotSingleExpression
)

// String returns the message for the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrUnmatchedCloseParen:
		return "unmatched ')'"
	case ErrGroupNotSingleExpression:
		return "group is not a single expression"
	case ErrUnmatchedOpenParen:
		return "missing ')'"
	case ErrMissingOperand:
		return "operator missing operand"
	case ErrNotSingleExpression:
		return "pattern is not a single expression"
	default:
		return fmt.Sprintf("unknown error code %d", c)
	}
}

// Error describes a pattern rejected by validation.
type Error struct {
	Code    ErrorCode
	Pattern string

	// Pos is the index in the token stream where the failure was detected,
	// or the stream length for failures found at the end of the scan.
	Pos int
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s (token %d)", e.Pattern, e.Code, e.Pos)
}

// Unwrap returns ErrInvalidPattern
func (e *Error) Unwrap() error {
	return ErrInvalidPattern
}
