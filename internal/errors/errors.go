// Package errors provides sentinel errors and error types for the chess rules core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCoordinate indicates a square outside the board bounds or a
	// malformed algebraic square.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidBoard indicates non-positive board dimensions.
	ErrInvalidBoard = errors.New("invalid board size")

	// ErrIllegalState indicates an operation the current game state forbids,
	// such as moving after the game ended or a missing promotion choice.
	ErrIllegalState = errors.New("illegal game state")

	// ErrInvalidArgument indicates a value outside the closed set an operation accepts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariant indicates an internal-consistency failure of a position,
	// such as two kings of the same colour.
	ErrInvariant = errors.New("position invariant violated")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidNotation is matched by every NotationError.
	ErrInvalidNotation = errors.New("invalid move notation")
)

// Reasons carried by a NotationError.
var (
	ErrMalformedMove      = errors.New("malformed move")
	ErrNotLegalMove       = errors.New("not a legal move")
	ErrAmbiguousMove      = errors.New("ambiguous move")
	ErrStillAmbiguousMove = errors.New("still ambiguous move")
	ErrInvalidPromotion   = errors.New("invalid promotion")
)

// NotationError reports a SAN string that could not be turned into a legal move.
// Callers replaying a game typically catch it with errors.As and abandon only
// that game.
type NotationError struct {
	Move   string // The offending SAN text
	Err    error  // One of the notation reasons above
	Detail string // Optional human-readable context
}

// Error returns the message with the offending move text.
func (e *NotationError) Error() string {
	msg := fmt.Sprintf("move %q", e.Move)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the specific reason.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidNotation for every notation error.
func (e *NotationError) Is(target error) bool {
	return target == ErrInvalidNotation
}

// NewNotationError builds a NotationError with optional formatted detail.
func NewNotationError(move string, reason error, format string, args ...interface{}) *NotationError {
	e := &NotationError{Move: move, Err: reason}
	if format != "" {
		e.Detail = fmt.Sprintf(format, args...)
	}
	return e
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
