// Package errors provides sentinel errors and error types for the chesscore
// codecs. It defines the common failure conditions and a structured parse
// error that preserves context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates a move string or move word that cannot be
	// decoded.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidSquare indicates an algebraic square outside a1-h8.
	ErrInvalidSquare = errors.New("invalid square")
)

// ParseError reports where a text codec stopped: the field being parsed,
// the byte offset into the input, and what was expected versus found. It
// supports unwrapping via errors.Is() and errors.As().
type ParseError struct {
	Err      error  // The underlying sentinel error
	Field    string // Field being parsed (e.g. "placement", "side to move")
	Offset   int    // Byte offset into the input where parsing stopped
	Expected string // What the parser expected
	Got      string // What it found instead
}

// Error returns a formatted message including all available context.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("offset %d", e.Offset)
	if e.Field != "" {
		msg = fmt.Sprintf("%s, %s", e.Field, msg)
	}
	if e.Expected != "" {
		msg += fmt.Sprintf(": expected %s", e.Expected)
		if e.Got != "" {
			msg += fmt.Sprintf(", got %s", e.Got)
		}
	} else if e.Got != "" {
		msg += fmt.Sprintf(": unexpected %s", e.Got)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ParseError wrapper.
func (e *ParseError) Unwrap() error {
	return e.Err
}
