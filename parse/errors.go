package parse

import (
	"errors"
	"fmt"
)

// Sentinel errors for tokenizing.
var (
	// ErrBadToken indicates a token that is not a valid integer.
	ErrBadToken = errors.New("parse: non-numeric token")

	// ErrColumnCount indicates a line without exactly two columns.
	ErrColumnCount = errors.New("parse: expected exactly two columns")
)

// ParseError reports a malformed input line. Line is 1-based and counts
// every input line, blank ones included, so it matches editor positions.
type ParseError struct {
	Line  int    // 1-based line number in the input
	Token string // offending token, or the whole line for column errors
	Err   error  // ErrBadToken or ErrColumnCount
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q on line %d", e.Err, e.Token, e.Line)
}

// Unwrap exposes the sentinel for errors.Is / errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
