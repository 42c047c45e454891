package core

import "fmt"

// ParseError reports malformed map input. It is returned by the bcm and ret
// parsers and always wraps one of their sentinel errors, so callers can use
// errors.Is for the cause and errors.As for the position.
//
// Line and Column are 1-based; Column is 0 when the error concerns a whole line.
type ParseError struct {
	Format string // "bcm" or "ret"
	Line   int
	Column int
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%s: line %d, column %d: %v", e.Format, e.Line, e.Column, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.Format, e.Line, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }
