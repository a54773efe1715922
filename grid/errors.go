package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the text parsers.
var (
	// ErrEmptyInput indicates the reader produced no lines at all.
	ErrEmptyInput = errors.New("grid: input is empty")

	// ErrInvalidDigit indicates Digits met a rune other than 0–9 or '.'.
	ErrInvalidDigit = errors.New("grid: invalid digit")

	// ErrMalformedPoint indicates ParsePoints met a line that is not "x,y".
	ErrMalformedPoint = errors.New("grid: malformed point")
)

// ParseError records where parsing stopped. Line and Column are 1-based;
// Column is 0 for whole-line failures.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("grid: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("grid: line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
