package acfp

import (
	"errors"
	"fmt"
)

// Errors returned by parsing and typed field access.
var (
	// ErrMalformedLine indicates a key/value line with no unquoted '='.
	ErrMalformedLine = errors.New("malformed line")

	// ErrUnterminatedQuote indicates an opening quote without its closing pair.
	ErrUnterminatedQuote = errors.New("unterminated quoted string")

	// ErrValueSyntax indicates a value that is not valid text for the requested type.
	ErrValueSyntax = errors.New("invalid value syntax")

	// ErrValueRange indicates a value outside the representable range of the requested type.
	ErrValueRange = errors.New("value out of range")

	// ErrConversion indicates a conversion failure that is neither a syntax nor a range error.
	ErrConversion = errors.New("conversion failed")
)

// ParseError is an error at a specific line of the input.
type ParseError struct {
	// Line is the 1-based line number where the error occurred.
	Line int
	// Text is the offending line content after trimming, if applicable.
	Text string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
