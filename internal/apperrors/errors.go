package apperrors

import "fmt"

// ParseError is returned when a stored value cannot be interpreted in the
// requested type, e.g. reading a key holding non-numeric bytes as an integer.
type ParseError struct {
	Key string
	Raw []byte
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("value at key %q is not parseable: %q", e.Key, e.Raw)
}

// Is allows for error checking with errors.Is().
func (e *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

// Unwrap exposes the underlying parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(key string, raw []byte, err error) *ParseError {
	return &ParseError{
		Key: key,
		Raw: raw,
		Err: err,
	}
}
