package triangle

import (
	"errors"
	"fmt"
)

// ParseError reports a cell that could not be parsed into its expected type.
type ParseError struct {
	Line   int    // 1-based line number in the input file (header is line 1)
	Column string // column name
	Value  string // raw cell content
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports input that parsed but violates a structural rule,
// such as a missing column or a malformed triangle shape.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid triangle data: " + e.Reason
}

// AsParseError reports whether err (or anything it wraps) is a *ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
