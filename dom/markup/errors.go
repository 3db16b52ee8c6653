package markup

import (
	"errors"
	"fmt"
)

// Errors reported by the markup parser.
var (
	ErrMalformedDoctype = errors.New("malformed doctype declaration")
	ErrUnknownElement   = errors.New("unknown element")
	ErrTooDeep          = errors.New("elements nested too deeply")
	ErrNoElement        = errors.New("no element found")
)

// ParseError describes a failure at a position of the input.
// Pos is counted in characters, not bytes.
type ParseError struct {
	Pos int
	Tag string // tag name, if the error concerns an element
	Err error
}

func (e *ParseError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("markup: <%s> at position %d: %v", e.Tag, e.Pos, e.Err)
	}
	return fmt.Sprintf("markup: at position %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
