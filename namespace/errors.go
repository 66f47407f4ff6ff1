package namespace

import (
	"errors"
	"fmt"
)

// ErrMalformedDirective is returned when a directive cannot be split into its parts.
var ErrMalformedDirective = errors.New("malformed namespace directive")

// DirectiveError describes a directive that failed to parse.
type DirectiveError struct {
	Directive string
	// Index is the position of the directive on the command line, or -1 if unknown.
	Index  int
	Reason string
}

func (e *DirectiveError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("namespace directive #%d %q: %s", e.Index+1, e.Directive, e.Reason)
	}
	return fmt.Sprintf("namespace directive %q: %s", e.Directive, e.Reason)
}

func (e *DirectiveError) Unwrap() error {
	return ErrMalformedDirective
}
