package generator

import (
	"errors"
	"fmt"
)

// Option errors.
var (
	ErrUnresolvedType   = errors.New("unresolved type")
	ErrInvalidEnumValue = errors.New("invalid enum value")
)

// OptionError reports an option value that could not be turned into configuration.
type OptionError struct {
	Option string
	Value  string
	Err    error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %s: %v %q", e.Option, e.Err, e.Value)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}
