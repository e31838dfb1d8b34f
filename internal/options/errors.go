package options

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOption      = errors.New("unknown option")
	ErrInvalidOptionValue = errors.New("invalid option value")
)

// ValueError reports a value rejected by an option's validator.
// It matches ErrInvalidOptionValue with errors.Is.
type ValueError struct {
	Option string
	Value  string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %q: %s", e.Value, e.Option, e.Reason)
}

func (e *ValueError) Unwrap() error {
	return ErrInvalidOptionValue
}

func unknownOption(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownOption, name)
}
