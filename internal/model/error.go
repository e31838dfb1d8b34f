package model

import "fmt"

// ErrorKind categorizes a soft error collected while processing a ledger.
type ErrorKind string

const (
	ErrorInvalidAccountName ErrorKind = "InvalidAccountName"
	ErrorInvalidOptionValue ErrorKind = "InvalidOptionValue"
	ErrorUnknownOption      ErrorKind = "UnknownOption"
	ErrorSyntax             ErrorKind = "SyntaxError"
)

// Error is a non-fatal problem tied to a source location. Errors are
// collected in order and never stop processing.
type Error struct {
	Kind     ErrorKind
	Message  string
	Location Location
}

func (e Error) Error() string {
	if e.Location.IsValid() {
		return fmt.Sprintf("%s: [%s] %s", e.Location, e.Kind, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// NewError builds an Error with a formatted message.
func NewError(kind ErrorKind, loc Location, format string, args ...any) Error {
	return Error{Kind: kind, Message: fmt.Sprintf(format, args...), Location: loc}
}

// CountKind returns how many errors in errs have the given kind.
func CountKind(errs []Error, kind ErrorKind) int {
	n := 0
	for _, e := range errs {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
