package options

import (
	"fmt"
	"strings"
)

// ValueKind describes what an option's value means.
type ValueKind string

const (
	KindRootName   ValueKind = "root name"
	KindSubAccount ValueKind = "account components"
	KindEnum       ValueKind = "enum"
)

// Value is a validated option value. The only implementations are Text
// and ProcessingMode.
type Value interface {
	fmt.Stringer
	isValue()
}

// Text is a free-form string value such as an account root or leaf.
type Text string

func (t Text) String() string { return string(t) }
func (Text) isValue()         {}

// ProcessingMode selects how plugins are applied after parsing.
type ProcessingMode string

const (
	// ProcessingDefault runs the built-in plugins, then the declared ones.
	ProcessingDefault ProcessingMode = "default"
	// ProcessingRaw runs only the plugins declared in the ledger.
	ProcessingRaw ProcessingMode = "raw"
)

// ProcessingModes lists the legal modes.
var ProcessingModes = []ProcessingMode{ProcessingDefault, ProcessingRaw}

func (m ProcessingMode) String() string { return string(m) }
func (ProcessingMode) isValue()         {}

// Valid reports whether m is one of ProcessingModes.
func (m ProcessingMode) Valid() bool {
	for _, legal := range ProcessingModes {
		if m == legal {
			return true
		}
	}
	return false
}

func processingModeNames() []string {
	names := make([]string, len(ProcessingModes))
	for i, m := range ProcessingModes {
		names[i] = string(m)
	}
	return names
}

// ParseProcessingMode converts s to a ProcessingMode.
func ParseProcessingMode(s string) (ProcessingMode, error) {
	m := ProcessingMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("must be one of %s", strings.Join(processingModeNames(), ", "))
	}
	return m, nil
}
