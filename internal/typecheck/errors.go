package typecheck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode identifies why a probe was rejected
type ErrorCode string

const (
	// ErrDimensionMismatch indicates operands of different dimensions.
	ErrDimensionMismatch ErrorCode = "DIM100"
	// ErrScaleMismatch indicates Add or Sub across different scales.
	ErrScaleMismatch ErrorCode = "DIM101"
	// ErrInvalidStorage indicates a storage type outside units.Number.
	ErrInvalidStorage ErrorCode = "DIM102"
	// ErrStorageMismatch indicates operands of different storage types.
	ErrStorageMismatch ErrorCode = "DIM103"

	// ErrTypeCheck is any go/types diagnostic not attributed to a probe.
	ErrTypeCheck ErrorCode = "DIM199"
)

// Severity indicates the severity level of a diagnostic
type Severity string

const (
	// SeverityError indicates a diagnostic that prevents compilation.
	SeverityError Severity = "error"
	// SeverityWarning indicates a soft go/types diagnostic.
	SeverityWarning Severity = "warning"
)

// Location is a position inside a checked snippet
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Diagnostic is one type checking error with enough context for both
// terminal output and machine consumption
type Diagnostic struct {
	Code       ErrorCode `json:"code"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	Location   Location  `json:"location"`
	Expected   string    `json:"expected,omitempty"`
	Actual     string    `json:"actual,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// Error implements the error interface
func (d *Diagnostic) Error() string {
	return d.Format()
}

// Format returns a human-readable message for terminal output
func (d *Diagnostic) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:%d:%d: %s [%s]\n",
		d.Location.File, d.Location.Line, d.Location.Column,
		strings.ToUpper(string(d.Severity)), d.Code)
	fmt.Fprintf(&b, "  %s\n", d.Message)

	if d.Expected != "" || d.Actual != "" {
		fmt.Fprintf(&b, "\n")
		if d.Expected != "" {
			fmt.Fprintf(&b, "  Expected: %s\n", d.Expected)
		}
		if d.Actual != "" {
			fmt.Fprintf(&b, "  Actual:   %s\n", d.Actual)
		}
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s\n", d.Suggestion)
	}

	return b.String()
}

// ToJSON returns the diagnostic as indented JSON
func (d *Diagnostic) ToJSON() (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal diagnostic: %w", err)
	}
	return string(data), nil
}
