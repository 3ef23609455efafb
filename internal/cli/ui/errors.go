package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of a message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
	ErrorLevelInfo
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level        ErrorLevel
	Context      string
	Problem      string
	Details      []string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError renders a message with optional details, suggestions and
// follow-up commands:
//
//	❌ UNIT NOT FOUND: Kilometre
//	   Cannot find unit 'Kilometre' in catalog.yaml.
//
//	   Did you mean: Kilometer, Kilometers?
//
//	   → See all units: unitgen list
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	var headerColor, bodyColor *color.Color
	var symbol string

	switch opts.Level {
	case ErrorLevelWarning:
		headerColor = color.New(color.FgYellow, color.Bold)
		bodyColor = color.New(color.FgYellow)
		symbol = "⚠️"
	case ErrorLevelInfo:
		headerColor = color.New(color.FgCyan, color.Bold)
		bodyColor = color.New(color.FgCyan)
		symbol = "ℹ️"
	default:
		headerColor = color.New(color.FgRed, color.Bold)
		bodyColor = color.New(color.FgRed)
		symbol = "❌"
	}
	accent := color.New(color.FgYellow)
	help := color.New(color.FgCyan)

	if opts.NoColor {
		for _, c := range []*color.Color{headerColor, bodyColor, accent, help} {
			c.DisableColor()
		}
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s\n", symbol, strings.ToUpper(opts.Context))
		bodyColor.Fprintf(&b, "   %s\n", opts.Problem)
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if len(opts.Details) > 0 {
		b.WriteString("\n")
		for _, d := range opts.Details {
			bodyColor.Fprintf(&b, "   %s\n", d)
		}
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		accent.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		for _, cmd := range opts.HelpCommands {
			help.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// UnitNotFoundError reports a unit name missing from the catalog
func UnitNotFoundError(name, catalogPath string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "unit not found",
		Problem:     fmt.Sprintf("Cannot find unit '%s' in %s.", name, catalogPath),
		Suggestions: suggestions,
		HelpCommands: []string{
			"See all units: unitgen list",
		},
		NoColor: noColor,
	})
}

// CatalogError reports a catalog that failed to load or validate
func CatalogError(catalogPath string, err error, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelError,
		Context: "invalid catalog",
		Problem: fmt.Sprintf("%s: %v", catalogPath, err),
		HelpCommands: []string{
			"Start from the default catalog: unitgen init",
			"Get help: unitgen generate --help",
		},
		NoColor: noColor,
	})
}

// ConfigError reports a configuration problem
func ConfigError(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelError,
		Context: "configuration error",
		Problem: message,
		HelpCommands: []string{
			"Create a config: unitgen init",
			"Get help: unitgen --help",
		},
		NoColor: noColor,
	})
}

// StaleError lists generated files that differ from the catalog
func StaleError(files []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:        ErrorLevelError,
		Context:      "generated code is stale",
		Problem:      fmt.Sprintf("%d generated file(s) do not match the catalog.", len(files)),
		Details:      files,
		HelpCommands: []string{"Regenerate: unitgen generate"},
		NoColor:      noColor,
	})
}

// Warning creates a warning message
func Warning(message string, details []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelWarning,
		Problem: message,
		Details: details,
		NoColor: noColor,
	})
}

// Info creates an info message
func Info(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelInfo,
		Problem: message,
		NoColor: noColor,
	})
}
