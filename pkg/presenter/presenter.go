// Package presenter writes user-facing CLI messages to stderr: errors with
// "did you mean" suggestions and warnings, with color support and quiet mode.
package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// TerminalPresenter writes messages for a terminal user
type TerminalPresenter struct {
	errorOutput io.Writer
	colorMode   ColorMode
	quiet       bool
}

// ColorMode selects whether output is colored.
type ColorMode int

const (
	// ColorAuto lets the color package detect terminal support.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables colored output.
	ColorNever
)

// New creates a TerminalPresenter writing to stderr.
func New() *TerminalPresenter {
	return NewWithOptions(os.Stderr, detectColorMode())
}

// NewWithOptions creates a TerminalPresenter with a custom writer and color mode.
func NewWithOptions(errorOutput io.Writer, colorMode ColorMode) *TerminalPresenter {
	switch colorMode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	}

	return &TerminalPresenter{
		errorOutput: errorOutput,
		colorMode:   colorMode,
	}
}

func detectColorMode() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNever
	}

	switch os.Getenv("CLAUDELIST_COLOR") {
	case "always", "force":
		return ColorAlways
	case "never", "off":
		return ColorNever
	default:
		return ColorAuto
	}
}

// Error writes err to the error output. Errors are never silenced by quiet mode.
func (p *TerminalPresenter) Error(err error, context string) {
	if err == nil {
		return
	}

	errorColor := color.New(color.FgRed, color.Bold)
	if context != "" {
		errorColor.Fprintf(p.errorOutput, "[ERROR] %s: %v\n", context, err)
	} else {
		errorColor.Fprintf(p.errorOutput, "[ERROR] %v\n", err)
	}
}

// Suggestions writes a "Did you mean" hint listing at most limit names to the
// error output. A non-positive limit shows every name.
func (p *TerminalPresenter) Suggestions(suggestions []string, limit int) {
	if p.quiet || len(suggestions) == 0 {
		return
	}
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	hintColor := color.New(color.FgYellow)
	hintColor.Fprintln(p.errorOutput, "Did you mean:")
	for _, s := range suggestions {
		fmt.Fprintf(p.errorOutput, "  - %s\n", s)
	}
}

// Warning displays a warning message
func (p *TerminalPresenter) Warning(message string) {
	if p.quiet {
		return
	}

	warningColor := color.New(color.FgYellow, color.Bold)
	warningColor.Fprintf(p.errorOutput, "⚠ %s\n", message)
}

// SetQuiet enables or disables quiet mode
func (p *TerminalPresenter) SetQuiet(quiet bool) {
	p.quiet = quiet
}

var defaultPresenter = New()

// Error writes err using the default presenter.
func Error(err error, context string) {
	defaultPresenter.Error(err, context)
}

// Suggestions writes a suggestion hint using the default presenter.
func Suggestions(suggestions []string, limit int) {
	defaultPresenter.Suggestions(suggestions, limit)
}

// Warning writes a warning using the default presenter.
func Warning(message string) {
	defaultPresenter.Warning(message)
}

// SetQuiet toggles quiet mode on the default presenter.
func SetQuiet(quiet bool) {
	defaultPresenter.SetQuiet(quiet)
}
