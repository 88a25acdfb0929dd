// Package printer renders styled diagnostics. Everything it prints goes to
// stderr by default: stdout carries only the classification result.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

var output io.Writer = os.Stderr

// SetOutput redirects the Print functions. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// isTerminalFn reports whether stderr is a terminal; replaced in tests.
var isTerminalFn = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// SetNoColor disables styling when noColor is set, when NO_COLOR is present
// in the environment, or when stderr is not a terminal.
func SetNoColor(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !isTerminalFn() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Print functions write styled text followed by a newline.

// PrintFaint prints text with faint styling.
func PrintFaint(text string) {
	fmt.Fprintln(output, Faint(text))
}

// PrintSuccess prints text with success (green) styling.
func PrintSuccess(text string) {
	fmt.Fprintln(output, Success(text))
}

// PrintError prints text with error (red) styling.
func PrintError(text string) {
	fmt.Fprintln(output, Error(text))
}

// PrintWarning prints text with warning (yellow) styling.
func PrintWarning(text string) {
	fmt.Fprintln(output, Warning(text))
}
