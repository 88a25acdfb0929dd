package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// TestRenderFunctions verifies that all render functions keep the input text.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
	}{
		{"Faint", Faint},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function("test text")
			if !strings.Contains(result, "test text") {
				t.Errorf("%s() result does not contain input text. got %q", tt.name, result)
			}
		})
	}
}

// TestPrintFunctions verifies that print functions write to the configured output.
func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string)
	}{
		{"PrintFaint", PrintFaint},
		{"PrintSuccess", PrintSuccess},
		{"PrintError", PrintError},
		{"PrintWarning", PrintWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			t.Cleanup(func() { SetOutput(nil) })

			tt.function("test text")

			out := buf.String()
			if !strings.Contains(out, "test text") {
				t.Errorf("%s() output does not contain input text. got %q", tt.name, out)
			}
			if !strings.HasSuffix(out, "\n") {
				t.Errorf("%s() output does not end with newline", tt.name)
			}
		})
	}
}

func TestSetNoColor(t *testing.T) {
	origTerm := isTerminalFn
	t.Cleanup(func() {
		isTerminalFn = origTerm
		lipgloss.SetColorProfile(termenv.Ascii)
	})

	tests := []struct {
		name     string
		noColor  bool
		terminal bool
		noEnv    string
	}{
		{"flag disables", true, true, ""},
		{"NO_COLOR disables", false, true, "1"},
		{"not a terminal", false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noEnv)
			isTerminalFn = func() bool { return tt.terminal }

			SetNoColor(tt.noColor)

			if got := Error("plain"); got != "plain" {
				t.Errorf("expected unstyled output, got %q", got)
			}
		})
	}
}
