package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display shows a formatted warning in yellow. Color is disabled
// automatically when the output is not a terminal.
func (w Warning) Display(out io.Writer) {
	yellow := color.New(color.FgYellow)

	yellow.Fprintf(out, "Warning: %s\n", w.Title)

	if w.Message != "" {
		yellow.Fprintf(out, "    %s\n", w.Message)
	}

	if w.Suggestion != "" {
		yellow.Fprintf(out, "    Suggestion: %s\n", w.Suggestion)
	}
}

// Errorf writes a formatted error line in red to out.
func Errorf(out io.Writer, format string, args ...interface{}) {
	red := color.New(color.FgRed)
	red.Fprintf(out, "Error: %s\n", fmt.Sprintf(format, args...))
}
