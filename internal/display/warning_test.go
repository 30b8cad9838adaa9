package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningDisplay(t *testing.T) {
	var buf bytes.Buffer
	Warning{
		Title:      "Negative length doesn't make physical sense",
		Suggestion: "Check the sign of the input value",
	}.Display(&buf)

	out := buf.String()
	assert.Contains(t, out, "Warning: Negative length doesn't make physical sense")
	assert.Contains(t, out, "Suggestion: Check the sign of the input value")
}

func TestWarningDisplayTitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "something odd"}.Display(&buf)

	out := buf.String()
	assert.Contains(t, out, "Warning: something odd")
	assert.NotContains(t, out, "Suggestion")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	Errorf(&buf, "unknown unit '%s'", "bogus")
	assert.Contains(t, buf.String(), "Error: unknown unit 'bogus'")
}
