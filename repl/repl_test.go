package repl

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/monkeylang/gomonkey/eval"
)

// runLines feeds lines to one session evaluator and returns everything
// written, with colors disabled so the protocol text is asserted raw.
func runLines(t *testing.T, lines ...string) string {
	t.Helper()
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	var buf bytes.Buffer
	evaluator := eval.NewEvaluator()
	for _, line := range lines {
		ExecuteLine(&buf, line, evaluator)
	}
	return buf.String()
}

// TestExecuteLine_Values verifies the display forms of each value kind
func TestExecuteLine_Values(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "7\n"},
		{"1 < 2", "true\n"},
		{`"Hello" + " " + "World"`, "Hello World\n"},
		{"if (false) { 1 }", "null\n"},
		{"fn(x) { x }", "<FUNCTION>\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, runLines(t, tt.input), "input: %s", tt.input)
	}
}

// TestExecuteLine_BareLetPrintsNothing verifies a line with no value
// produces no output at all
func TestExecuteLine_BareLetPrintsNothing(t *testing.T) {
	assert.Equal(t, "", runLines(t, "let x = 5;"))
}

// TestExecuteLine_SessionPersists verifies bindings survive across
// lines of the same session
func TestExecuteLine_SessionPersists(t *testing.T) {
	out := runLines(t,
		"let x = 5 * 5 + 10;",
		"x;",
		"let addTwo = fn(y) { x + y };",
		"addTwo(1)",
	)
	assert.Equal(t, "35\n36\n", out)
}

// TestExecuteLine_ParseErrors verifies the parse-error block and that
// the line is not evaluated
func TestExecuteLine_ParseErrors(t *testing.T) {
	out := runLines(t, "let = 5;")
	assert.Equal(t,
		"Woops! We ran into some monkey business here!\n"+
			" parse error:\n"+
			"\texpected next token to be Identifier, got = instead\n"+
			"\tno prefix parse function for = found\n",
		out)
}

// TestExecuteLine_EvaluateErrors verifies the evaluate-error block
func TestExecuteLine_EvaluateErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + true;", " evaluate error:\n\ttype mismatch: INT + BOOL\n"},
		{"foobar;", " evaluate error:\n\tidentifier not found: foobar\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, runLines(t, tt.input), "input: %s", tt.input)
	}
}

// TestExecuteLine_ErrorDoesNotPoisonSession verifies a failed line
// leaves earlier bindings usable
func TestExecuteLine_ErrorDoesNotPoisonSession(t *testing.T) {
	out := runLines(t,
		"let a = 2;",
		"a + nope",
		"a",
	)
	assert.Equal(t, " evaluate error:\n\tidentifier not found: nope\n2\n", out)
}

// TestPrintBannerInfo verifies the greeting text
func TestPrintBannerInfo(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	var buf bytes.Buffer
	NewRepl("mona").PrintBannerInfo(&buf)
	assert.Equal(t,
		"Hello mona! This is the Monkey programming language!\n"+
			"Feel free to type in commands\n",
		buf.String())
}
