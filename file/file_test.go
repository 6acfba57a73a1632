package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func runSource(t *testing.T, src string) (string, error) {
	t.Helper()
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	var buf bytes.Buffer
	err := RunSource(src, &buf)
	return buf.String(), err
}

// TestRunSource_Value verifies a multi-statement program prints its
// final value
func TestRunSource_Value(t *testing.T) {
	out, err := runSource(t, "let newAdder = fn(x) { fn(y) { x + y } }; let add2 = newAdder(2); add2(3);")
	assert.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

// TestRunSource_NoValue verifies a program ending in a bare let prints
// nothing and still succeeds
func TestRunSource_NoValue(t *testing.T) {
	out, err := runSource(t, "let a = 1;")
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

// TestRunSource_ParseErrors verifies the parse-error block and the
// failure result
func TestRunSource_ParseErrors(t *testing.T) {
	out, err := runSource(t, "let x 5;")
	assert.ErrorIs(t, err, ErrMonkey)
	assert.Equal(t, " parse error:\n\texpected next token to be =, got 5 instead\n", out)
}

// TestRunSource_EvaluateErrors verifies the evaluate-error block and
// the failure result
func TestRunSource_EvaluateErrors(t *testing.T) {
	out, err := runSource(t, "5 + true;")
	assert.ErrorIs(t, err, ErrMonkey)
	assert.Equal(t, " evaluate error:\n\ttype mismatch: INT + BOOL\n", out)
}

// TestRunFile verifies end-to-end execution of a file on disk
func TestRunFile(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	path := filepath.Join(t.TempDir(), "adder.mk")
	src := "let add = fn(a, b) { a + b };\nadd(2, 3) * add(1, 1);\n"
	assert.NoError(t, os.WriteFile(path, []byte(src), 0644))

	var buf bytes.Buffer
	assert.NoError(t, RunFile(path, &buf))
	assert.Equal(t, "10\n", buf.String())
}

// TestRunFile_Missing verifies a missing file reports and fails
func TestRunFile_Missing(t *testing.T) {
	var buf bytes.Buffer
	err := RunFile(filepath.Join(t.TempDir(), "nope.mk"), &buf)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "could not read")
}
