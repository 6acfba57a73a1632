// Package file implements whole-program execution for the Monkey
// interpreter: running a source file or a source string from the
// command line, outside the interactive session. The output protocol
// follows the REPL line protocol, except that the parse-error block is
// not preceded by the REPL's monkey-business banner line.
package file

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/monkeylang/gomonkey/eval"
	"github.com/monkeylang/gomonkey/objects"
	"github.com/monkeylang/gomonkey/parser"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// ErrMonkey reports that the program itself failed (parse or evaluate
// errors). The details have already been written to the output; the
// error exists so the CLI can exit nonzero.
var ErrMonkey = errors.New("program failed")

// RunSource executes source text against a fresh root scope and writes
// the outcome:
//   - parse errors: the tab-indented parse-error block; not evaluated
//   - a runtime error value: the tab-indented evaluate-error block
//   - any other value: its display form (nothing when the program
//     produced no value)
//
// Returns ErrMonkey when the program failed, nil otherwise.
func RunSource(src string, writer io.Writer) (err error) {
	// A host-level panic fails the run like any other program error.
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
			err = ErrMonkey
		}
	}()

	par := parser.NewParser(src)
	root := par.Parse()

	if par.HasErrors() {
		redColor.Fprintf(writer, "%s\n", " parse error:")
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "\t%s\n", msg)
		}
		return ErrMonkey
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetParser(par)
	result := evaluator.Eval(root)

	if result == nil {
		return nil
	}

	if result.GetType() == objects.ErrorType {
		redColor.Fprintf(writer, "%s\n", " evaluate error:")
		redColor.Fprintf(writer, "\t%s\n", result.ToString())
		return ErrMonkey
	}

	yellowColor.Fprintf(writer, "%s\n", result.ToString())
	return nil
}

// RunFile reads a source file and executes it with RunSource.
func RunFile(path string, writer io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(writer, "could not read %s: %s\n", path, err)
		return err
	}
	return RunSource(string(src), writer)
}
