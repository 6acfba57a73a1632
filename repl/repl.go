// Package repl implements the Read-Eval-Print Loop for the Monkey
// interpreter. The REPL reads one line at a time, runs it through the
// lexer/parser/evaluator pipeline, and prints the result. The
// evaluator's root scope lives for the whole session, so bindings made
// on one line are visible on every later line.
//
// The REPL uses the readline library for line editing and command
// history, and colors its output bands: results in yellow, parse and
// evaluate errors in red, informational text in green and cyan. The
// colors only wrap the protocol text; the text itself is stable.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/monkeylang/gomonkey/eval"
	"github.com/monkeylang/gomonkey/objects"
	"github.com/monkeylang/gomonkey/parser"
)

// Color definitions for REPL output:
// - yellowColor: expression results
// - redColor: parse and evaluate error blocks
// - greenColor: greeting banner
// - cyanColor: usage hint
var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// PROMPT is the per-line prompt of the interactive session.
const PROMPT = ">> "

// MONKEY_BUSINESS introduces the parse-error block.
const MONKEY_BUSINESS = "Woops! We ran into some monkey business here!"

// Repl represents one interactive session configuration.
type Repl struct {
	Username string // Name shown in the greeting banner
	Prompt   string // Command prompt shown to the user
}

// NewRepl creates a REPL for the given user with the standard prompt.
func NewRepl(username string) *Repl {
	return &Repl{Username: username, Prompt: PROMPT}
}

// PrintBannerInfo displays the greeting banner and usage hint.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	greenColor.Fprintf(writer, "Hello %s! This is the Monkey programming language!\n", r.Username)
	cyanColor.Fprintf(writer, "%s\n", "Feel free to type in commands")
}

// Start runs the REPL main loop: print the banner, then read, execute
// and print until the input ends. Returns nil when the session ended at
// end-of-input (Ctrl-D or a closed stdin) and the read error when the
// line reader failed in any other way; either way a final error line
// goes to the writer first.
//
// The reader argument exists for symmetry with the writer but is not
// consumed directly: readline owns the terminal while the loop runs.
func (r *Repl) Start(reader io.Reader, writer io.Writer) error {

	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	// One evaluator for the whole session: its root scope is what makes
	// let-bindings persist across lines.
	evaluator := eval.NewEvaluator()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintf(writer, "Error: %s\n", err)
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}

		rl.SaveHistory(line)

		ExecuteLine(writer, line, evaluator)
	}
}

// ExecuteLine runs one line of source through the pipeline against the
// session evaluator and prints per the line protocol:
//  1. Parse. If any parse errors were collected, print the
//     monkey-business banner and the tab-indented error list, and do
//     NOT evaluate.
//  2. Evaluate. A runtime error prints as a tab-indented error block;
//     any other value prints its display form. A program that produced
//     no value (a bare let) prints nothing.
func ExecuteLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	// A host-level panic aborts the current line only; the session
	// scope keeps every binding made by earlier lines.
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.NewParser(line)
	root := par.Parse()

	if par.HasErrors() {
		redColor.Fprintf(writer, "%s\n", MONKEY_BUSINESS)
		redColor.Fprintf(writer, "%s\n", " parse error:")
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "\t%s\n", msg)
		}
		return
	}

	evaluator.SetParser(par)
	result := evaluator.Eval(root)

	if result == nil {
		return
	}

	if result.GetType() == objects.ErrorType {
		redColor.Fprintf(writer, "%s\n", " evaluate error:")
		redColor.Fprintf(writer, "\t%s\n", result.ToString())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.ToString())
}
