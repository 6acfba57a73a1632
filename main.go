// Command gomonkey is the Monkey programming language interpreter.
//
// Monkey is a small, dynamically typed expression language with
// integers, booleans, strings, first-class functions and closures.
// Source text flows through a byte-oriented lexer, a Pratt parser and a
// tree-walking evaluator over a lexically scoped environment.
//
// The CLI supports four modes:
//
//	gomonkey                 # interactive REPL (bindings persist per session)
//	gomonkey run file.mk     # execute a source file
//	gomonkey eval '1 + 2'    # evaluate an expression from the arguments
//	gomonkey parse 'fn(x){x}' # dump the AST of an expression
package main

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/monkeylang/gomonkey/file"
	"github.com/monkeylang/gomonkey/parser"
	"github.com/monkeylang/gomonkey/repl"
)

var redColor = color.New(color.FgRed)

// rootCmd starts the interactive REPL when the binary is run with no
// arguments.
var rootCmd = &cobra.Command{
	Use:           "gomonkey",
	Short:         "The Monkey programming language interpreter",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.NewRepl(username()).Start(os.Stdin, os.Stdout)
	},
}

// runCmd executes a Monkey source file.
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a Monkey source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return file.RunFile(args[0], os.Stdout)
	},
}

// evalCmd evaluates an expression given on the command line.
var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a Monkey expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return file.RunSource(strings.Join(args, " "), os.Stdout)
	},
}

// parseCmd parses an expression and dumps the AST as an indented tree.
var parseCmd = &cobra.Command{
	Use:   "parse <expr>",
	Short: "Parse a Monkey expression and print its AST",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		par := parser.NewParser(strings.Join(args, " "))
		root := par.Parse()

		if par.HasErrors() {
			redColor.Fprintf(os.Stdout, "%s\n", " parse error:")
			for _, msg := range par.GetErrors() {
				redColor.Fprintf(os.Stdout, "\t%s\n", msg)
			}
			return file.ErrMonkey
		}

		visitor := &PrintingVisitor{}
		root.Accept(visitor)
		fmt.Print(visitor)
		return nil
	},
}

// username resolves the name greeted by the REPL banner.
func username() string {
	usr, err := user.Current()
	if err != nil {
		return "monkey"
	}
	return usr.Username
}

func main() {
	rootCmd.AddCommand(runCmd, evalCmd, parseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
