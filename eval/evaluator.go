// Package eval implements the tree-walking evaluator for the Monkey
// language. The evaluator walks the AST depth-first, threading a single
// mutable "current scope" reference that is swapped on function entry
// and restored on exit. Two value kinds steer control flow: the return
// wrapper unwinds nested blocks up to the nearest function (or program)
// boundary, and first-class error values abort whatever contains them.
package eval

import (
	"fmt"

	"github.com/monkeylang/gomonkey/objects"
	"github.com/monkeylang/gomonkey/parser"
	"github.com/monkeylang/gomonkey/scope"
)

// Evaluator holds the state for evaluating Monkey AST nodes.
type Evaluator struct {
	Par *parser.Parser // Parser instance, kept for callers that correlate errors with source
	Scp *scope.Scope   // Current scope for variable bindings and lexical scoping
}

// NewEvaluator creates an Evaluator with a fresh root scope. A REPL
// session builds one Evaluator and feeds it every line, which is what
// makes bindings persist between lines.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Par: nil,
		Scp: scope.NewScope(nil),
	}
}

// SetParser assigns the parser whose output is about to be evaluated.
func (e *Evaluator) SetParser(p *parser.Parser) {
	e.Par = p
}

// Eval evaluates a whole program and returns its value: the value of
// the last statement, nil when the program produced no value (for
// instance a bare let), or the first error encountered.
//
// The top level unwraps the return wrapper (as a function call does at
// its boundary): a top-level `return x;` yields x, and neither a
// ReturnValue nor a raw Error-laden
// wrapper ever escapes to callers as a wrapper.
func (e *Evaluator) Eval(root *parser.RootNode) objects.MonkeyObject {
	var result objects.MonkeyObject

	for _, stmt := range root.Statements {
		result = e.evalStatement(stmt)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}

	return result
}

// CreateError builds a runtime error value with a formatted message.
func (e *Evaluator) CreateError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}

// isError reports whether a value is a runtime error. Statement
// evaluation can legitimately yield nil, so the nil check comes first.
func isError(obj objects.MonkeyObject) bool {
	return obj != nil && obj.GetType() == objects.ErrorType
}

// isTruthy implements Monkey truthiness: only false and null are falsy;
// every other value, including 0 and the empty string, is truthy.
func isTruthy(obj objects.MonkeyObject) bool {
	switch obj := obj.(type) {
	case *objects.Boolean:
		return obj.Value
	case *objects.Null:
		return false
	default:
		return true
	}
}
