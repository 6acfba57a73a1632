// Package function defines the Monkey function value. It lives apart
// from package objects because a function references AST nodes (its
// body) and the scope it closed over, and objects must stay free of
// both dependencies.
package function

import (
	"strings"

	"github.com/monkeylang/gomonkey/objects"
	"github.com/monkeylang/gomonkey/parser"
	"github.com/monkeylang/gomonkey/scope"
)

// Function represents a user-defined function value.
//
// Fields:
//   - Params: the parameter identifiers, bound to argument values on call
//   - Body: the block statement evaluated when the function is invoked
//   - Scp: the scope the function literal was evaluated in. The
//     reference is shared, not copied: a function defined at the top
//     level observes later top-level bindings, which is what permits
//     recursive definitions like `let f = fn(x) { f(x) }`.
type Function struct {
	Params []*parser.IdentifierExpressionNode // Parameter names
	Body   *parser.BlockStatementNode         // Function body
	Scp    *scope.Scope                       // Captured defining scope
}

// GetType returns the function type tag.
func (f *Function) GetType() objects.MonkeyType {
	return objects.FunctionType
}

// ToString returns the opaque display form used by the REPL. Function
// printing is deliberately not structural.
func (f *Function) ToString() string {
	return "<FUNCTION>"
}

// ToObject returns a detailed rendering including the parameter list,
// e.g. "<FUNCTION:fn(x, y)>".
func (f *Function) ToObject() string {
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.Literal())
	}
	return "<FUNCTION:fn(" + strings.Join(params, ", ") + ")>"
}
