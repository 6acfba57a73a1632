package eval

import (
	"github.com/monkeylang/gomonkey/objects"
	"github.com/monkeylang/gomonkey/parser"
)

// evalStatement evaluates one statement and returns its value:
//   - let binds a name and produces no value (nil)
//   - return wraps its value so enclosing blocks unwind
//   - an expression statement yields its expression's value
func (e *Evaluator) evalStatement(stmt parser.StatementNode) objects.MonkeyObject {
	switch node := stmt.(type) {

	case *parser.LetStatementNode:
		value := e.evalExpression(node.Value)
		if isError(value) {
			return value
		}
		if value == nil {
			// An expression that produced no value (an if whose taken
			// branch is empty) binds null.
			value = &objects.Null{}
		}
		e.Scp.Bind(node.Name.Value, value)
		return nil

	case *parser.ReturnStatementNode:
		value := e.evalExpression(node.Value)
		if isError(value) {
			return value
		}
		return &objects.ReturnValue{Value: value}

	case *parser.ExpressionStatementNode:
		return e.evalExpression(node.Expr)

	default:
		return nil
	}
}

// evalBlockStatement evaluates a statement sequence and returns the
// value of its last statement, with two early exits: a return wrapper
// propagates upward UNCHANGED (only a function boundary or the top
// level unwraps it, which is what lets a return nested inside if/else
// abort the whole surrounding function body), and an error stops the
// block immediately.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatementNode) objects.MonkeyObject {
	var result objects.MonkeyObject

	for _, stmt := range block.Statements {
		result = e.evalStatement(stmt)

		if result != nil {
			resultType := result.GetType()
			if resultType == objects.ReturnType || resultType == objects.ErrorType {
				return result
			}
		}
	}

	return result
}
