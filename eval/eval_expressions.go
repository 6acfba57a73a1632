package eval

import (
	"github.com/monkeylang/gomonkey/function"
	"github.com/monkeylang/gomonkey/lexer"
	"github.com/monkeylang/gomonkey/objects"
	"github.com/monkeylang/gomonkey/parser"
	"github.com/monkeylang/gomonkey/scope"
)

// evalExpression evaluates one expression node against the current
// scope.
func (e *Evaluator) evalExpression(expr parser.ExpressionNode) objects.MonkeyObject {
	switch node := expr.(type) {

	case *parser.IdentifierExpressionNode:
		return e.evalIdentifier(node)

	case *parser.IntegerLiteralExpressionNode:
		return &objects.Integer{Value: node.Value}

	case *parser.BooleanLiteralExpressionNode:
		return &objects.Boolean{Value: node.Value}

	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: node.Value}

	case *parser.UnaryExpressionNode:
		right := e.evalExpression(node.Right)
		if isError(right) {
			return right
		}
		return e.evalUnaryExpression(node.Operation, right)

	case *parser.BinaryExpressionNode:
		left := e.evalExpression(node.Left)
		if isError(left) {
			return left
		}
		right := e.evalExpression(node.Right)
		if isError(right) {
			return right
		}
		return e.evalBinaryExpression(node.Operation, left, right)

	case *parser.IfExpressionNode:
		return e.evalIfExpression(node)

	case *parser.FunctionLiteralExpressionNode:
		// The function value shares the current scope by reference,
		// which is the closure contract: a top-level function observes
		// bindings made after its definition.
		return &function.Function{Params: node.Params, Body: node.Body, Scp: e.Scp}

	case *parser.CallExpressionNode:
		return e.evalCallExpression(node)

	default:
		return e.CreateError("unknown expression: %s", expr.Literal())
	}
}

// evalIdentifier resolves a name through the scope chain.
func (e *Evaluator) evalIdentifier(node *parser.IdentifierExpressionNode) objects.MonkeyObject {
	if value, ok := e.Scp.LookUp(node.Value); ok {
		return value
	}
	return e.CreateError("identifier not found: %s", node.Value)
}

// evalUnaryExpression applies a prefix operator to an evaluated
// operand. Bang accepts anything and negates its truthiness; minus only
// applies to integers.
func (e *Evaluator) evalUnaryExpression(operation lexer.Token, right objects.MonkeyObject) objects.MonkeyObject {
	switch operation.Type {

	case lexer.NOT_OP:
		return &objects.Boolean{Value: !isTruthy(right)}

	case lexer.MINUS_OP:
		if integer, ok := right.(*objects.Integer); ok {
			return &objects.Integer{Value: -integer.Value}
		}
		return e.CreateError("unknown operator: - %s", right.GetType())

	default:
		return e.CreateError("unknown operator: %s %s", operation.Literal, right.GetType())
	}
}

// evalBinaryExpression applies an infix operator to two evaluated
// operands. Operands of different types are a type mismatch before
// anything else; matching types dispatch to the per-type rules.
func (e *Evaluator) evalBinaryExpression(operation lexer.Token, left, right objects.MonkeyObject) objects.MonkeyObject {
	if left.GetType() != right.GetType() {
		return e.CreateError("type mismatch: %s %s %s", left.GetType(), operation.Literal, right.GetType())
	}

	switch {
	case left.GetType() == objects.IntegerType:
		return e.evalIntegerBinaryExpression(operation, left.(*objects.Integer), right.(*objects.Integer))

	case left.GetType() == objects.StringType:
		return e.evalStringBinaryExpression(operation, left.(*objects.String), right.(*objects.String))

	case left.GetType() == objects.BooleanType:
		return e.evalBooleanBinaryExpression(operation, left.(*objects.Boolean), right.(*objects.Boolean))

	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), operation.Literal, right.GetType())
	}
}

// evalIntegerBinaryExpression implements the integer operators.
// Division truncates toward zero; a zero divisor is a runtime error
// rather than a crash.
func (e *Evaluator) evalIntegerBinaryExpression(operation lexer.Token, left, right *objects.Integer) objects.MonkeyObject {
	switch operation.Type {
	case lexer.PLUS_OP:
		return &objects.Integer{Value: left.Value + right.Value}
	case lexer.MINUS_OP:
		return &objects.Integer{Value: left.Value - right.Value}
	case lexer.MUL_OP:
		return &objects.Integer{Value: left.Value * right.Value}
	case lexer.DIV_OP:
		if right.Value == 0 {
			return e.CreateError("division by zero")
		}
		return &objects.Integer{Value: left.Value / right.Value}
	case lexer.LT_OP:
		return &objects.Boolean{Value: left.Value < right.Value}
	case lexer.GT_OP:
		return &objects.Boolean{Value: left.Value > right.Value}
	case lexer.EQ_OP:
		return &objects.Boolean{Value: left.Value == right.Value}
	case lexer.NE_OP:
		return &objects.Boolean{Value: left.Value != right.Value}
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), operation.Literal, right.GetType())
	}
}

// evalStringBinaryExpression implements the string operators:
// concatenation and content comparison.
func (e *Evaluator) evalStringBinaryExpression(operation lexer.Token, left, right *objects.String) objects.MonkeyObject {
	switch operation.Type {
	case lexer.PLUS_OP:
		return &objects.String{Value: left.Value + right.Value}
	case lexer.EQ_OP:
		return &objects.Boolean{Value: left.Value == right.Value}
	case lexer.NE_OP:
		return &objects.Boolean{Value: left.Value != right.Value}
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), operation.Literal, right.GetType())
	}
}

// evalBooleanBinaryExpression implements the boolean operators:
// equality and inequality only.
func (e *Evaluator) evalBooleanBinaryExpression(operation lexer.Token, left, right *objects.Boolean) objects.MonkeyObject {
	switch operation.Type {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: left.Value == right.Value}
	case lexer.NE_OP:
		return &objects.Boolean{Value: left.Value != right.Value}
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), operation.Literal, right.GetType())
	}
}

// evalIfExpression evaluates the condition and picks a branch: the
// consequence when truthy, the alternative when present, null when
// neither.
func (e *Evaluator) evalIfExpression(node *parser.IfExpressionNode) objects.MonkeyObject {
	condition := e.evalExpression(node.Condition)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.evalBlockStatement(node.Consequence)
	}
	if node.Alternative != nil {
		return e.evalBlockStatement(node.Alternative)
	}
	return &objects.Null{}
}

// evalCallExpression evaluates the callee, then the arguments left to
// right (stopping at the first error), checks arity, and applies the
// function.
func (e *Evaluator) evalCallExpression(node *parser.CallExpressionNode) objects.MonkeyObject {
	callee := e.evalExpression(node.Callee)
	if isError(callee) {
		return callee
	}

	fn, ok := callee.(*function.Function)
	if !ok {
		return e.CreateError("%s is not valid function", callee.ToString())
	}

	args := make([]objects.MonkeyObject, 0, len(node.Args))
	for _, argExpr := range node.Args {
		arg := e.evalExpression(argExpr)
		if isError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	if len(args) != len(fn.Params) {
		return e.CreateError("wrong number of arguments: %d expected but %d given", len(fn.Params), len(args))
	}

	return e.applyFunction(fn, args)
}

// applyFunction runs a function body in a fresh scope whose parent is
// the function's CAPTURED scope (not the caller's), binding parameters
// to arguments. The current scope is swapped in for the duration of the
// body and restored afterwards, and an outermost return wrapper is
// unwrapped here: the return has reached its function boundary.
func (e *Evaluator) applyFunction(fn *function.Function, args []objects.MonkeyObject) objects.MonkeyObject {
	callScope := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		callScope.Bind(param.Value, args[i])
	}

	saved := e.Scp
	e.Scp = callScope
	result := e.evalBlockStatement(fn.Body)
	e.Scp = saved

	if returned, ok := result.(*objects.ReturnValue); ok {
		return returned.Value
	}
	return result
}
