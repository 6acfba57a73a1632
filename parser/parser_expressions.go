package parser

import (
	"fmt"
	"strconv"

	"github.com/monkeylang/gomonkey/lexer"
)

// parseExpression is the heart of the Pratt algorithm. It looks up the
// unary (prefix) function for the current token to parse the left arm,
// then loops: while the next token is not a semicolon and binds tighter
// than the caller's priority, it hands the left arm to that token's
// binary (infix) function. Left associativity falls out of the strict
// comparison: a second '-' at the same priority does not continue the
// loop of the first one's right operand.
func (par *Parser) parseExpression(priority int) ExpressionNode {
	unary := par.UnaryFuncs[par.CurrToken.Type]
	if unary == nil {
		par.addError(fmt.Sprintf("no prefix parse function for %s found", par.CurrToken.Literal))
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}

	for par.NextToken.Type != lexer.SEMICOLON_DELIM && priority < getPrecedence(&par.NextToken) {
		binary := par.BinaryFuncs[par.NextToken.Type]
		if binary == nil {
			return left
		}
		par.advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseIdentifierExpression produces an identifier node from the
// current token.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseIntegerLiteral converts the current token's digit run to an
// int64. A run that does not fit (the lexer only emits digits, so range
// is the only failure) records an illegal-number parse error.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.addError(fmt.Sprintf("illegal number: %s", par.CurrToken.Literal))
		return nil
	}
	return &IntegerLiteralExpressionNode{Token: par.CurrToken, Value: value}
}

// parseBooleanLiteral produces a boolean node from a true/false token.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal == "true"}
}

// parseStringLiteral produces a string node; the token literal already
// holds the content between the quotes.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}

// parseUnaryExpression parses !expr or -expr. The operand is parsed at
// prefix priority so that -a * b groups as (-a) * b.
func (par *Parser) parseUnaryExpression() ExpressionNode {
	operation := par.CurrToken

	par.advance()
	right := par.parseExpression(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}

	return &UnaryExpressionNode{Operation: operation, Right: right}
}

// parseBinaryExpression parses the right arm of an infix operator. The
// right operand is parsed at the operator's own priority, which with
// the strict loop comparison yields left associativity.
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	operation := par.CurrToken
	priority := getPrecedence(&operation)

	par.advance()
	right := par.parseExpression(priority)
	if right == nil {
		return nil
	}

	return &BinaryExpressionNode{Operation: operation, Left: left, Right: right}
}

// parseParenthesizedExpression parses (expr). The group contributes no
// node of its own; the parentheses only reset the priority.
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	par.advance()
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseIfExpression parses:
//
//	if (<cond>) { <consequence> } else { <alternative> }
//
// The else branch is optional. There is no `else if` production; a
// chained conditional is written as a nested if inside the else block.
func (par *Parser) parseIfExpression() ExpressionNode {
	ifToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	par.advance()
	condition := par.parseExpression(MINIMUM_PRIORITY)
	if condition == nil {
		return nil
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	consequence := par.parseBlockStatement()

	var alternative *BlockStatementNode
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()
		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}
		alternative = par.parseBlockStatement()
	}

	return &IfExpressionNode{
		Token:       ifToken,
		Condition:   condition,
		Consequence: consequence,
		Alternative: alternative,
	}
}

// parseFunctionLiteral parses: fn(<params>) { <body> }
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	fnToken := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	params, ok := par.parseFunctionParams()
	if !ok {
		return nil
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlockStatement()

	return &FunctionLiteralExpressionNode{Token: fnToken, Params: params, Body: body}
}

// parseFunctionParams parses the comma-separated identifier list of a
// function literal, leaving the current token on the closing ')'. An
// empty list is allowed; a trailing comma is not.
func (par *Parser) parseFunctionParams() ([]*IdentifierExpressionNode, bool) {
	params := make([]*IdentifierExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params, true
	}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil, false
	}
	params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal})

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil, false
		}
		params = append(params, &IdentifierExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal})
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil, false
	}

	return params, true
}

// parseCallExpression parses the argument list of a call. The current
// token is the '(' that followed the callee expression.
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	parenToken := par.CurrToken

	args, ok := par.parseCallArgs()
	if !ok {
		return nil
	}

	return &CallExpressionNode{Token: parenToken, Callee: callee, Args: args}
}

// parseCallArgs parses the comma-separated argument expressions of a
// call, leaving the current token on the closing ')'. An empty list is
// allowed; a trailing comma is not.
func (par *Parser) parseCallArgs() ([]ExpressionNode, bool) {
	args := make([]ExpressionNode, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return args, true
	}

	par.advance()
	arg := par.parseExpression(MINIMUM_PRIORITY)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		arg = par.parseExpression(MINIMUM_PRIORITY)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil, false
	}

	return args, true
}
