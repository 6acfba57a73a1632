package parser

import "github.com/monkeylang/gomonkey/lexer"

// Operator precedence constants. Higher number = higher precedence
// (binds tighter). This ladder is the single place operator priority is
// encoded; getPrecedence below is the only token-to-priority mapping.
//
// Precedence hierarchy (lowest to highest):
//  1. Equality operators (== !=)
//  2. Relational operators (< >)
//  3. Additive operators (+ -)
//  4. Multiplicative operators (* /)
//  5. Unary/prefix operators (! -)
//  6. Call expressions (callee(...))
//
// Example: in "a + b * c" multiplication binds tighter than addition,
// so it parses as "a + (b * c)".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Equality operators: == !=
	EQUALITY_PRIORITY = 10

	// Relational operators: < >
	// Example: a == b < c is parsed as a == (b < c)
	RELATIONAL_PRIORITY = 20

	// Additive operators: + -
	PLUS_PRIORITY = 30

	// Multiplicative operators: * /
	MUL_PRIORITY = 40

	// Unary/prefix operators: ! -
	// Example: -a * b is parsed as (-a) * b
	PREFIX_PRIORITY = 50

	// Call expressions bind tightest: add(1, 2) * 3
	CALL_PRIORITY = 60
)

// getPrecedence returns the infix binding priority for a token.
// Tokens that never appear in infix position get MINIMUM_PRIORITY,
// which stops the Pratt loop.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	case lexer.LT_OP, lexer.GT_OP:
		return RELATIONAL_PRIORITY

	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	case lexer.LEFT_PAREN:
		return CALL_PRIORITY

	default:
		return MINIMUM_PRIORITY
	}
}

// binaryParseFunction parses an infix construct. The already-parsed
// left operand is passed in; the function consumes the rest and returns
// the completed node (or nil after recording an error).
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction parses a construct that begins an expression:
// a literal, an identifier, a prefix operator, a group, an if, or a
// function literal.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs associates one unary parse function with any
// number of token types.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs associates one binary parse function with any
// number of token types.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
