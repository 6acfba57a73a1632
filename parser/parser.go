// Package parser implements a Pratt parser (top-down operator
// precedence parser) for the Monkey language.
//
// The parser converts the lexer's token stream into an Abstract Syntax
// Tree. It handles:
//   - Expressions (binary, unary, literals, identifiers, grouping)
//   - Conditionals (if/else expressions)
//   - Function literals and call expressions
//   - Statements (let, return, expression statements)
//   - Operator precedence and left associativity
//
// Errors are collected rather than thrown: every syntactic mismatch
// appends a message and the statement loop resumes at the token after
// the one where the failing statement stopped, so one bad line can
// report several problems (including follow-on ones). The
// caller decides whether to evaluate based on HasErrors.
package parser

import (
	"fmt"

	"github.com/monkeylang/gomonkey/lexer"
)

// Parser holds the parsing state: the lexer, a two-token lookahead
// window, the Pratt function tables, and the accumulated errors.
type Parser struct {
	Lex       lexer.Lexer // Lexer instance producing the token stream
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing, keyed by token type.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix operators and calls

	// Errors collected during parsing, in encounter order.
	Errors []string
}

// NewParser creates a Parser over the given source code, registers the
// grammar's parse functions, and primes the lookahead window. The
// parser is ready to use immediately; call Parse to build the tree.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex: lexer.NewLexer(src),
	}
	par.init()
	return par
}

// init sets up the function tables, registers a parse function for
// every token type that can start or continue an expression, and
// advances twice so CurrToken and NextToken are both valid.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Literals and identifiers
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.BOOL_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)

	// Prefix operators: !expr, -expr
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.NOT_OP, lexer.MINUS_OP)

	// Grouped expressions: (expr)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Conditionals and function literals
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF_KEY)
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FUNC_KEY)

	// Infix operators
	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP,
		lexer.LT_OP, lexer.GT_OP, lexer.EQ_OP, lexer.NE_OP)

	// Call expressions: callee(args)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Prime the two-token lookahead
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token: CurrToken becomes
// NextToken and NextToken is fetched from the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks that the next token has the expected type and
// advances onto it. On mismatch it records the canonical error and
// stays put.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks that the next token has the expected type, without
// advancing. On mismatch it appends the canonical message, using the
// token type's textual form for the expectation and the actual token's
// literal for what was found.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.addError(fmt.Sprintf("expected next token to be %s, got %s instead",
			expected, par.NextToken.Literal))
		return false
	}
	return true
}

// addError appends an error message to the parser's error list.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether parsing recorded any errors. Drivers must
// not evaluate a program that parsed with errors.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parse errors in the order they were recorded.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse converts the source into an AST. It repeatedly parses
// statements and advances, stopping at EOF. Statements that failed to
// parse contribute errors instead of nodes; the per-statement advance
// in this loop is what resynchronizes after a failure.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		par.advance()
	}

	return root
}
