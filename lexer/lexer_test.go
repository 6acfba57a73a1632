package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests full-stream tokenization of operators,
// literals and identifiers
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: `=+(){},;`,
			ExpectedTokens: []Token{
				NewToken(ASSIGN_OP, "="),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(COMMA_DELIM, ","),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `let add = fn(x, y) { x + y; };`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "add"),
				NewToken(ASSIGN_OP, "="),
				NewToken(FUNC_KEY, "fn"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `!-/*5; 5 < 10 > 5;`,
			ExpectedTokens: []Token{
				NewToken(NOT_OP, "!"),
				NewToken(MINUS_OP, "-"),
				NewToken(DIV_OP, "/"),
				NewToken(MUL_OP, "*"),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_LIT, "5"),
				NewToken(LT_OP, "<"),
				NewToken(INT_LIT, "10"),
				NewToken(GT_OP, ">"),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `if (5 < 10) { return true; } else { return false; }`,
			ExpectedTokens: []Token{
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(INT_LIT, "5"),
				NewToken(LT_OP, "<"),
				NewToken(INT_LIT, "10"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(BOOL_LIT, "true"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(ELSE_KEY, "else"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(BOOL_LIT, "false"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `10 == 10; 10 != 9;`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "10"),
				NewToken(EQ_OP, "=="),
				NewToken(INT_LIT, "10"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_LIT, "10"),
				NewToken(NE_OP, "!="),
				NewToken(INT_LIT, "9"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `"foobar" "foo bar" ""`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "foobar"),
				NewToken(STRING_LIT, "foo bar"),
				NewToken(STRING_LIT, ""),
			},
		},
		{
			Input: `__a19bcd_aa90 _x`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
				NewToken(IDENTIFIER_ID, "_x"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		tokens := lex.ConsumeTokens()
		assert.Equal(t, len(test.ExpectedTokens), len(tokens), "input: %s", test.Input)
		for i, expected := range test.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type, "input: %s token %d", test.Input, i)
			assert.Equal(t, expected.Literal, tokens[i].Literal, "input: %s token %d", test.Input, i)
		}
	}
}

// TestNewLexer_AdjacentIdentifiers verifies the reader discipline:
// two identifiers separated by a single space yield exactly two
// Identifier tokens followed by EOF, with no byte swallowed in between.
func TestNewLexer_AdjacentIdentifiers(t *testing.T) {
	lex := NewLexer("foo bar")

	first := lex.NextToken()
	assert.Equal(t, IDENTIFIER_ID, first.Type)
	assert.Equal(t, "foo", first.Literal)

	second := lex.NextToken()
	assert.Equal(t, IDENTIFIER_ID, second.Type)
	assert.Equal(t, "bar", second.Literal)

	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
}

// TestNewLexer_EOFIsStable verifies EOF is returned on every call after
// the input is exhausted.
func TestNewLexer_EOFIsStable(t *testing.T) {
	lex := NewLexer("1")
	assert.Equal(t, INT_LIT, lex.NextToken().Type)
	for i := 0; i < 5; i++ {
		assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
	}
}

// TestNewLexer_IllegalBytes verifies unrecognized bytes become ILLEGAL
// tokens without derailing the rest of the stream.
func TestNewLexer_IllegalBytes(t *testing.T) {
	lex := NewLexer("1 @ 2")
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, INT_LIT, tokens[0].Type)
	assert.Equal(t, ILLEGAL_TYPE, tokens[1].Type)
	assert.Equal(t, "@", tokens[1].Literal)
	assert.Equal(t, INT_LIT, tokens[2].Type)
}

// TestNewLexer_UnterminatedString verifies a string that never closes
// runs to end of input and the stream then reports EOF.
func TestNewLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"abc`)
	token := lex.NextToken()
	assert.Equal(t, STRING_LIT, token.Type)
	assert.Equal(t, "abc", token.Literal)
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
}

// TestNewLexer_Positions verifies line and column metadata survives
// newlines.
func TestNewLexer_Positions(t *testing.T) {
	lex := NewLexer("let x\nlet y")
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 4, len(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[2].Line)
	assert.Equal(t, 1, tokens[2].Column)
}
