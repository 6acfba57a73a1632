package lexer

import "fmt"

// TokenType represents the type of a lexical token in the Monkey language.
// It is defined as a string whose value is the token's canonical textual
// form, so token types can be printed directly into parser error messages
// ("expected next token to be =, got ; instead").
type TokenType string

// TokenType constants: the closed set of token kinds in Monkey.
const (
	// Special types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// ILLEGAL_TYPE represents a byte that belongs to no token category
	ILLEGAL_TYPE TokenType = "ILLEGAL"

	// Operators
	ASSIGN_OP TokenType = "="  // Assignment operator
	PLUS_OP   TokenType = "+"  // Addition operator
	MINUS_OP  TokenType = "-"  // Subtraction / negation operator
	NOT_OP    TokenType = "!"  // Logical NOT operator
	MUL_OP    TokenType = "*"  // Multiplication operator
	DIV_OP    TokenType = "/"  // Division operator
	LT_OP     TokenType = "<"  // Less than
	GT_OP     TokenType = ">"  // Greater than
	EQ_OP     TokenType = "==" // Equality comparison
	NE_OP     TokenType = "!=" // Not equal comparison

	// Keywords
	FUNC_KEY   TokenType = "fn"     // Function literal keyword
	LET_KEY    TokenType = "let"    // Binding keyword
	IF_KEY     TokenType = "if"     // Conditional if keyword
	ELSE_KEY   TokenType = "else"   // Conditional else keyword
	RETURN_KEY TokenType = "return" // Return statement keyword

	// Identifiers and literals
	IDENTIFIER_ID TokenType = "Identifier"    // User-defined name
	INT_LIT       TokenType = "IntLiteral"    // Integer literal (e.g. 42)
	BOOL_LIT      TokenType = "BoolLiteral"   // Boolean literal (true or false)
	STRING_LIT    TokenType = "StringLiteral" // String literal (e.g. "hello")

	// Structural tokens
	LEFT_PAREN  TokenType = "(" // Left parenthesis - grouping, parameter and argument lists
	RIGHT_PAREN TokenType = ")" // Right parenthesis
	LEFT_BRACE  TokenType = "{" // Left brace - blocks
	RIGHT_BRACE TokenType = "}" // Right brace

	// Delimiters
	COMMA_DELIM     TokenType = "," // Comma - separates parameters and arguments
	SEMICOLON_DELIM TokenType = ";" // Semicolon - optional statement terminator
)

// KEYWORDS_MAP is the lookup table that maps keyword strings to their
// token types. When the lexer has read an identifier-shaped lexeme it
// consults this map to distinguish reserved words from user names.
// Note that "true" and "false" are routed to BOOL_LIT rather than
// keyword types of their own; the parser reads the boolean value back
// out of the token literal.
var KEYWORDS_MAP = map[string]TokenType{
	"fn":     FUNC_KEY,
	"let":    LET_KEY,
	"true":   BOOL_LIT,
	"false":  BOOL_LIT,
	"if":     IF_KEY,
	"else":   ELSE_KEY,
	"return": RETURN_KEY,
}

// Token represents a single lexical token in Monkey source code.
// It carries the token's type, the literal text it was scanned from,
// and the line/column where it starts (1-indexed). Tokens are never
// mutated after the lexer produces them.
//
// The Literal field doubles as the token's canonical display form:
// punctuation and keywords store their fixed spelling, identifiers and
// literals store the scanned lexeme, and EOF stores "EOF".
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // The actual text from source code
	Line    int       // Line number in source (1-indexed)
	Column  int       // Column number in source (1-indexed)
}

// NewToken creates a new Token with the specified type and literal value
// and no position metadata. Tests use this to state expected tokens
// without caring about positions.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
	}
}

// NewTokenWithMetadata creates a new Token with full position metadata.
// The lexer uses this constructor for every token it emits.
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

// Print outputs a "literal:type" rendering of the token to standard
// output. Debugging aid only.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupIdent determines the token type for an identifier lexeme:
// the keyword's type if the lexeme is reserved, IDENTIFIER_ID otherwise.
func lookupIdent(ident string) TokenType {
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	return IDENTIFIER_ID
}
