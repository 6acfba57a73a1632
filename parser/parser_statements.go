package parser

import "github.com/monkeylang/gomonkey/lexer"

// parseStatement dispatches on the current token: let and return have
// dedicated productions, everything else is an expression statement.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY:
		return par.parseLetStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseLetStatement parses: let IDENT = <expr> ;?
// The current token is 'let'. Both the identifier and the '=' are
// required; a mismatch records an error and abandons the statement.
func (par *Parser) parseLetStatement() StatementNode {
	letToken := par.CurrToken

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	name := &IdentifierExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}

	if !par.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}

	par.advance()
	value := par.parseExpression(MINIMUM_PRIORITY)
	if value == nil {
		return nil
	}

	// Trailing semicolon is optional
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return &LetStatementNode{Token: letToken, Name: name, Value: value}
}

// parseReturnStatement parses: return <expr> ;?
func (par *Parser) parseReturnStatement() StatementNode {
	returnToken := par.CurrToken

	par.advance()
	value := par.parseExpression(MINIMUM_PRIORITY)
	if value == nil {
		return nil
	}

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return &ReturnStatementNode{Token: returnToken, Value: value}
}

// parseExpressionStatement parses a bare expression in statement
// position, with an optional trailing semicolon.
func (par *Parser) parseExpressionStatement() StatementNode {
	firstToken := par.CurrToken

	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
	}

	return &ExpressionStatementNode{Token: firstToken, Expr: expr}
}

// parseBlockStatement parses the statements between braces. The current
// token is the opening '{'; on return the current token is the closing
// '}' (or EOF for an unterminated block, which is recorded as an error
// here).
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{Token: par.CurrToken}
	block.Statements = make([]StatementNode, 0)

	par.advance()
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	if par.CurrToken.Type == lexer.EOF_TYPE {
		par.addError("expected next token to be }, got EOF instead")
	}

	return block
}
