package main

import (
	"bytes"
	"fmt"

	"github.com/monkeylang/gomonkey/parser"
)

const INDENT_SIZE = 4

// PrintingVisitor renders the AST as an indented tree, one node per
// line. Used by the parse command to show how a program was understood.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent indents the buffer by the current indent size
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// visitChildren renders a group of child nodes one level deeper
func (p *PrintingVisitor) visitChildren(nodes ...parser.Node) {
	p.Indent += INDENT_SIZE
	for _, node := range nodes {
		node.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitRootNode visits the root node
func (p *PrintingVisitor) VisitRootNode(node parser.RootNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Root Node (%d statements)\n", len(node.Statements)))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIdentifierExpressionNode visits an identifier node
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node parser.IdentifierExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Identifier Node [%s]\n", node.Value))
}

// VisitIntegerLiteralExpressionNode visits an integer literal node
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node parser.IntegerLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Integer Node [%s] (%d)\n", node.Literal(), node.Value))
}

// VisitBooleanLiteralExpressionNode visits a boolean literal node
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node parser.BooleanLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Boolean Node [%s] (%t)\n", node.Literal(), node.Value))
}

// VisitStringLiteralExpressionNode visits a string literal node
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node parser.StringLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting String Node [%s]\n", node.Literal()))
}

// VisitUnaryExpressionNode visits a prefix operation node
func (p *PrintingVisitor) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Unary Node [%s]\n", node.Operation.Literal))
	p.visitChildren(node.Right)
}

// VisitBinaryExpressionNode visits an infix operation node
func (p *PrintingVisitor) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Binary Node [%s]\n", node.Operation.Literal))
	p.visitChildren(node.Left, node.Right)
}

// VisitIfExpressionNode visits a conditional node: condition, then the
// consequence block, then the alternative block when present
func (p *PrintingVisitor) VisitIfExpressionNode(node parser.IfExpressionNode) {
	p.indent()
	p.Buf.WriteString("Visiting If Node\n")
	if node.Alternative != nil {
		p.visitChildren(node.Condition, node.Consequence, node.Alternative)
	} else {
		p.visitChildren(node.Condition, node.Consequence)
	}
}

// VisitFunctionLiteralExpressionNode visits a function literal node
func (p *PrintingVisitor) VisitFunctionLiteralExpressionNode(node parser.FunctionLiteralExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Function Node (%d params)\n", len(node.Params)))
	p.Indent += INDENT_SIZE
	for _, param := range node.Params {
		param.Accept(p)
	}
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode visits a call node: callee first, then the
// arguments in evaluation order
func (p *PrintingVisitor) VisitCallExpressionNode(node parser.CallExpressionNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Call Node (%d args)\n", len(node.Args)))
	p.Indent += INDENT_SIZE
	node.Callee.Accept(p)
	for _, arg := range node.Args {
		arg.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitLetStatementNode visits a let statement node
func (p *PrintingVisitor) VisitLetStatementNode(node parser.LetStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Let Node [%s]\n", node.Name.Value))
	p.visitChildren(node.Value)
}

// VisitReturnStatementNode visits a return statement node
func (p *PrintingVisitor) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	p.indent()
	p.Buf.WriteString("Visiting Return Node\n")
	p.visitChildren(node.Value)
}

// VisitExpressionStatementNode visits an expression statement node
func (p *PrintingVisitor) VisitExpressionStatementNode(node parser.ExpressionStatementNode) {
	node.Expr.Accept(p)
}

// VisitBlockStatementNode visits a block node
func (p *PrintingVisitor) VisitBlockStatementNode(node parser.BlockStatementNode) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting Block Node (%d statements)\n", len(node.Statements)))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// String returns the accumulated rendering
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
