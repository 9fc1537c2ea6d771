// Package ast control flow node definitions.
package ast

import (
	"bytes"

	"github.com/cwbudde/go-gone/internal/lexer"
)

// IfStatement represents an if statement with an optional else block.
// Examples:
//
//	if n > 0 { print n; }
//	if done { print 1; } else { print 0; }
type IfStatement struct {
	Token     lexer.Token // The IF token
	Condition Expression
	Body      []Statement
	Else      []Statement // empty when no else block is given
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() lexer.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer

	out.WriteString("if ")
	out.WriteString(is.Condition.String())
	out.WriteString(" { ")
	for _, stmt := range is.Body {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	if len(is.Else) > 0 {
		out.WriteString(" else { ")
		for _, stmt := range is.Else {
			out.WriteString(stmt.String())
			out.WriteString(" ")
		}
		out.WriteString("}")
	}

	return out.String()
}

// WhileStatement represents a while loop.
// Example:
//
//	while n > 0 { n = n - 1; }
type WhileStatement struct {
	Token     lexer.Token // The WHILE token
	Condition Expression
	Body      []Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() lexer.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer

	out.WriteString("while ")
	out.WriteString(ws.Condition.String())
	out.WriteString(" { ")
	for _, stmt := range ws.Body {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")

	return out.String()
}
