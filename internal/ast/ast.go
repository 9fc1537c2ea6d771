// Package ast defines the Abstract Syntax Tree node types for Gone.
package ast

import (
	"bytes"
	"fmt"

	"github.com/cwbudde/go-gone/internal/lexer"
	"github.com/cwbudde/go-gone/internal/types"
)

// Node is the base interface for all AST nodes.
// Every node reports the literal of its representative token, its
// source position, and a string rendering for debugging and tests.
type Node interface {
	// TokenLiteral returns the literal value of the token this node is associated with.
	TokenLiteral() string

	// String returns a string representation of the node for debugging and testing.
	String() string

	// Pos returns the position of the node in the source code for error reporting.
	Pos() lexer.Position
}

// Statement represents a node that performs an action but doesn't produce a value.
type Statement interface {
	Node
	statementNode()
}

// Expression represents any node that produces a value. The semantic
// checker attaches a resolved type to every expression node.
type Expression interface {
	Node
	expressionNode()
	GetType() *types.Type
	SetType(*types.Type)
}

// Program is the root node of the AST.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer

	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
	}

	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1, Offset: 0}
}

// Usage tags how a location is used. The semantic checker fills it in
// before resolving the location: reads and writes obey different rules.
type Usage int

const (
	UsageNone Usage = iota
	UsageRead
	UsageWrite
)

func (u Usage) String() string {
	switch u {
	case UsageRead:
		return "read"
	case UsageWrite:
		return "write"
	default:
		return "none"
	}
}

// SimpleLocation is an identifier denoting a storage cell. Usage and
// Type are filled in by the semantic checker.
type SimpleLocation struct {
	Token lexer.Token // The IDENT token
	Name  string
	Usage Usage
	Type  *types.Type
}

func (sl *SimpleLocation) TokenLiteral() string { return sl.Token.Literal }
func (sl *SimpleLocation) String() string       { return sl.Name }
func (sl *SimpleLocation) Pos() lexer.Position  { return sl.Token.Pos }

// SimpleType is a type name appearing in a declaration. Type is
// resolved against the registry by the semantic checker.
type SimpleType struct {
	Token lexer.Token // The IDENT token naming the type
	Name  string
	Type  *types.Type
}

func (st *SimpleType) TokenLiteral() string { return st.Token.Literal }
func (st *SimpleType) String() string       { return st.Name }
func (st *SimpleType) Pos() lexer.Position  { return st.Token.Pos }

// IntegerLiteral represents an integer literal value.
type IntegerLiteral struct {
	Token lexer.Token // The INT token
	Value int64
	Type  *types.Type
}

func (il *IntegerLiteral) expressionNode()         {}
func (il *IntegerLiteral) TokenLiteral() string    { return il.Token.Literal }
func (il *IntegerLiteral) String() string          { return il.Token.Literal }
func (il *IntegerLiteral) Pos() lexer.Position     { return il.Token.Pos }
func (il *IntegerLiteral) GetType() *types.Type    { return il.Type }
func (il *IntegerLiteral) SetType(typ *types.Type) { il.Type = typ }

// FloatLiteral represents a floating-point literal value.
type FloatLiteral struct {
	Token lexer.Token // The FLOAT token
	Value float64
	Type  *types.Type
}

func (fl *FloatLiteral) expressionNode()         {}
func (fl *FloatLiteral) TokenLiteral() string    { return fl.Token.Literal }
func (fl *FloatLiteral) String() string          { return fl.Token.Literal }
func (fl *FloatLiteral) Pos() lexer.Position     { return fl.Token.Pos }
func (fl *FloatLiteral) GetType() *types.Type    { return fl.Type }
func (fl *FloatLiteral) SetType(typ *types.Type) { fl.Type = typ }

// CharLiteral represents a character literal value. Value holds the
// decoded character, not the source spelling.
type CharLiteral struct {
	Token lexer.Token // The CHAR token
	Value rune
	Type  *types.Type
}

func (cl *CharLiteral) expressionNode()         {}
func (cl *CharLiteral) TokenLiteral() string    { return cl.Token.Literal }
func (cl *CharLiteral) String() string          { return fmt.Sprintf("%q", cl.Value) }
func (cl *CharLiteral) Pos() lexer.Position     { return cl.Token.Pos }
func (cl *CharLiteral) GetType() *types.Type    { return cl.Type }
func (cl *CharLiteral) SetType(typ *types.Type) { cl.Type = typ }

// BooleanLiteral represents a boolean literal value (true or false).
type BooleanLiteral struct {
	Token lexer.Token // The TRUE or FALSE token
	Value bool
	Type  *types.Type
}

func (bl *BooleanLiteral) expressionNode()         {}
func (bl *BooleanLiteral) TokenLiteral() string    { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string          { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() lexer.Position     { return bl.Token.Pos }
func (bl *BooleanLiteral) GetType() *types.Type    { return bl.Type }
func (bl *BooleanLiteral) SetType(typ *types.Type) { bl.Type = typ }

// UnaryExpression represents a unary operation such as -x or !done.
type UnaryExpression struct {
	Token    lexer.Token // The operator token
	Operator string
	Operand  Expression
	Type     *types.Type
}

func (ue *UnaryExpression) expressionNode()         {}
func (ue *UnaryExpression) TokenLiteral() string    { return ue.Token.Literal }
func (ue *UnaryExpression) Pos() lexer.Position     { return ue.Token.Pos }
func (ue *UnaryExpression) GetType() *types.Type    { return ue.Type }
func (ue *UnaryExpression) SetType(typ *types.Type) { ue.Type = typ }
func (ue *UnaryExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(ue.Operator)
	out.WriteString(ue.Operand.String())
	out.WriteString(")")

	return out.String()
}

// BinaryExpression represents a binary operation such as a + b or x < y.
type BinaryExpression struct {
	Token    lexer.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
	Type     *types.Type
}

func (be *BinaryExpression) expressionNode()         {}
func (be *BinaryExpression) TokenLiteral() string    { return be.Token.Literal }
func (be *BinaryExpression) Pos() lexer.Position     { return be.Token.Pos }
func (be *BinaryExpression) GetType() *types.Type    { return be.Type }
func (be *BinaryExpression) SetType(typ *types.Type) { be.Type = typ }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")

	return out.String()
}

// ReadValue wraps a location used as an expression: it reads the
// current value of the cell the location denotes.
type ReadValue struct {
	Token    lexer.Token // The IDENT token of the location
	Location *SimpleLocation
	Type     *types.Type
}

func (rv *ReadValue) expressionNode()         {}
func (rv *ReadValue) TokenLiteral() string    { return rv.Token.Literal }
func (rv *ReadValue) String() string          { return rv.Location.String() }
func (rv *ReadValue) Pos() lexer.Position     { return rv.Token.Pos }
func (rv *ReadValue) GetType() *types.Type    { return rv.Type }
func (rv *ReadValue) SetType(typ *types.Type) { rv.Type = typ }
