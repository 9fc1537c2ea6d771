// Package ast statement node definitions.
package ast

import (
	"bytes"

	"github.com/cwbudde/go-gone/internal/lexer"
	"github.com/cwbudde/go-gone/internal/types"
)

// ConstDeclaration represents a constant declaration.
// Example:
//
//	const limit = 10;
//
// The constant's type is inferred from its value by the checker.
type ConstDeclaration struct {
	Token lexer.Token // The CONST token
	Name  string
	Value Expression
	Type  *types.Type
}

func (cd *ConstDeclaration) statementNode()       {}
func (cd *ConstDeclaration) TokenLiteral() string { return cd.Token.Literal }
func (cd *ConstDeclaration) Pos() lexer.Position  { return cd.Token.Pos }
func (cd *ConstDeclaration) String() string {
	var out bytes.Buffer

	out.WriteString("const ")
	out.WriteString(cd.Name)
	out.WriteString(" = ")
	out.WriteString(cd.Value.String())
	out.WriteString(";")

	return out.String()
}

// VarDeclaration represents a variable declaration with an explicit
// datatype and an optional initializer.
// Examples:
//
//	var n int;
//	var x float = 3.5;
type VarDeclaration struct {
	Token    lexer.Token // The VAR token
	Name     string
	DataType *SimpleType
	Value    Expression // nil when no initializer is given
	Type     *types.Type
}

func (vd *VarDeclaration) statementNode()       {}
func (vd *VarDeclaration) TokenLiteral() string { return vd.Token.Literal }
func (vd *VarDeclaration) Pos() lexer.Position  { return vd.Token.Pos }
func (vd *VarDeclaration) String() string {
	var out bytes.Buffer

	out.WriteString("var ")
	out.WriteString(vd.Name)
	out.WriteString(" ")
	out.WriteString(vd.DataType.String())
	if vd.Value != nil {
		out.WriteString(" = ")
		out.WriteString(vd.Value.String())
	}
	out.WriteString(";")

	return out.String()
}

// AssignmentStatement stores a value into a location.
// Example:
//
//	n = n - 1;
type AssignmentStatement struct {
	Token    lexer.Token // The '=' token
	Location *SimpleLocation
	Value    Expression
}

func (as *AssignmentStatement) statementNode()       {}
func (as *AssignmentStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignmentStatement) Pos() lexer.Position  { return as.Token.Pos }
func (as *AssignmentStatement) String() string {
	var out bytes.Buffer

	out.WriteString(as.Location.String())
	out.WriteString(" = ")
	out.WriteString(as.Value.String())
	out.WriteString(";")

	return out.String()
}

// PrintStatement evaluates an expression and prints its value.
// Example:
//
//	print n + 1;
type PrintStatement struct {
	Token lexer.Token // The PRINT token
	Value Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) Pos() lexer.Position  { return ps.Token.Pos }
func (ps *PrintStatement) String() string {
	var out bytes.Buffer

	out.WriteString("print ")
	out.WriteString(ps.Value.String())
	out.WriteString(";")

	return out.String()
}
