// Package semantic implements the Gone semantic checker.
//
// The analyzer walks the AST post-order, resolves names against a flat
// symbol table, attaches a registry type to every expression, datatype
// and location node, and validates operators, assignments and branch
// conditions. Errors go to the diagnostic sink; an offending subtree's
// type becomes the error sentinel, which suppresses further diagnostics
// from enclosing expressions.
package semantic

import (
	"github.com/cwbudde/go-gone/internal/ast"
	"github.com/cwbudde/go-gone/internal/errors"
	"github.com/cwbudde/go-gone/internal/types"
)

// binOpNames normalizes the parser's symbolic boolean operators to the
// English names used by the type tables. All other operators are keyed
// by their symbol.
var binOpNames = map[string]string{
	"&&": "and",
	"||": "or",
}

// unaryOpNames is the unary counterpart of binOpNames.
var unaryOpNames = map[string]string{
	"!": "not",
}

// Analyzer performs semantic analysis on a Gone program.
type Analyzer struct {
	symbols  *SymbolTable
	reporter *errors.Reporter
}

// NewAnalyzer creates a semantic analyzer reporting to reporter.
func NewAnalyzer(reporter *errors.Reporter) *Analyzer {
	return &Analyzer{
		symbols:  NewSymbolTable(),
		reporter: reporter,
	}
}

// Check analyzes the whole program.
func (a *Analyzer) Check(program *ast.Program) {
	for _, stmt := range program.Statements {
		a.checkStatement(stmt)
	}
}

func (a *Analyzer) error(node ast.Node, format string, args ...any) {
	a.reporter.Report(node.Pos().Line, format, args...)
}

func (a *Analyzer) checkStatement(stmt ast.Statement) {
	switch node := stmt.(type) {
	case *ast.ConstDeclaration:
		a.checkConstDeclaration(node)
	case *ast.VarDeclaration:
		a.checkVarDeclaration(node)
	case *ast.AssignmentStatement:
		a.checkAssignment(node)
	case *ast.PrintStatement:
		a.checkExpression(node.Value)
	case *ast.IfStatement:
		a.checkIfStatement(node)
	case *ast.WhileStatement:
		a.checkWhileStatement(node)
	}
}

// checkConstDeclaration infers the constant's type from its value and
// enters it into the symbol table.
func (a *Analyzer) checkConstDeclaration(node *ast.ConstDeclaration) {
	node.Type = a.checkExpression(node.Value)
	a.define(node, node.Name, SymbolConst, node.Type)
}

// checkVarDeclaration resolves the declared datatype, validates the
// optional initializer against it, and enters the variable.
func (a *Analyzer) checkVarDeclaration(node *ast.VarDeclaration) {
	a.checkSimpleType(node.DataType)
	node.Type = node.DataType.Type

	if node.Value != nil {
		valueType := a.checkExpression(node.Value)
		if !node.Type.IsError() && !valueType.IsError() && !node.Type.Equals(valueType) {
			a.error(node, "type error. %s = %s", node.Type, valueType)
		}
	}

	a.define(node, node.Name, SymbolVar, node.Type)
}

// define enters a declaration, rejecting redefinitions. The built-in
// type names count as previous definitions too.
func (a *Analyzer) define(node ast.Node, name string, kind SymbolKind, typ *types.Type) {
	if prev, ok := a.symbols.Resolve(name); ok {
		a.error(node, "%s redefined. Previous definition on %s", name, prev.DeclLineString())
		return
	}
	a.symbols.Define(&Symbol{
		Name:     name,
		Kind:     kind,
		Type:     typ,
		DeclLine: node.Pos().Line,
	})
}

// checkAssignment validates the target location and the value type.
func (a *Analyzer) checkAssignment(node *ast.AssignmentStatement) {
	node.Location.Usage = ast.UsageWrite
	a.checkLocation(node.Location)
	valueType := a.checkExpression(node.Value)

	locType := node.Location.Type
	if !locType.IsError() && !valueType.IsError() && !locType.Equals(valueType) {
		a.error(node, "type error. %s = %s", locType, valueType)
	}
}

func (a *Analyzer) checkIfStatement(node *ast.IfStatement) {
	testType := a.checkExpression(node.Condition)
	if !testType.IsError() && !testType.Equals(types.BOOL) {
		a.error(node, "if condition must be bool, not %s", testType)
	}

	// The bodies are still checked so downstream errors surface.
	for _, stmt := range node.Body {
		a.checkStatement(stmt)
	}
	for _, stmt := range node.Else {
		a.checkStatement(stmt)
	}
}

func (a *Analyzer) checkWhileStatement(node *ast.WhileStatement) {
	testType := a.checkExpression(node.Condition)
	if !testType.IsError() && !testType.Equals(types.BOOL) {
		a.error(node, "while condition must be bool, not %s", testType)
	}

	for _, stmt := range node.Body {
		a.checkStatement(stmt)
	}
}

// checkExpression types an expression subtree post-order and returns
// the resulting type. Every node ends up with a non-nil type; detected
// errors yield the error sentinel.
func (a *Analyzer) checkExpression(expr ast.Expression) *types.Type {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		node.Type = types.INT
	case *ast.FloatLiteral:
		node.Type = types.FLOAT
	case *ast.CharLiteral:
		node.Type = types.CHAR
	case *ast.BooleanLiteral:
		node.Type = types.BOOL
	case *ast.ReadValue:
		node.Location.Usage = ast.UsageRead
		a.checkLocation(node.Location)
		node.Type = node.Location.Type
	case *ast.UnaryExpression:
		node.Type = a.checkUnaryExpression(node)
	case *ast.BinaryExpression:
		node.Type = a.checkBinaryExpression(node)
	default:
		return types.ERROR
	}
	return expr.GetType()
}

func (a *Analyzer) checkBinaryExpression(node *ast.BinaryExpression) *types.Type {
	leftType := a.checkExpression(node.Left)
	rightType := a.checkExpression(node.Right)

	op := node.Operator
	if name, ok := binOpNames[op]; ok {
		op = name
	}

	result, ok := leftType.BinaryOp(op, rightType)
	if !ok {
		a.error(node, "Unsupported operation %s %s %s", leftType, op, rightType)
		return types.ERROR
	}
	return result
}

func (a *Analyzer) checkUnaryExpression(node *ast.UnaryExpression) *types.Type {
	operandType := a.checkExpression(node.Operand)

	op := node.Operator
	if name, ok := unaryOpNames[op]; ok {
		op = name
	}

	result, ok := operandType.UnaryOp(op)
	if !ok {
		a.error(node, "Unsupported operation %s %s", op, operandType)
		return types.ERROR
	}
	return result
}

// checkLocation resolves a location's name and validates the usage:
// writes require a variable, reads require a value symbol.
func (a *Analyzer) checkLocation(loc *ast.SimpleLocation) {
	sym, ok := a.symbols.Resolve(loc.Name)
	if !ok {
		a.error(loc, "%s undefined", loc.Name)
		loc.Type = types.ERROR
		return
	}

	switch {
	case loc.Usage == ast.UsageWrite && sym.Kind != SymbolVar:
		a.error(loc, "Can't assign to %s", loc.Name)
		loc.Type = types.ERROR
	case loc.Usage == ast.UsageRead && sym.Kind == SymbolType:
		a.error(loc, "Can't read from %s", loc.Name)
		loc.Type = types.ERROR
	default:
		loc.Type = sym.Type
	}
}

// checkSimpleType resolves a datatype name through the symbol table.
func (a *Analyzer) checkSimpleType(st *ast.SimpleType) {
	sym, ok := a.symbols.Resolve(st.Name)
	if !ok || sym.Kind != SymbolType {
		a.error(st, "unknown type name %s", st.Name)
		st.Type = types.ERROR
		return
	}
	st.Type = sym.Type
}
