package ast

import (
	"fmt"
	"io"
)

// Dump writes an indented tree rendering of the program, one node per
// line prefixed with its source line number. When showTypes is true,
// expression nodes also print their resolved type; run the semantic
// checker first or every type prints as <unresolved>.
func Dump(w io.Writer, program *Program, showTypes bool) {
	d := &dumper{w: w, showTypes: showTypes}
	for _, stmt := range program.Statements {
		d.statement(stmt, 0)
	}
}

type dumper struct {
	w         io.Writer
	showTypes bool
}

func (d *dumper) printf(node Node, depth int, format string, args ...any) {
	fmt.Fprintf(d.w, "%4d: %*s", node.Pos().Line, 4*depth, "")
	fmt.Fprintf(d.w, format, args...)
	fmt.Fprintln(d.w)
}

func (d *dumper) statement(stmt Statement, depth int) {
	switch node := stmt.(type) {
	case *ConstDeclaration:
		d.printf(node, depth, "ConstDeclaration(name=%s)", node.Name)
		d.expression(node.Value, depth+1)
	case *VarDeclaration:
		d.printf(node, depth, "VarDeclaration(name=%s)", node.Name)
		d.datatype(node.DataType, depth+1)
		if node.Value != nil {
			d.expression(node.Value, depth+1)
		}
	case *AssignmentStatement:
		d.printf(node, depth, "Assignment")
		d.location(node.Location, depth+1)
		d.expression(node.Value, depth+1)
	case *PrintStatement:
		d.printf(node, depth, "PrintStatement")
		d.expression(node.Value, depth+1)
	case *IfStatement:
		d.printf(node, depth, "IfStatement")
		d.expression(node.Condition, depth+1)
		for _, s := range node.Body {
			d.statement(s, depth+1)
		}
		for _, s := range node.Else {
			d.statement(s, depth+1)
		}
	case *WhileStatement:
		d.printf(node, depth, "WhileStatement")
		d.expression(node.Condition, depth+1)
		for _, s := range node.Body {
			d.statement(s, depth+1)
		}
	}
}

func (d *dumper) expression(expr Expression, depth int) {
	label := ""
	switch node := expr.(type) {
	case *IntegerLiteral:
		label = fmt.Sprintf("IntegerLiteral(%d)", node.Value)
	case *FloatLiteral:
		label = fmt.Sprintf("FloatLiteral(%g)", node.Value)
	case *CharLiteral:
		label = fmt.Sprintf("CharLiteral(%q)", node.Value)
	case *BooleanLiteral:
		label = fmt.Sprintf("BooleanLiteral(%t)", node.Value)
	case *UnaryExpression:
		label = fmt.Sprintf("UnaryOp(%s)", node.Operator)
	case *BinaryExpression:
		label = fmt.Sprintf("BinOp(%s)", node.Operator)
	case *ReadValue:
		label = "ReadValue"
	default:
		label = fmt.Sprintf("%T", expr)
	}
	if d.showTypes {
		label += fmt.Sprintf(" type: %s", expr.GetType())
	}
	d.printf(expr, depth, "%s", label)

	switch node := expr.(type) {
	case *UnaryExpression:
		d.expression(node.Operand, depth+1)
	case *BinaryExpression:
		d.expression(node.Left, depth+1)
		d.expression(node.Right, depth+1)
	case *ReadValue:
		d.location(node.Location, depth+1)
	}
}

func (d *dumper) location(loc *SimpleLocation, depth int) {
	if d.showTypes {
		d.printf(loc, depth, "SimpleLocation(%s, usage=%s) type: %s", loc.Name, loc.Usage, loc.Type)
		return
	}
	d.printf(loc, depth, "SimpleLocation(%s)", loc.Name)
}

func (d *dumper) datatype(st *SimpleType, depth int) {
	if d.showTypes {
		d.printf(st, depth, "SimpleType(%s) type: %s", st.Name, st.Type)
		return
	}
	d.printf(st, depth, "SimpleType(%s)", st.Name)
}
