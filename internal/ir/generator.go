package ir

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-gone/internal/ast"
)

// binaryOpCodes maps the parser's binary operator symbols to opcodes.
var binaryOpCodes = map[string]OpCode{
	"+":  OpBinaryAdd,
	"-":  OpBinarySub,
	"*":  OpBinaryMul,
	"/":  OpBinaryDiv,
	"==": OpBinaryEq,
	"!=": OpBinaryNe,
	"<":  OpBinaryLt,
	"<=": OpBinaryLe,
	">":  OpBinaryGt,
	">=": OpBinaryGe,
	"&&": OpBinaryAnd,
	"||": OpBinaryOr,
}

// unaryOpCodes maps unary operator symbols to opcodes.
var unaryOpCodes = map[string]OpCode{
	"+": OpUnaryPos,
	"-": OpUnaryNeg,
	"!": OpUnaryNot,
}

// Generator lowers a type-checked AST into a flat instruction list.
// Run it only on programs that checked without diagnostics.
type Generator struct {
	code  []Instruction
	label int
}

// NewGenerator creates an empty generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate lowers the program and returns the instruction list.
func Generate(program *ast.Program) []Instruction {
	return NewGenerator().Generate(program)
}

// Generate lowers the program and returns the instruction list.
func (g *Generator) Generate(program *ast.Program) []Instruction {
	for _, stmt := range program.Statements {
		g.genStatement(stmt)
	}
	return g.code
}

// newBlock mints a fresh block label. Labels are monotonically
// increasing and unique within one generator.
func (g *Generator) newBlock() string {
	g.label++
	return fmt.Sprintf("b%d", g.label)
}

func (g *Generator) emit(op OpCode, operand any) {
	g.code = append(g.code, Instruction{Op: op, Operand: operand})
}

func (g *Generator) genStatement(stmt ast.Statement) {
	switch node := stmt.(type) {
	case *ast.ConstDeclaration:
		g.genExpression(node.Value)
		g.emit(OpStoreGlobal, node.Name)
	case *ast.VarDeclaration:
		// A declaration without initializer reserves the global but
		// emits nothing.
		if node.Value != nil {
			g.genExpression(node.Value)
			g.emit(OpStoreGlobal, node.Name)
		}
	case *ast.AssignmentStatement:
		g.genExpression(node.Value)
		g.emit(OpStoreGlobal, node.Location.Name)
	case *ast.PrintStatement:
		g.genExpression(node.Value)
		g.emit(OpPrint, nil)
	case *ast.IfStatement:
		g.genIf(node)
	case *ast.WhileStatement:
		g.genWhile(node)
	}
}

// genIf lowers an if/else. The else block is emitted even when the
// else body is empty so every JUMP_IF_FALSE target exists.
func (g *Generator) genIf(node *ast.IfStatement) {
	g.genExpression(node.Condition)

	thenBlock := g.newBlock()
	elseBlock := g.newBlock()
	mergeBlock := g.newBlock()

	g.emit(OpJumpIfFalse, elseBlock)

	g.emit(OpBlock, thenBlock)
	for _, stmt := range node.Body {
		g.genStatement(stmt)
	}
	g.emit(OpJump, mergeBlock)

	g.emit(OpBlock, elseBlock)
	for _, stmt := range node.Else {
		g.genStatement(stmt)
	}

	g.emit(OpBlock, mergeBlock)
}

// genWhile lowers a while loop: the test re-runs at the start block on
// every iteration.
func (g *Generator) genWhile(node *ast.WhileStatement) {
	startBlock := g.newBlock()
	bodyBlock := g.newBlock()
	endBlock := g.newBlock()

	g.emit(OpBlock, startBlock)
	g.genExpression(node.Condition)
	g.emit(OpJumpIfFalse, endBlock)

	g.emit(OpBlock, bodyBlock)
	for _, stmt := range node.Body {
		g.genStatement(stmt)
	}
	g.emit(OpJump, startBlock)

	g.emit(OpBlock, endBlock)
}

// genExpression lowers an expression in left-to-right post-order:
// operands are pushed before the operation that consumes them.
func (g *Generator) genExpression(expr ast.Expression) {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		g.emit(OpLoadConst, node.Value)
	case *ast.FloatLiteral:
		g.emit(OpLoadConst, node.Value)
	case *ast.CharLiteral:
		g.emit(OpLoadConst, node.Value)
	case *ast.BooleanLiteral:
		g.emit(OpLoadConst, node.Value)
	case *ast.ReadValue:
		g.emit(OpLoadGlobal, node.Location.Name)
	case *ast.UnaryExpression:
		g.genExpression(node.Operand)
		g.emit(unaryOpCodes[node.Operator], nil)
	case *ast.BinaryExpression:
		g.genExpression(node.Left)
		g.genExpression(node.Right)
		g.emit(binaryOpCodes[node.Operator], nil)
	}
}

// WriteListing writes the instructions one per line to w.
func WriteListing(w io.Writer, code []Instruction) {
	for _, inst := range code {
		fmt.Fprintln(w, inst.String())
	}
}
