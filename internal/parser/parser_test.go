package parser

import (
	"testing"

	"github.com/cwbudde/go-gone/internal/ast"
	"github.com/cwbudde/go-gone/internal/errors"
	"github.com/cwbudde/go-gone/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseProgram parses input and requires a clean parse.
func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	reporter := errors.NewReporter(nil)
	program := Parse(input, reporter)
	require.Zero(t, reporter.Count(), "unexpected diagnostics: %v", reporter.Diagnostics())
	return program
}

func TestParseConstDeclaration(t *testing.T) {
	program := parseProgram(t, "const limit = 10;")
	require.Len(t, program.Statements, 1)

	decl, ok := program.Statements[0].(*ast.ConstDeclaration)
	require.True(t, ok)
	assert.Equal(t, "limit", decl.Name)

	value, ok := decl.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(10), value.Value)
}

func TestParseVarDeclaration(t *testing.T) {
	t.Run("with initializer", func(t *testing.T) {
		program := parseProgram(t, "var x float = 3.5;")
		require.Len(t, program.Statements, 1)

		decl, ok := program.Statements[0].(*ast.VarDeclaration)
		require.True(t, ok)
		assert.Equal(t, "x", decl.Name)
		assert.Equal(t, "float", decl.DataType.Name)

		value, ok := decl.Value.(*ast.FloatLiteral)
		require.True(t, ok)
		assert.Equal(t, 3.5, value.Value)
	})

	t.Run("without initializer", func(t *testing.T) {
		program := parseProgram(t, "var n int;")
		require.Len(t, program.Statements, 1)

		decl, ok := program.Statements[0].(*ast.VarDeclaration)
		require.True(t, ok)
		assert.Equal(t, "n", decl.Name)
		assert.Equal(t, "int", decl.DataType.Name)
		assert.Nil(t, decl.Value)
	})
}

func TestParseAssignment(t *testing.T) {
	program := parseProgram(t, "n = n - 1;")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.AssignmentStatement)
	require.True(t, ok)
	assert.Equal(t, "n", stmt.Location.Name)

	value, ok := stmt.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "-", value.Operator)
}

func TestParsePrintStatement(t *testing.T) {
	program := parseProgram(t, "print 'a';")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.PrintStatement)
	require.True(t, ok)

	value, ok := stmt.Value.(*ast.CharLiteral)
	require.True(t, ok)
	assert.Equal(t, 'a', value.Value)
}

func TestParseIfStatement(t *testing.T) {
	t.Run("with else", func(t *testing.T) {
		program := parseProgram(t, "if x > 0 { print x; } else { print 0; }")
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ast.IfStatement)
		require.True(t, ok)
		assert.Equal(t, "(x > 0)", stmt.Condition.String())
		require.Len(t, stmt.Body, 1)
		require.Len(t, stmt.Else, 1)
	})

	t.Run("without else", func(t *testing.T) {
		program := parseProgram(t, "if done { print 1; }")
		stmt, ok := program.Statements[0].(*ast.IfStatement)
		require.True(t, ok)
		require.Len(t, stmt.Body, 1)
		assert.Empty(t, stmt.Else)
	})
}

func TestParseWhileStatement(t *testing.T) {
	program := parseProgram(t, "while n > 0 { print n; n = n - 1; }")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	require.True(t, ok)
	assert.Equal(t, "(n > 0)", stmt.Condition.String())
	require.Len(t, stmt.Body, 2)
}

func TestParseEmptyProgram(t *testing.T) {
	program := parseProgram(t, "")
	assert.Empty(t, program.Statements)

	program = parseProgram(t, "// just a comment\n")
	assert.Empty(t, program.Statements)
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 1 + 2 * 3;", "print (1 + (2 * 3));"},
		{"print 1 * 2 + 3;", "print ((1 * 2) + 3);"},
		{"print 1 + 2 - 3;", "print ((1 + 2) - 3);"},
		{"print 2 * 3 / 4;", "print ((2 * 3) / 4);"},
		{"print (1 + 2) * 3;", "print ((1 + 2) * 3);"},
		{"print -1 + 2;", "print ((-1) + 2);"},
		{"print -1 * 2;", "print ((-1) * 2);"},
		{"print !a && b;", "print ((!a) && b);"},
		{"print a < 1 == b > 2;", "print (((a < 1) == b) > 2);"},
		{"print a + 1 < b * 2;", "print ((a + 1) < (b * 2));"},
		{"print a && b || c && d;", "print ((a && b) || (c && d));"},
		{"print a == b || c != d;", "print ((a == b) || (c != d));"},
		{"print a || b == c && d;", "print (a || ((b == c) && d));"},
		{"print 1 <= 2 >= 3;", "print ((1 <= 2) >= 3);"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			assert.Equal(t, tt.expected, program.String())
		})
	}
}

func TestParenthesesDoNotMaterializeNodes(t *testing.T) {
	program := parseProgram(t, "print (5);")
	stmt := program.Statements[0].(*ast.PrintStatement)
	_, ok := stmt.Value.(*ast.IntegerLiteral)
	assert.True(t, ok, "grouped literal should stay a literal node")
}

func TestBareLocationBecomesReadValue(t *testing.T) {
	program := parseProgram(t, "print n;")
	stmt := program.Statements[0].(*ast.PrintStatement)

	read, ok := stmt.Value.(*ast.ReadValue)
	require.True(t, ok)
	assert.Equal(t, "n", read.Location.Name)
	assert.Equal(t, ast.UsageNone, read.Location.Usage)
}

func TestNodeLineNumbers(t *testing.T) {
	program := parseProgram(t, "var n int = 5;\nwhile n > 0 {\n    n = n - 1;\n}\n")
	require.Len(t, program.Statements, 2)

	assert.Equal(t, 1, program.Statements[0].Pos().Line)

	loop := program.Statements[1].(*ast.WhileStatement)
	assert.Equal(t, 2, loop.Pos().Line)
	require.Len(t, loop.Body, 1)
	assert.Equal(t, 3, loop.Body[0].Pos().Line)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		line     int
	}{
		{"statement starting with operator", "+ 1;", "Syntax error in input at token '+'", 1},
		{"missing semicolon", "print 1 print 2;", "Syntax error in input at token 'print'", 1},
		{"missing assignment target", "= 5;", "Syntax error in input at token '='", 1},
		{"bad declaration", "var 5 int;", "Syntax error in input at token '5'", 1},
		{"unclosed paren", "print (1 + 2;", "Syntax error in input at token ';'", 1},
		{"second line", "print 1;\nconst = 2;", "Syntax error in input at token '='", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := errors.NewReporter(nil)
			Parse(tt.input, reporter)
			require.Equal(t, 1, reporter.Count(), "the parse terminates on the first syntax error")
			diag := reporter.Diagnostics()[0]
			assert.Equal(t, tt.expected, diag.Message)
			assert.Equal(t, tt.line, diag.Line)
		})
	}
}

func TestSyntaxErrorAtEOF(t *testing.T) {
	tests := []string{"print 1", "while n > 0 {", "const x = "}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			reporter := errors.NewReporter(nil)
			Parse(input, reporter)
			require.Equal(t, 1, reporter.Count())
			assert.Equal(t, "Syntax error. No more input.", reporter.Diagnostics()[0].Message)
		})
	}
}

func TestParseTerminatesOnError(t *testing.T) {
	reporter := errors.NewReporter(nil)
	p := New(lexer.New("print 1 print 2; print 3;", reporter), reporter)
	p.ParseProgram()

	assert.True(t, p.Failed())
	assert.Equal(t, 1, reporter.Count())
}
