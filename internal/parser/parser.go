// Package parser implements the Gone parser using Pratt parsing.
//
// Statements are parsed by a dispatch on the current token; expressions
// by precedence climbing over registered prefix and infix functions.
// The parser reports syntax errors to the diagnostic sink and then
// terminates the current parse: Gone's pipeline halts before semantic
// checking whenever any parse error occurred, so there is no panic-mode
// recovery to maintain.
package parser

import (
	"strconv"
	"unicode/utf8"

	"github.com/cwbudde/go-gone/internal/ast"
	"github.com/cwbudde/go-gone/internal/errors"
	"github.com/cwbudde/go-gone/internal/lexer"
)

// Precedence levels for operators (lowest to highest).
const (
	_ int = iota
	LOWEST
	OR      // ||
	AND     // &&
	EQUALS  // == != < <= > >=
	SUM     // + -
	PRODUCT // * /
	PREFIX  // -x, !x, +x
)

// precedences maps token types to their precedence levels.
var precedences = map[lexer.TokenType]int{
	lexer.OR:         OR,
	lexer.AND:        AND,
	lexer.EQ:         EQUALS,
	lexer.NOT_EQ:     EQUALS,
	lexer.LESS:       EQUALS,
	lexer.LESS_EQ:    EQUALS,
	lexer.GREATER:    EQUALS,
	lexer.GREATER_EQ: EQUALS,
	lexer.PLUS:       SUM,
	lexer.MINUS:      SUM,
	lexer.ASTERISK:   PRODUCT,
	lexer.SLASH:      PRODUCT,
}

// prefixParseFn parses prefix expressions (literals, unary ops, grouping).
type prefixParseFn func() ast.Expression

// infixParseFn parses infix expressions (binary ops).
type infixParseFn func(ast.Expression) ast.Expression

// Parser represents the Gone parser.
type Parser struct {
	l        *lexer.Lexer
	reporter *errors.Reporter

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn

	failed bool
}

// New creates a new Parser reading tokens from l and reporting syntax
// errors to reporter.
func New(l *lexer.Lexer, reporter *errors.Reporter) *Parser {
	p := &Parser{
		l:        l,
		reporter: reporter,
	}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:  p.parseReadValue,
		lexer.INT:    p.parseIntegerLiteral,
		lexer.FLOAT:  p.parseFloatLiteral,
		lexer.CHAR:   p.parseCharLiteral,
		lexer.TRUE:   p.parseBooleanLiteral,
		lexer.FALSE:  p.parseBooleanLiteral,
		lexer.LPAREN: p.parseGroupedExpression,
		lexer.PLUS:   p.parseUnaryExpression,
		lexer.MINUS:  p.parseUnaryExpression,
		lexer.NOT:    p.parseUnaryExpression,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{}
	for tt := range precedences {
		p.infixParseFns[tt] = p.parseBinaryExpression
	}

	// Read two tokens so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses source text into a program using a fresh lexer and parser.
// This is the front half of the compiler pipeline: check the reporter's
// count before running the semantic phase.
func Parse(input string, reporter *errors.Reporter) *ast.Program {
	p := New(lexer.New(input, reporter), reporter)
	return p.ParseProgram()
}

// Failed reports whether a syntax error terminated the parse.
func (p *Parser) Failed() bool {
	return p.failed
}

// nextToken advances the token window. ILLEGAL tokens were already
// reported by the lexer; the parser drops them so a stray character
// does not also produce a syntax error.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	for p.peekToken.Type == lexer.ILLEGAL {
		p.peekToken = p.l.NextToken()
	}
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances if the peek token matches, otherwise reports a
// syntax error and returns false.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.syntaxError(p.peekToken)
	return false
}

// syntaxError reports the offending token and terminates the parse.
func (p *Parser) syntaxError(tok lexer.Token) {
	if p.failed {
		return
	}
	p.failed = true
	if tok.Type == lexer.EOF {
		p.reporter.Report(tok.Pos.Line, "Syntax error. No more input.")
		return
	}
	p.reporter.Report(tok.Pos.Line, "Syntax error in input at token '%s'", tok.Literal)
}

// ParseProgram parses a possibly-empty sequence of statements.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.EOF) && !p.failed {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// parseStatement parses a single statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.CONST:
		return p.parseConstDeclaration()
	case lexer.VAR:
		return p.parseVarDeclaration()
	case lexer.PRINT:
		return p.parsePrintStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.IDENT:
		return p.parseAssignmentStatement()
	default:
		p.syntaxError(p.curToken)
		return nil
	}
}

// parseConstDeclaration parses: const ID = expression ;
func (p *Parser) parseConstDeclaration() ast.Statement {
	stmt := &ast.ConstDeclaration{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Literal

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseVarDeclaration parses: var ID datatype [ = expression ] ;
func (p *Parser) parseVarDeclaration() ast.Statement {
	stmt := &ast.VarDeclaration{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Literal

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.DataType = &ast.SimpleType{Token: p.curToken, Name: p.curToken.Literal}

	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
		if stmt.Value == nil {
			return nil
		}
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseAssignmentStatement parses: location = expression ;
func (p *Parser) parseAssignmentStatement() ast.Statement {
	location := &ast.SimpleLocation{Token: p.curToken, Name: p.curToken.Literal}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	stmt := &ast.AssignmentStatement{Token: p.curToken, Location: location}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parsePrintStatement parses: print expression ;
func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseIfStatement parses: if expression { statements } [ else { statements } ]
func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlock()
	if p.failed {
		return nil
	}

	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		stmt.Else = p.parseBlock()
		if p.failed {
			return nil
		}
	}

	return stmt
}

// parseWhileStatement parses: while expression { statements }
func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlock()
	if p.failed {
		return nil
	}

	return stmt
}

// parseBlock parses the statements between { and }. The current token
// is the opening brace on entry and the closing brace on exit.
func (p *Parser) parseBlock() []ast.Statement {
	stmts := []ast.Statement{}

	p.nextToken() // advance past '{'
	for !p.curTokenIs(lexer.RBRACE) && !p.failed {
		if p.curTokenIs(lexer.EOF) {
			p.syntaxError(p.curToken)
			return stmts
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}

	return stmts
}

// parseExpression parses an expression with precedence climbing.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefixFn, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.syntaxError(p.curToken)
		return nil
	}
	leftExp := prefixFn()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infixFn, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return leftExp
		}
		p.nextToken()
		leftExp = infixFn(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseReadValue parses a bare location used as an expression.
func (p *Parser) parseReadValue() ast.Expression {
	location := &ast.SimpleLocation{Token: p.curToken, Name: p.curToken.Literal}
	return &ast.ReadValue{Token: p.curToken, Location: location}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.syntaxError(p.curToken)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.syntaxError(p.curToken)
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

// parseCharLiteral builds a char literal node. The lexer already
// decoded escapes, so the token literal is the character itself.
func (p *Parser) parseCharLiteral() ast.Expression {
	value, _ := utf8.DecodeRuneInString(p.curToken.Literal)
	return &ast.CharLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

// parseGroupedExpression parses a parenthesized expression. The parens
// override precedence but do not materialize an AST node.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return exp
}

// parseUnaryExpression parses a prefix + - or ! expression.
func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()
	expr.Operand = p.parseExpression(PREFIX)
	if expr.Operand == nil {
		return nil
	}

	return expr
}

// parseBinaryExpression parses an infix binary expression. All Gone
// binary operators are left-associative.
func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}

	return expr
}
