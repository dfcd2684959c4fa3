package parser

import (
	"math/big"
	"unicode/utf8"

	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/source"
	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

// parseExpression parses: Expression ::= PrimaryExpression (Operator PrimaryExpression)*
// There are no precedence levels: a chain nests to the left, so
// a + b - c is (a + b) - c whatever the operators are.
func (p *Parser) parseExpression() ast.Expression {
	p.trace("expression")
	start := p.peek().Start
	left := p.parsePrimaryExpression()
	for p.match(tokens.OPERATOR_TOKEN) {
		operator := p.parseOperator(2)
		right := p.parsePrimaryExpression()
		left = &ast.BinaryExpr{Left: left, Operator: operator, Right: right, Location: p.makeLocation(start)}
	}
	return left
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	tok := p.peek()
	switch tok.Kind {
	case tokens.INT_LITERAL_TOKEN:
		p.trace("integer literal")
		p.accept(tokens.INT_LITERAL_TOKEN)
		value, _ := new(big.Int).SetString(tok.Value, 10)
		return &ast.IntegerLiteral{Token: tok, Value: value, Location: p.tokenLocation(tok)}
	case tokens.CHAR_LITERAL_TOKEN:
		p.trace("character literal")
		p.accept(tokens.CHAR_LITERAL_TOKEN)
		value, _ := utf8.DecodeRuneInString(tok.Value)
		return &ast.CharacterLiteral{Token: tok, Value: value, Location: p.tokenLocation(tok)}
	case tokens.IDENTIFIER_TOKEN:
		return p.parseIdOrCallExpression()
	case tokens.OPERATOR_TOKEN:
		p.trace("unary expression")
		operator := p.parseOperator(1)
		operand := p.parsePrimaryExpression()
		return &ast.UnaryExpr{Operator: operator, Operand: operand, Location: p.makeLocation(tok.Start)}
	case tokens.OPEN_PAREN:
		p.trace("bracket expression")
		p.accept(tokens.OPEN_PAREN)
		expression := p.parseExpression()
		p.check(tokens.CLOSE_PAREN, "bracket expression can only be closed using a ')' symbol not '%s'")
		p.accept(tokens.CLOSE_PAREN)
		return expression
	default:
		p.errorCode(diagnostics.ErrInvalidExpression, "invalid expression: '%s'", tok.Value)
		return &ast.Invalid{Location: p.tokenLocation(tok)}
	}
}

func (p *Parser) parseIdOrCallExpression() ast.Expression {
	start := p.peek().Start
	identifier := p.parseIdentifier()
	if !p.match(tokens.OPEN_PAREN) {
		p.trace("identifier expression")
		return &ast.IdentifierExpr{Identifier: identifier, Location: p.makeLocation(start)}
	}

	p.trace("call expression")
	p.accept(tokens.OPEN_PAREN)
	parameter := p.parseParameter()
	p.check(tokens.CLOSE_PAREN, "call expression's parameter can only be followed by a ')' symbol not '%s'")
	p.accept(tokens.CLOSE_PAREN)
	return &ast.CallExpr{Identifier: identifier, Parameter: parameter, Location: p.makeLocation(start)}
}

func (p *Parser) parseOperator(arity int) *ast.Operator {
	tok := p.peek()
	p.accept(tokens.OPERATOR_TOKEN)
	return &ast.Operator{Token: tok, Arity: arity, Location: p.tokenLocation(tok)}
}

// parseParameter parses: Parameter ::= Expression | 'var' Identifier | /* empty */
func (p *Parser) parseParameter() ast.Parameter {
	tok := p.peek()
	switch tok.Kind {
	case tokens.IDENTIFIER_TOKEN, tokens.INT_LITERAL_TOKEN, tokens.CHAR_LITERAL_TOKEN,
		tokens.OPERATOR_TOKEN, tokens.OPEN_PAREN:
		p.trace("value parameter")
		expression := p.parseExpression()
		return &ast.ValueParam{Expression: expression, Location: p.makeLocation(tok.Start)}
	case tokens.VAR_TOKEN:
		p.trace("var parameter")
		p.accept(tokens.VAR_TOKEN)
		identifier := p.parseIdentifier()
		return &ast.VarParam{Identifier: identifier, Location: p.makeLocation(tok.Start)}
	case tokens.CLOSE_PAREN:
		p.trace("blank parameter")
		return &ast.BlankParam{Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.Start)}
	default:
		p.errorCode(diagnostics.ErrInvalidParameter, "invalid parameter: '%s'", tok.Value)
		return &ast.Invalid{Location: p.tokenLocation(tok)}
	}
}

func (p *Parser) tokenLocation(tok tokens.Token) source.Location {
	return *source.NewLocation(&p.filepath, &tok.Start, &tok.End)
}
