package parser

import (
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/source"
	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

// parseDeclaration parses: Declaration ::= SingleDeclaration (';' SingleDeclaration)*
// A list of one collapses to its only declaration.
func (p *Parser) parseDeclaration() ast.Declaration {
	p.trace("declaration")
	start := p.peek().Start
	declarations := []ast.Declaration{p.parseSingleDeclaration()}
	for p.match(tokens.SEMICOLON_TOKEN) {
		p.accept(tokens.SEMICOLON_TOKEN)
		declarations = append(declarations, p.parseSingleDeclaration())
	}
	if len(declarations) == 1 {
		return declarations[0]
	}
	return &ast.SequentialDecl{Declarations: declarations, Location: p.makeLocation(start)}
}

func (p *Parser) parseSingleDeclaration() ast.Declaration {
	switch p.peek().Kind {
	case tokens.CONST_TOKEN:
		return p.parseConstDeclaration()
	case tokens.VAR_TOKEN:
		return p.parseVarDeclaration()
	default:
		tok := p.peek()
		p.errorCode(diagnostics.ErrInvalidDeclaration,
			"single declaration can only be either a 'const' or 'var' not '%s'", tok.Value)
		return &ast.Invalid{Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
	}
}

func (p *Parser) parseConstDeclaration() ast.Declaration {
	p.trace("const declaration")
	start := p.peek().Start
	p.accept(tokens.CONST_TOKEN)
	identifier := p.parseIdentifier()
	p.check(tokens.IS_TOKEN, "const declaration's identifier can only be followed by an is symbol '~' not '%s'")
	p.accept(tokens.IS_TOKEN)
	expression := p.parseExpression()
	return &ast.ConstDecl{Identifier: identifier, Expression: expression, Location: p.makeLocation(start)}
}

func (p *Parser) parseVarDeclaration() ast.Declaration {
	p.trace("var declaration")
	start := p.peek().Start
	p.accept(tokens.VAR_TOKEN)
	identifier := p.parseIdentifier()
	p.check(tokens.IS_TOKEN, "var declaration's identifier can only be followed by an is symbol '~' not '%s'")
	p.accept(tokens.IS_TOKEN)
	typeDenoter := p.parseTypeDenoter()
	return &ast.VarDecl{Identifier: identifier, TypeDenoter: typeDenoter, Location: p.makeLocation(start)}
}

func (p *Parser) parseTypeDenoter() *ast.TypeDenoter {
	p.trace("type denoter")
	start := p.peek().Start
	identifier := p.parseIdentifier()
	return &ast.TypeDenoter{Identifier: identifier, Location: p.makeLocation(start)}
}

// parseIdentifier wraps the current token. It only moves on when the token
// really is an identifier, so a missing name is reported once and the
// following check sees the same token.
func (p *Parser) parseIdentifier() *ast.Identifier {
	tok := p.peek()
	if tok.Kind != tokens.IDENTIFIER_TOKEN {
		p.errorCode(diagnostics.ErrMissingIdentifier, "expected an identifier not '%s'", tok.Value)
	}
	p.accept(tokens.IDENTIFIER_TOKEN)
	return &ast.Identifier{Token: tok, Location: *source.NewLocation(&p.filepath, &tok.Start, &tok.End)}
}
