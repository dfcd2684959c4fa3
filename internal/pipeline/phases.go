package pipeline

import (
	"github.com/euanchree/mini-square-compiler/internal/frontend/lexer"
	"github.com/euanchree/mini-square-compiler/internal/frontend/parser"
	"github.com/euanchree/mini-square-compiler/internal/phase"
	"github.com/euanchree/mini-square-compiler/internal/semantics/resolver"
	"github.com/euanchree/mini-square-compiler/internal/semantics/typechecker"
)

// RunLexer turns the source text into tokens.
func (p *Pipeline) RunLexer() error {
	tokenizer := lexer.New(p.FilePath, p.Content, p.Diagnostics)
	if p.Debug {
		tokenizer.SetDebugOutput(p.Out)
	}
	p.tokens = tokenizer.Tokenize(p.Debug)
	p.Logger.Debug("lexed", "tokens", len(p.tokens))
	return p.advance(phase.PhaseLexed)
}

// RunParser builds the tree from the token stream.
func (p *Pipeline) RunParser() error {
	ps := parser.New(p.tokens, p.FilePath, p.Diagnostics)
	ps.SetLogger(p.Logger)
	p.program = ps.Parse()
	p.incomplete = ps.Incomplete()
	return p.advance(phase.PhaseParsed)
}

// RunResolver binds every name in the tree.
func (p *Pipeline) RunResolver() error {
	r := resolver.New(p.Env, p.Diagnostics)
	r.SetLogger(p.Logger)
	r.ResolveProgram(p.program)
	return p.advance(phase.PhaseResolved)
}

// RunTypeChecker annotates the resolved tree with types.
func (p *Pipeline) RunTypeChecker() error {
	c := typechecker.New(p.Env, p.Diagnostics)
	c.SetLogger(p.Logger)
	c.CheckProgram(p.program)
	return p.advance(phase.PhaseTypeChecked)
}
