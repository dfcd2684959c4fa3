package parser

import (
	"fmt"
	"log/slog"

	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/source"
	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

// The Parser builds an AST from a token stream by recursive descent with
// one token of lookahead and no backtracking.
//
// Consuming a token never reports anything: accept only moves on when the
// current token has the expected kind. Diagnostics come from explicit
// checks made before accepting, and a construct that cannot be built is
// replaced by an ast.Invalid so parsing always reaches the end of input.
type Parser struct {
	tokens      []tokens.Token
	current     int // current position in tokens
	lastEnd     source.Position
	diagnostics *diagnostics.DiagnosticBag
	filepath    string
	incomplete  bool
	logger      *slog.Logger
}

// New creates a parser over a token stream that ends with an EOF token.
func New(toks []tokens.Token, filepath string, diag *diagnostics.DiagnosticBag) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != tokens.EOF_TOKEN {
		var end source.Position
		if len(toks) > 0 {
			end = toks[len(toks)-1].End
		} else {
			end = source.Start()
		}
		toks = append(toks, tokens.NewToken(tokens.EOF_TOKEN, "end of file", end, end))
	}
	return &Parser{
		tokens:      toks,
		current:     0,
		lastEnd:     toks[0].Start,
		diagnostics: diag,
		filepath:    filepath,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// Parse parses a whole program.
func Parse(toks []tokens.Token, filepath string, diag *diagnostics.DiagnosticBag) *ast.Program {
	return New(toks, filepath, diag).Parse()
}

// SetLogger enables rule tracing at debug level.
func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Incomplete reports whether a syntax error was found at the end of input,
// meaning more text could still complete the program.
func (p *Parser) Incomplete() bool {
	return p.incomplete
}

// Parse parses: Program ::= SingleCommand EOF
func (p *Parser) Parse() *ast.Program {
	p.trace("program")
	start := p.peek().Start
	command := p.parseSingleCommand()

	if !p.match(tokens.EOF_TOKEN) {
		p.errorCode(diagnostics.ErrTrailingInput,
			"a program is a single command, '%s' cannot follow it; use begin ... end to run several commands", p.peek().Value)
	}

	return &ast.Program{
		Command:  command,
		Location: p.makeLocation(start),
	}
}

// Commands

// parseCommand parses: Command ::= SingleCommand (';' SingleCommand)*
// A list of one collapses to its only command.
func (p *Parser) parseCommand() ast.Command {
	p.trace("command")
	start := p.peek().Start
	commands := []ast.Command{p.parseSingleCommand()}
	for p.match(tokens.SEMICOLON_TOKEN) {
		p.accept(tokens.SEMICOLON_TOKEN)
		commands = append(commands, p.parseSingleCommand())
	}
	if len(commands) == 1 {
		return commands[0]
	}
	return &ast.SequentialCommand{Commands: commands, Location: p.makeLocation(start)}
}

func (p *Parser) parseSingleCommand() ast.Command {
	switch p.peek().Kind {
	case tokens.IDENTIFIER_TOKEN:
		return p.parseAssignOrCallCommand()
	case tokens.QUESTION_TOKEN:
		return p.parseQuickIfCommand()
	case tokens.IF_TOKEN:
		return p.parseIfCommand()
	case tokens.WHILE_TOKEN:
		return p.parseWhileCommand()
	case tokens.LOOP_TOKEN:
		return p.parseLoopCommand()
	case tokens.LET_TOKEN:
		return p.parseLetCommand()
	case tokens.BEGIN_TOKEN:
		return p.parseBeginCommand()
	default:
		p.trace("blank command")
		start := p.peek().Start
		return &ast.BlankCommand{Location: *source.NewLocation(&p.filepath, &start, &start)}
	}
}

func (p *Parser) parseAssignOrCallCommand() ast.Command {
	start := p.peek().Start
	identifier := p.parseIdentifier()

	switch p.peek().Kind {
	case tokens.OPEN_PAREN:
		p.trace("call command")
		p.accept(tokens.OPEN_PAREN)
		parameter := p.parseParameter()
		p.check(tokens.CLOSE_PAREN, "call command's parameter can only be followed by a ')' symbol not '%s'")
		p.accept(tokens.CLOSE_PAREN)
		return &ast.CallCommand{Identifier: identifier, Parameter: parameter, Location: p.makeLocation(start)}
	case tokens.IS_TOKEN:
		p.trace("assign command")
		p.accept(tokens.IS_TOKEN)
		expression := p.parseExpression()
		return &ast.AssignCommand{Identifier: identifier, Expression: expression, Location: p.makeLocation(start)}
	default:
		p.errorCode(diagnostics.ErrInvalidCommand,
			"identifier can only be followed by a left bracket symbol '(' for a call command or an is symbol '~' for an assignment command not '%s'", p.peek().Value)
		return &ast.Invalid{Location: p.makeLocation(start)}
	}
}

func (p *Parser) parseQuickIfCommand() ast.Command {
	p.trace("quick if command")
	start := p.peek().Start
	p.accept(tokens.QUESTION_TOKEN)
	guard := p.parseExpression()
	p.check(tokens.QUICK_IF_TOKEN, "expression in a quick if command can only be followed by a '=>' symbol not '%s'")
	p.accept(tokens.QUICK_IF_TOKEN)
	command := p.parseSingleCommand()
	return &ast.QuickIfCommand{Guard: guard, Command: command, Location: p.makeLocation(start)}
}

func (p *Parser) parseIfCommand() ast.Command {
	p.trace("if command")
	start := p.peek().Start
	p.accept(tokens.IF_TOKEN)
	p.check(tokens.OPEN_PAREN, "if keyword can only be followed by a '(' symbol not '%s'")
	p.accept(tokens.OPEN_PAREN)
	guard := p.parseExpression()
	p.check(tokens.CLOSE_PAREN, "if command's expression can only be followed by a ')' symbol not '%s'")
	p.accept(tokens.CLOSE_PAREN)
	p.check(tokens.THEN_TOKEN, "if command's expression can only be followed by a 'then' keyword not '%s'")
	p.accept(tokens.THEN_TOKEN)
	thenCommand := p.parseSingleCommand()
	p.check(tokens.ELSE_TOKEN, "if command's then branch can only be followed by an 'else' keyword not '%s'")
	p.accept(tokens.ELSE_TOKEN)
	elseCommand := p.parseSingleCommand()
	return &ast.IfCommand{Guard: guard, Then: thenCommand, Else: elseCommand, Location: p.makeLocation(start)}
}

func (p *Parser) parseWhileCommand() ast.Command {
	p.trace("while command")
	start := p.peek().Start
	p.accept(tokens.WHILE_TOKEN)
	p.check(tokens.OPEN_PAREN, "while keyword can only be followed by a '(' symbol not '%s'")
	p.accept(tokens.OPEN_PAREN)
	guard := p.parseExpression()
	p.check(tokens.CLOSE_PAREN, "while command's expression can only be followed by a ')' symbol not '%s'")
	p.accept(tokens.CLOSE_PAREN)
	body := p.parseSingleCommand()
	p.check(tokens.WEND_TOKEN, "while command's body can only be followed by a 'wend' keyword not '%s'")
	p.accept(tokens.WEND_TOKEN)
	return &ast.WhileCommand{Guard: guard, Body: body, Location: p.makeLocation(start)}
}

func (p *Parser) parseLoopCommand() ast.Command {
	p.trace("loop command")
	start := p.peek().Start
	p.accept(tokens.LOOP_TOKEN)
	pre := p.parseSingleCommand()
	p.check(tokens.WHILE_TOKEN, "loop command's first body can only be followed by a 'while' keyword not '%s'")
	p.accept(tokens.WHILE_TOKEN)
	p.check(tokens.OPEN_PAREN, "loop command's while keyword can only be followed by a '(' symbol not '%s'")
	p.accept(tokens.OPEN_PAREN)
	guard := p.parseExpression()
	p.check(tokens.CLOSE_PAREN, "loop command's expression can only be followed by a ')' symbol not '%s'")
	p.accept(tokens.CLOSE_PAREN)
	post := p.parseSingleCommand()
	p.check(tokens.REPEAT_TOKEN, "loop command's second body can only be followed by a 'repeat' keyword not '%s'")
	p.accept(tokens.REPEAT_TOKEN)
	return &ast.LoopCommand{Pre: pre, Guard: guard, Post: post, Location: p.makeLocation(start)}
}

func (p *Parser) parseLetCommand() ast.Command {
	p.trace("let command")
	start := p.peek().Start
	p.accept(tokens.LET_TOKEN)
	declaration := p.parseDeclaration()
	p.check(tokens.IN_TOKEN, "let command's declarations can only be followed by an 'in' keyword not '%s'")
	p.accept(tokens.IN_TOKEN)
	body := p.parseSingleCommand()
	return &ast.LetCommand{Declaration: declaration, Body: body, Location: p.makeLocation(start)}
}

// parseBeginCommand returns the enclosed command itself; begin and end only group.
func (p *Parser) parseBeginCommand() ast.Command {
	p.trace("begin command")
	p.accept(tokens.BEGIN_TOKEN)
	command := p.parseCommand()
	p.check(tokens.END_TOKEN, "begin command's commands can only be followed by an 'end' keyword not '%s'")
	p.accept(tokens.END_TOKEN)
	return command
}

// Token handling

func (p *Parser) peek() tokens.Token {
	return p.tokens[p.current]
}

// advance moves to the next token but never past EOF.
func (p *Parser) advance() tokens.Token {
	tok := p.tokens[p.current]
	if p.current < len(p.tokens)-1 {
		p.current++
		p.lastEnd = tok.End
	}
	return tok
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}
	return false
}

// accept consumes the current token only if it has the expected kind. It never reports.
func (p *Parser) accept(kind tokens.TOKEN) {
	if p.match(kind) {
		p.trace("accepted " + p.peek().Value)
		p.advance()
	}
}

// check reports format (which takes the current spelling) unless the current token has the expected kind.
func (p *Parser) check(kind tokens.TOKEN, format string) bool {
	if p.match(kind) {
		return true
	}
	p.errorCode(diagnostics.ErrExpectedToken, format, p.peek().Value)
	return false
}

func (p *Parser) errorCode(code, format string, args ...any) {
	tok := p.peek()
	if tok.Kind == tokens.EOF_TOKEN {
		p.incomplete = true
	}
	loc := source.NewLocation(&p.filepath, &tok.Start, &tok.End)
	p.diagnostics.Add(
		diagnostics.NewError(fmt.Sprintf(format, args...)).
			WithCode(code).
			WithPrimaryLabel(loc, ""),
	)
}

func (p *Parser) makeLocation(start source.Position) source.Location {
	end := p.lastEnd
	if end.Index < start.Index {
		end = start
	}
	return *source.NewLocation(&p.filepath, &start, &end)
}

func (p *Parser) trace(rule string) {
	p.logger.Debug("parsing", "rule", rule, "at", p.peek().Start.String())
}
