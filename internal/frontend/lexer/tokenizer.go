package lexer

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/source"
	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

type regexHandler func(lex *Lexer, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

// Lexer turns one source text into tokens. It is single-use: build a new one to start over.
type Lexer struct {
	diagnostics *diagnostics.DiagnosticBag
	Tokens      []tokens.Token
	Position    source.Position
	sourceCode  string
	patterns    []regexPattern
	FilePath    string
	debugOut    io.Writer
}

// patterns are tried in order at the current position; the first match wins.
// All of them are anchored so a match can never start further ahead.
var patterns = []regexPattern{
	{regexp.MustCompile(`^\s+`), skipHandler},                        // layout
	{regexp.MustCompile(`^![^\n]*`), skipHandler},                    // comments run to end of line
	{regexp.MustCompile(`^'[^'\n]'`), charHandler},                   // character literals
	{regexp.MustCompile(`^'[^'\n]?`), unterminatedCharHandler},       // unterminated character literals
	{regexp.MustCompile(`^[0-9]+`), numberHandler},                   // integer literals
	{regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*`), identifierHandler}, // identifiers and keywords
	{regexp.MustCompile(`^~`), defaultHandler(tokens.IS_TOKEN)},
	{regexp.MustCompile(`^;`), defaultHandler(tokens.SEMICOLON_TOKEN)},
	{regexp.MustCompile(`^\?`), defaultHandler(tokens.QUESTION_TOKEN)},
	{regexp.MustCompile(`^\(`), defaultHandler(tokens.OPEN_PAREN)},
	{regexp.MustCompile(`^\)`), defaultHandler(tokens.CLOSE_PAREN)},
	{regexp.MustCompile(`^[+\-*/=<>\\&@%^|]+`), operatorHandler}, // operator runs, longest match
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func New(filepath, content string, diag *diagnostics.DiagnosticBag) *Lexer {
	return &Lexer{
		sourceCode:  content,
		Tokens:      make([]tokens.Token, 0),
		Position:    source.Start(),
		diagnostics: diag,
		FilePath:    filepath,
		patterns:    patterns,
		debugOut:    os.Stderr,
	}
}

// SetDebugOutput redirects the token dump written by Tokenize(true).
func (lex *Lexer) SetDebugOutput(w io.Writer) {
	lex.debugOut = w
}

func defaultHandler(token tokens.TOKEN) regexHandler {
	return func(lex *Lexer, _ *regexp.Regexp) {
		start := lex.Position
		lex.advance(string(token))
		end := lex.Position

		lex.push(tokens.NewToken(token, string(token), start, end))
	}
}

func identifierHandler(lex *Lexer, regex *regexp.Regexp) {
	identifier := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(identifier)
	end := lex.Position
	lex.push(tokens.NewToken(tokens.LookupKeyword(identifier), identifier, start, end))
}

func numberHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.push(tokens.NewToken(tokens.INT_LITERAL_TOKEN, match, start, end))
}

func charHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	//exclude the quotes
	charLiteral := match[1 : len(match)-1]
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.push(tokens.NewToken(tokens.CHAR_LITERAL_TOKEN, charLiteral, start, end))
}

func unterminatedCharHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.push(tokens.NewToken(tokens.ERROR_TOKEN, match, start, end))
	lex.diagnostics.Add(
		diagnostics.NewError(fmt.Sprintf("unterminated character literal %s", match)).
			WithCode(diagnostics.ErrUnterminatedCharLit).
			WithPrimaryLabel(source.NewLocation(&lex.FilePath, &start, &end), "missing closing quote"),
	)
}

func operatorHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	kind := tokens.OPERATOR_TOKEN
	if match == string(tokens.QUICK_IF_TOKEN) {
		kind = tokens.QUICK_IF_TOKEN
	}
	lex.push(tokens.NewToken(kind, match, start, end))
}

// skipHandler processes a token that should be skipped by the lexer.
func skipHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	lex.advance(match)
}

// Tokenize scans the whole source text. The result always ends with an EOF token.
func (lex *Lexer) Tokenize(debug bool) []tokens.Token {

	for !lex.atEOF() {

		matched := false

		for _, pattern := range lex.patterns {
			if pattern.regex.MatchString(lex.remainder()) {
				pattern.handler(lex, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			r, size := utf8.DecodeRuneInString(lex.remainder())
			text := lex.remainder()[:size]
			start := lex.Position
			lex.advance(text)
			end := lex.Position
			lex.push(tokens.NewToken(tokens.ERROR_TOKEN, text, start, end))
			msg := fmt.Sprintf("unrecognized character '%c'", r)
			if r == utf8.RuneError && size == 1 {
				msg = fmt.Sprintf("invalid UTF-8 byte 0x%02x", text[0])
			}
			lex.diagnostics.Add(
				diagnostics.NewError(msg).
					WithCode(diagnostics.ErrUnexpectedCharacter).
					WithPrimaryLabel(source.NewLocation(&lex.FilePath, &start, &end), ""),
			)
		}
	}

	lex.push(tokens.NewToken(tokens.EOF_TOKEN, "end of file", lex.Position, lex.Position))

	if debug {
		for _, token := range lex.Tokens {
			token.Debug(lex.debugOut, lex.FilePath)
		}
	}

	return lex.Tokens
}
