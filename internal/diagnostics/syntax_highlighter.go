package diagnostics

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/euanchree/mini-square-compiler/colors"
	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

// SyntaxHighlighter colours source snippets shown under diagnostics
type SyntaxHighlighter struct {
	enabled bool
}

// NewSyntaxHighlighter creates a new syntax highlighter
func NewSyntaxHighlighter(enabled bool) *SyntaxHighlighter {
	return &SyntaxHighlighter{enabled: enabled}
}

// Enable turns on syntax highlighting
func (sh *SyntaxHighlighter) Enable() {
	sh.enabled = true
}

// Disable turns off syntax highlighting
func (sh *SyntaxHighlighter) Disable() {
	sh.enabled = false
}

// IsEnabled returns whether syntax highlighting is enabled
func (sh *SyntaxHighlighter) IsEnabled() bool {
	return sh.enabled
}

// Token represents a highlighted token
type Token struct {
	Text  string
	Color colors.COLOR
}

var standardTypeNames = map[string]bool{
	"Integer": true,
	"Char":    true,
	"Boolean": true,
}

// Highlight splits a line of code into coloured runs
func (sh *SyntaxHighlighter) Highlight(line string) []Token {
	if !sh.enabled {
		return []Token{{Text: line, Color: colors.WHITE}}
	}

	var runs []Token
	rs := []rune(line)
	i := 0

	emit := func(start int, color colors.COLOR) {
		runs = append(runs, Token{Text: string(rs[start:i]), Color: color})
	}

	for i < len(rs) {
		start := i
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			for i < len(rs) && unicode.IsSpace(rs[i]) {
				i++
			}
			emit(start, colors.WHITE)
		case r == '!':
			i = len(rs)
			emit(start, colors.GREY)
		case r == '\'':
			i++
			for i < len(rs) && rs[i] != '\'' && i-start < 2 {
				i++
			}
			if i < len(rs) && rs[i] == '\'' {
				i++
			}
			emit(start, colors.YELLOW)
		case unicode.IsDigit(r):
			for i < len(rs) && unicode.IsDigit(rs[i]) {
				i++
			}
			emit(start, colors.YELLOW)
		case unicode.IsLetter(r):
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i])) {
				i++
			}
			word := string(rs[start:i])
			switch {
			case tokens.IsKeyword(word):
				emit(start, colors.PURPLE)
			case standardTypeNames[word]:
				emit(start, colors.ORANGE)
			default:
				emit(start, colors.WHITE)
			}
		case tokens.IsOperatorChar(r):
			for i < len(rs) && tokens.IsOperatorChar(rs[i]) {
				i++
			}
			emit(start, colors.CYAN)
		default:
			i++
			emit(start, colors.WHITE)
		}
	}

	return runs
}

// HighlightLine returns a highlighted line as a string ready for printing
func (sh *SyntaxHighlighter) HighlightLine(line string) string {
	if !sh.enabled {
		return line
	}

	var result strings.Builder
	for _, token := range sh.Highlight(line) {
		token.Color.Fprint(&result, token.Text)
	}
	return result.String()
}

// HighlightWithColor applies syntax highlighting and writes the result
func (sh *SyntaxHighlighter) HighlightWithColor(line string, writer io.Writer) {
	if !sh.enabled {
		fmt.Fprint(writer, line)
		return
	}
	fmt.Fprint(writer, sh.HighlightLine(line))
}
