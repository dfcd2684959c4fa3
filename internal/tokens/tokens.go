package tokens

import (
	"fmt"
	"io"
	"strings"

	"github.com/euanchree/mini-square-compiler/colors"
	"github.com/euanchree/mini-square-compiler/internal/source"
)

type TOKEN string

const (
	//keywords
	IF_TOKEN     TOKEN = "if"
	THEN_TOKEN   TOKEN = "then"
	ELSE_TOKEN   TOKEN = "else"
	WHILE_TOKEN  TOKEN = "while"
	WEND_TOKEN   TOKEN = "wend"
	LOOP_TOKEN   TOKEN = "loop"
	REPEAT_TOKEN TOKEN = "repeat"
	LET_TOKEN    TOKEN = "let"
	IN_TOKEN     TOKEN = "in"
	BEGIN_TOKEN  TOKEN = "begin"
	END_TOKEN    TOKEN = "end"
	CONST_TOKEN  TOKEN = "const"
	VAR_TOKEN    TOKEN = "var"

	IDENTIFIER_TOKEN TOKEN = "identifier"
	//literals
	INT_LITERAL_TOKEN  TOKEN = "integer literal"
	CHAR_LITERAL_TOKEN TOKEN = "character literal"
	//custom and built-in operators share one kind; the spelling tells them apart
	OPERATOR_TOKEN TOKEN = "operator"

	//punctuation
	SEMICOLON_TOKEN TOKEN = ";"
	QUESTION_TOKEN  TOKEN = "?"
	IS_TOKEN        TOKEN = "~"
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	QUICK_IF_TOKEN  TOKEN = "=>"

	EOF_TOKEN   TOKEN = "end of file"
	ERROR_TOKEN TOKEN = "error"
)

// OperatorChars is the character class operator spellings are built from.
const OperatorChars = `+-*/=<>\&@%^|`

var keyWordsMap = map[TOKEN]bool{
	IF_TOKEN:     true,
	THEN_TOKEN:   true,
	ELSE_TOKEN:   true,
	WHILE_TOKEN:  true,
	WEND_TOKEN:   true,
	LOOP_TOKEN:   true,
	REPEAT_TOKEN: true,
	LET_TOKEN:    true,
	IN_TOKEN:     true,
	BEGIN_TOKEN:  true,
	END_TOKEN:    true,
	CONST_TOKEN:  true,
	VAR_TOKEN:    true,
}

// IsKeyword reports whether the spelling is a reserved word. Matching is case-sensitive.
func IsKeyword(token string) bool {
	if _, ok := keyWordsMap[TOKEN(token)]; ok {
		return true
	}
	return false
}

// LookupKeyword returns the keyword kind for a spelling, or IDENTIFIER_TOKEN.
func LookupKeyword(spelling string) TOKEN {
	if IsKeyword(spelling) {
		return TOKEN(spelling)
	}
	return IDENTIFIER_TOKEN
}

// IsOperatorChar reports whether r may appear in an operator spelling.
func IsOperatorChar(r rune) bool {
	return strings.ContainsRune(OperatorChars, r)
}

type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func (t *Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Start.Line, t.Start.Column)
	if t.Value == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Value)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Value, t.Kind)
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Value, t.Start)
}

func NewToken(kind TOKEN, value string, start source.Position, end source.Position) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Start: start,
		End:   end,
	}
}
