package source

import "fmt"

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number in the source code (1-based).
	Column int // Column number in the source code (1-based).
	Index  int // Byte offset in the source code (0-based).
}

// Start returns the position of the first character of a source text.
func Start() Position {
	return Position{Line: 1, Column: 1, Index: 0}
}

// Advance moves the Position over the given text.
// A newline starts a new line at column 1; every other rune advances the column by one.
// The index advances by the byte length of the text, so an invalid byte
// counts as one column and one byte.
func (p *Position) Advance(toSkip string) *Position {
	for _, char := range toSkip {
		if char == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Index += len(toSkip)
	return p
}

// String renders the position the way diagnostics print it: line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
