package source

import (
	"fmt"
	"strings"
)

// Location represents a span of source code with start and end positions
type Location struct {
	Start    *Position
	End      *Position
	Filename *string
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename *string, start, end *Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos *Position) bool {
	if l.Start == nil || l.End == nil || pos == nil {
		return false
	}
	if l.Start.Line > pos.Line || (l.Start.Line == pos.Line && l.Start.Column > pos.Column) {
		return false
	}
	if l.End.Line < pos.Line || (l.End.Line == pos.Line && l.End.Column < pos.Column) {
		return false
	}
	return true
}

func (l *Location) String() string {
	if l.Start == nil || l.End == nil {
		return "location(unknown)"
	}

	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// File returns the file name of the location, or an empty string.
func (l *Location) File() string {
	if l == nil || l.Filename == nil {
		return ""
	}
	return *l.Filename
}

// SplitLines splits source text into lines, accepting both \n and \r\n endings.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
