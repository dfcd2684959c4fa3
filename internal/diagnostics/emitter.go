package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/euanchree/mini-square-compiler/colors"
	"github.com/euanchree/mini-square-compiler/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// Format selects how diagnostics are rendered.
type Format string

const (
	// FormatPlain prints one "Error at line:column, message." line per diagnostic.
	FormatPlain Format = "plain"
	// FormatRich prints the source line, a caret underline, the code and any help.
	FormatRich Format = "rich"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPlain, FormatRich:
		return Format(name), nil
	case "":
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unknown diagnostics format %q (want plain or rich)", name)
	}
}

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource registers in-memory content for a path.
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = source.SplitLines(content)
}

func (sc *SourceCache) clone() *SourceCache {
	out := NewSourceCache()
	for path, lines := range sc.files {
		out.files[path] = lines
	}
	return out
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		content, err := os.ReadFile(filepath)
		if err != nil {
			return "", err
		}
		lines = source.SplitLines(string(content))
		sc.files[filepath] = lines
	}

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache       *SourceCache
	writer      io.Writer
	format      Format
	highlighter *SyntaxHighlighter
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer, format Format) *Emitter {
	return &Emitter{
		cache:       NewSourceCache(),
		writer:      w,
		format:      format,
		highlighter: NewSyntaxHighlighter(true),
	}
}

func (e *Emitter) Emit(diag *Diagnostic) {
	if e.format == FormatRich {
		e.emitRich(diag)
		return
	}
	e.emitPlain(diag)
}

// emitPlain writes the classic one-line form.
func (e *Emitter) emitPlain(diag *Diagnostic) {
	fmt.Fprintf(e.writer, "%s at %s, %s.\n", capitalize(diag.Severity.String()), diag.Position(), diag.Message)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (e *Emitter) emitRich(diag *Diagnostic) {
	e.printHeader(diag)

	lineNumWidth := e.lineNumWidth(diag)
	for _, label := range diag.Labels {
		e.printLabel(diag, label, lineNumWidth)
	}

	for _, note := range diag.Notes {
		e.printTrailer(lineNumWidth, "note", note.Message, colors.CYAN)
	}

	if diag.Help != "" {
		e.printTrailer(lineNumWidth, "help", diag.Help, colors.GREEN)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	var color colors.COLOR

	switch diag.Severity {
	case Error:
		color = colors.BOLD_RED
	default:
		color = colors.BOLD_CYAN
	}

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		color.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	fmt.Fprintln(e.writer, diag.Message)
}

// lineNumWidth calculates the gutter width needed for every line this diagnostic shows
func (e *Emitter) lineNumWidth(diag *Diagnostic) int {
	maxLine := 0
	for _, label := range diag.Labels {
		if label.Location == nil || label.Location.Start == nil {
			continue
		}
		line := label.Location.Start.Line
		if label.Location.End != nil && label.Location.End.Line > line {
			line = label.Location.End.Line
		}
		if line > maxLine {
			maxLine = line
		}
	}
	if maxLine == 0 {
		return 1
	}
	return len(fmt.Sprintf("%d", maxLine))
}

func (e *Emitter) printLabel(diag *Diagnostic, label Label, lineNumWidth int) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	filepath := label.Location.File()
	if filepath == "" {
		filepath = diag.FilePath
	}
	start := label.Location.Start
	end := label.Location.End
	if end == nil || end.Line != start.Line {
		end = start
	}

	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", lineNumWidth), filepath, start.Line, start.Column)

	sourceLine, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}

	colors.GREY.Fprintln(e.writer, strings.Repeat(" ", lineNumWidth)+" |")

	// previous line for context, when it has content
	if start.Line > 1 {
		prevLine, err := e.cache.GetLine(filepath, start.Line-1)
		if err == nil && strings.TrimSpace(prevLine) != "" {
			colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, lineNumWidth, start.Line-1)
			colors.GREY.Fprintln(e.writer, prevLine)
		}
	}

	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, lineNumWidth, start.Line)
	e.highlighter.HighlightWithColor(sourceLine, e.writer)
	fmt.Fprintln(e.writer)

	length := end.Column - start.Column
	if length <= 0 {
		length = 1
	}

	underlineColor := colors.BLUE
	underlineChar := "-"
	if label.Style == Primary {
		underlineChar = "^"
		if diag.Severity == Error {
			underlineColor = colors.RED
		}
	}

	colors.GREY.Fprint(e.writer, strings.Repeat(" ", lineNumWidth)+" | ")
	fmt.Fprint(e.writer, strings.Repeat(" ", max(start.Column-1, 0)))
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)
}

func (e *Emitter) printTrailer(lineNumWidth int, kind, message string, color colors.COLOR) {
	fmt.Fprint(e.writer, strings.Repeat(" ", lineNumWidth))
	colors.GREY.Fprint(e.writer, " = ")
	color.Fprintf(e.writer, "%s: ", kind)
	fmt.Fprintln(e.writer, message)
}
