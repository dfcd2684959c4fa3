package colors

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// paint styles every line of s on its own so newlines stay outside the escape sequences.
func (c COLOR) paint(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = c.style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Print methods (default to stdout)
func (c COLOR) Printf(format string, args ...any) {
	c.Fprintf(os.Stdout, format, args...)
}

func (c COLOR) Println(args ...any) {
	c.Fprintln(os.Stdout, args...)
}

func (c COLOR) Print(args ...any) {
	c.Fprint(os.Stdout, args...)
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprint(w, c.paint(fmt.Sprintf(format, args...)))
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, c.paint(fmt.Sprintln(args...)))
}

func (c COLOR) Fprint(w io.Writer, args ...any) {
	fmt.Fprint(w, c.paint(fmt.Sprint(args...)))
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return c.paint(fmt.Sprintf(format, args...))
}

func (c COLOR) Sprint(args ...any) string {
	return c.paint(fmt.Sprint(args...))
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")

// StripANSI removes ANSI color codes from a string
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
