package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/euanchree/mini-square-compiler/colors"
	"github.com/euanchree/mini-square-compiler/internal/astdump"
	"github.com/euanchree/mini-square-compiler/internal/compiler"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/pipeline"
)

const (
	historyFile = ".tric_history"
	promptMain  = "tric> "
	promptCont  = "  ... "
	replBanner  = "Mini-Triangle checker. Enter a program; :tree toggles the annotated tree, :quit exits."
)

func newReplCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Check programs interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(s, cmd.OutOrStdout())
		},
	}
}

func runRepl(s *settings, w io.Writer) error {
	fmt.Fprintln(w, replBanner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	r := &repl{settings: s, out: w}
	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(w)
			return nil
		}
		if quit := r.handle(code); quit {
			return nil
		}
		if strings.TrimSpace(code) != "" {
			ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		}
	}
}

// repl holds the state of one interactive session.
type repl struct {
	settings *settings
	out      io.Writer
	showTree bool
}

// handle runs one entry and reports whether the session should end.
func (r *repl) handle(code string) bool {
	trimmed := strings.TrimSpace(code)
	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(trimmed) {
		case ":quit", ":q":
			return true
		case ":tree":
			r.showTree = !r.showTree
			fmt.Fprintf(r.out, "tree output %s\n", onOff(r.showTree))
		default:
			fmt.Fprintln(r.out, "unknown command. Type :tree or :quit.")
		}
		return false
	}
	if trimmed == "" {
		return false
	}

	result, err := compiler.Compile(&compiler.Options{
		Code:   code,
		Format: r.settings.format,
		Writer: r.out,
		Logger: r.settings.logger,
	})
	if err != nil {
		printError(r.out, "check failed", err)
		return false
	}
	if !result.Success {
		return false
	}
	if r.showTree {
		_ = astdump.Write(r.out, result.Program, astdump.FormatText)
	}
	colors.GREEN.Fprintln(r.out, "ok")
	return false
}

// readByParseProbe keeps reading lines while the text so far stops in the
// middle of a construct.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src parses up to its end but needs more input.
func incomplete(src string) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	p := pipeline.New(compiler.InlineName, src, diagnostics.NewDiagnosticBag())
	if err := p.RunLexer(); err != nil || p.Diagnostics.HasErrors() {
		return false
	}
	if err := p.RunParser(); err != nil {
		return false
	}
	return p.Incomplete()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
