package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/euanchree/mini-square-compiler/colors"
	"github.com/euanchree/mini-square-compiler/internal/builtins"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/phase"
	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

// ErrCompilationFailed is returned by Run when a stage reported errors.
var ErrCompilationFailed = errors.New("compilation failed with errors")

// Pipeline runs the front end stages over one source text
type Pipeline struct {
	FilePath    string
	Content     string
	Env         *builtins.Environment
	Diagnostics *diagnostics.DiagnosticBag
	Debug       bool
	Out         io.Writer // progress output when Debug is set
	Logger      *slog.Logger

	phase      phase.Phase
	tokens     []tokens.Token
	program    *ast.Program
	incomplete bool
}

// New creates a new compilation pipeline over content, read from filePath.
func New(filePath, content string, diag *diagnostics.DiagnosticBag) *Pipeline {
	diag.AddSourceContent(filePath, content)
	return &Pipeline{
		FilePath:    filePath,
		Content:     content,
		Env:         builtins.Standard(),
		Diagnostics: diag,
		Out:         os.Stdout,
		Logger:      slog.New(slog.DiscardHandler),
		phase:       phase.PhaseNotStarted,
	}
}

// Run executes the full pipeline. Every stage visits its whole input, but
// the next stage only starts when no errors have been reported so far.
func (p *Pipeline) Run() error {
	stages := []struct {
		name string
		run  func() error
	}{
		{"Tokenising", p.RunLexer},
		{"Parsing", p.RunParser},
		{"Identifying", p.RunResolver},
		{"Type Checking", p.RunTypeChecker},
	}

	for _, stage := range stages {
		if p.Debug {
			colors.CYAN.Fprintf(p.Out, "%s...\n", stage.name)
		}
		if err := stage.run(); err != nil {
			return err
		}
		if p.Diagnostics.HasErrors() {
			p.Logger.Info("stage reported errors", "stage", stage.name, "errors", p.Diagnostics.ErrorCount())
			return fmt.Errorf("%w: %d error(s) during %s", ErrCompilationFailed, p.Diagnostics.ErrorCount(), stage.name)
		}
		if p.Debug {
			colors.GREEN.Fprintln(p.Out, "Done")
		}
	}

	if p.Debug {
		colors.GREEN.Fprintf(p.Out, "\n✓ %s checked successfully\n", p.FilePath)
	}
	return nil
}

// Phase returns the last completed phase.
func (p *Pipeline) Phase() phase.Phase {
	return p.phase
}

// Tokens returns the token stream once lexing has run.
func (p *Pipeline) Tokens() []tokens.Token {
	return p.tokens
}

// Program returns the tree once parsing has run. After type checking it is fully annotated.
func (p *Pipeline) Program() *ast.Program {
	return p.program
}

// Incomplete reports whether parsing stopped at the end of the input in the
// middle of a construct.
func (p *Pipeline) Incomplete() bool {
	return p.incomplete
}

func (p *Pipeline) advance(next phase.Phase) error {
	advanced, err := phase.Advance(p.phase, next)
	if err != nil {
		return fmt.Errorf("pipeline %s: %w", p.FilePath, err)
	}
	p.phase = advanced
	p.Logger.Debug("phase complete", "phase", advanced.String())
	return nil
}
