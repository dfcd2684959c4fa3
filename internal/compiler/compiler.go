package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/logging"
	"github.com/euanchree/mini-square-compiler/internal/phase"
	"github.com/euanchree/mini-square-compiler/internal/pipeline"
)

// InlineName is the file name reported for in-memory code.
const InlineName = "<input>"

// Generator consumes a fully checked tree. It is never called when any
// stage reported an error.
type Generator interface {
	Generate(prog *ast.Program, path string) error
	Extension() string
}

// Options for compilation
type Options struct {
	// For file-based compilation
	EntryFile string
	// For in-memory compilation (REPL, tests)
	Code string
	// Debug prints each stage as it runs
	Debug bool
	// Diagnostics format, plain by default
	Format diagnostics.Format
	// Artifact path. When empty the artifact goes to OutputDir, named after the entry file.
	Output    string
	OutputDir string
	// Generator writes the artifact. Nil means check only.
	Generator Generator
	// Writer receives diagnostics and progress. Defaults to os.Stderr.
	Writer io.Writer
	Logger *slog.Logger
}

// Result of compilation
type Result struct {
	Success      bool
	Program      *ast.Program
	Diagnostics  *diagnostics.DiagnosticBag
	Phase        phase.Phase
	ArtifactPath string
	RunID        string
	// Incomplete is set when the input ended in the middle of a construct
	Incomplete bool
}

// Compile runs the front end over one program and, when it is error free,
// hands the annotated tree to the generator. Faults in the program are
// reported through Result.Diagnostics; the error return is kept for host
// problems such as an unreadable file.
func Compile(opts *Options) (Result, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	filePath, content, err := readSource(opts)
	if err != nil {
		return Result{}, err
	}

	logger, runID := logging.WithRun(opts.Logger, filePath)
	logger.Info("compilation started")

	bag := diagnostics.NewDiagnosticBag()
	p := pipeline.New(filePath, content, bag)
	p.Debug = opts.Debug
	p.Out = writer
	p.Logger = logger

	runErr := p.Run()
	if runErr != nil && !errors.Is(runErr, pipeline.ErrCompilationFailed) {
		return Result{}, runErr
	}

	bag.EmitAll(writer, opts.Format)

	result := Result{
		Success:     runErr == nil,
		Program:     p.Program(),
		Diagnostics: bag,
		Phase:       p.Phase(),
		RunID:       runID,
		Incomplete:  p.Incomplete(),
	}

	if result.Success && opts.Generator != nil {
		path := artifactPath(opts, filePath)
		if err := opts.Generator.Generate(result.Program, path); err != nil {
			return result, fmt.Errorf("write artifact: %w", err)
		}
		result.ArtifactPath = path
		logger.Info("artifact written", "path", path)
	}

	logger.Info("compilation finished", "success", result.Success, "phase", result.Phase.String(), "errors", bag.ErrorCount())
	return result, nil
}

func readSource(opts *Options) (string, string, error) {
	if opts.EntryFile == "" {
		return InlineName, opts.Code, nil
	}

	data, err := os.ReadFile(opts.EntryFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("the input file %q does not exist", opts.EntryFile)
		}
		return "", "", fmt.Errorf("cannot read %s: %w", opts.EntryFile, err)
	}
	return opts.EntryFile, string(data), nil
}

// artifactPath returns Output when set. Otherwise the artifact is named after
// the source file and placed in OutputDir, or beside the source file when
// OutputDir is empty.
func artifactPath(opts *Options, filePath string) string {
	if opts.Output != "" {
		return opts.Output
	}
	stem := "main"
	if filePath != InlineName {
		base := filepath.Base(filePath)
		stem = strings.TrimSuffix(base, filepath.Ext(base))
	}
	dir := opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(opts.EntryFile)
	}
	return filepath.Join(dir, stem+opts.Generator.Extension())
}
