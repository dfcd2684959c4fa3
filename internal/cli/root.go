package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/euanchree/mini-square-compiler/colors"
	"github.com/euanchree/mini-square-compiler/internal/config"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/logging"
)

// ErrFailed is returned when the program had errors. They have already been
// printed, so callers only need to set the exit status.
var ErrFailed = errors.New("compilation failed")

// settings is the configuration after flags have been applied.
type settings struct {
	cfgFile     string
	debug       bool
	diagnostics string
	color       string
	logLevel    string

	cfg    *config.Config
	format diagnostics.Format
	logger *slog.Logger
}

// Execute runs the tric command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:   "tric",
		Short: "tric - Mini-Triangle compiler front end",
		Long: `tric checks Mini-Triangle programs: it tokenises, parses, resolves
names and type checks a single source file, reporting every error it finds.

A program that passes every stage is written out as an annotated syntax
tree for the code generator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file (default: $TRIC_CONFIG, ./tric.toml or ./tric.yaml)")
	flags.BoolVarP(&s.debug, "debug", "d", false, "print each stage as it runs")
	flags.StringVar(&s.diagnostics, "diagnostics", "", "diagnostics format: plain or rich")
	flags.StringVar(&s.color, "color", "", "colour output: auto, always or never")
	flags.StringVar(&s.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newCompileCmd(s),
		newCheckCmd(s),
		newTokensCmd(s),
		newASTCmd(s),
		newReplCmd(s),
		newVersionCmd(),
	)
	return rootCmd
}

// load reads the config file and lets explicitly set flags override it.
func (s *settings) load(cmd *cobra.Command) error {
	var err error
	if s.cfgFile != "" {
		s.cfg, err = config.Load(s.cfgFile)
	} else {
		s.cfg, _, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		s.cfg.Compiler.Debug = s.debug
	}
	if flags.Changed("diagnostics") {
		s.cfg.Compiler.Diagnostics = s.diagnostics
	}
	if flags.Changed("color") {
		s.cfg.Compiler.Color = s.color
	}
	if flags.Changed("log-level") {
		s.cfg.Compiler.LogLevel = s.logLevel
	}
	if s.cfg.Compiler.Debug && !flags.Changed("log-level") {
		s.cfg.Compiler.LogLevel = "debug"
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	if err := colors.SetMode(s.cfg.Compiler.Color); err != nil {
		return err
	}
	if s.format, err = diagnostics.ParseFormat(s.cfg.Compiler.Diagnostics); err != nil {
		return err
	}
	s.logger = logging.New(cmd.ErrOrStderr(), s.cfg.Compiler.LogLevel)
	return nil
}

// reportOutcome prints the final line of a compilation.
func reportOutcome(w io.Writer, input string, success bool, artifact string) error {
	if !success {
		colors.RED.Fprintf(w, "Errors have occurred during the compilation of '%s', see the error messages for reference.\n", input)
		return ErrFailed
	}
	if artifact != "" {
		colors.GREEN.Fprintf(w, "Compilation completed successfully, output written to %s\n", artifact)
		return nil
	}
	colors.GREEN.Fprintln(w, "Compilation completed successfully")
	return nil
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "error: %s: %v\n", msg, err)
}
