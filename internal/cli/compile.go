package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/euanchree/mini-square-compiler/internal/astdump"
	"github.com/euanchree/mini-square-compiler/internal/compiler"
)

func newCompileCmd(s *settings) *cobra.Command {
	var output, dump, outDir string

	cmd := &cobra.Command{
		Use:   "compile <input> [-o output]",
		Short: "Check a program and write the annotated tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("dump") {
				s.cfg.Output.Dump = dump
			}
			if cmd.Flags().Changed("out-dir") {
				s.cfg.Output.Dir = outDir
			}
			format, err := astdump.ParseFormat(s.cfg.Output.Dump)
			if err != nil {
				return err
			}

			opts := &compiler.Options{
				EntryFile: args[0],
				Debug:     s.cfg.Compiler.Debug,
				Format:    s.format,
				Output:    output,
				OutputDir: s.cfg.Output.Dir,
				Writer:    cmd.OutOrStdout(),
				Logger:    s.logger,
			}
			if format != astdump.FormatNone {
				opts.Generator = astdump.FileGenerator{Format: format}
			}
			return runCompile(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "artifact path (default: <out-dir>/<input name>.<format>)")
	cmd.Flags().StringVar(&dump, "dump", "", "artifact format: yaml, json, text or none")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for the artifact")
	return cmd
}

func newCheckCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "check <input>",
		Short: "Check a program without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, &compiler.Options{
				EntryFile: args[0],
				Debug:     s.cfg.Compiler.Debug,
				Format:    s.format,
				Writer:    cmd.OutOrStdout(),
				Logger:    s.logger,
			})
		},
	}
}

func runCompile(cmd *cobra.Command, opts *compiler.Options) error {
	w := cmd.OutOrStdout()
	if opts.Debug {
		fmt.Fprintln(w, "Compiling...")
	}
	result, err := compiler.Compile(opts)
	if err != nil {
		return err
	}
	return reportOutcome(w, opts.EntryFile, result.Success, result.ArtifactPath)
}
