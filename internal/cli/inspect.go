package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/euanchree/mini-square-compiler/internal/astdump"
	"github.com/euanchree/mini-square-compiler/internal/compiler"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/pipeline"
)

func newTokensCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <input>",
		Short: "Print the token stream of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("cannot read input: %w", err)
			}

			w := cmd.OutOrStdout()
			bag := diagnostics.NewDiagnosticBag()
			p := pipeline.New(args[0], string(data), bag)
			p.Logger = s.logger
			if err := p.RunLexer(); err != nil {
				return err
			}
			for _, tok := range p.Tokens() {
				tok.Debug(w, args[0])
			}

			bag.EmitAll(w, s.format)
			if bag.HasErrors() {
				return ErrFailed
			}
			return nil
		},
	}
}

func newASTCmd(s *settings) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast <input>",
		Short: "Print the annotated syntax tree of a program",
		Long: `Print the syntax tree of a program with the declaration each name is
bound to and the type of each expression. When a stage fails the tree is
printed as far as it was built.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dumpFormat, err := astdump.ParseFormat(format)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			result, err := compiler.Compile(&compiler.Options{
				EntryFile: args[0],
				Debug:     s.cfg.Compiler.Debug,
				Format:    s.format,
				Writer:    w,
				Logger:    s.logger,
			})
			if err != nil {
				return err
			}
			if result.Program != nil {
				if err := astdump.Write(w, result.Program, dumpFormat); err != nil {
					return err
				}
			}
			if !result.Success {
				return ErrFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "tree format: text, yaml or json")
	return cmd
}
