package pipeline

import (
	"fmt"
	"io"

	"github.com/euanchree/mini-square-compiler/colors"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
)

// PrintSummary prints a summary of the compilation
func (p *Pipeline) PrintSummary(w io.Writer) {
	fmt.Fprintln(w)
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	colors.CYAN.Fprintln(w, "        COMPILATION SUMMARY")
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")

	fmt.Fprintf(w, "Source: %s\n", p.FilePath)
	fmt.Fprintf(w, "Phase: %s\n", p.phase)
	fmt.Fprintf(w, "Tokens: %d\n", len(p.tokens))
	if p.program != nil {
		nodes := 0
		ast.Inspect(p.program, func(ast.Node) bool {
			nodes++
			return true
		})
		fmt.Fprintf(w, "Nodes: %d\n", nodes)
	}
	fmt.Fprintf(w, "Errors: %d\n", p.Diagnostics.ErrorCount())
}
