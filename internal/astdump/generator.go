package astdump

import (
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
)

// FileGenerator writes the annotated tree as the compilation artifact.
type FileGenerator struct {
	Format Format
}

// Generate writes prog to path.
func (g FileGenerator) Generate(prog *ast.Program, path string) error {
	return WriteFile(path, prog, g.Format)
}

// Extension returns the artifact file extension.
func (g FileGenerator) Extension() string {
	return g.Format.Extension()
}
