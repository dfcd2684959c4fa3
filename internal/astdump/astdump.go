package astdump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/semantics/symbols"
)

// Format selects how a tree is written
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatNone Format = "none"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatYAML, FormatJSON, FormatText, FormatNone:
		return f, nil
	case "":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown dump format %q (want yaml, json, text or none)", name)
	}
}

// Extension returns the file extension used for artifacts in this format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatText:
		return ".txt"
	default:
		return ".yaml"
	}
}

// Node is the serialisable form of one tree node with its annotations.
type Node struct {
	Kind     string  `yaml:"kind" json:"kind"`
	Text     string  `yaml:"text,omitempty" json:"text,omitempty"`
	Type     string  `yaml:"type,omitempty" json:"type,omitempty"`
	Decl     string  `yaml:"decl,omitempty" json:"decl,omitempty"`
	Position string  `yaml:"position,omitempty" json:"position,omitempty"`
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Build converts a tree into its serialisable form.
func Build(n ast.Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: kindName(n), Position: position(n)}

	switch n := n.(type) {
	case *ast.Identifier:
		out.Text = n.Spelling()
		if decl, ok := n.Decl.Get(); ok {
			out.Decl = describeDecl(decl)
		}
	case *ast.Operator:
		out.Text = n.Spelling()
		if decl, ok := n.Decl.Get(); ok {
			out.Decl = describeDecl(decl)
		}
	case *ast.IntegerLiteral:
		out.Text = n.Token.Value
	case *ast.CharacterLiteral:
		out.Text = "'" + n.Token.Value + "'"
	case *ast.TypeDenoter:
		if typ, ok := n.Type.Get(); ok {
			out.Type = typ.Name
		}
	}

	switch n := n.(type) {
	case ast.Expression:
		if typ, ok := n.TypeSlot().Get(); ok {
			out.Type = typ.Name
		}
	case ast.Parameter:
		if typ, ok := n.TypeSlot().Get(); ok {
			out.Type = typ.Name
		}
	}

	for _, child := range ast.Children(n) {
		out.Children = append(out.Children, Build(child))
	}
	return out
}

// Write encodes prog to w in the given format.
func Write(w io.Writer, prog *ast.Program, format Format) error {
	root := Build(prog)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("astdump: marshal yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("astdump: encoder close: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(root); err != nil {
			return fmt.Errorf("astdump: marshal json: %w", err)
		}
	case FormatText:
		writeText(w, root, 0)
	case FormatNone:
	default:
		return fmt.Errorf("astdump: unknown format %q", format)
	}
	return nil
}

// WriteFile writes prog to path, creating its directory if needed.
func WriteFile(path string, prog *ast.Program, format Format) error {
	var buf bytes.Buffer
	if err := Write(&buf, prog, format); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("astdump: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("astdump: write %s: %w", path, err)
	}
	return nil
}

// writeText prints one node per line, children indented under their parent.
func writeText(w io.Writer, n *Node, depth int) {
	if n == nil {
		return
	}
	var line strings.Builder
	line.WriteString(strings.Repeat("  ", depth))
	line.WriteString(n.Kind)
	if n.Text != "" {
		line.WriteString(" " + n.Text)
	}
	if n.Type != "" {
		line.WriteString(" : " + n.Type)
	}
	if n.Decl != "" {
		line.WriteString(" -> " + n.Decl)
	}
	if n.Position != "" {
		line.WriteString(" @" + n.Position)
	}
	fmt.Fprintln(w, line.String())

	for _, child := range n.Children {
		writeText(w, child, depth+1)
	}
}

func kindName(n ast.Node) string {
	name := fmt.Sprintf("%T", n)
	return strings.TrimPrefix(name, "*ast.")
}

func position(n ast.Node) string {
	loc := n.Loc()
	if loc == nil || loc.Start == nil {
		return ""
	}
	return loc.Start.String()
}

// describeDecl names what a use was bound to, and where when it is in the source.
func describeDecl(decl ast.Declaration) string {
	kind := symbols.KindOf(decl).String()
	if pos := position(decl); pos != "" {
		return kind + " declared at " + pos
	}
	return "standard " + kind
}
