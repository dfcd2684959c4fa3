package typechecker

import (
	"testing"

	"github.com/euanchree/mini-square-compiler/internal/builtins"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/frontend/lexer"
	"github.com/euanchree/mini-square-compiler/internal/frontend/parser"
	"github.com/euanchree/mini-square-compiler/internal/semantics/resolver"
)

// checkString lexes, parses, resolves and type checks src. Earlier stages must succeed.
func checkString(t *testing.T, src string) (*ast.Program, *diagnostics.DiagnosticBag) {
	t.Helper()
	bag := diagnostics.NewDiagnosticBag()
	toks := lexer.New("test.tri", src, bag).Tokenize(false)
	prog := parser.Parse(toks, "test.tri", bag)
	if bag.HasErrors() {
		t.Fatalf("parsing %q failed: %s", src, bag.Diagnostics()[0].Message)
	}

	env := builtins.Standard()
	resolver.Resolve(prog, env, bag)
	if bag.HasErrors() {
		t.Fatalf("resolving %q failed: %s", src, bag.Diagnostics()[0].Message)
	}
	Check(prog, env, bag)
	return prog, bag
}

func messages(bag *diagnostics.DiagnosticBag) []string {
	var out []string
	for _, d := range bag.Diagnostics() {
		out = append(out, d.Message)
	}
	return out
}

// expectErrors checks that exactly the given codes were reported, in order.
func expectErrors(t *testing.T, bag *diagnostics.DiagnosticBag, codes ...string) {
	t.Helper()
	diags := bag.Diagnostics()
	if len(diags) != len(codes) {
		t.Fatalf("got %d diagnostics %q, want %d", len(diags), messages(bag), len(codes))
	}
	for i, code := range codes {
		if diags[i].Code != code {
			t.Errorf("diagnostic %d: code %s (%q), want %s", i, diags[i].Code, diags[i].Message, code)
		}
	}
}
