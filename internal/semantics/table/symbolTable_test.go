package table

import (
	"testing"

	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/semantics/symbols"
)

func newTestSymbol(name string) *symbols.Symbol {
	return symbols.New(name, &ast.VarDecl{})
}

func TestNewSymbolTable(t *testing.T) {
	st := NewSymbolTable(nil)
	if st == nil {
		t.Fatal("NewSymbolTable returned nil")
	}
	if st.Parent() != nil {
		t.Error("Expected parent to be nil")
	}
	if len(st.Names()) != 0 {
		t.Error("Expected symbols map to be empty")
	}
}

func TestDeclareAndGetSymbol(t *testing.T) {
	st := NewSymbolTable(nil)
	sym := newTestSymbol("foo")
	if err := st.Declare("foo", sym); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	got, ok := st.GetSymbol("foo")
	if !ok {
		t.Error("GetSymbol did not find declared symbol")
	}
	if got != sym {
		t.Error("GetSymbol returned wrong symbol")
	}
	if got.Kind != symbols.SymbolVariable {
		t.Errorf("Kind = %v, want variable", got.Kind)
	}
}

func TestDeclareDuplicate(t *testing.T) {
	st := NewSymbolTable(nil)
	sym := newTestSymbol("bar")
	_ = st.Declare("bar", sym)
	if err := st.Declare("bar", sym); err == nil {
		t.Error("Expected error on duplicate declaration")
	}
}

func TestLookupWalksOutward(t *testing.T) {
	outer := NewSymbolTable(nil)
	inner := NewSymbolTable(outer)

	outerX := newTestSymbol("x")
	innerX := newTestSymbol("x")
	y := newTestSymbol("y")
	_ = outer.Declare("x", outerX)
	_ = outer.Declare("y", y)
	_ = inner.Declare("x", innerX)

	tests := []struct {
		name  string
		scope *SymbolTable
		want  *symbols.Symbol
		found bool
	}{
		{"x", inner, innerX, true},
		{"x", outer, outerX, true},
		{"y", inner, y, true},
		{"z", inner, nil, false},
	}

	for _, tt := range tests {
		got, ok := tt.scope.Lookup(tt.name)
		if ok != tt.found || got != tt.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.found)
		}
	}

	if _, ok := inner.GetSymbol("y"); ok {
		t.Error("GetSymbol must not consult the parent scope")
	}
}

func TestNamesSorted(t *testing.T) {
	st := NewSymbolTable(nil)
	for _, n := range []string{"put", "chr", "eof"} {
		_ = st.Declare(n, newTestSymbol(n))
	}
	names := st.Names()
	if len(names) != 3 || names[0] != "chr" || names[1] != "eof" || names[2] != "put" {
		t.Errorf("Names() = %v", names)
	}
}
