package builtins

import (
	"testing"

	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/semantics/symbols"
)

func TestStandardIsShared(t *testing.T) {
	if Standard() != Standard() {
		t.Fatal("Standard() built two environments")
	}
}

func TestTypesAreCanonical(t *testing.T) {
	env := Standard()

	for _, name := range []string{"Integer", "Char", "Boolean"} {
		sym, ok := env.Universe().Lookup(name)
		if !ok {
			t.Fatalf("%s is not declared", name)
		}
		if sym.Kind != symbols.SymbolType {
			t.Errorf("%s kind = %v, want type", name, sym.Kind)
		}
	}

	sym, _ := env.Universe().Lookup("Integer")
	if sym.Decl != env.Integer {
		t.Error("Integer symbol is not the canonical Integer node")
	}

	for _, hidden := range []string{"Any", "Void"} {
		if _, ok := env.Universe().Lookup(hidden); ok {
			t.Errorf("%s must not be nameable", hidden)
		}
	}
}

func TestFunctionsAndProcedures(t *testing.T) {
	env := Standard()

	tests := []struct {
		name      string
		procedure bool
		arity     int
		byRef     bool
	}{
		{"chr", false, 1, false},
		{"ord", false, 1, false},
		{"eof", false, 0, false},
		{"eol", false, 0, false},
		{"get", true, 1, true},
		{"put", true, 1, false},
		{"getint", true, 1, true},
		{"putint", true, 1, false},
		{"geteol", true, 0, false},
		{"puteol", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, ok := env.Universe().Lookup(tt.name)
			if !ok {
				t.Fatalf("%s not declared", tt.name)
			}
			fn, ok := sym.Decl.(*ast.FuncDecl)
			if !ok {
				t.Fatalf("%s is %T, want *ast.FuncDecl", tt.name, sym.Decl)
			}
			if fn.IsProcedure() != tt.procedure {
				t.Errorf("IsProcedure() = %v, want %v", fn.IsProcedure(), tt.procedure)
			}
			if len(fn.Params) != tt.arity {
				t.Fatalf("arity = %d, want %d", len(fn.Params), tt.arity)
			}
			if tt.arity == 1 && fn.Params[0].ByRef != tt.byRef {
				t.Errorf("ByRef = %v, want %v", fn.Params[0].ByRef, tt.byRef)
			}
		})
	}
}

func TestConstants(t *testing.T) {
	env := Standard()

	tests := []struct {
		name string
		typ  *ast.TypeDecl
	}{
		{"true", env.Boolean},
		{"false", env.Boolean},
		{"maxint", env.Integer},
	}

	for _, tt := range tests {
		sym, ok := env.Universe().Lookup(tt.name)
		if !ok {
			t.Fatalf("%s not declared", tt.name)
		}
		c, ok := sym.Decl.(ast.Entity)
		if !ok {
			t.Fatalf("%s is not an entity", tt.name)
		}
		if typ, _ := c.EntityType(); typ != tt.typ {
			t.Errorf("%s type = %v, want %v", tt.name, typ, tt.typ)
		}
	}
}

func TestLookupOperator(t *testing.T) {
	env := Standard()

	tests := []struct {
		spelling string
		arity    int
		found    bool
		result   *ast.TypeDecl
		generic  bool
	}{
		{"+", 2, true, env.Integer, false},
		{"<=", 2, true, env.Boolean, false},
		{"=", 2, true, env.Boolean, true},
		{"\\=", 2, true, env.Boolean, true},
		{"/\\", 2, true, env.Boolean, false},
		{"-", 1, true, env.Integer, false},
		{"-", 2, true, env.Integer, false},
		{"\\", 1, true, env.Boolean, false},
		{"\\", 2, false, nil, false},
		{"+", 1, false, nil, false},
		{"@@", 2, false, nil, false},
	}

	for _, tt := range tests {
		op, ok := env.LookupOperator(tt.spelling, tt.arity)
		if ok != tt.found {
			t.Errorf("LookupOperator(%q, %d) found = %v, want %v", tt.spelling, tt.arity, ok, tt.found)
			continue
		}
		if !ok {
			continue
		}
		if op.Arity() != tt.arity {
			t.Errorf("%q arity = %d, want %d", tt.spelling, op.Arity(), tt.arity)
		}
		if op.Result != tt.result {
			t.Errorf("%q result = %v, want %v", tt.spelling, op.Result, tt.result)
		}
		if op.IsGeneric() != tt.generic {
			t.Errorf("%q generic = %v, want %v", tt.spelling, op.IsGeneric(), tt.generic)
		}
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		v    int64
		want bool
	}{
		{0, true},
		{30000, true},
		{32767, true},
		{32768, false},
		{40000, false},
		{-32768, true},
		{-32769, false},
	}
	for _, tt := range tests {
		if got := InRange(tt.v); got != tt.want {
			t.Errorf("InRange(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
