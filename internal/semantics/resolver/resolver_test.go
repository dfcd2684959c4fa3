package resolver

import (
	"testing"

	"github.com/euanchree/mini-square-compiler/internal/builtins"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/frontend/lexer"
	"github.com/euanchree/mini-square-compiler/internal/frontend/parser"
)

func resolveString(t *testing.T, src string) (*ast.Program, *diagnostics.DiagnosticBag) {
	t.Helper()
	bag := diagnostics.NewDiagnosticBag()
	toks := lexer.New("test.tri", src, bag).Tokenize(false)
	prog := parser.Parse(toks, "test.tri", bag)
	if bag.HasErrors() {
		t.Fatalf("parsing %q failed: %s", src, bag.Diagnostics()[0].Message)
	}
	Resolve(prog, builtins.Standard(), bag)
	return prog, bag
}

// identifiers collects every identifier occurrence with the given spelling in source order.
func identifiers(prog *ast.Program, name string) []*ast.Identifier {
	var out []*ast.Identifier
	ast.Inspect(prog, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok && id.Spelling() == name {
			out = append(out, id)
		}
		return true
	})
	return out
}

func operators(prog *ast.Program) []*ast.Operator {
	var out []*ast.Operator
	ast.Inspect(prog, func(n ast.Node) bool {
		if op, ok := n.(*ast.Operator); ok {
			out = append(out, op)
		}
		return true
	})
	return out
}

func TestUseBindsToLetDeclaration(t *testing.T) {
	prog, bag := resolveString(t, "let var x ~ Integer in x ~ 1")
	if bag.HasErrors() {
		t.Fatal(bag.Diagnostics()[0].Message)
	}
	decl := prog.Command.(*ast.LetCommand).Declaration.(*ast.VarDecl)

	ids := identifiers(prog, "x")
	if len(ids) != 2 {
		t.Fatalf("found %d occurrences of x", len(ids))
	}
	for i, id := range ids {
		if got, ok := id.Decl.Get(); !ok || got != ast.Declaration(decl) {
			t.Errorf("occurrence %d bound to %v", i, got)
		}
	}

	typeName := decl.TypeDenoter.Identifier
	if got := typeName.Decl.Value(); got != ast.Declaration(builtins.Standard().Integer) {
		t.Errorf("Integer bound to %v", got)
	}
}

func TestConstInitializerSeesOuterScope(t *testing.T) {
	prog, bag := resolveString(t, "let var x ~ Integer in let const x ~ x in putint(x)")
	if bag.HasErrors() {
		t.Fatal(bag.Diagnostics()[0].Message)
	}
	outer := prog.Command.(*ast.LetCommand)
	inner := outer.Body.(*ast.LetCommand)
	constDecl := inner.Declaration.(*ast.ConstDecl)

	initializer := constDecl.Expression.(*ast.IdentifierExpr).Identifier
	if initializer.Decl.Value() != outer.Declaration {
		t.Error("initializer should refer to the outer variable")
	}

	arg := inner.Body.(*ast.CallCommand).Parameter.(*ast.ValueParam).Expression.(*ast.IdentifierExpr)
	if arg.Identifier.Decl.Value() != ast.Declaration(constDecl) {
		t.Error("body should refer to the inner constant")
	}
}

func TestSequentialVisibility(t *testing.T) {
	prog, bag := resolveString(t, "let const a ~ 1; const b ~ a in putint(b)")
	if bag.HasErrors() {
		t.Fatal(bag.Diagnostics()[0].Message)
	}
	decls := prog.Command.(*ast.LetCommand).Declaration.(*ast.SequentialDecl)
	a := decls.Declarations[0]
	b := decls.Declarations[1].(*ast.ConstDecl)

	use := b.Expression.(*ast.IdentifierExpr).Identifier
	if use.Decl.Value() != a {
		t.Error("a is not visible to the declaration after it")
	}
}

func TestRedeclaration(t *testing.T) {
	prog, bag := resolveString(t, "let var x ~ Integer; var x ~ Char in x ~ 1")
	if bag.ErrorCount() != 1 {
		t.Fatalf("got %d errors, want 1", bag.ErrorCount())
	}
	d := bag.Diagnostics()[0]
	if d.Code != diagnostics.ErrRedeclaredSymbol {
		t.Errorf("code = %s", d.Code)
	}
	if d.Message != "identifier 'x' is already declared in this scope" {
		t.Errorf("message = %q", d.Message)
	}

	// the first declaration stays in force
	decls := prog.Command.(*ast.LetCommand).Declaration.(*ast.SequentialDecl)
	ids := identifiers(prog, "x")
	if use := ids[len(ids)-1]; use.Decl.Value() != decls.Declarations[0] {
		t.Error("use should bind to the first declaration")
	}
}

func TestShadowingIsNotRedeclaration(t *testing.T) {
	_, bag := resolveString(t, "let var x ~ Integer in let var x ~ Char in x ~ 'a'")
	if bag.HasErrors() {
		t.Errorf("unexpected error: %s", bag.Diagnostics()[0].Message)
	}
	_, bag = resolveString(t, "let var maxint ~ Integer in maxint ~ 1")
	if bag.HasErrors() {
		t.Errorf("shadowing a built-in: %s", bag.Diagnostics()[0].Message)
	}
}

func TestScopeClosesAfterLet(t *testing.T) {
	prog, bag := resolveString(t, "begin let var x ~ Integer in x ~ 1; x ~ 2 end")
	if bag.HasErrors() {
		t.Fatal(bag.Diagnostics()[0].Message)
	}
	ids := identifiers(prog, "x")
	if last := ids[len(ids)-1]; last.Decl.IsSet() {
		t.Error("x is still visible after its let")
	}
}

func TestUndeclaredIsLeftUnbound(t *testing.T) {
	prog, bag := resolveString(t, "y ~ 1")
	if bag.HasErrors() {
		t.Errorf("resolver reported %s", bag.Diagnostics()[0].Message)
	}
	if identifiers(prog, "y")[0].Decl.IsSet() {
		t.Error("undeclared identifier was bound")
	}
}

func TestBuiltinsBind(t *testing.T) {
	prog, _ := resolveString(t, "putint(maxint)")
	put := identifiers(prog, "putint")[0].Decl.Value()
	if fn, ok := put.(*ast.FuncDecl); !ok || !fn.IsProcedure() {
		t.Errorf("putint bound to %T", put)
	}
	if _, ok := identifiers(prog, "maxint")[0].Decl.Value().(*ast.BuiltinConst); !ok {
		t.Error("maxint is not a built-in constant")
	}
}

func TestOperatorsBindByArity(t *testing.T) {
	env := builtins.Standard()
	prog, _ := resolveString(t, "let var x ~ Integer in x ~ -1 - 2")
	ops := operators(prog)
	if len(ops) != 2 {
		t.Fatalf("found %d operators", len(ops))
	}

	unary, _ := env.LookupOperator("-", 1)
	binary, _ := env.LookupOperator("-", 2)
	for _, op := range ops {
		want := ast.Declaration(binary)
		if op.Arity == 1 {
			want = unary
		}
		if op.Decl.Value() != want {
			t.Errorf("arity %d operator bound to the wrong declaration", op.Arity)
		}
	}
}

func TestUnknownOperatorIsLeftUnbound(t *testing.T) {
	prog, _ := resolveString(t, "let var b ~ Boolean in b ~ true \\ false")
	for _, op := range operators(prog) {
		if op.Decl.IsSet() {
			t.Errorf("%s with arity %d should not bind", op.Spelling(), op.Arity)
		}
	}
}
