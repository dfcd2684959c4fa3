package resolver

import (
	"log/slog"

	"github.com/euanchree/mini-square-compiler/internal/builtins"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/semantics/symbols"
	"github.com/euanchree/mini-square-compiler/internal/semantics/table"
)

// Resolver binds every identifier and operator occurrence to its declaration.
// Names it cannot find are left unbound; reporting them is up to the type checker,
// which knows what kind of entity was expected.
type Resolver struct {
	env         *builtins.Environment
	scope       *table.SymbolTable
	diagnostics *diagnostics.DiagnosticBag
	logger      *slog.Logger
}

// New creates a resolver whose outermost scope is the environment's universe.
func New(env *builtins.Environment, diag *diagnostics.DiagnosticBag) *Resolver {
	return &Resolver{
		env:         env,
		scope:       env.Universe(),
		diagnostics: diag,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// SetLogger enables binding traces at debug level.
func (r *Resolver) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Resolve binds names in a whole program against the standard environment.
func Resolve(prog *ast.Program, env *builtins.Environment, diag *diagnostics.DiagnosticBag) {
	New(env, diag).ResolveProgram(prog)
}

// ResolveProgram binds names in prog. The resolver can be reused afterwards;
// every let it opens is closed again.
func (r *Resolver) ResolveProgram(prog *ast.Program) {
	if prog == nil {
		return
	}
	r.resolveCommand(prog.Command)
}

// resolveCommand recursively binds names in a command
func (r *Resolver) resolveCommand(cmd ast.Command) {
	switch c := cmd.(type) {
	case *ast.SequentialCommand:
		for _, sub := range c.Commands {
			r.resolveCommand(sub)
		}
	case *ast.AssignCommand:
		r.resolveIdentifier(c.Identifier)
		r.resolveExpr(c.Expression)
	case *ast.CallCommand:
		r.resolveIdentifier(c.Identifier)
		r.resolveParam(c.Parameter)
	case *ast.QuickIfCommand:
		r.resolveExpr(c.Guard)
		r.resolveCommand(c.Command)
	case *ast.IfCommand:
		r.resolveExpr(c.Guard)
		r.resolveCommand(c.Then)
		r.resolveCommand(c.Else)
	case *ast.WhileCommand:
		r.resolveExpr(c.Guard)
		r.resolveCommand(c.Body)
	case *ast.LoopCommand:
		r.resolveCommand(c.Pre)
		r.resolveExpr(c.Guard)
		r.resolveCommand(c.Post)
	case *ast.LetCommand:
		r.openScope()
		r.resolveDecl(c.Declaration)
		r.resolveCommand(c.Body)
		r.closeScope()
	case *ast.BlankCommand, *ast.Invalid, nil:
		// nothing to bind
	}
}

// resolveDecl binds names in a declaration, then declares it in the current
// scope. A name is visible to the declarations after it but not to its own initializer.
func (r *Resolver) resolveDecl(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.SequentialDecl:
		for _, sub := range d.Declarations {
			r.resolveDecl(sub)
		}
	case *ast.ConstDecl:
		r.resolveExpr(d.Expression)
		r.declare(d.Identifier, d)
	case *ast.VarDecl:
		if d.TypeDenoter != nil {
			r.resolveIdentifier(d.TypeDenoter.Identifier)
		}
		r.declare(d.Identifier, d)
	}
}

// resolveExpr binds identifier and operator references in expressions
func (r *Resolver) resolveExpr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.IdentifierExpr:
		r.resolveIdentifier(e.Identifier)
	case *ast.CallExpr:
		r.resolveIdentifier(e.Identifier)
		r.resolveParam(e.Parameter)
	case *ast.UnaryExpr:
		r.resolveOperator(e.Operator)
		r.resolveExpr(e.Operand)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveOperator(e.Operator)
		r.resolveExpr(e.Right)
	case *ast.IntegerLiteral, *ast.CharacterLiteral, *ast.Invalid, nil:
		// literals don't need binding
	}
}

func (r *Resolver) resolveParam(param ast.Parameter) {
	switch p := param.(type) {
	case *ast.ValueParam:
		r.resolveExpr(p.Expression)
	case *ast.VarParam:
		r.resolveIdentifier(p.Identifier)
	}
}

func (r *Resolver) resolveIdentifier(id *ast.Identifier) {
	if id == nil {
		return
	}
	sym, ok := r.scope.Lookup(id.Spelling())
	if !ok {
		r.logger.Debug("unbound identifier", "name", id.Spelling())
		return
	}
	id.Decl.Set(sym.Decl)
	r.logger.Debug("bound identifier", "name", id.Spelling(), "kind", sym.Kind.String())
}

// resolveOperator looks operators up by spelling and arity: the unary and
// binary operators live in separate tables.
func (r *Resolver) resolveOperator(op *ast.Operator) {
	if op == nil {
		return
	}
	decl, ok := r.env.LookupOperator(op.Spelling(), op.Arity)
	if !ok {
		r.logger.Debug("unbound operator", "operator", op.Spelling(), "arity", op.Arity)
		return
	}
	op.Decl.Set(decl)
}

// declare adds a let-bound name to the innermost scope. The defining
// occurrence is bound to its own declaration even when it is a duplicate.
func (r *Resolver) declare(id *ast.Identifier, decl ast.Declaration) {
	if id == nil {
		return
	}
	id.Decl.Set(decl)

	name := id.Spelling()
	if name == "" {
		return
	}
	if prev, exists := r.scope.GetSymbol(name); exists {
		r.diagnostics.Add(diagnostics.RedeclaredSymbol(id.Loc(), prev.Decl.Loc(), name))
		return
	}
	if err := r.scope.Declare(name, symbols.New(name, decl)); err != nil {
		r.logger.Error("declare failed", "name", name, "error", err)
	}
}

func (r *Resolver) openScope() {
	r.scope = table.NewSymbolTable(r.scope)
}

func (r *Resolver) closeScope() {
	if parent := r.scope.Parent(); parent != nil {
		r.scope = parent
	}
}
