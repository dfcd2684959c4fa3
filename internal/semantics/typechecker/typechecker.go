package typechecker

import (
	"fmt"
	"log/slog"

	"github.com/euanchree/mini-square-compiler/internal/builtins"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/source"
)

// Checker annotates a resolved tree with types and reports every rule it
// finds broken. A broken rule never stops the walk: the offending node is
// left without a type and checks that depend on it are skipped, so each
// mistake is reported once.
type Checker struct {
	env         *builtins.Environment
	diagnostics *diagnostics.DiagnosticBag
	logger      *slog.Logger
}

// New creates a checker against the given standard environment.
func New(env *builtins.Environment, diag *diagnostics.DiagnosticBag) *Checker {
	return &Checker{
		env:         env,
		diagnostics: diag,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// SetLogger enables per-node traces at debug level.
func (c *Checker) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Check type checks a whole resolved program.
func Check(prog *ast.Program, env *builtins.Environment, diag *diagnostics.DiagnosticBag) {
	New(env, diag).CheckProgram(prog)
}

// CheckProgram type checks prog, which must already have been through scope resolution.
func (c *Checker) CheckProgram(prog *ast.Program) {
	if prog == nil {
		return
	}
	c.checkCommand(prog.Command)
}

// checkCommand type checks a single command
func (c *Checker) checkCommand(cmd ast.Command) {
	switch n := cmd.(type) {
	case *ast.SequentialCommand:
		for _, sub := range n.Commands {
			c.checkCommand(sub)
		}
	case *ast.AssignCommand:
		c.checkAssignCommand(n)
	case *ast.CallCommand:
		c.checkCall(n.Identifier, n.Parameter, true)
	case *ast.QuickIfCommand:
		c.checkGuard("quick if", n.Guard)
		c.checkCommand(n.Command)
	case *ast.IfCommand:
		c.checkGuard("if", n.Guard)
		c.checkCommand(n.Then)
		c.checkCommand(n.Else)
	case *ast.WhileCommand:
		c.checkGuard("while", n.Guard)
		c.checkCommand(n.Body)
	case *ast.LoopCommand:
		c.checkCommand(n.Pre)
		c.checkGuard("loop", n.Guard)
		c.checkCommand(n.Post)
	case *ast.LetCommand:
		c.checkDecl(n.Declaration)
		c.checkCommand(n.Body)
	case *ast.BlankCommand, *ast.Invalid:
		// nothing to check
	case nil:
		return
	default:
		c.diagnostics.Add(diagnostics.UnhandledNode(cmd.Loc(), "type checking", cmd))
	}
}

func (c *Checker) checkAssignCommand(n *ast.AssignCommand) {
	id := n.Identifier
	decl, _ := id.Decl.Get()
	variable, isVariable := decl.(ast.Variable)
	if !isVariable {
		c.report(diagnostics.ErrNotVariable, id.Loc(),
			"identifier is not a declared variable, '%s' does not exist", id.Spelling())
	}

	valueType := c.checkExpr(n.Expression)
	if !isVariable || valueType == nil {
		return
	}
	varType, known := variable.EntityType()
	if known && valueType != varType {
		c.mismatch(n.Expression.Loc(),
			"expression is wrong type for the variable, %s is of type %s not %s", id.Spelling(), varType, valueType)
	}
}

// checkGuard requires a condition to be Boolean. kind names the command in the message.
func (c *Checker) checkGuard(kind string, guard ast.Expression) {
	typ := c.checkExpr(guard)
	if typ != nil && typ != c.env.Boolean {
		c.report(diagnostics.ErrNonBooleanGuard, guard.Loc(),
			"%s command's expression needs to be a boolean not %s", kind, typ)
	}
}

// checkDecl type checks declarations in the order they were declared
func (c *Checker) checkDecl(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.SequentialDecl:
		for _, sub := range d.Declarations {
			c.checkDecl(sub)
		}
	case *ast.ConstDecl:
		// the constant takes whatever type its initializer has
		typ := c.checkExpr(d.Expression)
		c.logger.Debug("constant", "name", d.Identifier.Spelling(), "type", typ.String())
	case *ast.VarDecl:
		c.checkTypeDenoter(d.TypeDenoter)
	case *ast.Invalid:
		// already reported by the parser
	case nil:
		return
	default:
		c.diagnostics.Add(diagnostics.UnhandledNode(decl.Loc(), "type checking", decl))
	}
}

func (c *Checker) checkTypeDenoter(td *ast.TypeDenoter) {
	if td == nil || td.Identifier == nil {
		return
	}
	decl, _ := td.Identifier.Decl.Get()
	typ, ok := decl.(*ast.TypeDecl)
	if !ok {
		c.report(diagnostics.ErrNotType, td.Identifier.Loc(),
			"identifier %s is not a type", td.Identifier.Spelling())
		return
	}
	td.Type.Set(typ)
}

func (c *Checker) report(code string, loc *source.Location, format string, args ...any) *diagnostics.Diagnostic {
	msg := fmt.Sprintf(format, args...)
	c.logger.Debug("type error", "code", code, "message", msg)
	diag := diagnostics.NewError(msg).WithCode(code).WithPrimaryLabel(loc, "")
	c.diagnostics.Add(diag)
	return diag
}

// mismatch reports a value whose type differs from the one its position needs.
func (c *Checker) mismatch(loc *source.Location, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.logger.Debug("type error", "code", diagnostics.ErrTypeMismatch, "message", msg)
	c.diagnostics.Add(diagnostics.TypeMismatch(loc, msg))
}
