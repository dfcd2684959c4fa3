package typechecker

import (
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
)

// checkCall checks a call used as a command (asCommand) or as an expression.
// Both positions check the argument the same way. It returns the result
// type of a function call, or nil for procedures and broken calls.
func (c *Checker) checkCall(id *ast.Identifier, param ast.Parameter, asCommand bool) *ast.TypeDecl {
	decl, _ := id.Decl.Get()
	fn, ok := decl.(*ast.FuncDecl)
	if !ok {
		c.report(diagnostics.ErrNotCallable, id.Loc(),
			"identifier '%s' does not represent a function", id.Spelling())
		c.checkParam(param)
		return nil
	}

	switch {
	case asCommand && !fn.IsProcedure():
		c.report(diagnostics.ErrCallRole, id.Loc(),
			"'%s' is a function and can only be called inside an expression, not as a command", fn.Name)
	case !asCommand && fn.IsProcedure():
		c.report(diagnostics.ErrCallRole, id.Loc(),
			"'%s' is a procedure and can only be called as a command, it has no value", fn.Name)
	}

	c.checkArguments(fn, param)

	if fn.IsProcedure() {
		return nil
	}
	return fn.Result
}

// checkArguments matches the single argument position against the signature.
func (c *Checker) checkArguments(fn *ast.FuncDecl, param ast.Parameter) {
	given := 1
	switch param.(type) {
	case *ast.BlankParam:
		given = 0
	case *ast.Invalid, nil:
		// the parser has reported it; only look inside
		c.checkParam(param)
		return
	}

	switch {
	case given > len(fn.Params):
		c.report(diagnostics.ErrWrongArgumentCount, param.Loc(),
			"too many arguments for '%s', it takes %d but was given %d", fn.Name, len(fn.Params), given)
		c.checkParam(param)
		return
	case given < len(fn.Params):
		c.report(diagnostics.ErrWrongArgumentCount, param.Loc(),
			"missing argument for '%s', it takes %d but was given %d", fn.Name, len(fn.Params), given)
		return
	case given == 0:
		return
	}

	spec := fn.Params[0]
	switch param.(type) {
	case *ast.VarParam:
		if !spec.ByRef {
			c.report(diagnostics.ErrWrongParameterMode, param.Loc(),
				"function requires an expression parameter but has been given a var parameter")
		}
	case *ast.ValueParam:
		if spec.ByRef {
			c.report(diagnostics.ErrWrongParameterMode, param.Loc(),
				"function requires a var parameter but has been given an expression parameter")
		}
	}

	typ := c.checkParam(param)
	if typ != nil && typ != spec.Type {
		c.mismatch(param.Loc(),
			"parameter is the wrong type for '%s', expected %s not %s", fn.Name, spec.Type, typ)
	}
}

// checkParam types an argument and records it in the parameter's type slot.
func (c *Checker) checkParam(param ast.Parameter) *ast.TypeDecl {
	var typ *ast.TypeDecl
	switch p := param.(type) {
	case *ast.BlankParam, *ast.Invalid, nil:
		return nil
	case *ast.ValueParam:
		typ = c.checkExpr(p.Expression)
	case *ast.VarParam:
		decl, _ := p.Identifier.Decl.Get()
		variable, ok := decl.(ast.Variable)
		if !ok {
			c.report(diagnostics.ErrNotVariable, p.Identifier.Loc(),
				"identifier '%s' is not a variable", p.Identifier.Spelling())
			return nil
		}
		typ, _ = variable.EntityType()
	default:
		c.diagnostics.Add(diagnostics.UnhandledNode(param.Loc(), "type checking", param))
		return nil
	}
	if typ != nil {
		param.TypeSlot().Set(typ)
	}
	return typ
}
