package typechecker

import (
	"strings"

	"github.com/euanchree/mini-square-compiler/internal/builtins"
	"github.com/euanchree/mini-square-compiler/internal/diagnostics"
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
)

// checkExpr infers the type of an expression and records it in the
// expression's type slot. It returns nil when the type cannot be known
// because of an error that has already been reported.
func (c *Checker) checkExpr(expr ast.Expression) *ast.TypeDecl {
	if expr == nil {
		return nil
	}
	typ := c.inferExpr(expr)
	if typ != nil {
		expr.TypeSlot().Set(typ)
	}
	return typ
}

func (c *Checker) inferExpr(expr ast.Expression) *ast.TypeDecl {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return c.checkIntegerLiteral(e)
	case *ast.CharacterLiteral:
		return c.env.Char
	case *ast.IdentifierExpr:
		return c.checkIdentifierExpr(e)
	case *ast.CallExpr:
		return c.checkCall(e.Identifier, e.Parameter, false)
	case *ast.UnaryExpr:
		return c.checkUnaryExpr(e)
	case *ast.BinaryExpr:
		return c.checkBinaryExpr(e)
	case *ast.Invalid:
		return nil
	default:
		c.diagnostics.Add(diagnostics.UnhandledNode(expr.Loc(), "type checking", expr))
		return nil
	}
}

// checkIntegerLiteral reports literals outside the 16 bit range. The literal
// is still an Integer so checking carries on normally.
func (c *Checker) checkIntegerLiteral(e *ast.IntegerLiteral) *ast.TypeDecl {
	if e.Value == nil || !e.Value.IsInt64() || !builtins.InRange(e.Value.Int64()) {
		c.report(diagnostics.ErrLiteralOutOfRange, e.Loc(),
			"value %s is too big, max is %d", e.Token.Value, builtins.MaxInt)
	}
	return c.env.Integer
}

func (c *Checker) checkIdentifierExpr(e *ast.IdentifierExpr) *ast.TypeDecl {
	decl, _ := e.Identifier.Decl.Get()
	entity, ok := decl.(ast.Entity)
	if !ok {
		c.report(diagnostics.ErrNotEntity, e.Loc(),
			"Identifier '%s' isn't a variable or a constant", e.Identifier.Spelling())
		return nil
	}
	typ, _ := entity.EntityType()
	return typ
}

func (c *Checker) checkUnaryExpr(e *ast.UnaryExpr) *ast.TypeDecl {
	operandType := c.checkExpr(e.Operand)

	op, ok := operatorDecl(e.Operator, 1)
	if !ok {
		c.report(diagnostics.ErrInvalidOperation, e.Operator.Loc(),
			"operator '%s' is not a unary operator", e.Operator.Spelling()).
			WithHelp("unary operators are " + strings.Join(c.env.Operators(1), " "))
		return nil
	}

	if operandType != nil && !op.IsGeneric() && operandType != op.Params[0] {
		c.mismatch(e.Operand.Loc(),
			"unary expression is of the wrong type, '%s' expects %s not %s", op.Name, op.Params[0], operandType)
	}
	return op.Result
}

func (c *Checker) checkBinaryExpr(e *ast.BinaryExpr) *ast.TypeDecl {
	leftType := c.checkExpr(e.Left)
	rightType := c.checkExpr(e.Right)

	op, ok := operatorDecl(e.Operator, 2)
	if !ok {
		c.report(diagnostics.ErrInvalidOperation, e.Operator.Loc(),
			"binary expression's operator is not a binary operator, '%s' cannot join two expressions", e.Operator.Spelling()).
			WithHelp("binary operators are " + strings.Join(c.env.Operators(2), " "))
		return nil
	}

	if op.IsGeneric() {
		if leftType != nil && rightType != nil && leftType != rightType {
			c.mismatch(e.Loc(),
				"binary expression's arguments have to be the same type, %s and %s differ", leftType, rightType)
		}
		return op.Result
	}

	if leftType != nil && leftType != op.Params[0] {
		c.mismatch(e.Left.Loc(),
			"left hand expression is the wrong type, '%s' expects %s not %s", op.Name, op.Params[0], leftType)
	}
	if rightType != nil && rightType != op.Params[1] {
		c.mismatch(e.Right.Loc(),
			"right hand expression is the wrong type, '%s' expects %s not %s", op.Name, op.Params[1], rightType)
	}
	return op.Result
}

// operatorDecl returns the operator's declaration if it has the expected arity.
func operatorDecl(op *ast.Operator, arity int) (*ast.OperatorDecl, bool) {
	if op == nil {
		return nil, false
	}
	decl, _ := op.Decl.Get()
	od, ok := decl.(*ast.OperatorDecl)
	if !ok || od.Arity() != arity {
		return nil, false
	}
	return od, true
}
