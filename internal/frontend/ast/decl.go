package ast

import (
	"github.com/euanchree/mini-square-compiler/internal/source"
)

// ConstDecl represents `const identifier ~ expression`.
// Its type is the type of the initializer.
type ConstDecl struct {
	Identifier *Identifier
	Expression Expression
	source.Location
}

func (c *ConstDecl) INode()                {} // Implements Node interface
func (c *ConstDecl) declarationNode()      {}
func (c *ConstDecl) Loc() *source.Location { return &c.Location }

func (c *ConstDecl) EntityType() (*TypeDecl, bool) {
	if c.Expression == nil {
		return nil, false
	}
	return c.Expression.TypeSlot().Get()
}

// VarDecl represents `var identifier ~ TypeName`
type VarDecl struct {
	Identifier  *Identifier
	TypeDenoter *TypeDenoter
	source.Location
}

func (v *VarDecl) INode()                {} // Implements Node interface
func (v *VarDecl) declarationNode()      {}
func (v *VarDecl) variable()             {}
func (v *VarDecl) Loc() *source.Location { return &v.Location }

func (v *VarDecl) EntityType() (*TypeDecl, bool) {
	if v.TypeDenoter == nil {
		return nil, false
	}
	return v.TypeDenoter.Type.Get()
}

// SequentialDecl holds two or more declarations of one let, in source order
type SequentialDecl struct {
	Declarations []Declaration
	source.Location
}

func (s *SequentialDecl) INode()                {} // Implements Node interface
func (s *SequentialDecl) declarationNode()      {}
func (s *SequentialDecl) Loc() *source.Location { return &s.Location }

// The declarations below are only ever built by the standard environment.

// TypeDecl is the canonical node of a type. Two types are the same
// exactly when they are the same *TypeDecl.
type TypeDecl struct {
	Name string
	source.Location
}

func (t *TypeDecl) INode()                {} // Implements Node interface
func (t *TypeDecl) declarationNode()      {}
func (t *TypeDecl) Loc() *source.Location { return &t.Location }

func (t *TypeDecl) String() string {
	if t == nil {
		return "<unknown>"
	}
	return t.Name
}

// ParamSpec describes the single formal parameter of a function
type ParamSpec struct {
	Type  *TypeDecl
	ByRef bool
}

// FuncDecl is a built-in function or procedure signature.
// A procedure is a FuncDecl whose Result is the Void sentinel.
type FuncDecl struct {
	Name   string
	Params []ParamSpec
	Result *TypeDecl
	Void   *TypeDecl // the environment's procedure result sentinel
	source.Location
}

func (f *FuncDecl) INode()                {} // Implements Node interface
func (f *FuncDecl) declarationNode()      {}
func (f *FuncDecl) Loc() *source.Location { return &f.Location }

// IsProcedure reports whether the signature returns no value.
func (f *FuncDecl) IsProcedure() bool {
	return f.Result == nil || f.Result == f.Void
}

// OperatorDecl is a built-in operator signature.
// A parameter equal to Any means both operands must share one type.
type OperatorDecl struct {
	Name   string
	Params []*TypeDecl
	Result *TypeDecl
	Any    *TypeDecl // the environment's generic operand sentinel
	source.Location
}

func (o *OperatorDecl) INode()                {} // Implements Node interface
func (o *OperatorDecl) declarationNode()      {}
func (o *OperatorDecl) Loc() *source.Location { return &o.Location }

// Arity returns 1 for unary and 2 for binary operators.
func (o *OperatorDecl) Arity() int { return len(o.Params) }

// IsGeneric reports whether the operator accepts any operand type.
func (o *OperatorDecl) IsGeneric() bool {
	return len(o.Params) > 0 && o.Any != nil && o.Params[0] == o.Any
}

// BuiltinConst is a predefined constant such as true or maxint
type BuiltinConst struct {
	Name  string
	Type  *TypeDecl
	Value int
	source.Location
}

func (b *BuiltinConst) INode()                {} // Implements Node interface
func (b *BuiltinConst) declarationNode()      {}
func (b *BuiltinConst) Loc() *source.Location { return &b.Location }

func (b *BuiltinConst) EntityType() (*TypeDecl, bool) { return b.Type, b.Type != nil }
