package ast

import (
	"github.com/euanchree/mini-square-compiler/internal/source"
	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

// Identifier is an occurrence of a name. Decl is filled by scope resolution
// and points at a declaration this node does not own.
type Identifier struct {
	Token tokens.Token
	Decl  Slot[Declaration]
	source.Location
}

func (i *Identifier) INode()                {} // Implements Node interface
func (i *Identifier) Loc() *source.Location { return &i.Location }

// Spelling returns the name as written.
func (i *Identifier) Spelling() string { return i.Token.Value }

// Operator is an occurrence of an operator symbol in unary (Arity 1) or binary (Arity 2) position
type Operator struct {
	Token tokens.Token
	Arity int
	Decl  Slot[Declaration]
	source.Location
}

func (o *Operator) INode()                {} // Implements Node interface
func (o *Operator) Loc() *source.Location { return &o.Location }

// Spelling returns the operator symbol as written.
func (o *Operator) Spelling() string { return o.Token.Value }

// TypeDenoter names a type in a var declaration
type TypeDenoter struct {
	Identifier *Identifier
	Type       Slot[*TypeDecl]
	source.Location
}

func (t *TypeDenoter) INode()                {} // Implements Node interface
func (t *TypeDenoter) Loc() *source.Location { return &t.Location }

// IdentifierExpr reads a variable or constant
type IdentifierExpr struct {
	Identifier *Identifier
	typed
	source.Location
}

func (i *IdentifierExpr) INode()                {} // Implements Node interface
func (i *IdentifierExpr) expressionNode()       {}
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// CallExpr represents `identifier(parameter)` used as a value
type CallExpr struct {
	Identifier *Identifier
	Parameter  Parameter
	typed
	source.Location
}

func (c *CallExpr) INode()                {} // Implements Node interface
func (c *CallExpr) expressionNode()       {}
func (c *CallExpr) Loc() *source.Location { return &c.Location }

// UnaryExpr represents `op operand`
type UnaryExpr struct {
	Operator *Operator
	Operand  Expression
	typed
	source.Location
}

func (u *UnaryExpr) INode()                {} // Implements Node interface
func (u *UnaryExpr) expressionNode()       {}
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }

// BinaryExpr represents `left op right`. Chains nest to the left.
type BinaryExpr struct {
	Left     Expression
	Operator *Operator
	Right    Expression
	typed
	source.Location
}

func (b *BinaryExpr) INode()                {} // Implements Node interface
func (b *BinaryExpr) expressionNode()       {}
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// BlankParam is an empty argument list
type BlankParam struct {
	typed
	source.Location
}

func (b *BlankParam) INode()                {} // Implements Node interface
func (b *BlankParam) parameterNode()        {}
func (b *BlankParam) Loc() *source.Location { return &b.Location }

// ValueParam passes the value of an expression
type ValueParam struct {
	Expression Expression
	typed
	source.Location
}

func (v *ValueParam) INode()                {} // Implements Node interface
func (v *ValueParam) parameterNode()        {}
func (v *ValueParam) Loc() *source.Location { return &v.Location }

// VarParam passes a variable by reference: `var identifier`
type VarParam struct {
	Identifier *Identifier
	typed
	source.Location
}

func (v *VarParam) INode()                {} // Implements Node interface
func (v *VarParam) parameterNode()        {}
func (v *VarParam) Loc() *source.Location { return &v.Location }
