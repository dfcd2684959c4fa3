package ast

import (
	"github.com/euanchree/mini-square-compiler/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Command represents any node that performs an action.
// The unexported marker keeps the set of commands closed to this package.
type Command interface {
	Node
	commandNode()
}

// Declaration represents anything an identifier or operator can be bound to
type Declaration interface {
	Node
	declarationNode()
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	expressionNode()
	TypeSlot() *Slot[*TypeDecl]
}

// Parameter is the single argument position of a call
type Parameter interface {
	Node
	parameterNode()
	TypeSlot() *Slot[*TypeDecl]
}

// Entity is a declaration that denotes a value: a variable or a constant
type Entity interface {
	Declaration
	// EntityType returns the declared type, if it is known yet.
	EntityType() (*TypeDecl, bool)
}

// Variable is an entity that can be assigned and passed by reference
type Variable interface {
	Entity
	variable()
}

// typed carries the type annotation slot of expressions and parameters
type typed struct {
	Type Slot[*TypeDecl]
}

func (t *typed) TypeSlot() *Slot[*TypeDecl] { return &t.Type }

// Program is the root of the tree: a single command
type Program struct {
	Command Command
	source.Location
}

func (p *Program) INode()                {} // Implements Node interface
func (p *Program) Loc() *source.Location { return &p.Location }

// Invalid stands in for a construct the parser could not build.
// It can appear wherever a command, declaration, expression or parameter is expected.
type Invalid struct {
	typed
	source.Location
}

func (i *Invalid) INode()                {} // Implements Node interface
func (i *Invalid) commandNode()          {}
func (i *Invalid) declarationNode()      {}
func (i *Invalid) expressionNode()       {}
func (i *Invalid) parameterNode()        {}
func (i *Invalid) Loc() *source.Location { return &i.Location }
