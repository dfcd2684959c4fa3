package ast

import (
	"math/big"

	"github.com/euanchree/mini-square-compiler/internal/source"
	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

// IntegerLiteral is a run of decimal digits. Value is exact, whatever its size;
// range checking belongs to the type checker.
type IntegerLiteral struct {
	Token tokens.Token
	Value *big.Int
	typed
	source.Location
}

func (i *IntegerLiteral) INode()                {} // Implements Node interface
func (i *IntegerLiteral) expressionNode()       {}
func (i *IntegerLiteral) Loc() *source.Location { return &i.Location }

// CharacterLiteral is a single quoted character
type CharacterLiteral struct {
	Token tokens.Token
	Value rune
	typed
	source.Location
}

func (c *CharacterLiteral) INode()                {} // Implements Node interface
func (c *CharacterLiteral) expressionNode()       {}
func (c *CharacterLiteral) Loc() *source.Location { return &c.Location }
