package ast

import (
	"github.com/euanchree/mini-square-compiler/internal/source"
)

// SequentialCommand runs its commands in order. It always holds two or more.
type SequentialCommand struct {
	Commands []Command
	source.Location
}

func (s *SequentialCommand) INode()                {} // Implements Node interface
func (s *SequentialCommand) commandNode()          {}
func (s *SequentialCommand) Loc() *source.Location { return &s.Location }

// AssignCommand represents `identifier ~ expression`
type AssignCommand struct {
	Identifier *Identifier
	Expression Expression
	source.Location
}

func (a *AssignCommand) INode()                {} // Implements Node interface
func (a *AssignCommand) commandNode()          {}
func (a *AssignCommand) Loc() *source.Location { return &a.Location }

// CallCommand represents `identifier(parameter)` used as a command
type CallCommand struct {
	Identifier *Identifier
	Parameter  Parameter
	source.Location
}

func (c *CallCommand) INode()                {} // Implements Node interface
func (c *CallCommand) commandNode()          {}
func (c *CallCommand) Loc() *source.Location { return &c.Location }

// QuickIfCommand represents `? guard => command`, a conditional without else
type QuickIfCommand struct {
	Guard   Expression
	Command Command
	source.Location
}

func (q *QuickIfCommand) INode()                {} // Implements Node interface
func (q *QuickIfCommand) commandNode()          {}
func (q *QuickIfCommand) Loc() *source.Location { return &q.Location }

// IfCommand represents `if (guard) then command else command`
type IfCommand struct {
	Guard Expression
	Then  Command
	Else  Command
	source.Location
}

func (i *IfCommand) INode()                {} // Implements Node interface
func (i *IfCommand) commandNode()          {}
func (i *IfCommand) Loc() *source.Location { return &i.Location }

// WhileCommand represents `while (guard) body wend`
type WhileCommand struct {
	Guard Expression
	Body  Command
	source.Location
}

func (w *WhileCommand) INode()                {} // Implements Node interface
func (w *WhileCommand) commandNode()          {}
func (w *WhileCommand) Loc() *source.Location { return &w.Location }

// LoopCommand represents `loop pre while (guard) post repeat`.
// Pre runs first; then, while the guard holds, post runs followed by pre again.
type LoopCommand struct {
	Pre   Command
	Guard Expression
	Post  Command
	source.Location
}

func (l *LoopCommand) INode()                {} // Implements Node interface
func (l *LoopCommand) commandNode()          {}
func (l *LoopCommand) Loc() *source.Location { return &l.Location }

// LetCommand represents `let declaration in body`; it opens one scope
type LetCommand struct {
	Declaration Declaration
	Body        Command
	source.Location
}

func (l *LetCommand) INode()                {} // Implements Node interface
func (l *LetCommand) commandNode()          {}
func (l *LetCommand) Loc() *source.Location { return &l.Location }

// BlankCommand is the empty command
type BlankCommand struct {
	source.Location
}

func (b *BlankCommand) INode()                {} // Implements Node interface
func (b *BlankCommand) commandNode()          {}
func (b *BlankCommand) Loc() *source.Location { return &b.Location }
