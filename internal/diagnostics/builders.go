package diagnostics

import (
	"fmt"

	"github.com/euanchree/mini-square-compiler/internal/source"
)

// Common diagnostic builders shared by the semantic passes

// RedeclaredSymbol creates a diagnostic for a name declared twice in one scope
func RedeclaredSymbol(newLoc, prevLoc *source.Location, name string) *Diagnostic {
	diag := NewError("identifier '"+name+"' is already declared in this scope").
		WithCode(ErrRedeclaredSymbol).
		WithPrimaryLabel(newLoc, "redeclared here")
	if prevLoc != nil && prevLoc.Start != nil {
		diag.WithSecondaryLabel(prevLoc, "previously declared here")
	}
	return diag.WithHelp("use a different name or remove one of the declarations")
}

// TypeMismatch creates a diagnostic for an operand or value of the wrong type
func TypeMismatch(loc *source.Location, message string) *Diagnostic {
	return NewError(message).
		WithCode(ErrTypeMismatch).
		WithPrimaryLabel(loc, "")
}

// UnhandledNode reports a node kind a pass has no rule for
func UnhandledNode(loc *source.Location, pass string, node any) *Diagnostic {
	return NewError("internal compiler error: "+pass+" has no rule for this node").
		WithCode(ErrUnhandledNode).
		WithPrimaryLabel(loc, "").
		WithNote(fmt.Sprintf("node type %T", node))
}
