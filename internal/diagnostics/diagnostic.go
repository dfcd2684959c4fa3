package diagnostics

import (
	"github.com/euanchree/mini-square-compiler/internal/source"
)

// Severity represents the severity level of a diagnostic.
// Every Mini-Triangle fault stops compilation, so errors are the only level.
type Severity int

const (
	Error Severity = iota
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "unknown"
}

// Kind is the stage-level category of a diagnostic.
type Kind int

const (
	Lexical Kind = iota
	Syntax
	Scope
	Type
	Range
	Internal
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Scope:
		return "scope"
	case Type:
		return "type"
	case Range:
		return "range"
	default:
		return "internal"
	}
}

// KindOf maps an error code to its kind by prefix.
func KindOf(code string) Kind {
	if code == "" {
		return Internal
	}
	switch code[0] {
	case 'L':
		return Lexical
	case 'P':
		return Syntax
	case 'S':
		return Scope
	case 'T':
		return Type
	case 'R':
		return Range
	default:
		return Internal
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location (uses ^^^)
	Secondary                   // Additional context (uses ---)
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a compiler diagnostic.
// Message is a sentence without the trailing full stop; emitters add it.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Code     string // Error code like "T0001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Kind:     Internal,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// WithCode sets the error code and the kind it implies
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	d.Kind = KindOf(code)
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" && loc != nil {
		d.FilePath = loc.File()
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds the primary labeled location.
// A diagnostic has at most one; later calls are ignored.
func (d *Diagnostic) WithPrimaryLabel(loc *source.Location, message string) *Diagnostic {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return d
		}
	}
	if d.FilePath == "" && loc != nil {
		d.FilePath = loc.File()
	}
	// keep the primary label first
	d.Labels = append([]Label{{Location: loc, Message: message, Style: Primary}}, d.Labels...)
	return d
}

// WithSecondaryLabel adds a secondary labeled location
func (d *Diagnostic) WithSecondaryLabel(loc *source.Location, message string) *Diagnostic {
	return d.WithLabel(loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Primary returns the primary label, if any.
func (d *Diagnostic) Primary() (Label, bool) {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return label, true
		}
	}
	return Label{}, false
}

// Position returns the start of the primary label, or the zero position.
func (d *Diagnostic) Position() source.Position {
	if label, ok := d.Primary(); ok && label.Location != nil && label.Location.Start != nil {
		return *label.Location.Start
	}
	return source.Position{}
}
