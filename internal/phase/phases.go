package phase

import "fmt"

// Phase tracks how far a compilation has progressed
//
// Phase progression is strictly sequential:
// NotStarted -> Lexed -> Parsed -> Resolved -> TypeChecked
//
// Transitions are validated with Advance, which checks the
// PhasePrerequisites map.
type Phase int

const (
	PhaseNotStarted  Phase = iota // Source read but not processed
	PhaseLexed                    // Tokens generated
	PhaseParsed                   // AST built
	PhaseResolved                 // Every name bound to its declaration
	PhaseTypeChecked              // Every expression annotated with its type
)

// PhasePrerequisites maps each phase to its required predecessor phase
var PhasePrerequisites = map[Phase]Phase{
	PhaseLexed:       PhaseNotStarted,
	PhaseParsed:      PhaseLexed,
	PhaseResolved:    PhaseParsed,
	PhaseTypeChecked: PhaseResolved,
}

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLexed:
		return "Lexed"
	case PhaseParsed:
		return "Parsed"
	case PhaseResolved:
		return "Resolved"
	case PhaseTypeChecked:
		return "TypeChecked"
	default:
		return "Unknown"
	}
}

// Advance returns the next phase if current satisfies its prerequisite.
func Advance(current, next Phase) (Phase, error) {
	required, ok := PhasePrerequisites[next]
	if !ok {
		return current, fmt.Errorf("cannot advance to %s", next)
	}
	if current != required {
		return current, fmt.Errorf("cannot advance from %s to %s, %s must come first", current, next, required)
	}
	return next, nil
}
