package phase

import "testing"

func TestAdvanceInOrder(t *testing.T) {
	order := []Phase{PhaseLexed, PhaseParsed, PhaseResolved, PhaseTypeChecked}
	current := PhaseNotStarted
	for _, next := range order {
		var err error
		current, err = Advance(current, next)
		if err != nil {
			t.Fatalf("advance to %s: %v", next, err)
		}
	}
	if current != PhaseTypeChecked {
		t.Errorf("ended at %s", current)
	}
}

func TestAdvanceRejectsSkips(t *testing.T) {
	tests := []struct {
		from, to Phase
	}{
		{PhaseNotStarted, PhaseParsed},
		{PhaseLexed, PhaseResolved},
		{PhaseParsed, PhaseTypeChecked},
		{PhaseTypeChecked, PhaseNotStarted},
		{PhaseParsed, PhaseParsed},
	}
	for _, tt := range tests {
		got, err := Advance(tt.from, tt.to)
		if err == nil {
			t.Errorf("%s -> %s allowed", tt.from, tt.to)
		}
		if got != tt.from {
			t.Errorf("%s -> %s moved to %s on failure", tt.from, tt.to, got)
		}
	}
}

func TestString(t *testing.T) {
	if got := Phase(99).String(); got != "Unknown" {
		t.Errorf("String() = %q", got)
	}
	if got := PhaseTypeChecked.String(); got != "TypeChecked" {
		t.Errorf("String() = %q", got)
	}
}
