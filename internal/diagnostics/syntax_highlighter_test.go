package diagnostics

import (
	"testing"

	"github.com/euanchree/mini-square-compiler/colors"
)

func TestSyntaxHighlighter_Runs(t *testing.T) {
	sh := NewSyntaxHighlighter(true)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"assignment", "x ~ 1", []string{"x", " ", "~", " ", "1"}},
		{"keywords", "while (b) wend", []string{"while", " ", "(", "b", ")", " ", "wend"}},
		{"operator run", "a /\\ b", []string{"a", " ", "/\\", " ", "b"}},
		{"char literal", "put('x')", []string{"put", "(", "'x'", ")"}},
		{"comment", "x ~ 1 ! set x", []string{"x", " ", "~", " ", "1", " ", "! set x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := sh.Highlight(tt.input)
			if len(runs) != len(tt.want) {
				t.Fatalf("got %d runs, want %d: %+v", len(runs), len(tt.want), runs)
			}
			for i, run := range runs {
				if run.Text != tt.want[i] {
					t.Errorf("run %d = %q, want %q", i, run.Text, tt.want[i])
				}
			}
		})
	}
}

func TestSyntaxHighlighter_KeepsText(t *testing.T) {
	sh := NewSyntaxHighlighter(true)
	line := "let const one ~ 1 in x ~ one ! comment"

	if got := colors.StripANSI(sh.HighlightLine(line)); got != line {
		t.Errorf("HighlightLine changed the text: %q", got)
	}
}

func TestSyntaxHighlighter_Disabled(t *testing.T) {
	sh := NewSyntaxHighlighter(false)
	if sh.IsEnabled() {
		t.Fatal("expected highlighter to be disabled")
	}
	if got := sh.HighlightLine("if (b) then x ~ 1 else"); got != "if (b) then x ~ 1 else" {
		t.Errorf("disabled highlighter changed text: %q", got)
	}
}
