package source

import "testing"

func TestPositionAdvance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Position
	}{
		{"empty", "", Position{Line: 1, Column: 1, Index: 0}},
		{"single line", "abc", Position{Line: 1, Column: 4, Index: 3}},
		{"newline", "ab\ncd", Position{Line: 2, Column: 3, Index: 5}},
		{"trailing newline", "x\n", Position{Line: 2, Column: 1, Index: 2}},
		{"multibyte rune", "é", Position{Line: 1, Column: 2, Index: 2}},
		{"invalid byte", "\xffx", Position{Line: 1, Column: 3, Index: 2}},
		{"invalid byte before newline", "!\xff\nab", Position{Line: 2, Column: 3, Index: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Start()
			pos.Advance(tt.text)
			if pos != tt.want {
				t.Errorf("Advance(%q) = %+v, want %+v", tt.text, pos, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	pos := Position{Line: 3, Column: 14}
	if got := pos.String(); got != "3:14" {
		t.Errorf("String() = %q, want %q", got, "3:14")
	}
}

func TestLocationContains(t *testing.T) {
	loc := NewLocation(nil, &Position{Line: 1, Column: 5}, &Position{Line: 2, Column: 3})

	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{Line: 1, Column: 4}, false},
		{Position{Line: 1, Column: 5}, true},
		{Position{Line: 1, Column: 80}, true},
		{Position{Line: 2, Column: 3}, true},
		{Position{Line: 2, Column: 4}, false},
		{Position{Line: 3, Column: 1}, false},
	}

	for _, tt := range tests {
		if got := loc.Contains(&tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\nb\nc\n")
	if len(lines) != 3 || lines[0] != "a" || lines[1] != "b" || lines[2] != "c" {
		t.Errorf("SplitLines returned %q", lines)
	}
	if got := SplitLines(""); len(got) != 0 {
		t.Errorf("SplitLines(\"\") returned %q", got)
	}
}
