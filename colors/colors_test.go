package colors

import (
	"bytes"
	"testing"
)

func TestSetMode(t *testing.T) {
	for _, mode := range []string{ModeAuto, ModeAlways, ModeNever, ""} {
		if err := SetMode(mode); err != nil {
			t.Errorf("SetMode(%q) returned %v", mode, err)
		}
	}
	if err := SetMode("sometimes"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestNeverModeIsPlain(t *testing.T) {
	if err := SetMode(ModeNever); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	BOLD_RED.Fprintf(&buf, "error[%s]", "P0001")
	RED.Fprintln(&buf, "line")

	want := "error[P0001]line\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestAlwaysModeKeepsNewlinesOutsideStyles(t *testing.T) {
	if err := SetMode(ModeAlways); err != nil {
		t.Fatal(err)
	}
	defer SetMode(ModeNever)

	out := GREEN.Sprint("a\nb")
	if StripANSI(out) != "a\nb" {
		t.Errorf("StripANSI(%q) = %q", out, StripANSI(out))
	}
	if out == "a\nb" {
		t.Error("expected escape sequences in always mode")
	}
}

func TestStripANSI(t *testing.T) {
	in := "\x1b[1;31merror\x1b[0m: \x1b[38;2;1;2;3mbad\x1b[0m"
	if got := StripANSI(in); got != "error: bad" {
		t.Errorf("StripANSI = %q", got)
	}
}
