package diagnostics

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/euanchree/mini-square-compiler/colors"
	"github.com/euanchree/mini-square-compiler/internal/source"
)

func TestMain(m *testing.M) {
	_ = colors.SetMode(colors.ModeNever)
	os.Exit(m.Run())
}

func loc(file string, line, col, endCol int) *source.Location {
	return source.NewLocation(&file,
		&source.Position{Line: line, Column: col},
		&source.Position{Line: line, Column: endCol})
}

func TestNewDiagnosticBag(t *testing.T) {
	bag := NewDiagnosticBag()

	if bag == nil {
		t.Fatal("NewDiagnosticBag returned nil")
	}

	if bag.ErrorCount() != 0 {
		t.Errorf("Expected 0 errors, got %d", bag.ErrorCount())
	}

	if bag.HasErrors() {
		t.Error("Expected HasErrors() to be false for empty bag")
	}
}

func TestDiagnosticBag_AddError(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Add(NewError("test error"))

	if !bag.HasErrors() {
		t.Error("Expected HasErrors() to be true after adding error")
	}

	if bag.ErrorCount() != 1 {
		t.Errorf("Expected 1 error, got %d", bag.ErrorCount())
	}
}

func TestDiagnosticBag_KeepsOrder(t *testing.T) {
	bag := NewDiagnosticBag()

	for _, msg := range []string{"first", "second", "third"} {
		bag.Add(NewError(msg))
	}

	diags := bag.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("Expected 3 diagnostics, got %d", len(diags))
	}
	for i, want := range []string{"first", "second", "third"} {
		if diags[i].Message != want {
			t.Errorf("diagnostic %d = %q, want %q", i, diags[i].Message, want)
		}
	}
}

func TestDiagnosticBag_Clear(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewError("error"))
	bag.Add(NewError("another"))

	bag.Clear()

	if bag.HasErrors() || bag.ErrorCount() != 0 || len(bag.Diagnostics()) != 0 {
		t.Error("Expected an empty bag after Clear")
	}
}

func TestDiagnosticBag_CountKind(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewError("a").WithCode(ErrTypeMismatch))
	bag.Add(NewError("b").WithCode(ErrNonBooleanGuard))
	bag.Add(NewError("c").WithCode(ErrLiteralOutOfRange))

	if got := bag.CountKind(Type); got != 2 {
		t.Errorf("CountKind(Type) = %d, want 2", got)
	}
	if got := bag.CountKind(Range); got != 1 {
		t.Errorf("CountKind(Range) = %d, want 1", got)
	}
	if got := bag.CountKind(Syntax); got != 0 {
		t.Errorf("CountKind(Syntax) = %d, want 0", got)
	}
}

func TestDiagnosticBag_ConcurrentAdd(t *testing.T) {
	bag := NewDiagnosticBag()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag.Add(NewError("concurrent"))
		}()
	}
	wg.Wait()

	if bag.ErrorCount() != 50 {
		t.Errorf("Expected 50 errors, got %d", bag.ErrorCount())
	}
}

func TestDiagnosticBag_EmitAllPlain(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.Add(NewError("while command's expression needs to be a boolean not Integer").
		WithCode(ErrNonBooleanGuard).
		WithPrimaryLabel(loc("prog.tri", 1, 1, 6), ""))
	bag.Add(NewError("value 40000 is too big, max is 32767").
		WithCode(ErrLiteralOutOfRange).
		WithPrimaryLabel(loc("prog.tri", 2, 8, 13), ""))

	var buf bytes.Buffer
	bag.EmitAll(&buf, FormatPlain)

	want := "Error at 1:1, while command's expression needs to be a boolean not Integer.\n" +
		"Error at 2:8, value 40000 is too big, max is 32767.\n"
	if buf.String() != want {
		t.Errorf("EmitAll plain output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDiagnosticBag_EmitAllRichSummary(t *testing.T) {
	bag := NewDiagnosticBag()
	bag.AddSourceContent("prog.tri", "x ~ 1\n")
	bag.Add(NewError("bad").WithCode(ErrTypeMismatch).WithPrimaryLabel(loc("prog.tri", 1, 1, 2), ""))

	var buf bytes.Buffer
	bag.EmitAll(&buf, FormatRich)

	if !strings.Contains(buf.String(), "Compilation failed with 1 error(s)") {
		t.Errorf("missing summary in %q", buf.String())
	}
}
