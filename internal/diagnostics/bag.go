package diagnostics

import (
	"io"
	"sync"

	"github.com/euanchree/mini-square-compiler/colors"
)

const compileFailedMsg = "\nCompilation failed with %d error(s)\n"

// DiagnosticBag collects diagnostics during compilation.
// It only ever grows until Clear; HasErrors is derived from its contents.
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	sourceCache *SourceCache
}

// NewDiagnosticBag creates a new diagnostic bag
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		sourceCache: NewSourceCache(),
	}
}

// AddSourceContent adds source content for a file path (for in-memory compilation)
func (db *DiagnosticBag) AddSourceContent(filepath, content string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.sourceCache.AddSource(filepath, content)
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	if diag.Severity == Error {
		db.errorCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// Diagnostics returns a copy of all diagnostics in the order they were added
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// CountKind returns how many diagnostics of the given kind were added.
func (db *DiagnosticBag) CountKind(kind Kind) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	n := 0
	for _, diag := range db.diagnostics {
		if diag.Kind == kind {
			n++
		}
	}
	return n
}

// EmitAll writes every diagnostic in the given format, followed by a summary
// in the rich format.
func (db *DiagnosticBag) EmitAll(w io.Writer, format Format) {
	db.mu.Lock()
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	// copy diagnostics to avoid holding lock during emit
	copy(diagnostics, db.diagnostics)
	emitter := &Emitter{
		cache:       db.sourceCache.clone(),
		writer:      w,
		format:      format,
		highlighter: NewSyntaxHighlighter(true),
	}
	db.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}

	if format == FormatRich {
		db.printSummary(w)
	}
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		colors.RED.Fprintf(w, compileFailedMsg, db.errorCount)
	}
}

// Clear removes all diagnostics so the bag can serve a new compilation
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
}
