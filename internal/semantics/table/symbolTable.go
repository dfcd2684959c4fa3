package table

import (
	"fmt"
	"sort"

	"github.com/euanchree/mini-square-compiler/internal/semantics/symbols"
)

// SymbolTable holds the symbols of one scope. Lookups fall through to the parent.
type SymbolTable struct {
	parent  *SymbolTable
	symbols map[string]*symbols.Symbol
}

// NewSymbolTable creates a new symbol table with optional parent scope
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		parent:  parent,
		symbols: make(map[string]*symbols.Symbol),
	}
}

// Declare adds a symbol to the table
func (st *SymbolTable) Declare(name string, symbol *symbols.Symbol) error {
	if _, exists := st.symbols[name]; exists {
		return fmt.Errorf("symbol '%s' already declared", name)
	}
	st.symbols[name] = symbol
	return nil
}

// Lookup finds a symbol in this scope or parent scopes
func (st *SymbolTable) Lookup(name string) (*symbols.Symbol, bool) {
	if sym, ok := st.symbols[name]; ok {
		return sym, true
	}
	if st.parent != nil {
		return st.parent.Lookup(name)
	}
	return nil, false
}

// GetSymbol finds a symbol in this scope only
func (st *SymbolTable) GetSymbol(name string) (*symbols.Symbol, bool) {
	sym, ok := st.symbols[name]
	return sym, ok
}

// Parent returns the enclosing scope, or nil for the outermost one.
func (st *SymbolTable) Parent() *SymbolTable {
	return st.parent
}

// Names returns the names declared directly in this scope, sorted.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.symbols))
	for name := range st.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
