package symbols

import (
	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
)

// Symbol represents a declared entity (variable, constant, function, type, operator)
type Symbol struct {
	Name string
	Kind SymbolKind
	Decl ast.Declaration // the node this name is bound to
}

// SymbolKind categorizes symbols
type SymbolKind int

const (
	SymbolVariable SymbolKind = iota
	SymbolConstant
	SymbolFunction
	SymbolProcedure
	SymbolType
	SymbolOperator
	SymbolInvalid
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolConstant:
		return "constant"
	case SymbolFunction:
		return "function"
	case SymbolProcedure:
		return "procedure"
	case SymbolType:
		return "type"
	case SymbolOperator:
		return "operator"
	default:
		return "invalid"
	}
}

// New builds a symbol, deriving its kind from the declaration.
func New(name string, decl ast.Declaration) *Symbol {
	return &Symbol{Name: name, Kind: KindOf(decl), Decl: decl}
}

// KindOf classifies a declaration node.
func KindOf(decl ast.Declaration) SymbolKind {
	switch d := decl.(type) {
	case *ast.VarDecl:
		return SymbolVariable
	case *ast.ConstDecl, *ast.BuiltinConst:
		return SymbolConstant
	case *ast.FuncDecl:
		if d.IsProcedure() {
			return SymbolProcedure
		}
		return SymbolFunction
	case *ast.TypeDecl:
		return SymbolType
	case *ast.OperatorDecl:
		return SymbolOperator
	default:
		return SymbolInvalid
	}
}
