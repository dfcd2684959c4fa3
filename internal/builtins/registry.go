package builtins

import (
	"fmt"
	"sync"

	"github.com/euanchree/mini-square-compiler/internal/frontend/ast"
	"github.com/euanchree/mini-square-compiler/internal/semantics/symbols"
	"github.com/euanchree/mini-square-compiler/internal/semantics/table"
)

// MaxInt is the largest representable integer.
const MaxInt = 32767

// MinInt is the smallest representable integer.
const MinInt = -32768

// Environment is the fixed table of built-in types, constants, functions,
// procedures and operators that every program starts from. It is never
// modified after construction and can be shared between compilations.
type Environment struct {
	Integer *ast.TypeDecl
	Char    *ast.TypeDecl
	Boolean *ast.TypeDecl
	// Any marks operator parameters that accept any type, as long as both operands agree.
	Any *ast.TypeDecl
	// Void is the result type of procedures.
	Void *ast.TypeDecl

	universe *table.SymbolTable
	unary    *table.SymbolTable
	binary   *table.SymbolTable
}

// NativeFunction describes a built-in function or procedure
type NativeFunction struct {
	Name   string
	Params []ast.ParamSpec
	Result *ast.TypeDecl
}

// NativeOperator describes a built-in operator
type NativeOperator struct {
	Name   string
	Params []*ast.TypeDecl
	Result *ast.TypeDecl
}

// Standard returns the shared standard environment.
var Standard = sync.OnceValue(newEnvironment)

func newEnvironment() *Environment {
	env := &Environment{
		Integer:  &ast.TypeDecl{Name: "Integer"},
		Char:     &ast.TypeDecl{Name: "Char"},
		Boolean:  &ast.TypeDecl{Name: "Boolean"},
		Any:      &ast.TypeDecl{Name: "Any"},
		Void:     &ast.TypeDecl{Name: "Void"},
		universe: table.NewSymbolTable(nil),
		unary:    table.NewSymbolTable(nil),
		binary:   table.NewSymbolTable(nil),
	}

	// Any and Void cannot be named from source
	for _, typ := range []*ast.TypeDecl{env.Integer, env.Char, env.Boolean} {
		env.mustDeclare(env.universe, typ.Name, typ)
	}

	env.mustDeclare(env.universe, "true", &ast.BuiltinConst{Name: "true", Type: env.Boolean, Value: 1})
	env.mustDeclare(env.universe, "false", &ast.BuiltinConst{Name: "false", Type: env.Boolean, Value: 0})
	env.mustDeclare(env.universe, "maxint", &ast.BuiltinConst{Name: "maxint", Type: env.Integer, Value: MaxInt})

	env.registerFunctions(env.nativeFunctions())
	env.registerOperators(env.nativeOperators())

	return env
}

func (env *Environment) nativeFunctions() []NativeFunction {
	byValue := func(t *ast.TypeDecl) []ast.ParamSpec { return []ast.ParamSpec{{Type: t}} }
	byRef := func(t *ast.TypeDecl) []ast.ParamSpec { return []ast.ParamSpec{{Type: t, ByRef: true}} }

	return []NativeFunction{
		// functions
		{Name: "chr", Params: byValue(env.Integer), Result: env.Char},
		{Name: "ord", Params: byValue(env.Char), Result: env.Integer},
		{Name: "eof", Result: env.Boolean},
		{Name: "eol", Result: env.Boolean},
		// procedures
		{Name: "get", Params: byRef(env.Char), Result: env.Void},
		{Name: "put", Params: byValue(env.Char), Result: env.Void},
		{Name: "getint", Params: byRef(env.Integer), Result: env.Void},
		{Name: "putint", Params: byValue(env.Integer), Result: env.Void},
		{Name: "geteol", Result: env.Void},
		{Name: "puteol", Result: env.Void},
	}
}

func (env *Environment) nativeOperators() []NativeOperator {
	ints := []*ast.TypeDecl{env.Integer, env.Integer}
	bools := []*ast.TypeDecl{env.Boolean, env.Boolean}
	anys := []*ast.TypeDecl{env.Any, env.Any}

	return []NativeOperator{
		{Name: "+", Params: ints, Result: env.Integer},
		{Name: "-", Params: ints, Result: env.Integer},
		{Name: "*", Params: ints, Result: env.Integer},
		{Name: "/", Params: ints, Result: env.Integer},
		{Name: "%", Params: ints, Result: env.Integer},
		{Name: "<", Params: ints, Result: env.Boolean},
		{Name: "<=", Params: ints, Result: env.Boolean},
		{Name: ">", Params: ints, Result: env.Boolean},
		{Name: ">=", Params: ints, Result: env.Boolean},
		{Name: "=", Params: anys, Result: env.Boolean},
		{Name: "\\=", Params: anys, Result: env.Boolean},
		{Name: "/\\", Params: bools, Result: env.Boolean},
		{Name: "\\/", Params: bools, Result: env.Boolean},
		{Name: "\\", Params: []*ast.TypeDecl{env.Boolean}, Result: env.Boolean},
		{Name: "-", Params: []*ast.TypeDecl{env.Integer}, Result: env.Integer},
	}
}

func (env *Environment) registerFunctions(funcs []NativeFunction) {
	for _, fn := range funcs {
		env.mustDeclare(env.universe, fn.Name, &ast.FuncDecl{
			Name:   fn.Name,
			Params: fn.Params,
			Result: fn.Result,
			Void:   env.Void,
		})
	}
}

func (env *Environment) registerOperators(ops []NativeOperator) {
	for _, op := range ops {
		scope := env.binary
		if len(op.Params) == 1 {
			scope = env.unary
		}
		env.mustDeclare(scope, op.Name, &ast.OperatorDecl{
			Name:   op.Name,
			Params: op.Params,
			Result: op.Result,
			Any:    env.Any,
		})
	}
}

func (env *Environment) mustDeclare(scope *table.SymbolTable, name string, decl ast.Declaration) {
	if err := scope.Declare(name, symbols.New(name, decl)); err != nil {
		panic(fmt.Sprintf("standard environment: %v", err))
	}
}

// Universe returns the outermost scope, holding the built-in types, constants, functions and procedures.
func (env *Environment) Universe() *table.SymbolTable {
	return env.universe
}

// LookupOperator finds the built-in operator with the given spelling and arity (1 or 2).
func (env *Environment) LookupOperator(spelling string, arity int) (*ast.OperatorDecl, bool) {
	scope := env.binary
	if arity == 1 {
		scope = env.unary
	}
	sym, ok := scope.GetSymbol(spelling)
	if !ok {
		return nil, false
	}
	op, ok := sym.Decl.(*ast.OperatorDecl)
	return op, ok
}

// Operators returns the operator spellings of the given arity, sorted.
func (env *Environment) Operators(arity int) []string {
	if arity == 1 {
		return env.unary.Names()
	}
	return env.binary.Names()
}

// InRange reports whether v fits the integer type.
func InRange(v int64) bool {
	return v >= MinInt && v <= MaxInt
}
