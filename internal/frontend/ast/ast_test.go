package ast

import (
	"math/big"
	"testing"

	"github.com/euanchree/mini-square-compiler/internal/tokens"
)

func TestSlotIsWriteOnce(t *testing.T) {
	var s Slot[int]

	if _, ok := s.Get(); ok {
		t.Fatal("new slot reports a value")
	}
	if !s.Set(1) {
		t.Fatal("first Set failed")
	}
	if s.Set(2) {
		t.Error("second Set succeeded")
	}
	if v, ok := s.Get(); !ok || v != 1 {
		t.Errorf("Get() = %d, %v; want 1, true", v, ok)
	}
}

func TestTypeSlotsAreDistinctPerNode(t *testing.T) {
	integer := &TypeDecl{Name: "Integer"}
	a := &IntegerLiteral{Value: big.NewInt(1)}
	b := &IntegerLiteral{Value: big.NewInt(2)}

	a.TypeSlot().Set(integer)

	if b.TypeSlot().IsSet() {
		t.Error("annotating one node annotated another")
	}
	if got := a.Type.Value(); got != integer {
		t.Errorf("promoted Type field = %v, want %v", got, integer)
	}
}

func TestEntityTypes(t *testing.T) {
	integer := &TypeDecl{Name: "Integer"}

	denoter := &TypeDenoter{Identifier: &Identifier{Token: tokens.Token{Value: "Integer"}}}
	v := &VarDecl{TypeDenoter: denoter}
	if _, ok := v.EntityType(); ok {
		t.Error("var type known before checking")
	}
	denoter.Type.Set(integer)
	if typ, ok := v.EntityType(); !ok || typ != integer {
		t.Errorf("VarDecl.EntityType() = %v, %v", typ, ok)
	}

	lit := &IntegerLiteral{Value: big.NewInt(1)}
	c := &ConstDecl{Expression: lit}
	lit.TypeSlot().Set(integer)
	if typ, ok := c.EntityType(); !ok || typ != integer {
		t.Errorf("ConstDecl.EntityType() = %v, %v", typ, ok)
	}

	var _ Variable = v
	var _ Entity = c
	var _ Entity = &BuiltinConst{}
}

func TestProcedureAndGenericSentinels(t *testing.T) {
	void := &TypeDecl{Name: "Void"}
	anyType := &TypeDecl{Name: "Any"}
	boolean := &TypeDecl{Name: "Boolean"}

	put := &FuncDecl{Name: "put", Result: void, Void: void}
	eof := &FuncDecl{Name: "eof", Result: boolean, Void: void}
	if !put.IsProcedure() || eof.IsProcedure() {
		t.Error("IsProcedure does not follow the result type")
	}

	eq := &OperatorDecl{Name: "=", Params: []*TypeDecl{anyType, anyType}, Result: boolean, Any: anyType}
	and := &OperatorDecl{Name: "/\\", Params: []*TypeDecl{boolean, boolean}, Result: boolean, Any: anyType}
	if !eq.IsGeneric() || and.IsGeneric() {
		t.Error("IsGeneric does not follow the parameter types")
	}
	if eq.Arity() != 2 {
		t.Errorf("Arity() = %d", eq.Arity())
	}
}

func TestInspectOrderAndInvalidCount(t *testing.T) {
	x := &Identifier{Token: tokens.Token{Value: "x"}}
	prog := &Program{Command: &SequentialCommand{Commands: []Command{
		&AssignCommand{Identifier: x, Expression: &BinaryExpr{
			Left:     &IntegerLiteral{Value: big.NewInt(1)},
			Operator: &Operator{Token: tokens.Token{Value: "+"}, Arity: 2},
			Right:    &Invalid{},
		}},
		&Invalid{},
	}}}

	var kinds []string
	Inspect(prog, func(n Node) bool {
		switch n.(type) {
		case *Identifier:
			kinds = append(kinds, "id")
		case *IntegerLiteral:
			kinds = append(kinds, "int")
		case *Operator:
			kinds = append(kinds, "op")
		case *Invalid:
			kinds = append(kinds, "invalid")
		}
		return true
	})

	want := []string{"id", "int", "op", "invalid", "invalid"}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, kinds[i], want[i])
		}
	}

	if got := CountInvalid(prog); got != 2 {
		t.Errorf("CountInvalid = %d, want 2", got)
	}
}
