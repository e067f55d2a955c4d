//go:build cgo
// +build cgo

package z3

import "testing"

func TestASTTraversalOfOpcodeChain(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	opcode := ctx.Const("op0_op", ctx.IntSort())
	in1 := ctx.BVConst("in1", 8)
	in2 := ctx.BVConst("in2", 8)

	result := Ite(Eq(opcode, ctx.IntVal(1)), BVAnd(in1, in2), BVSub(in1, in2))

	if !result.IsApp() {
		t.Fatalf("expected ite expression to be an application, got %s", result.String())
	}
	if result.Decl().Kind() != DeclOpIte {
		t.Fatalf("expected top-level decl to be ite, got %s", result.Decl().Kind())
	}
	if n := result.NumChildren(); n != 3 {
		t.Fatalf("expected ite to expose 3 children, got %d", n)
	}

	cond := result.Child(0)
	if !cond.IsApp() || cond.Decl().Kind() != DeclOpEq {
		t.Fatalf("expected condition child to be an equality, got %s", cond.String())
	}

	var kinds []ASTKind
	result.Walk(func(node AST) bool {
		kinds = append(kinds, node.Kind())
		return true
	})
	if len(kinds) == 0 {
		t.Fatalf("Walk did not visit any nodes")
	}

	s := ctx.NewSolver()
	defer s.Close()
	s.Assert(Eq(opcode, ctx.IntVal(1)))
	s.Assert(Eq(in1, ctx.BVVal(0b1100, 8)))
	s.Assert(Eq(in2, ctx.BVVal(0b1010, 8)))

	res, err := s.Check()
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if res != Sat {
		t.Fatalf("expected sat, got %v", res)
	}

	m := s.Model()
	if m == nil {
		t.Fatalf("expected model from solver")
	}
	defer m.Close()

	resultVal := m.Eval(result, true)
	v, ok := resultVal.AsUint64()
	if !ok || v != 0b1000 {
		t.Fatalf("expected result = 0b1000 (AND of 0b1100 and 0b1010), got %v (ok=%v)", v, ok)
	}

	var numerals []string
	resultVal.Walk(func(node AST) bool {
		if node.Kind() == ASTKindNumeral {
			numerals = append(numerals, node.NumeralString())
		}
		return true
	})
	if len(numerals) == 0 {
		t.Fatalf("expected the model value's own AST to be a numeral")
	}
}

func TestASTStringLiteralFallback(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	x := ctx.Const("x", ctx.BoolSort())
	if _, ok := x.AsStringLiteral(); ok {
		t.Fatalf("expected a boolean constant to not decode as a string literal")
	}
}
