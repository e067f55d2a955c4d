//go:build cgo
// +build cgo

package z3

import "testing"

func TestBVArithmeticAndModel(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	x := ctx.BVConst("x", 32)
	y := ctx.BVConst("y", 32)

	s := ctx.NewSolver()
	defer s.Close()

	s.Assert(BVUlt(x, ctx.BVVal(10, 32)))
	s.Assert(Eq(BVSub(x, y), ctx.BVVal(3, 32)))

	res, err := s.Check()
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if res != Sat {
		t.Fatalf("expected sat, got %v", res)
	}

	m := s.Model()
	if m == nil {
		t.Fatalf("no model")
	}
	defer m.Close()

	xv, ok := m.Eval(x, true).AsUint64()
	if !ok {
		t.Fatalf("expected x to evaluate to a numeral")
	}
	if xv >= 10 {
		t.Fatalf("x = %d violates x < 10", xv)
	}
}

func TestBVAndSimplify(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	lhs := BVAnd(ctx.BVVal(0b1100, 8), ctx.BVVal(0b1010, 8))
	simplified := Simplify(lhs)
	v, ok := simplified.AsUint64()
	if !ok {
		t.Fatalf("expected a numeral after simplification")
	}
	if v != 0b1000 {
		t.Fatalf("0b1100 & 0b1010 = %#b, want %#b", v, 0b1000)
	}
}

func TestBoolToBV(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	one := ctx.BVVal(1, 8)
	zero := ctx.BVVal(0, 8)

	eqTrue := Simplify(BoolToBV(Eq(ctx.BVVal(5, 8), ctx.BVVal(5, 8)), one, zero))
	if v, ok := eqTrue.AsUint64(); !ok || v != 1 {
		t.Fatalf("expected 1, got %v (ok=%v)", v, ok)
	}

	eqFalse := Simplify(BoolToBV(Eq(ctx.BVVal(5, 8), ctx.BVVal(6, 8)), one, zero))
	if v, ok := eqFalse.AsUint64(); !ok || v != 0 {
		t.Fatalf("expected 0, got %v (ok=%v)", v, ok)
	}
}

func TestBVSize(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	if got := BVSize(ctx.BVSort(32)); got != 32 {
		t.Fatalf("BVSize() = %d, want 32", got)
	}
	if got := BVSize(ctx.BVSort(8)); got != 8 {
		t.Fatalf("BVSize() = %d, want 8", got)
	}
}

func TestAsUint64NonNumeral(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	x := ctx.BVConst("unconstrained", 8)
	if _, ok := x.AsUint64(); ok {
		t.Fatalf("expected a free constant to not be a numeral")
	}
}
