//go:build cgo
// +build cgo

package z3

import "testing"

func TestIntArithmeticAndModel(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	x := ctx.Const("x", ctx.IntSort())
	y := ctx.Const("y", ctx.IntSort())

	s := ctx.NewSolver()
	defer s.Close()

	s.Assert(Ge(x, ctx.IntVal(0)))
	s.Assert(Ge(y, ctx.IntVal(0)))
	s.Assert(Gt(Add(x, y), ctx.IntVal(5)))

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

	xv := m.Eval(x, true)
	yv := m.Eval(y, true)
	if xv.a == nil || yv.a == nil {
		t.Fatalf("model eval nil")
	}
}

func TestModelGenerationCases(t *testing.T) {
	cfg := NewConfig()
	defer cfg.Close()
	ctx := NewContext(cfg)
	defer ctx.Close()

	cases := []struct {
		name  string
		build func(*Context) (*Solver, func(*testing.T, *Model))
	}{
		{
			name: "IntEquality",
			build: func(ctx *Context) (*Solver, func(*testing.T, *Model)) {
				x := ctx.Const("model_case_int_x", ctx.IntSort())
				s := ctx.NewSolver()
				s.Assert(Eq(x, ctx.IntVal(5)))
				return s, func(t *testing.T, m *Model) {
					t.Helper()
					val := m.Eval(x, true)
					if val.a == nil {
						t.Fatalf("model evaluation for x returned nil")
					}
					if v := val.NumeralString(); v != "5" {
						t.Fatalf("expected x == 5, got %s", v)
					}
				}
			},
		},
		{
			name: "BoolImplication",
			build: func(ctx *Context) (*Solver, func(*testing.T, *Model)) {
				a := ctx.Const("model_case_bool_a", ctx.BoolSort())
				b := ctx.Const("model_case_bool_b", ctx.BoolSort())
				s := ctx.NewSolver()
				s.Assert(Implies(a, b))
				s.Assert(a)
				return s, func(t *testing.T, m *Model) {
					t.Helper()
					aa := m.Eval(a, true)
					bb := m.Eval(b, true)
					if aa.a == nil || bb.a == nil {
						t.Fatalf("model evaluation for boolean vars returned nil")
					}
					if aa.String() != "true" {
						t.Fatalf("expected a == true, got %s", aa.String())
					}
					if bb.String() != "true" {
						t.Fatalf("expected b == true, got %s", bb.String())
					}
				}
			},
		},
		{
			name: "IntAddition",
			build: func(ctx *Context) (*Solver, func(*testing.T, *Model)) {
				x := ctx.Const("model_case_add_x", ctx.IntSort())
				y := ctx.Const("model_case_add_y", ctx.IntSort())
				s := ctx.NewSolver()
				s.Assert(Eq(Add(x, y), ctx.IntVal(10)))
				s.Assert(Eq(x, ctx.IntVal(3)))
				return s, func(t *testing.T, m *Model) {
					t.Helper()
					xVal := m.Eval(x, true)
					yVal := m.Eval(y, true)
					if xVal.a == nil || yVal.a == nil {
						t.Fatalf("model evaluation for addition vars returned nil")
					}
					if xv := xVal.NumeralString(); xv != "3" {
						t.Fatalf("expected x == 3, got %s", xv)
					}
					if yv := yVal.NumeralString(); yv != "7" {
						t.Fatalf("expected y == 7, got %s", yv)
					}
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			solver, check := tc.build(ctx)
			if solver == nil {
				t.Fatalf("nil solver from build")
			}
			if check == nil {
				t.Fatalf("nil checker for test case")
			}
			defer solver.Close()
			res, err := solver.Check()
			if err != nil {
				t.Fatalf("check error: %v", err)
			}
			if res != Sat {
				t.Fatalf("expected sat, got %v", res)
			}
			model := solver.Model()
			if model == nil {
				t.Fatalf("expected model, got nil")
			}
			defer model.Close()
			check(t, model)
		})
	}
}
