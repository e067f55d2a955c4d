//go:build cgo
// +build cgo

package synth

import "github.com/gagomes/sematrope/z3"

// Oracle is the specification the synthesized program must replicate: a
// capability pair exposing symbolic evaluation (a bit-vector expression
// over a symbolic input, used by the verification query and by synthesis
// queries to compute correct answers for accumulated test cases) and,
// implicitly, concrete evaluation via Concrete, which folds the symbolic
// definition through the solver's simplifier rather than duplicating it.
type Oracle struct {
	Name     string
	Symbolic func(ctx *z3.Context, x z3.AST, width int) z3.AST
}

// Concrete evaluates the oracle on a literal W-bit input by building the
// symbolic expression for a constant and simplifying it to a numeral, so
// every oracle only ever defines its behavior once.
func (o Oracle) Concrete(ctx *z3.Context, t uint64, width int) uint64 {
	x := ctx.BVVal(t, width)
	folded := z3.Simplify(o.Symbolic(ctx, x, width))
	v, ok := folded.AsUint64()
	if !ok {
		panic("synth: oracle " + o.Name + " did not simplify to a numeral")
	}
	return v
}

// Registry is the built-in set of named oracles selectable from the CLI.
// It exists so the driver is parameterized over the target rather than
// hard-coding it (spec.md §4.4/§9): the reference target, isPowerOfTwoOrZero,
// plus the oracles named by spec.md §8's end-to-end scenarios.
var Registry = map[string]Oracle{
	"identity": {
		Name: "identity",
		Symbolic: func(ctx *z3.Context, x z3.AST, width int) z3.AST {
			return x
		},
	},
	"zero": {
		Name: "zero",
		Symbolic: func(ctx *z3.Context, x z3.AST, width int) z3.AST {
			return ctx.BVVal(0, width)
		},
	},
	"eq5": {
		Name: "eq5",
		Symbolic: func(ctx *z3.Context, x z3.AST, width int) z3.AST {
			five := ctx.BVVal(5, width)
			return z3.BoolToBV(z3.Eq(x, five), ctx.BVVal(1, width), ctx.BVVal(0, width))
		},
	},
	"decr-if-nonzero": {
		Name: "decr-if-nonzero",
		Symbolic: func(ctx *z3.Context, x z3.AST, width int) z3.AST {
			zero := ctx.BVVal(0, width)
			nonzero := z3.Eq(x, zero).Not()
			step := z3.BoolToBV(nonzero, ctx.BVVal(1, width), zero)
			return z3.BVSub(x, step)
		},
	},
	"pow2-or-zero": {
		Name:     "pow2-or-zero",
		Symbolic: isPowerOfTwoOrZero,
	},
}

// isPowerOfTwoOrZero returns 1 iff x == 0 or x is a power of two, else 0.
// It is the reference target from original_source/sematrope.cc, expressed
// as a disjunction over the W+1 matching bit-vector constants.
func isPowerOfTwoOrZero(ctx *z3.Context, x z3.AST, width int) z3.AST {
	zero := ctx.BVVal(0, width)
	disjunct := z3.Eq(x, zero)
	p := uint64(1)
	for i := 0; i < width; i++ {
		disjunct = z3.Or(disjunct, z3.Eq(x, ctx.BVVal(p, width)))
		p <<= 1
	}
	return z3.BoolToBV(disjunct, ctx.BVVal(1, width), zero)
}
