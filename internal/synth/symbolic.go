//go:build cgo
// +build cgo

// Package synth implements the symbolic program encoding and the
// counterexample-guided inductive synthesis (CEGIS) loop that drives it:
// a symbolic encoder that turns "does a length-k program computing f
// exist?" into a bit-vector formula, a reconstructor that extracts a
// concrete program from a satisfying model, a pluggable specification
// oracle, and the outer/inner CEGIS loop itself.
//
// The package requires cgo: there is no meaningful non-solver-backed
// implementation of a CEGIS search, so unlike the z3 package it has no
// !cgo stub half.
package synth

import (
	"fmt"

	"github.com/gagomes/sematrope/internal/isa"
	"github.com/gagomes/sematrope/z3"
)

// SymbolicInstruction is the solver-variable shape of one instruction: an
// unbounded integer opcode selector, two unbounded integer operand
// selectors, and a W-bit immediate. Operand-range validity is never
// asserted as a constraint; Encode's fallthrough chains make every
// out-of-range value meaningful instead.
type SymbolicInstruction struct {
	Opcode z3.AST
	R1     z3.AST
	R2     z3.AST
	Imm    z3.AST
}

// NewSymbolicInstruction declares the four solver variables for one
// instruction, namespaced under prefix so multiple instructions in the
// same context never collide.
func NewSymbolicInstruction(ctx *z3.Context, prefix string, width int) SymbolicInstruction {
	return SymbolicInstruction{
		Opcode: ctx.Const(prefix+"_op", ctx.IntSort()),
		R1:     ctx.Const(prefix+"_r1", ctx.IntSort()),
		R2:     ctx.Const(prefix+"_r2", ctx.IntSort()),
		Imm:    ctx.BVConst(prefix+"_imm", width),
	}
}

// MakeInstructions declares k symbolic instructions and their immediate
// side constraints (imm < immBound), the only constraints the encoder
// emits outside of the per-query correctness assertions.
func MakeInstructions(ctx *z3.Context, k int, width int, immBound uint64) ([]SymbolicInstruction, []z3.AST) {
	insns := make([]SymbolicInstruction, k)
	constraints := make([]z3.AST, k)
	bound := ctx.BVVal(immBound, width)
	for i := 0; i < k; i++ {
		insns[i] = NewSymbolicInstruction(ctx, fmt.Sprintf("op%d", i), width)
		constraints[i] = z3.BVUlt(insns[i].Imm, bound)
	}
	return insns, constraints
}

// opcodeSemantics maps each non-default opcode to the bit-vector
// expression it builds from its two operands. SUB is the default and is
// handled separately by Encode, matching the closed-tagged-variant pattern
// where the encoder iterates the variant's non-default cases.
var opcodeSemantics = []struct {
	Op    isa.Opcode
	Apply func(ctx *z3.Context, in1, in2 z3.AST, width int) z3.AST
}{
	{isa.AND, func(ctx *z3.Context, in1, in2 z3.AST, width int) z3.AST {
		return z3.BVAnd(in1, in2)
	}},
	{isa.CMPEQ, func(ctx *z3.Context, in1, in2 z3.AST, width int) z3.AST {
		return z3.BoolToBV(z3.Eq(in1, in2), ctx.BVVal(1, width), ctx.BVVal(0, width))
	}},
}

// Encode builds the expression denoting the value of the program's final
// register when run on symbolic input x. regs[0] is x; regs[i+1] is
// instruction i's result. Operand selection uses the fallthrough chain
// documented in spec.md §4.2: r1 defaults to regs[i] (the most recently
// written register: the previous instruction's result, or x when i is 0), r2
// defaults to the immediate. Opcode selection is a chain of ite keyed on
// the symbolic opcode integer, defaulting to SUB.
func Encode(ctx *z3.Context, x z3.AST, insns []SymbolicInstruction, width int) z3.AST {
	regs := make([]z3.AST, len(insns)+1)
	regs[0] = x
	for i := range insns {
		in1 := regs[i]
		for j := i - 1; j >= 0; j-- {
			in1 = z3.Ite(z3.Eq(insns[i].R1, ctx.IntVal(int64(j))), regs[j], in1)
		}
		in2 := insns[i].Imm
		for j := i; j >= 0; j-- {
			in2 = z3.Ite(z3.Eq(insns[i].R2, ctx.IntVal(int64(j))), regs[j], in2)
		}

		result := z3.BVSub(in1, in2) // SUB is the default
		for _, sem := range opcodeSemantics {
			cond := z3.Eq(insns[i].Opcode, ctx.IntVal(int64(sem.Op)))
			result = z3.Ite(cond, sem.Apply(ctx, in1, in2, width), result)
		}
		regs[i+1] = result
	}
	return regs[len(insns)]
}

// EncodeProgram builds the expression denoting the value of a *concrete*
// program run on symbolic input x. Unlike Encode, no fallthrough chains
// are needed: the program's register/immediate choices are already fixed
// Go values. Used by the verification query, which re-encodes a
// reconstructed candidate to check it against the oracle on a fresh
// symbolic input.
func EncodeProgram(ctx *z3.Context, x z3.AST, prog isa.Program, width int) z3.AST {
	regs := make([]z3.AST, len(prog)+1)
	regs[0] = x
	for i, in := range prog {
		in1 := regs[in.R1]
		var in2 z3.AST
		if in.IsImm {
			in2 = ctx.BVVal(in.Imm, width)
		} else {
			in2 = regs[in.R2]
		}
		switch in.Opcode.Clamp() {
		case isa.AND:
			regs[i+1] = z3.BVAnd(in1, in2)
		case isa.CMPEQ:
			regs[i+1] = z3.BoolToBV(z3.Eq(in1, in2), ctx.BVVal(1, width), ctx.BVVal(0, width))
		default:
			regs[i+1] = z3.BVSub(in1, in2)
		}
	}
	return regs[len(prog)]
}
