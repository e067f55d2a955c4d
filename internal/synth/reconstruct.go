//go:build cgo
// +build cgo

package synth

import (
	"github.com/gagomes/sematrope/internal/isa"
	"github.com/gagomes/sematrope/z3"
)

// Reconstruct extracts a concrete program from a satisfying model over the
// given symbolic instructions. It is a total function of the model: values
// the model leaves unconstrained (model completion disabled, matching the
// reference implementation) fall back to the documented defaults rather
// than erroring, per spec.md §4.3/§7 ("model-indeterminate... never
// fatal").
func Reconstruct(insns []SymbolicInstruction, model *z3.Model) isa.Program {
	prog := make(isa.Program, len(insns))
	for i, si := range insns {
		prog[i] = reconstructOne(si, i, model)
	}
	return prog
}

func reconstructOne(si SymbolicInstruction, i int, model *z3.Model) isa.Instruction {
	opcode := isa.Opcode(intDefault(model.Eval(si.Opcode, false), 0)).Clamp()

	r1 := intDefault(model.Eval(si.R1, false), 0)
	if r1 < 0 || r1 > i {
		r1 = i
	}

	r2 := intDefault(model.Eval(si.R2, false), 0)
	if r2 < 0 || r2 > i {
		return isa.Instruction{
			Opcode: opcode,
			R1:     r1,
			IsImm:  true,
			Imm:    uint64Default(model.Eval(si.Imm, false), 0),
		}
	}
	return isa.Instruction{Opcode: opcode, R1: r1, R2: r2, IsImm: false}
}

func intDefault(a z3.AST, d int) int {
	if v, ok := a.AsInt64(); ok {
		return int(v)
	}
	return d
}

func uint64Default(a z3.AST, d uint64) uint64 {
	if v, ok := a.AsUint64(); ok {
		return v
	}
	return d
}
