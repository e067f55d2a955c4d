// Package isa defines the concrete instruction model of the register
// machine that sematrope searches over: a closed opcode set, a two-operand
// instruction shape (register or immediate second operand), and the
// implicit-destination SSA convention (instruction i writes register i+1,
// register 0 holds the input).
package isa

import (
	"fmt"
	"strings"
)

// Opcode is a small closed enumeration of arithmetic/bitwise operations
// over W-bit words. The encoder and reconstructor share this single
// definition so their notion of the opcode set's cardinality never drifts.
type Opcode int

const (
	// SUB is two's-complement subtraction and is the encoder's default
	// opcode: any out-of-range symbolic opcode value collapses to it.
	SUB Opcode = iota
	// AND is bitwise conjunction.
	AND
	// CMPEQ yields 1 if its operands are equal, 0 otherwise.
	CMPEQ

	// numOpcodes must stay last; it is the opcode set's cardinality.
	numOpcodes
)

// LastOpcode is the highest valid opcode value in the enumeration.
const LastOpcode = numOpcodes - 1

var opcodeNames = map[Opcode]string{
	SUB:   "sub",
	AND:   "and",
	CMPEQ: "cmpeq",
}

// String returns the textual mnemonic used by Format and the reference
// printer in original_source/sematrope.cc.
func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("opcode(%d)", int(op))
}

// Valid reports whether op is a member of the enumeration.
func (op Opcode) Valid() bool {
	return op >= SUB && op <= LastOpcode
}

// Clamp returns op if it is valid, or the canonical default opcode (SUB)
// otherwise. The reconstructor uses this to make opcode extraction total.
func (op Opcode) Clamp() Opcode {
	if op.Valid() {
		return op
	}
	return SUB
}

// Instruction is a concrete instruction: an opcode, a first operand that is
// always a register index, and a second operand that is either a register
// index (r2) or an immediate (imm), distinguished by IsImm. The destination
// register is never stored here — it is implicit in the instruction's
// position within a Program.
type Instruction struct {
	Opcode Opcode
	R1     int
	R2     int
	IsImm  bool
	Imm    uint64
}

// Valid checks the per-instruction invariants for an instruction sitting at
// position i (0-based) in a program: 0<=R1<=i; if not immediate, 0<=R2<=i;
// Imm fits in width bits; Opcode is in the enumeration.
func (in Instruction) Valid(i int, width uint) bool {
	if !in.Opcode.Valid() {
		return false
	}
	if in.R1 < 0 || in.R1 > i {
		return false
	}
	if in.IsImm {
		if width < 64 && in.Imm>>width != 0 {
			return false
		}
		return true
	}
	return in.R2 >= 0 && in.R2 <= i
}

// Format renders the instruction in the textual syntax
// "<op> r<a>, (r<b>|0x<hex-imm>), r<dest>", where dest is the destination
// register index (position+1) supplied by the caller.
func (in Instruction) Format(dest int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s r%d, ", in.Opcode, in.R1)
	if in.IsImm {
		fmt.Fprintf(&b, "0x%x", in.Imm)
	} else {
		fmt.Fprintf(&b, "r%d", in.R2)
	}
	fmt.Fprintf(&b, ", r%d", dest)
	return b.String()
}

// Program is an ordered sequence of concrete instructions. Its output is
// the value of the last register it writes, i.e. register len(Program).
type Program []Instruction

// Len is the instruction count, i.e. the program's length k.
func (p Program) Len() int { return len(p) }

// Format renders the whole program, one instruction per line, in
// destination-register order (instruction i writes register i+1).
func (p Program) Format() string {
	lines := make([]string, len(p))
	for i, in := range p {
		lines[i] = in.Format(i + 1)
	}
	return strings.Join(lines, "\n")
}

// Valid checks every instruction's per-position invariant for the given
// register width.
func (p Program) Valid(width uint) bool {
	for i, in := range p {
		if !in.Valid(i, width) {
			return false
		}
	}
	return true
}
