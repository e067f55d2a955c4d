package isa

import "testing"

func TestOpcodeStringAndClamp(t *testing.T) {
	cases := []struct {
		op   Opcode
		want string
	}{
		{SUB, "sub"},
		{AND, "and"},
		{CMPEQ, "cmpeq"},
	}
	for _, c := range cases {
		if got := c.op.String(); got != c.want {
			t.Errorf("Opcode(%d).String() = %q, want %q", c.op, got, c.want)
		}
		if !c.op.Valid() {
			t.Errorf("Opcode(%d) should be valid", c.op)
		}
		if c.op.Clamp() != c.op {
			t.Errorf("Clamp() should be identity for valid opcodes")
		}
	}

	for _, bad := range []Opcode{-1, LastOpcode + 1, 42} {
		if bad.Valid() {
			t.Errorf("Opcode(%d) should be invalid", bad)
		}
		if bad.Clamp() != SUB {
			t.Errorf("Clamp() of out-of-range opcode %d = %v, want SUB", bad, bad.Clamp())
		}
	}
}

func TestInstructionFormat(t *testing.T) {
	cases := []struct {
		in   Instruction
		dest int
		want string
	}{
		{Instruction{Opcode: SUB, R1: 0, IsImm: true, Imm: 0x1}, 1, "sub r0, 0x1, r1"},
		{Instruction{Opcode: AND, R1: 0, R2: 1, IsImm: false}, 2, "and r0, r1, r2"},
		{Instruction{Opcode: CMPEQ, R1: 2, IsImm: true, Imm: 0}, 3, "cmpeq r2, 0x0, r3"},
		{Instruction{Opcode: SUB, R1: 0, IsImm: true, Imm: 0xff}, 1, "sub r0, 0xff, r1"},
	}
	for _, c := range cases {
		if got := c.in.Format(c.dest); got != c.want {
			t.Errorf("Format() = %q, want %q", got, c.want)
		}
	}
}

func TestInstructionValid(t *testing.T) {
	good := Instruction{Opcode: AND, R1: 1, R2: 2, IsImm: false}
	if !good.Valid(2, 32) {
		t.Errorf("expected valid instruction to pass at position 2")
	}
	if good.Valid(1, 32) {
		t.Errorf("r2=2 should be invalid at position 1 (r2 must be <= i)")
	}

	immTooWide := Instruction{Opcode: SUB, R1: 0, IsImm: true, Imm: 1 << 40}
	if immTooWide.Valid(0, 32) {
		t.Errorf("immediate wider than the register width should be invalid")
	}
	if !immTooWide.Valid(0, 64) {
		t.Errorf("the same immediate should be valid at width 64")
	}

	badOp := Instruction{Opcode: Opcode(99), R1: 0, IsImm: true}
	if badOp.Valid(0, 32) {
		t.Errorf("instruction with an out-of-range opcode should be invalid")
	}
}

func TestProgramFormatAndValid(t *testing.T) {
	prog := Program{
		{Opcode: SUB, R1: 0, IsImm: true, Imm: 1},
		{Opcode: AND, R1: 0, R2: 1, IsImm: false},
		{Opcode: CMPEQ, R1: 1, IsImm: true, Imm: 0},
	}
	want := "sub r0, 0x1, r1\nand r0, r1, r2\ncmpeq r1, 0x0, r3"
	if got := prog.Format(); got != want {
		t.Errorf("Program.Format() =\n%s\nwant:\n%s", got, want)
	}
	if !prog.Valid(32) {
		t.Errorf("expected program to satisfy SSA invariants")
	}
	if prog.Len() != 3 {
		t.Errorf("Len() = %d, want 3", prog.Len())
	}

	bad := Program{{Opcode: SUB, R1: 5, IsImm: true}}
	if bad.Valid(32) {
		t.Errorf("expected program with out-of-range r1 to be invalid")
	}
}
