package w65c816

import "testing"

func TestBEQNotTakenAdvancesPastOperand(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.FlagZ = false })
	bus.mem[0x8000] = 0xF0 // BEQ
	bus.mem[0x8001] = 0x10

	c.Step()

	if c.Registers().PC != 0x8002 {
		t.Fatalf("PC = %#04x, want 0x8002 (not taken)", c.Registers().PC)
	}
}

func TestBEQTakenJumpsToTarget(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.FlagZ = true })
	bus.mem[0x8000] = 0xF0
	bus.mem[0x8001] = 0x10

	c.Step()

	if c.Registers().PC != 0x8012 {
		t.Fatalf("PC = %#04x, want 0x8012", c.Registers().PC)
	}
}

func TestBranchTakenExtraCycleInEmulationOnPageCross(t *testing.T) {
	c, bus := newEmulationCPU()
	setRegs(c, func(r *Registers) { r.FlagZ = true; r.PC = 0x80F0 })
	bus.mem[0x80F0] = 0xF0
	bus.mem[0x80F1] = 0x20 // 0x80F2 + 0x20 = 0x8112, crosses page

	got := c.Step()
	// 2 opcode/operand bytes + taken penalty + page-cross penalty = 4 charges at speed 6.
	if got != 24 {
		t.Fatalf("cycles = %d, want 24", got)
	}
}

func TestBRANativeModeNeverPaysPageCrossPenalty(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x80F0 })
	bus.mem[0x80F0] = 0x80 // BRA, always taken
	bus.mem[0x80F1] = 0x20

	got := c.Step()
	// 2 bytes + 1 taken-penalty internal cycle = 3 charges, no second penalty.
	if got != 18 {
		t.Fatalf("cycles = %d, want 18", got)
	}
}

func TestBRLAlwaysJumps(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	bus.mem[0x8000] = 0x82 // BRL
	bus.writeWord(0x8001, 0x0100)

	c.Step()

	if c.Registers().PC != 0x8103 {
		t.Fatalf("PC = %#04x, want 0x8103", c.Registers().PC)
	}
}
