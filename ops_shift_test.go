package w65c816

import "testing"

func TestASLAccumulator8(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.A = 0x0081 })
	bus.mem[0x8000] = 0x0A // ASL A

	c.Step()

	reg := c.Registers()
	if uint8(reg.A) != 0x02 {
		t.Fatalf("A low byte = %#02x, want 0x02", uint8(reg.A))
	}
	if !reg.FlagC {
		t.Fatalf("expected carry from bit 7")
	}
}

func TestRORAccumulatorCarryIn(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.A = 0x0000; r.FlagC = true })
	bus.mem[0x8000] = 0x6A // ROR A

	c.Step()

	reg := c.Registers()
	if uint8(reg.A) != 0x80 {
		t.Fatalf("A = %#02x, want 0x80", uint8(reg.A))
	}
	if reg.FlagC {
		t.Fatalf("expected carry out clear (bit 0 of 0 was 0)")
	}
	if !reg.FlagN {
		t.Fatalf("expected N set")
	}
}

func TestASLMemoryDirectPageRMW(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.D = 0 })
	bus.mem[0x8000] = 0x06 // ASL dp
	bus.mem[0x8001] = 0x10
	bus.mem[0x000010] = 0x40

	c.Step()

	if bus.mem[0x000010] != 0x80 {
		t.Fatalf("mem[0x10] = %#02x, want 0x80", bus.mem[0x000010])
	}
}

func TestTSBSetsZWithoutModifyingAccumulator(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.A = 0x03; r.D = 0 })
	bus.mem[0x8000] = 0x04 // TSB dp
	bus.mem[0x8001] = 0x20
	bus.mem[0x000020] = 0x04

	c.Step()

	if c.Registers().A != 0x03 {
		t.Fatalf("TSB must not modify A")
	}
	if bus.mem[0x000020] != 0x07 {
		t.Fatalf("mem[0x20] = %#02x, want 0x07 (OR with A)", bus.mem[0x000020])
	}
	if !c.Registers().FlagZ {
		t.Fatalf("expected Z set: A&mem == 0")
	}
}

func TestTRBClearsBitsPresentInAccumulator(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.A = 0x03; r.D = 0 })
	bus.mem[0x8000] = 0x14 // TRB dp
	bus.mem[0x8001] = 0x20
	bus.mem[0x000020] = 0x07

	c.Step()

	if bus.mem[0x000020] != 0x04 {
		t.Fatalf("mem[0x20] = %#02x, want 0x04", bus.mem[0x000020])
	}
}
