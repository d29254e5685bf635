package w65c816

import "testing"

func TestSEPSetsRequestedWidthBits(t *testing.T) {
	c, bus := newNativeCPU(false, false)
	bus.mem[0x8000] = 0xE2 // SEP
	bus.mem[0x8001] = flagM | flagX

	c.Step()

	reg := c.Registers()
	if !reg.ModeM || !reg.ModeX {
		t.Fatalf("expected M and X set (8-bit) after SEP #0x30")
	}
}

func TestREPClearsRequestedFlags(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.FlagC = true; r.FlagZ = true })
	bus.mem[0x8000] = 0xC2 // REP
	bus.mem[0x8001] = flagC | flagZ

	c.Step()

	reg := c.Registers()
	if reg.FlagC || reg.FlagZ {
		t.Fatalf("expected C and Z cleared, got C=%v Z=%v", reg.FlagC, reg.FlagZ)
	}
}

func TestREPCannotClearWidthBitsInEmulationMode(t *testing.T) {
	c, bus := newEmulationCPU()
	bus.mem[0x8000] = 0xC2
	bus.mem[0x8001] = flagM | flagX

	c.Step()

	reg := c.Registers()
	if !reg.ModeM || !reg.ModeX {
		t.Fatalf("emulation mode must force M=X=1 regardless of REP operand")
	}
}

func TestCLCClearsCarry(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.FlagC = true })
	bus.mem[0x8000] = 0x18 // CLC

	c.Step()
	if c.Registers().FlagC {
		t.Fatalf("expected C cleared")
	}
}
