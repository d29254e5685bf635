package w65c816

import "testing"

func TestPHAPLARoundTrip16Bit(t *testing.T) {
	c, bus := newNativeCPU(false, false)
	setRegs(c, func(r *Registers) { r.A = 0xBEEF; r.S = 0x1FF })
	bus.mem[0x8000] = 0x48 // PHA
	bus.mem[0x8001] = 0xA9 // LDA #0 to clobber A
	bus.writeWord(0x8002, 0x0000)
	bus.mem[0x8004] = 0x68 // PLA

	c.Step()
	c.Step()
	c.Step()

	if c.Registers().A != 0xBEEF {
		t.Fatalf("A = %#04x, want 0xBEEF restored from stack", c.Registers().A)
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.FlagC = true; r.FlagN = true; r.S = 0x1FF })
	bus.mem[0x8000] = 0x08 // PHP
	bus.mem[0x8001] = 0x18 // CLC, to clobber C
	bus.mem[0x8002] = 0x28 // PLP

	c.Step()
	c.Step()
	c.Step()

	reg := c.Registers()
	if !reg.FlagC || !reg.FlagN {
		t.Fatalf("expected C and N restored, got C=%v N=%v", reg.FlagC, reg.FlagN)
	}
}

func TestPEAPushesImmediateWord(t *testing.T) {
	c, bus := newNativeCPU(false, false)
	setRegs(c, func(r *Registers) { r.S = 0x1FF })
	bus.mem[0x8000] = 0xF4 // PEA
	bus.writeWord(0x8001, 0x1234)

	c.Step()

	if bus.mem[0x1FE] != 0x34 || bus.mem[0x1FF] != 0x12 {
		t.Fatalf("stack bytes = %#02x %#02x, want 0x34 0x12", bus.mem[0x1FE], bus.mem[0x1FF])
	}
}

func TestPHBPLBRoundTrip(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.DB = 0x7E; r.S = 0x1FF })
	bus.mem[0x8000] = 0x8B // PHB
	bus.mem[0x8001] = 0xAB // PLB

	c.Step()
	setRegs(c, func(r *Registers) { r.DB = 0 })
	c.Step()

	if c.Registers().DB != 0x7E {
		t.Fatalf("DB = %#02x, want 0x7E restored", c.Registers().DB)
	}
}
