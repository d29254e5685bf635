package w65c816

import "testing"

func TestINXWrapsAtIndexWidth8(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.X = 0x00FF })
	bus.mem[0x8000] = 0xE8 // INX

	c.Step()

	reg := c.Registers()
	if reg.X != 0x0000 {
		t.Fatalf("X = %#04x, want 0x0000 (8-bit wraparound)", reg.X)
	}
	if !reg.FlagZ {
		t.Fatalf("expected Z set")
	}
}

func TestDEYWrapsAtIndexWidth16(t *testing.T) {
	c, bus := newNativeCPU(true, false)
	setRegs(c, func(r *Registers) { r.Y = 0x0000 })
	bus.mem[0x8000] = 0x88 // DEY

	c.Step()

	if c.Registers().Y != 0xFFFF {
		t.Fatalf("Y = %#04x, want 0xFFFF", c.Registers().Y)
	}
}

func TestINCAccumulator(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.A = 0x007F })
	bus.mem[0x8000] = 0x1A // INC A

	c.Step()

	reg := c.Registers()
	if uint8(reg.A) != 0x80 {
		t.Fatalf("A = %#02x, want 0x80", uint8(reg.A))
	}
	if !reg.FlagN {
		t.Fatalf("expected N set")
	}
}

func TestDECMemoryAbsolute(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.DB = 0 })
	bus.mem[0x8000] = 0xCE // DEC abs
	bus.writeWord(0x8001, 0x2000)
	bus.mem[0x002000] = 0x01

	c.Step()

	if bus.mem[0x002000] != 0x00 {
		t.Fatalf("mem = %#02x, want 0x00", bus.mem[0x002000])
	}
	if !c.Registers().FlagZ {
		t.Fatalf("expected Z set")
	}
}
