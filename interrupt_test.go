package w65c816

import "testing"

func TestRaiseIRQServicedWhenUnmasked(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagI = false })
	bus.mem[0x8000] = 0xEA // NOP, should not even execute
	bus.writeWord(0xFFEE, 0xA000)

	c.RaiseIRQ()
	c.Step()

	reg := c.Registers()
	if reg.PC != 0xA000 {
		t.Fatalf("PC = %#04x, want 0xA000 (IRQ vector)", reg.PC)
	}
	if !reg.FlagI {
		t.Fatalf("expected I set on interrupt entry")
	}
}

func TestIRQMaskedByFlagI(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagI = true })
	bus.mem[0x8000] = 0xEA // NOP

	c.RaiseIRQ()
	c.Step()

	if c.Registers().PC != 0x8001 {
		t.Fatalf("PC = %#04x, want 0x8001 (NOP executed, IRQ masked)", c.Registers().PC)
	}
}

func TestNMITakesPriorityOverIRQ(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagI = false })
	bus.writeWord(0xFFEA, 0xB000)
	bus.writeWord(0xFFEE, 0xC000)

	c.RaiseIRQ()
	c.RaiseNMI()
	c.Step()

	if c.Registers().PC != 0xB000 {
		t.Fatalf("PC = %#04x, want 0xB000 (NMI vector, priority over IRQ)", c.Registers().PC)
	}
}

func TestVectorSourceRedirectsIRQ(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagI = false })
	bus.writeWord(0xFFEE, 0xC000)
	redirected := false
	c.SetVectorSource(redirectorFunc(func(vectorAddr uint32) (uint32, bool) {
		redirected = true
		return 0xD000, true
	}))
	bus.writeWord(0xD000, 0x1234)

	c.RaiseIRQ()
	c.Step()

	if !redirected {
		t.Fatalf("expected VectorSource to be consulted")
	}
	if c.Registers().PC != 0x1234 {
		t.Fatalf("PC = %#04x, want 0x1234 (redirected vector contents)", c.Registers().PC)
	}
}

func TestBRKNeverRedirectedByVectorSource(t *testing.T) {
	c, bus := newEmulationCPU()
	setRegs(c, func(r *Registers) { r.PC = 0x8000 })
	bus.mem[0x8000] = 0x00
	bus.mem[0x8001] = 0x00
	bus.writeWord(0xFFFE, 0x9000)

	c.SetVectorSource(redirectorFunc(func(vectorAddr uint32) (uint32, bool) {
		t.Fatalf("software BRK must never consult VectorSource")
		return 0, false
	}))

	c.Step()

	if c.Registers().PC != 0x9000 {
		t.Fatalf("PC = %#04x, want 0x9000", c.Registers().PC)
	}
}

func TestIRQEntryChargesFetchPlusInternalCycle(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagI = false })
	bus.mem[0x8000] = 0xEA // NOP, establishes MemSpeed before the interrupt fires
	bus.writeWord(0xFFEE, 0xA000)

	c.Step() // NOP: latches MemSpeed

	c.RaiseIRQ()
	got := c.Step()

	// Entry pushes PB, PC (2 bytes), P, then reads a 2-byte vector: 6
	// bus-speed charges, plus the fetch+internal cycle an asynchronous
	// interrupt pays in place of the opcode fetch it never performs: 8
	// access-units total at this bus's flat speed of 6.
	want := uint64(8) * bus.speed
	if got != want {
		t.Fatalf("IRQ entry cost = %d cycles, want %d (8 access-units at speed %d)", got, want, bus.speed)
	}
}

func TestIRQEntryChargeInEmulationMode(t *testing.T) {
	c, bus := newEmulationCPU()
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagI = false })
	bus.mem[0x8000] = 0xEA
	bus.writeWord(0xFFFE, 0xA000)

	c.Step()

	c.RaiseIRQ()
	got := c.Step()

	// Emulation mode skips the PB push (5 base access-units instead of
	// 6), so the fetch+internal charge brings it to 7.
	want := uint64(7) * bus.speed
	if got != want {
		t.Fatalf("IRQ entry cost = %d cycles, want %d (7 access-units at speed %d)", got, want, bus.speed)
	}
}

type redirectorFunc func(vectorAddr uint32) (uint32, bool)

func (f redirectorFunc) RedirectVector(vectorAddr uint32) (uint32, bool) {
	return f(vectorAddr)
}
