package w65c816

import "testing"

func TestDirectPageWrapsWithinBankZeroInEmulationMode(t *testing.T) {
	c, bus := newEmulationCPU()
	setRegs(c, func(r *Registers) { r.D = 0x0000; r.X = 0x01 })
	bus.mem[0x8000] = 0xB5 // LDA dp,X
	bus.mem[0x8001] = 0xFF
	bus.mem[0x000000] = 0x77 // (0xFF + 0x01) wraps to 0x00 within page when DL=0

	c.Step()

	if uint8(c.Registers().A) != 0x77 {
		t.Fatalf("A = %#02x, want 0x77 (wrapped within direct page)", uint8(c.Registers().A))
	}
}

func TestDirectPagePenaltyChargedWhenDLNonzero(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.D = 0x0001 })
	bus.mem[0x8000] = 0xA5 // LDA dp
	bus.mem[0x8001] = 0x10
	bus.mem[0x000011] = 0x42

	got := c.Step()
	// opcode + operand (2*6=12) + direct-page penalty (1) + operand read (6) = 19
	if got != 19 {
		t.Fatalf("cycles = %d, want 19", got)
	}
}

func TestAbsoluteIndexedXPenaltyAlwaysPaysWith16BitIndex(t *testing.T) {
	c, bus := newNativeCPU(true, false) // X-width = 16-bit
	setRegs(c, func(r *Registers) { r.X = 0x0001; r.DB = 0 })
	bus.mem[0x8000] = 0xBD // LDA abs,X
	bus.writeWord(0x8001, 0x1000) // no page cross: 0x1000+1=0x1001, same page
	bus.mem[0x001001] = 0x00

	got := c.Step()
	// opcode+2 operand bytes (3*6=18) + index penalty (1, always with 16-bit X) + read (6) = 25
	if got != 25 {
		t.Fatalf("cycles = %d, want 25", got)
	}
}

func TestAbsoluteIndexedXNoPenaltyWhen8BitIndexAndNoPageCross(t *testing.T) {
	c, bus := newNativeCPU(true, true) // X-width = 8-bit
	setRegs(c, func(r *Registers) { r.X = 0x01; r.DB = 0 })
	bus.mem[0x8000] = 0xBD
	bus.writeWord(0x8001, 0x1000)
	bus.mem[0x001001] = 0x00

	got := c.Step()
	// opcode+2 operand bytes (18) + read (6), no penalty: no page cross, read-only, 8-bit index.
	if got != 24 {
		t.Fatalf("cycles = %d, want 24", got)
	}
}

func TestAbsoluteIndexedXPenaltyOn8BitIndexPageCross(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.X = 0x01; r.DB = 0 })
	bus.mem[0x8000] = 0xBD
	bus.writeWord(0x8001, 0x10FF) // +1 crosses into 0x1100
	bus.mem[0x001100] = 0x00

	got := c.Step()
	if got != 25 {
		t.Fatalf("cycles = %d, want 25 (page-cross penalty with 8-bit index)", got)
	}
}

func TestStoreAlwaysPaysIndexPenaltyRegardlessOfIndexWidth(t *testing.T) {
	c, bus := newNativeCPU(true, true) // 8-bit index, write access
	setRegs(c, func(r *Registers) { r.X = 0x01; r.DB = 0; r.A = 0x42 })
	bus.mem[0x8000] = 0x9D // STA abs,X
	bus.writeWord(0x8001, 0x1000) // no page cross

	got := c.Step()
	// opcode+2 operand bytes (18) + index penalty (always on write, 1) + write (6) = 25
	if got != 25 {
		t.Fatalf("cycles = %d, want 25 (write always pays the index penalty)", got)
	}
}
