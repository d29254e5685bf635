package w65c816

import "testing"

func TestIdlePollLoopTriggersFastForward(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagZ = false })
	bus.mem[0x8000] = 0xD0 // BNE -2 (degenerate single-instruction self-loop)
	bus.mem[0x8001] = 0xFE
	c.SetNextEvent(1000)

	for i := 0; i < shutdownThreshold+1; i++ {
		c.Step()
	}

	if !c.waitingForInterrupt {
		t.Fatalf("expected waitingForInterrupt after repeated self-branch")
	}

	got := c.Step()
	if c.Cycles != 1000 {
		t.Fatalf("Cycles = %d, want fast-forwarded to 1000", c.Cycles)
	}
	_ = got
}

func TestRealisticPollThenBranchLoopTriggersFastForward(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000 })
	c.SetNextEvent(1000)

	// loop: LDA $10 ; BPL loop -- a realistic multi-instruction idle poll,
	// not a single opcode that targets itself.
	bus.mem[0x8000] = 0xA5 // LDA dp
	bus.mem[0x8001] = 0x10
	bus.mem[0x8002] = 0x10 // BPL
	bus.mem[0x8003] = 0xFC // disp -4, back to 0x8000
	bus.mem[0x000010] = 0x00 // N clear, BPL always taken

	for i := 0; i < 2*(shutdownThreshold+1); i++ {
		c.Step()
	}

	if !c.waitingForInterrupt {
		t.Fatalf("expected waitingForInterrupt after a repeated poll-then-branch loop")
	}
}

func TestForwardBranchNeverArmsShutdown(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagN = false })
	bus.mem[0x8000] = 0x10 // BPL
	bus.mem[0x8001] = 0x0E // disp +14: forward, never a loop-back
	c.SetNextEvent(1000)

	for i := 0; i < shutdownThreshold+5; i++ {
		setRegs(c, func(r *Registers) { r.PC = 0x8000 })
		c.Step()
	}

	if c.waitingForInterrupt {
		t.Fatalf("a forward branch must never arm the idle-loop optimizer")
	}
}

func TestINCInvalidatesLoopProbe(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagZ = false })
	bus.mem[0x8000] = 0xD0 // BNE -2: one pass arms a candidate
	bus.mem[0x8001] = 0xFE

	c.Step()
	if c.waitPC != 0x8000 || c.waitCounter != 1 {
		t.Fatalf("expected a candidate armed after one backward branch, got waitPC=%#04x waitCounter=%d", c.waitPC, c.waitCounter)
	}

	setRegs(c, func(r *Registers) { r.PC = 0x9000 })
	bus.mem[0x9000] = 0xE6 // INC dp
	bus.mem[0x9001] = 0x00
	c.Step()

	if c.waitPC != 0 || c.waitCounter != 0 {
		t.Fatalf("INC must clear the armed loop-probe candidate, got waitPC=%#04x waitCounter=%d", c.waitPC, c.waitCounter)
	}
}

func TestShutdownNeverArmsWithInterruptPending(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagZ = false })
	bus.mem[0x8000] = 0xD0
	bus.mem[0x8001] = 0xFE

	c.RaiseIRQ()
	setRegs(c, func(r *Registers) { r.FlagI = true }) // keep IRQ pending but masked so the branch still executes
	for i := 0; i < shutdownThreshold+2; i++ {
		c.Step()
	}

	if c.waitingForInterrupt {
		t.Fatalf("must not arm the idle optimizer while an interrupt is pending")
	}
}

func TestWaitForInterruptClearsOnPendingInterrupt(t *testing.T) {
	c, bus := newNativeCPU(true, true)
	setRegs(c, func(r *Registers) { r.PC = 0x8000; r.FlagZ = false })
	bus.mem[0x8000] = 0xD0
	bus.mem[0x8001] = 0xFE
	c.SetNextEvent(1000)

	for i := 0; i < shutdownThreshold+1; i++ {
		c.Step()
	}
	if !c.waitingForInterrupt {
		t.Fatalf("expected idle optimizer armed")
	}

	c.RaiseNMI()
	bus.writeWord(0xFFEA, 0x9000)
	c.Step()

	if c.waitingForInterrupt {
		t.Fatalf("expected waitingForInterrupt cleared once NMI services")
	}
	if c.Registers().PC != 0x9000 {
		t.Fatalf("PC = %#04x, want 0x9000 (NMI serviced instead of fast-forwarding)", c.Registers().PC)
	}
}
