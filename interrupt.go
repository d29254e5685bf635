package w65c816

// Vector table addresses, bank 0 (§4.4). Emulation mode shares a single
// IRQ/BRK vector; native mode gives BRK its own.
const (
	vecCopNative = 0xFFE4
	vecCopEmu    = 0xFFF4
	vecBrkNative = 0xFFE6
	vecBrkEmu    = 0xFFFE // same cell as IRQ in emulation mode
	vecAbortNative = 0xFFE8
	vecAbortEmu    = 0xFFF8
	vecNmiNative = 0xFFEA
	vecNmiEmu    = 0xFFFA
	vecIrqNative = 0xFFEE
	vecIrqEmu    = 0xFFFE
)

// vecIRQEmuNative and vecNMIEmuNative give SetVectorSource's closures the
// architectural vector address for the CPU's current mode, before any
// co-processor redirection is applied.
func vecIRQEmuNative(c *CPU) uint32 {
	if c.reg.E {
		return vecIrqEmu
	}
	return vecIrqNative
}

func vecNMIEmuNative(c *CPU) uint32 {
	if c.reg.E {
		return vecNmiEmu
	}
	return vecNmiNative
}

// chargeInterruptEntry charges the cycle cost NMI/IRQ entry pays before
// BRK/COP ever would: since no opcode is actually fetched for an
// asynchronous interrupt, hardware still drives the last-fetched opcode's
// bus speed for one cycle, plus one CPU-internal cycle, before the
// PB/PC/P push sequence begins (§4.4 point 1).
func (c *CPU) chargeInterruptEntry() {
	c.Cycles += c.MemSpeed
	c.internalCycle()
}

// enterInterrupt performs the shared exception-entry sequence (§4.4):
// push PB (native only), push the return PC, push P with the B bit
// forced to match breakFlag (only meaningful in emulation mode), set I,
// clear D, and load PC/PB from the already-resolved vector address.
func (c *CPU) enterInterrupt(retPC uint16, vecAddr uint32, breakFlag bool) {
	if !c.reg.E {
		c.pushByte(c.reg.PB)
	}
	c.pushWord(retPC)

	p := c.reg.packP()
	if c.reg.E {
		if breakFlag {
			p |= flagX
		} else {
			p &^= flagX
		}
	}
	c.pushByte(p)

	c.reg.FlagI = true
	c.reg.FlagD = false

	lo := c.readByte(vecAddr)
	hi := c.readByte(vecAddr + 1)
	c.reg.PC = uint16(hi)<<8 | uint16(lo)
	c.reg.setPB(0)
	if c.reg.PC == 0 {
		c.logf("[w65c816] zero interrupt vector at %#06x (return PC %#04x)", vecAddr, retPC)
	}

	c.flags |= flagsInInterrupt
	c.waiting = false
	c.waitingForInterrupt = false
}

// checkInterrupts services one pending NMI or IRQ if present, honoring
// priority (NMI over IRQ) and the I flag for IRQ. Returns true if an
// interrupt was serviced, in which case Step should not also dispatch an
// instruction this call.
func (c *CPU) checkInterrupts() bool {
	if c.flags&flagsNMIPending != 0 {
		c.flags &^= flagsNMIPending
		vec := vecNMIEmuNative(c)
		if c.nmiVector != nil {
			if redirected, ok := c.nmiVector(c); ok {
				vec = redirected
			}
		}
		c.chargeInterruptEntry()
		c.enterInterrupt(c.reg.PC, vec, false)
		return true
	}

	if c.flags&flagsIRQPending != 0 && !c.reg.FlagI {
		vec := vecIRQEmuNative(c)
		if c.irqVector != nil {
			if redirected, ok := c.irqVector(c); ok {
				vec = redirected
			}
		}
		c.chargeInterruptEntry()
		c.enterInterrupt(c.reg.PC, vec, false)
		return true
	}

	return false
}
