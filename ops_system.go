package w65c816

// registerSystem installs BRK, COP, WAI, STP, NOP, XBA, and -- when
// Options.EnableSpeedHack is set -- the third-party speed-hack trampoline
// on STP ($DB) and the alternate COP encoding ($42, architecturally WDM)
// (§4.3, §9 Design notes).
func registerSystem(c *CPU, tbl *[256]opFunc, w widths) {
	tbl[0x00] = func(c *CPU) {
		c.fetchOperandByte() // signature byte, architecturally unused
		vec := uint32(vecBrkNative)
		if c.reg.E {
			vec = vecBrkEmu
		}
		c.enterInterrupt(c.reg.PC, vec, true)
	}

	tbl[0xEA] = func(c *CPU) {
		c.internalCycle()
	}

	tbl[0xEB] = func(c *CPU) {
		c.internalCycles(2)
		al := uint8(c.reg.A)
		ah := uint8(c.reg.A >> 8)
		c.reg.A = uint16(al)<<8 | uint16(ah)
		c.reg.setFlagsNZ(uint32(ah), Size8)
	}

	tbl[0xCB] = func(c *CPU) {
		c.internalCycles(2)
		c.invalidateLoopProbe()
		c.waiting = true
		c.waitingForInterrupt = true
	}

	tbl[0x02] = func(c *CPU) {
		c.fetchOperandByte()
		vec := uint32(vecCopNative)
		if c.reg.E {
			vec = vecCopEmu
		}
		c.enterInterrupt(c.reg.PC, vec, false)
	}

	if c.opts.EnableSpeedHack {
		tbl[0xDB] = speedHackTrampoline()
		tbl[0x42] = speedHackTrampoline()
	} else {
		tbl[0xDB] = func(c *CPU) {
			c.internalCycles(2)
			c.stopped = true
		}
		tbl[0x42] = func(c *CPU) {
			c.fetchOperandByte() // WDM: reserved 2-byte opcode, architecturally a NOP
			c.internalCycle()
		}
	}
}

// speedHackTrampoline consumes the opcode's operand byte and invokes the
// configured hook in place of the opcode's architectural effect. With no
// hook installed it degrades to consuming the byte and doing nothing
// further. For $42 that matches the default WDM handling; for $DB it
// replaces STP's halt, so the CPU keeps running and the operand byte is
// consumed.
func speedHackTrampoline() opFunc {
	return func(c *CPU) {
		code := c.fetchOperandByte()
		c.internalCycle()
		if c.opts.SpeedHackHook != nil {
			c.opts.SpeedHackHook(c, code)
		}
	}
}
