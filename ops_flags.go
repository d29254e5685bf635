package w65c816

// registerFlags installs the single-flag set/clear instructions, REP/SEP
// and XCE (§4.3). None of these vary by table width.
func registerFlags(tbl *[256]opFunc, w widths) {
	setFlag := func(set func(r *Registers, v bool)) opFunc {
		return func(c *CPU) {
			c.internalCycle()
			set(&c.reg, true)
		}
	}
	clearFlag := func(set func(r *Registers, v bool)) opFunc {
		return func(c *CPU) {
			c.internalCycle()
			set(&c.reg, false)
		}
	}

	setC := func(r *Registers, v bool) { r.FlagC = v }
	setI := func(r *Registers, v bool) { r.FlagI = v }
	setD := func(r *Registers, v bool) { r.FlagD = v }
	setV := func(r *Registers, v bool) { r.FlagV = v }

	tbl[0x18] = clearFlag(setC)
	tbl[0x38] = setFlag(setC)
	tbl[0x58] = clearFlag(setI)
	tbl[0x78] = setFlag(setI)
	tbl[0xD8] = clearFlag(setD)
	tbl[0xF8] = setFlag(setD)
	tbl[0xB8] = clearFlag(setV)

	tbl[0xC2] = func(c *CPU) {
		mask := c.fetchOperandByte()
		c.internalCycle()
		c.reg.unpackP(c.reg.packP() &^ mask)
	}
	tbl[0xE2] = func(c *CPU) {
		mask := c.fetchOperandByte()
		c.internalCycle()
		c.reg.unpackP(c.reg.packP() | mask)
	}

	tbl[0xFB] = func(c *CPU) {
		c.internalCycle()
		old := c.reg.E
		c.reg.E = c.reg.FlagC
		c.reg.FlagC = old
		if c.reg.E {
			c.reg.enterEmulation()
		}
	}
}
