package w65c816

// registerJump installs JMP/JML/JSR/JSL and their returns RTS/RTL/RTI
// (§4.3). None of these depend on the accumulator/index widths, but
// registerJump still takes w so buildTables can call every registerXxx
// uniformly.
func registerJump(tbl *[256]opFunc, w widths) {
	tbl[0x4C] = func(c *CPU) {
		c.reg.PC = c.fetchOperandWord()
	}
	tbl[0x6C] = func(c *CPU) {
		e := c.eaAbsoluteIndirect()
		c.reg.PC = uint16(e.address())
	}
	tbl[0x7C] = func(c *CPU) {
		a16 := c.fetchOperandWord()
		c.internalCycle()
		ptrAddr := c.reg.ShiftedPB | uint32(uint16(a16+c.reg.X))
		ptr := c.readWord(ptrAddr, WrapBank)
		c.reg.PC = ptr
	}
	tbl[0x5C] = func(c *CPU) {
		al24 := c.fetchOperandLong()
		c.reg.setPB(uint8(al24 >> 16))
		c.reg.PC = uint16(al24)
	}
	tbl[0xDC] = func(c *CPU) {
		e := c.eaAbsoluteIndirectLong()
		addr := e.address()
		c.reg.setPB(uint8(addr >> 16))
		c.reg.PC = uint16(addr)
	}

	tbl[0x20] = func(c *CPU) {
		a16 := c.fetchOperandWord()
		c.internalCycle()
		c.pushWord(c.reg.PC - 1)
		c.reg.PC = a16
	}
	tbl[0x22] = func(c *CPU) {
		al24 := c.fetchOperandLong()
		c.internalCycle()
		c.pushByte(c.reg.PB)
		c.pushWord(c.reg.PC - 1)
		c.reg.setPB(uint8(al24 >> 16))
		c.reg.PC = uint16(al24)
	}
	tbl[0xFC] = func(c *CPU) {
		a16 := c.fetchOperandWord()
		c.internalCycle()
		c.pushWord(c.reg.PC - 1)
		ptrAddr := c.reg.ShiftedPB | uint32(uint16(a16+c.reg.X))
		ptr := c.readWord(ptrAddr, WrapBank)
		c.reg.PC = ptr
	}

	tbl[0x60] = func(c *CPU) {
		c.internalCycles(2)
		ret := c.popWord()
		c.internalCycle()
		c.reg.PC = ret + 1
	}
	tbl[0x6B] = func(c *CPU) {
		c.internalCycles(2)
		ret := c.popWord()
		pb := c.popByte()
		c.reg.PC = ret + 1
		c.reg.setPB(pb)
	}
	tbl[0x40] = func(c *CPU) {
		c.internalCycles(2)
		c.reg.unpackP(c.popByte())
		c.reg.PC = c.popWord()
		if !c.reg.E {
			c.reg.setPB(c.popByte())
		}
		c.flags &^= flagsInInterrupt
	}
}
