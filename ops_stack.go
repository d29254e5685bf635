package w65c816

// pushSized pushes val onto the stack as 1 or 2 bytes depending on sz.
func (c *CPU) pushSized(val uint32, sz Size) {
	if sz == Size8 {
		c.pushByte(uint8(val))
		return
	}
	c.pushWord(uint16(val))
}

// pullSized pulls 1 or 2 bytes from the stack depending on sz.
func (c *CPU) pullSized(sz Size) uint32 {
	if sz == Size8 {
		return uint32(c.popByte())
	}
	return uint32(c.popWord())
}

// registerStack installs the push/pull family and PEA/PEI/PER (§4.3).
func registerStack(tbl *[256]opFunc, w widths) {
	tbl[0x48] = pushReg(func(c *CPU) uint32 { return uint32(c.reg.A) }, w.szA)
	tbl[0x68] = pullReg(func(c *CPU, v uint32, sz Size) {
		mask := sz.Mask()
		c.reg.A = uint16((uint32(c.reg.A) &^ mask) | (v & mask))
		c.reg.setFlagsNZ(v, sz)
	}, w.szA)

	tbl[0xDA] = pushReg(func(c *CPU) uint32 { return uint32(c.reg.X) }, w.szX)
	tbl[0xFA] = pullReg(func(c *CPU, v uint32, sz Size) {
		c.reg.X = uint16(v & sz.Mask())
		c.reg.setFlagsNZ(v, sz)
	}, w.szX)

	tbl[0x5A] = pushReg(func(c *CPU) uint32 { return uint32(c.reg.Y) }, w.szX)
	tbl[0x7A] = pullReg(func(c *CPU, v uint32, sz Size) {
		c.reg.Y = uint16(v & sz.Mask())
		c.reg.setFlagsNZ(v, sz)
	}, w.szX)

	tbl[0x8B] = pushReg(func(c *CPU) uint32 { return uint32(c.reg.DB) }, sizeOf(Size8))
	tbl[0xAB] = pullReg(func(c *CPU, v uint32, sz Size) {
		c.reg.setDB(uint8(v))
		c.reg.setFlagsNZ(v, sz)
	}, sizeOf(Size8))

	tbl[0x0B] = pushReg(func(c *CPU) uint32 { return uint32(c.reg.D) }, sizeOf(Size16))
	tbl[0x2B] = pullReg(func(c *CPU, v uint32, sz Size) {
		c.reg.D = uint16(v)
		c.reg.setFlagsNZ(v, sz)
	}, sizeOf(Size16))

	tbl[0x4B] = pushReg(func(c *CPU) uint32 { return uint32(c.reg.PB) }, sizeOf(Size8))

	tbl[0x08] = func(c *CPU) {
		c.internalCycle()
		c.pushByte(c.reg.packP())
	}
	tbl[0x28] = func(c *CPU) {
		c.internalCycles(2)
		c.reg.unpackP(c.popByte())
	}

	tbl[0xF4] = func(c *CPU) {
		a16 := c.fetchOperandWord()
		c.pushWord(a16)
	}
	tbl[0xD4] = func(c *CPU) {
		d8 := uint32(c.fetchOperandByte())
		c.directPagePenalty()
		ptrAddr := (uint32(c.reg.D) + d8) & 0xFFFF
		ptr := c.readWord(ptrAddr, WrapBank)
		c.pushWord(ptr)
	}
	tbl[0x62] = func(c *CPU) {
		target := c.relativeLongTarget()
		c.internalCycle()
		c.pushWord(target)
	}
}

// pushReg builds a push handler: one internal cycle, then push the
// register's current value at the given width. szFn resolves the width
// per call so the slow table's handlers track live mode bits.
func pushReg(get func(c *CPU) uint32, szFn func(c *CPU) Size) opFunc {
	return func(c *CPU) {
		c.internalCycle()
		c.pushSized(get(c), szFn(c))
	}
}

// pullReg builds a pull handler: two internal cycles, then pull and hand
// the value and its width to set (which stores it and, where applicable,
// sets NZ).
func pullReg(set func(c *CPU, v uint32, sz Size), szFn func(c *CPU) Size) opFunc {
	return func(c *CPU) {
		c.internalCycles(2)
		sz := szFn(c)
		set(c, c.pullSized(sz), sz)
	}
}
