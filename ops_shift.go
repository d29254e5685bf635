package w65c816

// registerShift installs ASL, LSR, ROL, ROR, and the two read-modify-write
// bit-test instructions TRB/TSB that share their addressing-mode shape
// (§4.3).
func registerShift(tbl *[256]opFunc, w widths) {
	asl := func(c *CPU, val uint32, sz Size) uint32 {
		c.reg.FlagC = val&sz.MSB() != 0
		result := (val << 1) & sz.Mask()
		c.reg.setFlagsNZ(result, sz)
		return result
	}
	lsr := func(c *CPU, val uint32, sz Size) uint32 {
		c.reg.FlagC = val&1 != 0
		result := (val & sz.Mask()) >> 1
		c.reg.setFlagsNZ(result, sz)
		return result
	}
	rol := func(c *CPU, val uint32, sz Size) uint32 {
		carryIn := uint32(0)
		if c.reg.FlagC {
			carryIn = 1
		}
		c.reg.FlagC = val&sz.MSB() != 0
		result := ((val << 1) | carryIn) & sz.Mask()
		c.reg.setFlagsNZ(result, sz)
		return result
	}
	ror := func(c *CPU, val uint32, sz Size) uint32 {
		carryIn := uint32(0)
		if c.reg.FlagC {
			carryIn = sz.MSB()
		}
		c.reg.FlagC = val&1 != 0
		result := ((val & sz.Mask()) >> 1) | carryIn
		c.reg.setFlagsNZ(result, sz)
		return result
	}
	trb := func(c *CPU, val uint32, sz Size) uint32 {
		a := uint32(c.reg.A) & sz.Mask()
		c.reg.FlagZ = a&val == 0
		return val &^ a
	}
	tsb := func(c *CPU, val uint32, sz Size) uint32 {
		a := uint32(c.reg.A) & sz.Mask()
		c.reg.FlagZ = a&val == 0
		return val | a
	}

	tbl[0x0A] = buildModifyOp(amAccumulator, classA, asl)(w)
	tbl[0x06] = buildModifyOp(amDirect, classA, asl)(w)
	tbl[0x16] = buildModifyOp(amDirectX, classA, asl)(w)
	tbl[0x0E] = buildModifyOp(amAbsolute, classA, asl)(w)
	tbl[0x1E] = buildModifyOp(amAbsoluteX, classA, asl)(w)

	tbl[0x4A] = buildModifyOp(amAccumulator, classA, lsr)(w)
	tbl[0x46] = buildModifyOp(amDirect, classA, lsr)(w)
	tbl[0x56] = buildModifyOp(amDirectX, classA, lsr)(w)
	tbl[0x4E] = buildModifyOp(amAbsolute, classA, lsr)(w)
	tbl[0x5E] = buildModifyOp(amAbsoluteX, classA, lsr)(w)

	tbl[0x2A] = buildModifyOp(amAccumulator, classA, rol)(w)
	tbl[0x26] = buildModifyOp(amDirect, classA, rol)(w)
	tbl[0x36] = buildModifyOp(amDirectX, classA, rol)(w)
	tbl[0x2E] = buildModifyOp(amAbsolute, classA, rol)(w)
	tbl[0x3E] = buildModifyOp(amAbsoluteX, classA, rol)(w)

	tbl[0x6A] = buildModifyOp(amAccumulator, classA, ror)(w)
	tbl[0x66] = buildModifyOp(amDirect, classA, ror)(w)
	tbl[0x76] = buildModifyOp(amDirectX, classA, ror)(w)
	tbl[0x6E] = buildModifyOp(amAbsolute, classA, ror)(w)
	tbl[0x7E] = buildModifyOp(amAbsoluteX, classA, ror)(w)

	tbl[0x14] = buildModifyOp(amDirect, classA, trb)(w)
	tbl[0x1C] = buildModifyOp(amAbsolute, classA, trb)(w)
	tbl[0x04] = buildModifyOp(amDirect, classA, tsb)(w)
	tbl[0x0C] = buildModifyOp(amAbsolute, classA, tsb)(w)
}
