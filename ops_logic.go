package w65c816

// registerLogic installs AND, ORA, EOR and BIT (§4.3).
func registerLogic(tbl *[256]opFunc, w widths) {
	and := func(c *CPU, val uint32, sz Size) {
		c.reg.A = uint16((uint32(c.reg.A) &^ sz.Mask()) | ((uint32(c.reg.A) & val) & sz.Mask()))
		c.reg.setFlagsNZ(uint32(c.reg.A), sz)
	}
	ora := func(c *CPU, val uint32, sz Size) {
		c.reg.A = uint16((uint32(c.reg.A) &^ sz.Mask()) | ((uint32(c.reg.A) | val) & sz.Mask()))
		c.reg.setFlagsNZ(uint32(c.reg.A), sz)
	}
	eor := func(c *CPU, val uint32, sz Size) {
		c.reg.A = uint16((uint32(c.reg.A) &^ sz.Mask()) | ((uint32(c.reg.A) ^ val) & sz.Mask()))
		c.reg.setFlagsNZ(uint32(c.reg.A), sz)
	}
	bitMem := func(c *CPU, val uint32, sz Size) {
		c.reg.FlagZ = uint32(c.reg.A)&sz.Mask()&val == 0
		c.reg.FlagN = val&sz.MSB() != 0
		c.reg.FlagV = val&(sz.MSB()>>1) != 0
	}
	bitImm := func(c *CPU, val uint32, sz Size) {
		c.reg.FlagZ = uint32(c.reg.A)&sz.Mask()&val == 0
	}

	tbl[0x29] = buildReadOp(amImmediate, classA, and)(w)
	tbl[0x2D] = buildReadOp(amAbsolute, classA, and)(w)
	tbl[0x2F] = buildReadOp(amAbsoluteLong, classA, and)(w)
	tbl[0x25] = buildReadOp(amDirect, classA, and)(w)
	tbl[0x32] = buildReadOp(amDirectIndirect, classA, and)(w)
	tbl[0x27] = buildReadOp(amDirectIndirectLong, classA, and)(w)
	tbl[0x3D] = buildReadOp(amAbsoluteX, classA, and)(w)
	tbl[0x3F] = buildReadOp(amAbsoluteLongX, classA, and)(w)
	tbl[0x39] = buildReadOp(amAbsoluteY, classA, and)(w)
	tbl[0x35] = buildReadOp(amDirectX, classA, and)(w)
	tbl[0x21] = buildReadOp(amDirectIndexedIndirect, classA, and)(w)
	tbl[0x31] = buildReadOp(amDirectIndirectIndexed, classA, and)(w)
	tbl[0x37] = buildReadOp(amDirectIndirectIndexedLong, classA, and)(w)
	tbl[0x23] = buildReadOp(amStackRel, classA, and)(w)
	tbl[0x33] = buildReadOp(amStackRelIndirectIndexed, classA, and)(w)

	tbl[0x09] = buildReadOp(amImmediate, classA, ora)(w)
	tbl[0x0D] = buildReadOp(amAbsolute, classA, ora)(w)
	tbl[0x0F] = buildReadOp(amAbsoluteLong, classA, ora)(w)
	tbl[0x05] = buildReadOp(amDirect, classA, ora)(w)
	tbl[0x12] = buildReadOp(amDirectIndirect, classA, ora)(w)
	tbl[0x07] = buildReadOp(amDirectIndirectLong, classA, ora)(w)
	tbl[0x1D] = buildReadOp(amAbsoluteX, classA, ora)(w)
	tbl[0x1F] = buildReadOp(amAbsoluteLongX, classA, ora)(w)
	tbl[0x19] = buildReadOp(amAbsoluteY, classA, ora)(w)
	tbl[0x15] = buildReadOp(amDirectX, classA, ora)(w)
	tbl[0x01] = buildReadOp(amDirectIndexedIndirect, classA, ora)(w)
	tbl[0x11] = buildReadOp(amDirectIndirectIndexed, classA, ora)(w)
	tbl[0x17] = buildReadOp(amDirectIndirectIndexedLong, classA, ora)(w)
	tbl[0x03] = buildReadOp(amStackRel, classA, ora)(w)
	tbl[0x13] = buildReadOp(amStackRelIndirectIndexed, classA, ora)(w)

	tbl[0x49] = buildReadOp(amImmediate, classA, eor)(w)
	tbl[0x4D] = buildReadOp(amAbsolute, classA, eor)(w)
	tbl[0x4F] = buildReadOp(amAbsoluteLong, classA, eor)(w)
	tbl[0x45] = buildReadOp(amDirect, classA, eor)(w)
	tbl[0x52] = buildReadOp(amDirectIndirect, classA, eor)(w)
	tbl[0x47] = buildReadOp(amDirectIndirectLong, classA, eor)(w)
	tbl[0x5D] = buildReadOp(amAbsoluteX, classA, eor)(w)
	tbl[0x5F] = buildReadOp(amAbsoluteLongX, classA, eor)(w)
	tbl[0x59] = buildReadOp(amAbsoluteY, classA, eor)(w)
	tbl[0x55] = buildReadOp(amDirectX, classA, eor)(w)
	tbl[0x41] = buildReadOp(amDirectIndexedIndirect, classA, eor)(w)
	tbl[0x51] = buildReadOp(amDirectIndirectIndexed, classA, eor)(w)
	tbl[0x57] = buildReadOp(amDirectIndirectIndexedLong, classA, eor)(w)
	tbl[0x43] = buildReadOp(amStackRel, classA, eor)(w)
	tbl[0x53] = buildReadOp(amStackRelIndirectIndexed, classA, eor)(w)

	tbl[0x89] = buildReadOp(amImmediate, classA, bitImm)(w)
	tbl[0x2C] = buildReadOp(amAbsolute, classA, bitMem)(w)
	tbl[0x24] = buildReadOp(amDirect, classA, bitMem)(w)
	tbl[0x3C] = buildReadOp(amAbsoluteX, classA, bitMem)(w)
	tbl[0x34] = buildReadOp(amDirectX, classA, bitMem)(w)
}
