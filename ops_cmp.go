package w65c816

// registerCmp installs CMP, CPX and CPY (§4.3). All three share the same
// compare semantics; only the register compared and the addressing modes
// offered differ.
func registerCmp(tbl *[256]opFunc, w widths) {
	compare := func(reg func(c *CPU) uint32) readFn {
		return func(c *CPU, val uint32, sz Size) {
			a := reg(c) & sz.Mask()
			val &= sz.Mask()
			c.reg.FlagC = a >= val
			c.reg.setFlagsNZ((a-val)&sz.Mask(), sz)
		}
	}
	cmp := compare(func(c *CPU) uint32 { return uint32(c.reg.A) })
	cpx := compare(func(c *CPU) uint32 { return uint32(c.reg.X) })
	cpy := compare(func(c *CPU) uint32 { return uint32(c.reg.Y) })

	tbl[0xC9] = buildReadOp(amImmediate, classA, cmp)(w)
	tbl[0xCD] = buildReadOp(amAbsolute, classA, cmp)(w)
	tbl[0xCF] = buildReadOp(amAbsoluteLong, classA, cmp)(w)
	tbl[0xC5] = buildReadOp(amDirect, classA, cmp)(w)
	tbl[0xD2] = buildReadOp(amDirectIndirect, classA, cmp)(w)
	tbl[0xC7] = buildReadOp(amDirectIndirectLong, classA, cmp)(w)
	tbl[0xDD] = buildReadOp(amAbsoluteX, classA, cmp)(w)
	tbl[0xDF] = buildReadOp(amAbsoluteLongX, classA, cmp)(w)
	tbl[0xD9] = buildReadOp(amAbsoluteY, classA, cmp)(w)
	tbl[0xD5] = buildReadOp(amDirectX, classA, cmp)(w)
	tbl[0xC1] = buildReadOp(amDirectIndexedIndirect, classA, cmp)(w)
	tbl[0xD1] = buildReadOp(amDirectIndirectIndexed, classA, cmp)(w)
	tbl[0xD7] = buildReadOp(amDirectIndirectIndexedLong, classA, cmp)(w)
	tbl[0xC3] = buildReadOp(amStackRel, classA, cmp)(w)
	tbl[0xD3] = buildReadOp(amStackRelIndirectIndexed, classA, cmp)(w)

	tbl[0xE0] = buildReadOp(amImmediate, classX, cpx)(w)
	tbl[0xEC] = buildReadOp(amAbsolute, classX, cpx)(w)
	tbl[0xE4] = buildReadOp(amDirect, classX, cpx)(w)

	tbl[0xC0] = buildReadOp(amImmediate, classX, cpy)(w)
	tbl[0xCC] = buildReadOp(amAbsolute, classX, cpy)(w)
	tbl[0xC4] = buildReadOp(amDirect, classX, cpy)(w)
}
