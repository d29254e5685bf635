package w65c816

// registerIncDec installs INC/DEC (memory and accumulator forms) and
// INX/DEX/INY/DEY (§4.3).
func registerIncDec(tbl *[256]opFunc, w widths) {
	inc := func(c *CPU, val uint32, sz Size) uint32 {
		c.invalidateLoopProbe()
		result := (val + 1) & sz.Mask()
		c.reg.setFlagsNZ(result, sz)
		return result
	}
	dec := func(c *CPU, val uint32, sz Size) uint32 {
		c.invalidateLoopProbe()
		result := (val - 1) & sz.Mask()
		c.reg.setFlagsNZ(result, sz)
		return result
	}

	tbl[0x1A] = buildModifyOp(amAccumulator, classA, inc)(w)
	tbl[0xE6] = buildModifyOp(amDirect, classA, inc)(w)
	tbl[0xF6] = buildModifyOp(amDirectX, classA, inc)(w)
	tbl[0xEE] = buildModifyOp(amAbsolute, classA, inc)(w)
	tbl[0xFE] = buildModifyOp(amAbsoluteX, classA, inc)(w)

	tbl[0x3A] = buildModifyOp(amAccumulator, classA, dec)(w)
	tbl[0xC6] = buildModifyOp(amDirect, classA, dec)(w)
	tbl[0xD6] = buildModifyOp(amDirectX, classA, dec)(w)
	tbl[0xCE] = buildModifyOp(amAbsolute, classA, dec)(w)
	tbl[0xDE] = buildModifyOp(amAbsoluteX, classA, dec)(w)

	tbl[0xE8] = regStep(w.szX, 1, func(c *CPU) uint16 { return c.reg.X }, func(c *CPU, v uint16) { c.reg.X = v })
	tbl[0xCA] = regStep(w.szX, -1, func(c *CPU) uint16 { return c.reg.X }, func(c *CPU, v uint16) { c.reg.X = v })
	tbl[0xC8] = regStep(w.szX, 1, func(c *CPU) uint16 { return c.reg.Y }, func(c *CPU, v uint16) { c.reg.Y = v })
	tbl[0x88] = regStep(w.szX, -1, func(c *CPU) uint16 { return c.reg.Y }, func(c *CPU, v uint16) { c.reg.Y = v })
}

// regStep builds an implied-addressing register increment/decrement: one
// internal cycle, width-masked wraparound, NZ set from the new value.
// szFn resolves the operand width per call so the slow table's handlers
// can re-derive it from live mode bits instead of a value baked in at
// table-build time.
func regStep(szFn func(c *CPU) Size, delta int32, get func(c *CPU) uint16, set func(c *CPU, v uint16)) opFunc {
	return func(c *CPU) {
		c.invalidateLoopProbe()
		c.internalCycle()
		sz := szFn(c)
		val := (uint32(int32(get(c)) + delta)) & sz.Mask()
		set(c, uint16(val))
		c.reg.setFlagsNZ(val, sz)
	}
}
