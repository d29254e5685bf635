package w65c816

// decimalAddByte performs one byte of BCD addition per the standard 6502-
// family decimal-mode algorithm (Bruce Clark's "Decimal Mode" derivation),
// which the 65C816, as a CMOS part, applies exactly rather than the NMOS
// 6502's well-known decimal-flag quirks.
func decimalAddByte(a, b uint8, carryIn bool) (uint8, bool) {
	cin := uint16(0)
	if carryIn {
		cin = 1
	}
	al := uint16(a&0x0F) + uint16(b&0x0F) + cin
	if al >= 0x0A {
		al = ((al + 0x06) & 0x0F) + 0x10
	}
	sum := uint16(a&0xF0) + uint16(b&0xF0) + al
	if sum >= 0xA0 {
		sum += 0x60
	}
	return uint8(sum), sum >= 0x100
}

// decimalSubByte performs one byte of BCD subtraction, carry propagating
// as the no-borrow bit (carryIn=true means no incoming borrow), matching
// decimalAddByte's convention.
func decimalSubByte(a, b uint8, carryIn bool) (uint8, bool) {
	cin := 0
	if carryIn {
		cin = 1
	}
	borrowIn := 1 - cin
	full := int(a) - int(b) - borrowIn
	al := int(a&0x0F) - int(b&0x0F) - borrowIn
	if al < 0 {
		al = ((al - 0x06) & 0x0F) - 0x10
	}
	digits := int(a&0xF0) - int(b&0xF0) + al
	if digits < 0 {
		digits -= 0x60
	}
	return uint8(digits), full >= 0
}

// decimalAdd/decimalSub extend the byte algorithm to 16-bit operands by
// chaining the carry/borrow from the low byte into the high byte, which is
// how the 65816 actually performs a 16-bit decimal add: two 8-bit BCD
// adders in series, not a native 4-digit unit.
func decimalAdd(a, b uint32, carryIn bool, sz Size) (uint32, bool) {
	resLo, mid := decimalAddByte(uint8(a), uint8(b), carryIn)
	if sz == Size8 {
		return uint32(resLo), mid
	}
	resHi, out := decimalAddByte(uint8(a>>8), uint8(b>>8), mid)
	return uint32(resHi)<<8 | uint32(resLo), out
}

func decimalSub(a, b uint32, carryIn bool, sz Size) (uint32, bool) {
	resLo, mid := decimalSubByte(uint8(a), uint8(b), carryIn)
	if sz == Size8 {
		return uint32(resLo), mid
	}
	resHi, out := decimalSubByte(uint8(a>>8), uint8(b>>8), mid)
	return uint32(resHi)<<8 | uint32(resLo), out
}

// adc adds val plus carry into A, honoring the decimal flag. On the CMOS
// 65C816, C/V/Z/N all reflect the decimal-corrected result in decimal
// mode -- unlike the NMOS 6502's documented decimal-mode flag bugs.
func (c *CPU) adc(val uint32, sz Size) {
	a := uint32(c.reg.A) & sz.Mask()
	val &= sz.Mask()
	carryIn := c.reg.FlagC

	var result uint32
	var carryOut bool
	if c.reg.FlagD {
		result, carryOut = decimalAdd(a, val, carryIn, sz)
	} else {
		sum := a + val
		if carryIn {
			sum++
		}
		carryOut = sum > sz.Mask()
		result = sum & sz.Mask()
	}

	c.reg.FlagV = (^(a^val) & (a^result) & sz.MSB()) != 0
	c.reg.FlagC = carryOut
	c.reg.setFlagsNZ(result, sz)
	c.reg.A = uint16((uint32(c.reg.A) &^ sz.Mask()) | result)
}

// sbc subtracts val and the borrow (inverse of carry) from A.
func (c *CPU) sbc(val uint32, sz Size) {
	a := uint32(c.reg.A) & sz.Mask()
	val &= sz.Mask()
	carryIn := c.reg.FlagC

	var result uint32
	var carryOut bool
	if c.reg.FlagD {
		result, carryOut = decimalSub(a, val, carryIn, sz)
	} else {
		// A binary SBC is an ADC against the one's complement of the
		// operand: the 6502 family's subtractor is the same adder run
		// with the second input inverted.
		inv := (^val) & sz.Mask()
		sum := a + inv
		if carryIn {
			sum++
		}
		carryOut = sum > sz.Mask()
		result = sum & sz.Mask()
		c.reg.FlagV = (^(a^inv) & (a^result) & sz.MSB()) != 0
		c.reg.FlagC = carryOut
		c.reg.setFlagsNZ(result, sz)
		c.reg.A = uint16((uint32(c.reg.A) &^ sz.Mask()) | result)
		return
	}

	c.reg.FlagV = ((a^val)&(a^result)&sz.MSB()) != 0
	c.reg.FlagC = carryOut
	c.reg.setFlagsNZ(result, sz)
	c.reg.A = uint16((uint32(c.reg.A) &^ sz.Mask()) | result)
}

// registerArith installs ADC and SBC across every addressing mode that
// reaches the accumulator (§4.3).
func registerArith(tbl *[256]opFunc, w widths) {
	adc := func(c *CPU, val uint32, sz Size) { c.adc(val, sz) }
	sbc := func(c *CPU, val uint32, sz Size) { c.sbc(val, sz) }

	tbl[0x69] = buildReadOp(amImmediate, classA, adc)(w)
	tbl[0x6D] = buildReadOp(amAbsolute, classA, adc)(w)
	tbl[0x6F] = buildReadOp(amAbsoluteLong, classA, adc)(w)
	tbl[0x65] = buildReadOp(amDirect, classA, adc)(w)
	tbl[0x72] = buildReadOp(amDirectIndirect, classA, adc)(w)
	tbl[0x67] = buildReadOp(amDirectIndirectLong, classA, adc)(w)
	tbl[0x7D] = buildReadOp(amAbsoluteX, classA, adc)(w)
	tbl[0x7F] = buildReadOp(amAbsoluteLongX, classA, adc)(w)
	tbl[0x79] = buildReadOp(amAbsoluteY, classA, adc)(w)
	tbl[0x75] = buildReadOp(amDirectX, classA, adc)(w)
	tbl[0x61] = buildReadOp(amDirectIndexedIndirect, classA, adc)(w)
	tbl[0x71] = buildReadOp(amDirectIndirectIndexed, classA, adc)(w)
	tbl[0x77] = buildReadOp(amDirectIndirectIndexedLong, classA, adc)(w)
	tbl[0x63] = buildReadOp(amStackRel, classA, adc)(w)
	tbl[0x73] = buildReadOp(amStackRelIndirectIndexed, classA, adc)(w)

	tbl[0xE9] = buildReadOp(amImmediate, classA, sbc)(w)
	tbl[0xED] = buildReadOp(amAbsolute, classA, sbc)(w)
	tbl[0xEF] = buildReadOp(amAbsoluteLong, classA, sbc)(w)
	tbl[0xE5] = buildReadOp(amDirect, classA, sbc)(w)
	tbl[0xF2] = buildReadOp(amDirectIndirect, classA, sbc)(w)
	tbl[0xE7] = buildReadOp(amDirectIndirectLong, classA, sbc)(w)
	tbl[0xFD] = buildReadOp(amAbsoluteX, classA, sbc)(w)
	tbl[0xFF] = buildReadOp(amAbsoluteLongX, classA, sbc)(w)
	tbl[0xF9] = buildReadOp(amAbsoluteY, classA, sbc)(w)
	tbl[0xF5] = buildReadOp(amDirectX, classA, sbc)(w)
	tbl[0xE1] = buildReadOp(amDirectIndexedIndirect, classA, sbc)(w)
	tbl[0xF1] = buildReadOp(amDirectIndirectIndexed, classA, sbc)(w)
	tbl[0xF7] = buildReadOp(amDirectIndirectIndexedLong, classA, sbc)(w)
	tbl[0xE3] = buildReadOp(amStackRel, classA, sbc)(w)
	tbl[0xF3] = buildReadOp(amStackRelIndirectIndexed, classA, sbc)(w)
}
