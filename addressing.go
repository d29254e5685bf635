package w65c816

// eaKind distinguishes the three operand shapes a resolved effective
// address can take (§4.2).
type eaKind uint8

const (
	eaMemory eaKind = iota
	eaImmediate
	eaAccumulator
)

// ea is a resolved effective-address operand: a pure value returned by an
// addressing-mode resolver, consumed by the opcode handler that invoked it.
type ea struct {
	kind eaKind
	addr uint32
	imm  uint32
}

// read returns the operand's value at the given width.
func (e ea) read(c *CPU, sz Size) uint32 {
	switch e.kind {
	case eaAccumulator:
		return uint32(c.reg.A) & sz.Mask()
	case eaImmediate:
		return e.imm & sz.Mask()
	default:
		if sz == Size8 {
			return uint32(c.readByte(e.addr))
		}
		return uint32(c.readWord(e.addr, WrapNone))
	}
}

// write stores a value to the operand. Accumulator writes preserve the
// untouched half on 8-bit operations (AH is left alone by an 8-bit ASL A).
func (e ea) write(c *CPU, sz Size, val uint32) {
	switch e.kind {
	case eaAccumulator:
		mask := uint32(sz.Mask())
		c.reg.A = uint16((uint32(c.reg.A) &^ mask) | (val & mask))
	default:
		if sz == Size8 {
			c.writeByte(uint8(val), e.addr)
		} else {
			c.writeWord(uint16(val), e.addr, WrapNone, OrderLowFirst)
		}
	}
}

// address returns the resolved memory address (valid only for eaMemory).
func (e ea) address() uint32 {
	return e.addr
}

// access distinguishes the bus-traffic shape of an instruction for the
// purpose of read-modify-write internal-cycle accounting (§4.2).
type access uint8

const (
	accessRead   access = iota // operand is only read (ADC, AND, LDA, CMP, ...)
	accessWrite                // operand is only written (STA, STX, STY, STZ)
	accessModify               // operand is read, modified, and written back (ASL, INC, ...)
)

// directPagePenalty charges the extra cycle direct-page addressing incurs
// whenever D's low byte is non-zero (§4.2).
func (c *CPU) directPagePenalty() {
	if c.reg.D&0xFF != 0 {
		c.Cycles++
	}
}

// indexPenalty charges the extra cycle for indexed absolute/direct-
// indirect-indexed addressing. Real hardware always pays the cycle in
// 16-bit index mode (X=0) and in any write/modify access; in 8-bit index
// mode (X=1) a read-only access pays it only when the index addition
// crosses a page boundary. (spec.md's table and prose disagree on the
// exact condition under X — see DESIGN.md for the resolution.)
func (c *CPU) indexPenalty(base, full uint32, acc access) {
	if acc != accessRead || !c.reg.ModeX || (base&0xFF00) != (full&0xFF00) {
		c.Cycles++
	}
}

// --- Direct-page family ---

// eaDirect resolves Direct addressing: D + d8, bank 0.
func (c *CPU) eaDirect() ea {
	d8 := uint32(c.fetchOperandByte())
	c.directPagePenalty()
	addr := (uint32(c.reg.D) + d8) & 0xFFFF
	return ea{addr: addr}
}

// directIndexedBase computes the D+d8+idx address, applying the
// emulation-mode page-wrap quirk when DL=0 (§4.2, §8 Boundaries).
func (c *CPU) directIndexedBase(idx uint16) uint32 {
	d8 := uint32(c.fetchOperandByte())
	c.directPagePenalty()
	if c.reg.E && c.reg.D&0xFF == 0 {
		lo := (d8 + uint32(idx)) & 0xFF
		return uint32(c.reg.D) + lo
	}
	return (uint32(c.reg.D) + d8 + uint32(idx)) & 0xFFFF
}

func (c *CPU) eaDirectIndexedX() ea {
	return ea{addr: c.directIndexedBase(c.reg.X)}
}

func (c *CPU) eaDirectIndexedY() ea {
	return ea{addr: c.directIndexedBase(c.reg.Y)}
}

// eaDirectIndirect resolves (d8): DB:mem16(D+d8).
func (c *CPU) eaDirectIndirect() ea {
	d8 := uint32(c.fetchOperandByte())
	c.directPagePenalty()
	ptrAddr := (uint32(c.reg.D) + d8) & 0xFFFF
	ptr := c.readWord(ptrAddr, WrapBank)
	return ea{addr: c.reg.ShiftedDB | uint32(ptr)}
}

// eaDirectIndexedIndirect resolves (d8,X): DB:mem16(D+d8+X).
func (c *CPU) eaDirectIndexedIndirect() ea {
	base := c.directIndexedBase(c.reg.X)
	ptr := c.readWord(base, WrapBank)
	return ea{addr: c.reg.ShiftedDB | uint32(ptr)}
}

// eaDirectIndirectIndexed resolves (d8),Y: DB:mem16(D+d8)+Y, with the
// indexed-access page-cross penalty.
func (c *CPU) eaDirectIndirectIndexed(acc access) ea {
	d8 := uint32(c.fetchOperandByte())
	c.directPagePenalty()
	ptrAddr := (uint32(c.reg.D) + d8) & 0xFFFF
	ptr := c.readWord(ptrAddr, WrapBank)
	base := c.reg.ShiftedDB | uint32(ptr)
	full := base + uint32(c.reg.Y)
	c.indexPenalty(base, full, acc)
	return ea{addr: full & 0xFFFFFF}
}

// eaDirectIndirectLong resolves [d8]: mem24(D+d8).
func (c *CPU) eaDirectIndirectLong() ea {
	d8 := uint32(c.fetchOperandByte())
	c.directPagePenalty()
	ptrAddr := (uint32(c.reg.D) + d8) & 0xFFFF
	return ea{addr: c.readLong(ptrAddr)}
}

// eaDirectIndirectIndexedLong resolves [d8],Y: mem24(D+d8)+Y.
func (c *CPU) eaDirectIndirectIndexedLong() ea {
	d8 := uint32(c.fetchOperandByte())
	c.directPagePenalty()
	ptrAddr := (uint32(c.reg.D) + d8) & 0xFFFF
	base := c.readLong(ptrAddr)
	return ea{addr: (base + uint32(c.reg.Y)) & 0xFFFFFF}
}

// --- Absolute family ---

// eaAbsolute resolves a16: DB:a16.
func (c *CPU) eaAbsolute() ea {
	a16 := c.fetchOperandWord()
	return ea{addr: c.reg.ShiftedDB | uint32(a16)}
}

func (c *CPU) absoluteIndexed(idx uint16, acc access) ea {
	a16 := c.fetchOperandWord()
	base := c.reg.ShiftedDB | uint32(a16)
	full := (base + uint32(idx)) & 0xFFFFFF
	c.indexPenalty(base, full, acc)
	return ea{addr: full}
}

func (c *CPU) eaAbsoluteIndexedX(acc access) ea {
	return c.absoluteIndexed(c.reg.X, acc)
}

func (c *CPU) eaAbsoluteIndexedY(acc access) ea {
	return c.absoluteIndexed(c.reg.Y, acc)
}

// eaAbsoluteLong resolves al24: a flat 24-bit address.
func (c *CPU) eaAbsoluteLong() ea {
	return ea{addr: c.fetchOperandLong()}
}

// eaAbsoluteLongIndexedX resolves al24+X. No page-cross penalty: the bank
// is carried explicitly, so there's no "page" to miscross.
func (c *CPU) eaAbsoluteLongIndexedX() ea {
	al24 := c.fetchOperandLong()
	return ea{addr: (al24 + uint32(c.reg.X)) & 0xFFFFFF}
}

// --- JMP/JSR-only indirect forms ---

// eaAbsoluteIndirect resolves (a16): 0:mem16(a16), bank 0. JMP only.
func (c *CPU) eaAbsoluteIndirect() ea {
	a16 := c.fetchOperandWord()
	ptr := c.readWord(uint32(a16), WrapBank)
	return ea{addr: uint32(ptr)}
}

// eaAbsoluteIndirectLong resolves [a16]: mem24(a16). JML only.
func (c *CPU) eaAbsoluteIndirectLong() ea {
	a16 := c.fetchOperandWord()
	return ea{addr: c.readLong(uint32(a16))}
}

// eaAbsoluteIndexedIndirect resolves (a16,X): PB:mem16(PB:(a16+X)).
// JMP/JSR only.
func (c *CPU) eaAbsoluteIndexedIndirect() ea {
	a16 := c.fetchOperandWord()
	ptrAddr := c.reg.ShiftedPB | uint32(uint16(a16+c.reg.X))
	ptr := c.readWord(ptrAddr, WrapBank)
	return ea{addr: c.reg.ShiftedPB | uint32(ptr)}
}

// --- Stack-relative family ---

// eaStackRelative resolves d8,S: 0:(S+d8).
func (c *CPU) eaStackRelative() ea {
	d8 := uint32(c.fetchOperandByte())
	c.Cycles++ // internal cycle: base-register addition
	return ea{addr: (uint32(c.reg.S) + d8) & 0xFFFF}
}

// eaStackRelativeIndirectIndexed resolves (d8,S),Y: DB:mem16(S+d8)+Y.
func (c *CPU) eaStackRelativeIndirectIndexed() ea {
	d8 := uint32(c.fetchOperandByte())
	c.Cycles++
	ptrAddr := (uint32(c.reg.S) + d8) & 0xFFFF
	ptr := c.readWord(ptrAddr, WrapBank)
	full := (c.reg.ShiftedDB | uint32(ptr)) + uint32(c.reg.Y)
	return ea{addr: full & 0xFFFFFF}
}

// --- Immediate ---

// eaImmediateOperand resolves an immediate operand of the given width,
// used for ops whose operand width is fixed (CMP family uses M, CPX/CPY
// and LDX/LDY use X).
func (c *CPU) eaImmediateOperand(sz Size) ea {
	if sz == Size8 {
		return ea{kind: eaImmediate, imm: uint32(c.fetchOperandByte())}
	}
	return ea{kind: eaImmediate, imm: uint32(c.fetchOperandWord())}
}

// --- Branch targets ---

// relativeTarget fetches an 8-bit signed branch displacement and resolves
// it against PC as advanced past that displacement byte.
func (c *CPU) relativeTarget() uint16 {
	disp := int8(c.fetchOperandByte())
	return uint16(int32(c.reg.PC) + int32(disp))
}

// relativeLongTarget resolves BRL/PER's 16-bit signed displacement.
func (c *CPU) relativeLongTarget() uint16 {
	disp := int16(c.fetchOperandWord())
	return uint16(int32(c.reg.PC) + int32(disp))
}
