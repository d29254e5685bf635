package w65c816

// widths carries the operand sizes baked into one of the five specialized
// dispatch tables (§4.5): which width the accumulator/memory class
// resolves to, which width the index-register class resolves to, and
// whether the table is the emulation-mode one. The sixth table (keySlow)
// sets live instead: its handlers re-derive both widths from the CPU's
// current mode bits on every call rather than trusting a value baked in
// at table-build time, since keySlow is selected precisely when the
// caller can't assume the (E, M, X) triple is stable across instructions.
type widths struct {
	a    Size
	x    Size
	e    bool
	live bool
}

// widthsFor maps each tableKey to its baked-in operand widths. Built once
// and reused by every registerXxx builder in the ops_*.go files.
var widthsFor = [keyCount]widths{
	keyE1:   {a: Size8, x: Size8, e: true},
	keyM1X1: {a: Size8, x: Size8},
	keyM1X0: {a: Size8, x: Size16},
	keyM0X0: {a: Size16, x: Size16},
	keyM0X1: {a: Size16, x: Size8},
	keySlow: {live: true},
}

// szA and szX resolve this table's accumulator/memory and index widths
// for a specific CPU: the baked-in value for a specialized table, or the
// CPU's live mode bits when w is the slow table's.
func (w widths) szA(c *CPU) Size {
	if w.live {
		return c.reg.widthA()
	}
	return w.a
}

func (w widths) szX(c *CPU) Size {
	if w.live {
		return c.reg.widthX()
	}
	return w.x
}

// sizeOf lifts a fixed width (one that never varies with mode, e.g. the
// data-bank/direct-page registers PHB/PLB/PHD/PLD push) into the same
// func(*CPU) Size shape szA/szX produce, so fixed- and mode-dependent
// widths can share one call site.
func sizeOf(sz Size) func(*CPU) Size {
	return func(*CPU) Size { return sz }
}

// opClass selects which of a table's two baked-in widths (or a fixed
// 8-bit width) an instruction's operand resolves to.
type opClass uint8

const (
	classA    opClass = iota // accumulator/memory width
	classX                   // index-register width
	classByte                // always 8-bit, regardless of mode
)

func operandSize(c *CPU, class opClass, w widths) Size {
	switch class {
	case classX:
		return w.szX(c)
	case classByte:
		return Size8
	default:
		return w.szA(c)
	}
}

// addrMode names one of the addressing-mode resolvers in addressing.go.
// Jump-only indirect forms and implied/accumulator-only opcodes are
// dispatched directly by their own registerXxx builders rather than
// through resolveEA.
type addrMode uint8

const (
	amImmediate addrMode = iota
	amAccumulator
	amDirect
	amDirectX
	amDirectY
	amDirectIndirect
	amDirectIndexedIndirect
	amDirectIndirectIndexed
	amDirectIndirectLong
	amDirectIndirectIndexedLong
	amAbsolute
	amAbsoluteX
	amAbsoluteY
	amAbsoluteLong
	amAbsoluteLongX
	amStackRel
	amStackRelIndirectIndexed
)

// resolveEA dispatches to the addressing-mode resolver named by mode,
// threading through the operand width (only amImmediate needs it) and the
// access kind (only the indexed/indirect-indexed forms need it, for the
// page-cross penalty).
func (c *CPU) resolveEA(mode addrMode, sz Size, acc access) ea {
	switch mode {
	case amImmediate:
		return c.eaImmediateOperand(sz)
	case amAccumulator:
		return ea{kind: eaAccumulator}
	case amDirect:
		return c.eaDirect()
	case amDirectX:
		return c.eaDirectIndexedX()
	case amDirectY:
		return c.eaDirectIndexedY()
	case amDirectIndirect:
		return c.eaDirectIndirect()
	case amDirectIndexedIndirect:
		return c.eaDirectIndexedIndirect()
	case amDirectIndirectIndexed:
		return c.eaDirectIndirectIndexed(acc)
	case amDirectIndirectLong:
		return c.eaDirectIndirectLong()
	case amDirectIndirectIndexedLong:
		return c.eaDirectIndirectIndexedLong()
	case amAbsolute:
		return c.eaAbsolute()
	case amAbsoluteX:
		return c.eaAbsoluteIndexedX(acc)
	case amAbsoluteY:
		return c.eaAbsoluteIndexedY(acc)
	case amAbsoluteLong:
		return c.eaAbsoluteLong()
	case amAbsoluteLongX:
		return c.eaAbsoluteLongIndexedX()
	case amStackRel:
		return c.eaStackRelative()
	default: // amStackRelIndirectIndexed
		return c.eaStackRelativeIndirectIndexed()
	}
}

// readFn, writeFn and modifyFn are the three shapes an addressed
// instruction's semantic body can take; buildRead/Write/ModifyOp close
// over one of them plus a mode/class pair to produce a table entry.
type readFn func(c *CPU, val uint32, sz Size)
type writeFn func(c *CPU, sz Size) uint32
type modifyFn func(c *CPU, val uint32, sz Size) uint32

// buildReadOp produces a handler for an operand-reading instruction (ADC,
// AND, CMP, LDA, BIT, ...): resolve the address, read the operand at its
// class width, and hand it to fn.
func buildReadOp(mode addrMode, class opClass, fn readFn) func(w widths) opFunc {
	return func(w widths) opFunc {
		return func(c *CPU) {
			sz := operandSize(c, class, w)
			e := c.resolveEA(mode, sz, accessRead)
			fn(c, e.read(c, sz), sz)
		}
	}
}

// buildWriteOp produces a handler for an operand-writing instruction (STA,
// STX, STY, STZ): resolve the address, ask fn for the value, write it.
func buildWriteOp(mode addrMode, class opClass, fn writeFn) func(w widths) opFunc {
	return func(w widths) opFunc {
		return func(c *CPU) {
			sz := operandSize(c, class, w)
			e := c.resolveEA(mode, sz, accessWrite)
			e.write(c, sz, fn(c, sz))
		}
	}
}

// buildModifyOp produces a handler for a read-modify-write instruction
// (ASL, LSR, ROL, ROR, INC, DEC, TRB, TSB): resolve, read, charge the
// internal turnaround cycle, transform, write back.
func buildModifyOp(mode addrMode, class opClass, fn modifyFn) func(w widths) opFunc {
	return func(w widths) opFunc {
		return func(c *CPU) {
			sz := operandSize(c, class, w)
			e := c.resolveEA(mode, sz, accessModify)
			val := e.read(c, sz)
			c.internalCycle()
			e.write(c, sz, fn(c, val, sz))
		}
	}
}

// buildTables constructs all six 256-entry opcode tables: the five
// specialized (E, M, X) tables plus the generic keySlow table. Each
// registerXxx call installs one opcode group's entries into all six
// tables at once, closing over that table's widths (baked in for the
// five specialized tables, re-derived per call for keySlow) -- the same
// "populate a function-pointer table from a builder loop" shape the
// teacher uses for its 68000 opcode table, generalized here to six
// tables instead of one.
func (c *CPU) buildTables() {
	for k := tableKey(0); k < keyCount; k++ {
		w := widthsFor[k]
		tbl := &c.table[k]

		registerArith(tbl, w)
		registerLogic(tbl, w)
		registerShift(tbl, w)
		registerCmp(tbl, w)
		registerIncDec(tbl, w)
		registerMove(tbl, w)
		registerStack(tbl, w)
		registerBranch(tbl, w)
		registerJump(tbl, w)
		registerFlags(tbl, w)
		registerSystem(c, tbl, w)
	}
}
