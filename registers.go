package w65c816

// Status register flag bits (P), packed/unpacked at PHP/PLP/RTI/interrupt
// boundaries. C, Z, V, N are kept as separate fast-access fields instead,
// per the teacher's flag-decomposition rationale (most opcodes only touch
// a subset and packing on every flag write would cost more than it saves).
const (
	flagC uint8 = 1 << 0
	flagZ uint8 = 1 << 1
	flagI uint8 = 1 << 2
	flagD uint8 = 1 << 3
	flagX uint8 = 1 << 4 // native mode: index width; emulation mode: B (break)
	flagM uint8 = 1 << 5 // native mode: accumulator/memory width; emulation: always 1
	flagV uint8 = 1 << 6
	flagN uint8 = 1 << 7
)

// tableKey identifies which of the six dispatch tables (§4.5) is active:
// one of the five specialized (E, M, X) tables, or the generic keySlow
// table Step selects while a global condition (pending interrupt, an
// in-progress interrupt handler) is in effect.
type tableKey uint8

const (
	keyE1 tableKey = iota
	keyM1X1
	keyM1X0
	keyM0X0
	keyM0X1
	keySlow
	keyCount
)

// Registers holds the programmer-visible state of the 65C816, plus the
// cached shifted bank values that exist purely to avoid a left-shift on
// every address resolution (§9, Cached shifted bank registers).
type Registers struct {
	A uint16 // accumulator (AL = low byte, AH = high byte)
	X uint16 // index X (XL/XH); XH is always 0 when X-width=8-bit
	Y uint16 // index Y (YL/YH); YH is always 0 when X-width=8-bit
	S uint16 // stack pointer; SH is latched 0x01 in emulation mode
	D uint16 // direct-page base
	PC uint16

	PB uint8 // program bank
	DB uint8 // data bank

	ShiftedPB uint32 // PB << 16, recomputed whenever PB changes
	ShiftedDB uint32 // DB << 16, recomputed whenever DB changes

	// Fast-access flag fields (see flag* constants for packed positions).
	FlagC bool
	FlagZ bool
	FlagV bool
	FlagN bool
	FlagI bool
	FlagD bool
	FlagB bool // break flag: meaningful only in emulation-mode P (bit 4)

	ModeM bool // true = 8-bit accumulator/memory
	ModeX bool // true = 8-bit index registers
	E     bool // emulation-mode latch
}

// reset establishes power-on register values (§3 Lifecycle): E=1, I=1,
// D=0, M=1, X=1, PC loaded from the reset vector.
func (r *Registers) reset(resetPC uint16) {
	*r = Registers{}
	r.E = true
	r.ModeM = true
	r.ModeX = true
	r.FlagI = true
	r.S = 0x01FF
	r.PC = resetPC
	r.recalcShifts()
}

// recalcShifts recomputes ShiftedPB/ShiftedDB from PB/DB. Must be called
// after any direct write to PB or DB (invariant 4).
func (r *Registers) recalcShifts() {
	r.ShiftedPB = uint32(r.PB) << 16
	r.ShiftedDB = uint32(r.DB) << 16
}

func (r *Registers) setPB(pb uint8) {
	r.PB = pb
	r.ShiftedPB = uint32(pb) << 16
}

func (r *Registers) setDB(db uint8) {
	r.DB = db
	r.ShiftedDB = uint32(db) << 16
}

// latchStack forces SH=0x01 (invariant 3), used whenever emulation mode is
// active or re-entered and after any push/pull that may have bumped S
// outside page 1 (§4.3, new-to-816 stack instructions).
func (r *Registers) latchStack() {
	if r.E {
		r.S = 0x0100 | (r.S & 0x00FF)
	}
}

// widthA returns the operand width for accumulator/memory operations.
func (r *Registers) widthA() Size {
	if r.ModeM {
		return Size8
	}
	return Size16
}

// widthX returns the operand width for index-register operations.
func (r *Registers) widthX() Size {
	if r.ModeX {
		return Size8
	}
	return Size16
}

// SetModeX updates the X-width mode bit. Transitioning into 8-bit index
// mode truncates XH/YH to zero immediately (invariant 2); the reverse
// transition leaves the (now architecturally significant) high bytes at
// whatever they held, which hardware also does not clear.
func (r *Registers) SetModeX(x bool) {
	if x && !r.ModeX {
		r.X &= 0x00FF
		r.Y &= 0x00FF
	}
	r.ModeX = x
}

func (r *Registers) SetModeM(m bool) {
	r.ModeM = m
}

// enterEmulation forces M=X=1 and re-latches the stack page, per XCE's
// documented effect when C (pre-exchange) selects emulation mode.
func (r *Registers) enterEmulation() {
	r.E = true
	r.ModeM = true
	r.SetModeX(true)
	r.latchStack()
}

// packP packs the flag fields into the 8-bit status byte. bit5/bit4 read
// as the mode bits in native mode, or as 1/FlagB in emulation mode.
func (r *Registers) packP() uint8 {
	var p uint8
	if r.FlagN {
		p |= flagN
	}
	if r.FlagV {
		p |= flagV
	}
	if r.FlagD {
		p |= flagD
	}
	if r.FlagI {
		p |= flagI
	}
	if r.FlagZ {
		p |= flagZ
	}
	if r.FlagC {
		p |= flagC
	}
	if r.E {
		p |= flagM // bit 5 always reads 1 in emulation mode
		if r.FlagB {
			p |= flagX // bit 4 is B in emulation mode
		}
	} else {
		if r.ModeM {
			p |= flagM
		}
		if r.ModeX {
			p |= flagX
		}
	}
	return p
}

// unpackP restores flags from a packed status byte, as used by PLP and
// RTI. In emulation mode M and X are forced to 1 regardless of the
// corresponding bits in p (§4.3, Stack pushes/pulls).
func (r *Registers) unpackP(p uint8) {
	r.FlagN = p&flagN != 0
	r.FlagV = p&flagV != 0
	r.FlagD = p&flagD != 0
	r.FlagI = p&flagI != 0
	r.FlagZ = p&flagZ != 0
	r.FlagC = p&flagC != 0

	if r.E {
		r.ModeM = true
		r.SetModeX(true)
		return
	}
	r.SetModeM(p&flagM != 0)
	r.SetModeX(p&flagX != 0)
}

// setFlagsNZ sets Z and N from a value already masked to sz's width.
func (r *Registers) setFlagsNZ(val uint32, sz Size) {
	r.FlagZ = val&sz.Mask() == 0
	r.FlagN = val&sz.MSB() != 0
}

// key reports which of the five dispatch tables matches the current mode.
func (r Registers) key() tableKey {
	if r.E {
		return keyE1
	}
	switch {
	case r.ModeM && r.ModeX:
		return keyM1X1
	case r.ModeM && !r.ModeX:
		return keyM1X0
	case !r.ModeM && !r.ModeX:
		return keyM0X0
	default:
		return keyM0X1
	}
}
