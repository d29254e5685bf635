// Package w65c816 implements a WDC 65C816 CPU interpreter, the hybrid
// 8/16-bit processor at the heart of the Super Nintendo Entertainment
// System. It has a legacy 6502-compatible "emulation mode" and a "native
// mode" in which the accumulator and index registers can independently
// switch between 8 and 16 bits, producing up to four operational variants
// of every opcode on top of the emulation-mode variant.
//
// This package is the instruction-dispatch and instruction-semantics
// engine only: the dispatch tables, the addressing-mode resolution
// pipeline, the per-opcode handlers, and their cycle accounting. Memory
// mapping, peripherals, and host I/O are external collaborators reached
// through the Bus interface.
package w65c816

import "log"

// Flags bits: pending asynchronous conditions the driver checks between
// instructions (§3, CPU bookkeeping state).
const (
	flagsIRQPending uint8 = 1 << iota
	flagsNMIPending
	flagsInInterrupt // set while servicing NMI/IRQ/BRK/COP, cleared on return
)

// CPU is the 65C816 processor core.
type CPU struct {
	reg Registers

	bus      Bus
	cycleBus CycleBus

	opts Options

	Cycles    uint64 // accumulated simulated master cycles since reset
	NextEvent uint64 // cycle count at which the scheduler must regain control
	MemSpeed  uint64 // speed of the most recent opcode-byte fetch

	flags uint8 // pending IRQ/NMI/in-interrupt bits

	OpenBus uint8 // last byte driven on the bus

	stopped bool // STP executed; only Reset recovers
	waiting bool // WAI executed; cleared by any serviced interrupt

	// Shutdown/wait optimizer state (§4.6).
	waitPC              uint16
	waitCounter         int
	waitingForInterrupt bool
	branchSkip          bool

	table [keyCount][256]opFunc

	irqVector func(c *CPU) (uint32, bool)
	nmiVector func(c *CPU) (uint32, bool)
}

// opFunc is the handler signature for one (opcode, dispatch-table) pair.
type opFunc func(c *CPU)

// New creates a CPU wired to the given bus and performs a power-on reset.
func New(bus Bus, opts Options) *CPU {
	c := &CPU{bus: bus, opts: opts}
	c.cycleBus, _ = bus.(CycleBus)
	c.buildTables()
	c.Reset()
	return c
}

func (c *CPU) logf(format string, args ...any) {
	if c.opts.Logger != nil {
		c.opts.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Reset performs a power-on reset per §3's lifecycle: E=1, I=1, D=0, M=1,
// X=1, PC loaded from the 16-bit reset vector at 0xFFFC/0xFFFD in bank 0.
func (c *CPU) Reset() {
	c.cycleBus, _ = c.bus.(CycleBus)

	lo := c.bus.GetByte(0xFFFC)
	hi := c.bus.GetByte(0xFFFD)
	resetPC := uint16(hi)<<8 | uint16(lo)

	c.reg.reset(resetPC)
	c.Cycles = 0
	c.NextEvent = 0
	c.MemSpeed = 0
	c.flags = 0
	c.OpenBus = 0
	c.stopped = false
	c.waiting = false
	c.waitPC = 0
	c.waitCounter = 0
	c.waitingForInterrupt = false
	c.branchSkip = false

	c.bus.SetPCBase(c.reg.ShiftedPB)
}

// Registers returns a snapshot of the programmer-visible register file.
func (c *CPU) Registers() Registers {
	return c.reg
}

// SetState installs register state directly without performing a reset.
// Intended for tests and save-state loading, where exact CPU state must
// be established before executing an instruction.
func (c *CPU) SetState(regs Registers) {
	c.reg = regs
	c.reg.recalcShifts()
	if c.reg.E {
		c.reg.latchStack()
	}
	c.bus.SetPCBase(c.reg.ShiftedPB)
}

// RaiseNMI sets the pending-NMI bit. The core observes it between
// instructions (§6).
func (c *CPU) RaiseNMI() {
	c.flags |= flagsNMIPending
}

// RaiseIRQ sets the pending-IRQ bit.
func (c *CPU) RaiseIRQ() {
	c.flags |= flagsIRQPending
}

// ClearIRQ clears the pending-IRQ bit (level-triggered line released).
func (c *CPU) ClearIRQ() {
	c.flags &^= flagsIRQPending
}

// SetNextEvent updates the scheduler's deadline.
func (c *CPU) SetNextEvent(cycles uint64) {
	c.NextEvent = cycles
}

// SetVectorSource installs the narrow co-processor hook (§4.4): when non-nil,
// irq/nmi are queried for a redirected vector address before the core falls
// back to the architectural vector table. Passing nil restores default
// vectoring. This exists alongside (and is populated from) any VectorSource
// the Bus itself implements; an explicit call here takes precedence.
func (c *CPU) SetVectorSource(src VectorSource) {
	if src == nil {
		c.irqVector = nil
		c.nmiVector = nil
		return
	}
	c.irqVector = func(c *CPU) (uint32, bool) { return src.RedirectVector(vecIRQEmuNative(c)) }
	c.nmiVector = func(c *CPU) (uint32, bool) { return src.RedirectVector(vecNMIEmuNative(c)) }
}

// Halted reports whether STP has halted the CPU (only Reset recovers).
func (c *CPU) Halted() bool {
	return c.stopped
}

// StepUntil executes instructions until Cycles >= target or the CPU
// halts, returning the number of cycles consumed.
func (c *CPU) StepUntil(target uint64) uint64 {
	before := c.Cycles
	for c.Cycles < target {
		if c.stopped {
			break
		}
		c.Step()
	}
	return c.Cycles - before
}

// Step executes exactly one instruction (or services one pending
// interrupt, or fast-forwards through a detected idle wait) and returns
// the number of cycles consumed.
func (c *CPU) Step() uint64 {
	if c.stopped {
		return 0
	}
	before := c.Cycles

	if bsrc, ok := c.bus.(VectorSource); ok && c.irqVector == nil {
		c.SetVectorSource(bsrc)
	}

	if c.checkInterrupts() {
		return c.Cycles - before
	}

	if c.waitingForInterrupt {
		if c.flags&(flagsIRQPending|flagsNMIPending) != 0 {
			c.waitingForInterrupt = false
		} else if c.NextEvent > c.Cycles {
			c.Cycles = c.NextEvent
			return c.Cycles - before
		}
	}

	opcode := c.fetchOpcodeByte()

	selected := c.reg.key()
	if c.flags != 0 {
		selected = keySlow
	}
	handler := c.table[selected][opcode]
	handler(c)

	return c.Cycles - before
}

// speed returns the bus-reported cycle cost of accessing addr, or
// defaultBusSpeed when the bus does not implement CycleBus.
func (c *CPU) speed(addr uint32) uint64 {
	if c.cycleBus != nil {
		return c.cycleBus.Speed(addr)
	}
	return defaultBusSpeed
}

// readByte reads one byte from the bus and charges its cycle cost.
func (c *CPU) readByte(addr uint32) uint8 {
	v := c.bus.GetByte(addr)
	c.Cycles += c.speed(addr)
	c.OpenBus = v
	return v
}

// writeByte writes one byte to the bus and charges its cycle cost.
func (c *CPU) writeByte(val uint8, addr uint32) {
	c.bus.SetByte(val, addr)
	c.Cycles += c.speed(addr)
	c.OpenBus = val
}

// readWord reads a 16-bit value per wrap and charges both halves' cost.
func (c *CPU) readWord(addr uint32, wrap Wrap) uint16 {
	v := c.bus.GetWord(addr, wrap)
	c.Cycles += c.speed(addr) + c.speed(SecondByteAddr(addr, wrap))
	c.OpenBus = uint8(v >> 8)
	return v
}

// writeWord writes a 16-bit value per wrap/order and charges both halves.
func (c *CPU) writeWord(val uint16, addr uint32, wrap Wrap, order Order) {
	c.bus.SetWord(val, addr, wrap, order)
	c.Cycles += c.speed(addr) + c.speed(SecondByteAddr(addr, wrap))
	c.OpenBus = uint8(val >> 8)
}

// readLong reads a 24-bit value spanning three consecutive bytes (WrapNone
// between each byte), used by the *Long addressing modes.
func (c *CPU) readLong(addr uint32) uint32 {
	lo := c.readByte(addr)
	mid := c.readByte((addr + 1) & 0xFFFFFF)
	hi := c.readByte((addr + 2) & 0xFFFFFF)
	return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo)
}

// fetchOpcodeByte fetches the instruction's opcode byte, recording its bus
// speed into MemSpeed (§3, CPU bookkeeping state).
func (c *CPU) fetchOpcodeByte() uint8 {
	addr := c.reg.ShiftedPB | uint32(c.reg.PC)
	v := c.bus.GetByte(addr)
	sp := c.speed(addr)
	c.MemSpeed = sp
	c.Cycles += sp
	c.OpenBus = v
	c.reg.PC++
	return v
}

// fetchOperandByte fetches the next program byte (an addressing-mode or
// immediate operand) and advances PC.
func (c *CPU) fetchOperandByte() uint8 {
	addr := c.reg.ShiftedPB | uint32(c.reg.PC)
	v := c.readByte(addr)
	c.reg.PC++
	return v
}

// fetchOperandWord fetches a 16-bit little-endian operand from the program
// stream, wrapping within the current program bank.
func (c *CPU) fetchOperandWord() uint16 {
	addr := c.reg.ShiftedPB | uint32(c.reg.PC)
	v := c.readWord(addr, WrapBank)
	c.reg.PC += 2
	return v
}

// fetchOperandLong fetches a 24-bit absolute-long operand from the
// program stream.
func (c *CPU) fetchOperandLong() uint32 {
	lo := c.fetchOperandByte()
	mid := c.fetchOperandByte()
	hi := c.fetchOperandByte()
	return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo)
}

// pushByte pushes one byte onto the stack, decrementing S. In emulation
// mode the stack is confined to page 1 (invariant 3).
func (c *CPU) pushByte(val uint8) {
	addr := uint32(c.reg.S)
	c.writeByte(val, addr)
	c.reg.S--
	c.reg.latchStack()
}

// popByte pulls one byte from the stack, incrementing S first.
func (c *CPU) popByte() uint8 {
	c.reg.S++
	c.reg.latchStack()
	addr := uint32(c.reg.S)
	return c.readByte(addr)
}

// pushWord pushes a 16-bit value high-byte-first, matching real 65816
// push ordering so a pulling pair of popByte calls sees low byte first.
func (c *CPU) pushWord(val uint16) {
	c.pushByte(uint8(val >> 8))
	c.pushByte(uint8(val))
}

// popWord pulls a 16-bit value (low byte first, matching pushWord).
func (c *CPU) popWord() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return uint16(hi)<<8 | uint16(lo)
}
