package w65c816

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 59

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full persisted CPU state into buf, which must be
// at least SerializeSize() bytes (§6, Persisted state). The Bus reference
// and the compiled dispatch tables are not included -- a Deserialize
// target must already be wired to a Bus via New before loading state.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("w65c816: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	be.PutUint16(buf[off:], c.reg.A)
	off += 2
	be.PutUint16(buf[off:], c.reg.X)
	off += 2
	be.PutUint16(buf[off:], c.reg.Y)
	off += 2
	be.PutUint16(buf[off:], c.reg.S)
	off += 2
	be.PutUint16(buf[off:], c.reg.D)
	off += 2
	be.PutUint16(buf[off:], c.reg.PC)
	off += 2

	buf[off] = c.reg.PB
	off++
	buf[off] = c.reg.DB
	off++

	buf[off] = boolByte(c.reg.FlagC)
	off++
	buf[off] = boolByte(c.reg.FlagZ)
	off++
	buf[off] = boolByte(c.reg.FlagV)
	off++
	buf[off] = boolByte(c.reg.FlagN)
	off++
	buf[off] = boolByte(c.reg.FlagI)
	off++
	buf[off] = boolByte(c.reg.FlagD)
	off++
	buf[off] = boolByte(c.reg.FlagB)
	off++
	buf[off] = boolByte(c.reg.ModeM)
	off++
	buf[off] = boolByte(c.reg.ModeX)
	off++
	buf[off] = boolByte(c.reg.E)
	off++

	be.PutUint64(buf[off:], c.Cycles)
	off += 8
	be.PutUint64(buf[off:], c.NextEvent)
	off += 8
	be.PutUint64(buf[off:], c.MemSpeed)
	off += 8

	buf[off] = c.flags
	off++
	buf[off] = c.OpenBus
	off++
	buf[off] = boolByte(c.stopped)
	off++
	buf[off] = boolByte(c.waiting)
	off++
	buf[off] = boolByte(c.waitingForInterrupt)
	off++
	buf[off] = boolByte(c.branchSkip)
	off++

	be.PutUint16(buf[off:], c.waitPC)
	off += 2
	be.PutUint16(buf[off:], uint16(c.waitCounter))
	off += 2

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes and produced by the same Serialize version. The
// Bus/CycleBus and dispatch tables are left as already configured by New;
// callers must construct the CPU with the matching Bus before loading.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("w65c816: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("w65c816: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	c.reg.A = be.Uint16(buf[off:])
	off += 2
	c.reg.X = be.Uint16(buf[off:])
	off += 2
	c.reg.Y = be.Uint16(buf[off:])
	off += 2
	c.reg.S = be.Uint16(buf[off:])
	off += 2
	c.reg.D = be.Uint16(buf[off:])
	off += 2
	c.reg.PC = be.Uint16(buf[off:])
	off += 2

	c.reg.PB = buf[off]
	off++
	c.reg.DB = buf[off]
	off++

	c.reg.FlagC = buf[off] != 0
	off++
	c.reg.FlagZ = buf[off] != 0
	off++
	c.reg.FlagV = buf[off] != 0
	off++
	c.reg.FlagN = buf[off] != 0
	off++
	c.reg.FlagI = buf[off] != 0
	off++
	c.reg.FlagD = buf[off] != 0
	off++
	c.reg.FlagB = buf[off] != 0
	off++
	c.reg.ModeM = buf[off] != 0
	off++
	c.reg.ModeX = buf[off] != 0
	off++
	c.reg.E = buf[off] != 0
	off++

	c.Cycles = be.Uint64(buf[off:])
	off += 8
	c.NextEvent = be.Uint64(buf[off:])
	off += 8
	c.MemSpeed = be.Uint64(buf[off:])
	off += 8

	c.flags = buf[off]
	off++
	c.OpenBus = buf[off]
	off++
	c.stopped = buf[off] != 0
	off++
	c.waiting = buf[off] != 0
	off++
	c.waitingForInterrupt = buf[off] != 0
	off++
	c.branchSkip = buf[off] != 0
	off++

	c.waitPC = be.Uint16(buf[off:])
	off += 2
	c.waitCounter = int(be.Uint16(buf[off:]))

	c.reg.recalcShifts()
	if c.bus != nil {
		c.bus.SetPCBase(c.reg.ShiftedPB)
	}
	return nil
}
