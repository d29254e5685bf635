package w65c816

import "log"

// Options configures optional, off-by-default core behavior (ambient
// configuration surface, mirroring the teacher's constructor-argument
// style rather than a package-level global).
type Options struct {
	// EnableSpeedHack repurposes the STP ($DB) and alternate COP ($42)
	// opcode slots as a third-party emulator speed-hack trampoline (§9,
	// Design notes / Open question). Default false: both opcodes keep
	// their architectural meaning (STP halts, $42/WDM is a 2-byte NOP).
	EnableSpeedHack bool

	// SpeedHackHook is invoked in place of STP/$42's architectural
	// behavior when EnableSpeedHack is set. code is the operand byte
	// that followed the opcode. A nil hook with EnableSpeedHack set
	// falls back to a no-op (the opcode still consumes its operand byte
	// and cycle cost, but has no further effect).
	SpeedHackHook func(c *CPU, code uint8)

	// Logger receives diagnostic messages, currently only interrupt entry
	// through a zero vector. Defaults to the standard library's default
	// logger when nil.
	Logger *log.Logger
}
