package w65c816

// registerBranch installs the eight conditional branches, BRA and BRL
// (§4.3). Widths don't affect any of these -- branch opcodes are
// identical across all six tables -- but registerBranch still takes w so
// buildTables can call every registerXxx uniformly.
func registerBranch(tbl *[256]opFunc, w widths) {
	tbl[0x10] = condBranch(func(r *Registers) bool { return !r.FlagN })
	tbl[0x30] = condBranch(func(r *Registers) bool { return r.FlagN })
	tbl[0x50] = condBranch(func(r *Registers) bool { return !r.FlagV })
	tbl[0x70] = condBranch(func(r *Registers) bool { return r.FlagV })
	tbl[0x90] = condBranch(func(r *Registers) bool { return !r.FlagC })
	tbl[0xB0] = condBranch(func(r *Registers) bool { return r.FlagC })
	tbl[0xD0] = condBranch(func(r *Registers) bool { return !r.FlagZ })
	tbl[0xF0] = condBranch(func(r *Registers) bool { return r.FlagZ })
	tbl[0x80] = condBranch(func(r *Registers) bool { return true })

	tbl[0x82] = func(c *CPU) {
		opcodePC := c.reg.PC - 1
		disp := int16(c.fetchOperandWord())
		base := c.reg.PC
		c.internalCycle()
		target := uint16(int32(base) + int32(disp))
		c.reg.PC = target
		c.noteLoopBranch(opcodePC, target)
	}
}

// condBranch builds a conditional relative branch: the displacement byte
// is always fetched; the branch is taken (charging the taken-cycle
// penalty and updating PC) only when cond holds.
func condBranch(cond func(r *Registers) bool) opFunc {
	return func(c *CPU) {
		opcodePC := c.reg.PC - 1
		disp := int8(c.fetchOperandByte())
		base := c.reg.PC
		if !cond(&c.reg) {
			return
		}
		target := uint16(int32(base) + int32(disp))
		c.branchTakenPenalty(base, target)
		c.reg.PC = target
		c.noteLoopBranch(opcodePC, target)
	}
}
