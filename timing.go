package w65c816

// internalCycle charges one cycle of CPU-internal processing that does not
// touch the bus (register arithmetic, stack-pointer adjustment, the RMW
// turnaround between a read and its write-back). Real hardware still drives
// an address during these cycles -- the program bank's current address --
// so the charged speed follows whatever that bank costs, not a flat rate
// (§4.2, cycle accounting).
func (c *CPU) internalCycle() {
	addr := c.reg.ShiftedPB | uint32(c.reg.PC)
	c.Cycles += c.speed(addr)
}

// internalCycles charges n internal cycles.
func (c *CPU) internalCycles(n int) {
	for i := 0; i < n; i++ {
		c.internalCycle()
	}
}

// branchTakenPenalty charges the cycle cost of a taken branch: one internal
// cycle always, plus a second when the branch lands in a different bank-
// relative page and the CPU is in emulation mode (§4.2, addressing-mode
// table / §4.3 prose; native mode never pays the second cycle).
func (c *CPU) branchTakenPenalty(oldPC, newPC uint16) {
	c.internalCycle()
	if c.reg.E && (oldPC&0xFF00) != (newPC&0xFF00) {
		c.internalCycle()
	}
}
