package w65c816

// shutdownThreshold is how many times the same backward-branch target must
// recur before the core concludes it has landed in an idle poll loop
// rather than legitimate repeated execution.
const shutdownThreshold = 2

// noteLoopBranch implements the wait-for-interrupt fast-forward optimizer's
// detection half (§4.6). A program that busy-polls a flag in a tight loop
// (the classic "wait for NMI" idiom on hardware without WAI, or a WAI-less
// port) always re-takes the same backward branch to the same target on
// every iteration, however many instructions sit between the poll and the
// branch -- so the anchor this tracks is the branch's target address, not
// the branch opcode's own PC. A forward branch is never a loop-back and is
// ignored.
//
// Must never arm while an interrupt is pending or already being serviced:
// both conditions mean forward progress (the interrupt entry itself, or
// the handler body) is imminent or underway, not an idle spin.
func (c *CPU) noteLoopBranch(opcodePC, target uint16) {
	if target > opcodePC {
		return
	}
	if c.flags&(flagsIRQPending|flagsNMIPending|flagsInInterrupt) != 0 {
		c.waitCounter = 0
		c.waitPC = 0
		return
	}

	if target == c.waitPC {
		c.waitCounter++
	} else {
		c.waitCounter = 1
	}
	c.waitPC = target

	if c.waitCounter > shutdownThreshold {
		c.waitingForInterrupt = true
	}
}

// invalidateLoopProbe discards any armed idle-loop candidate. INC/DEC can
// change the very memory cell or register a poll loop branches on, so any
// execution of one clears the candidate rather than risk fast-forwarding
// past an iteration that would actually have taken a different path
// (§4.6, "INC/DEC clear WaitPC").
func (c *CPU) invalidateLoopProbe() {
	c.waitPC = 0
	c.waitCounter = 0
}
