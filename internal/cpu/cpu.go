package cpu

import "github.com/retrocoderamen/corelx-boy/internal/debug"

// CPU is the fetch/decode/execute interpreter. It owns the register file and
// keeps a reference to the shared Memory; it does not own memory itself,
// since the PPU and timer need to reach the same bus.
type CPU struct {
	Regs Registers
	Mem  Memory

	IME bool

	// eiPending implements EI's one-instruction-delayed enable: IME flips on
	// after the instruction following EI completes, not EI itself.
	eiPending bool

	Halted  bool
	haltBug bool

	Logger *debug.Logger
}

// NewCPU constructs an interpreter bound to the given memory and logger. The
// logger may be nil; logging becomes a no-op in that case rather than a
// panic, so tests that don't care about tracing can omit it.
func NewCPU(mem Memory, logger *debug.Logger) *CPU {
	c := &CPU{Mem: mem, Logger: logger}
	c.Regs.Reset()
	return c
}

func (c *CPU) log(level debug.LogLevel, format string, args ...interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.LogCPUf(level, format, args...)
}

func (c *CPU) fetch8() uint8 {
	v := c.Mem.ReadByte(c.Regs.PC)
	c.Regs.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	v := c.Mem.ReadWord(c.Regs.PC)
	c.Regs.PC += 2
	return v
}

func (c *CPU) push16(v uint16) {
	c.Regs.SP -= 2
	c.Mem.WriteWord(c.Regs.SP, v)
}

func (c *CPU) pop16() uint16 {
	v := c.Mem.ReadWord(c.Regs.SP)
	c.Regs.SP += 2
	return v
}

// Step executes exactly one instruction (or services one pending interrupt,
// or idles one halted tick) and returns the T-cycles consumed. The caller
// forwards that count to the PPU and timer.
func (c *CPU) Step() int {
	if cycles, serviced := c.serviceInterrupt(); serviced {
		return cycles
	}

	if c.Halted {
		return 4
	}

	if c.eiPending {
		c.eiPending = false
		c.IME = true
	}

	opcode := c.fetch8()

	if c.haltBug {
		// The byte after HALT is re-fetched: undo the PC advance that just
		// happened so the next Step fetches the same byte again.
		c.haltBug = false
		c.Regs.PC--
	}

	return c.execute(opcode)
}

// serviceInterrupt checks IME and (IE & IF); if an interrupt is both enabled
// and pending, it vectors to the corresponding handler and returns the fixed
// 20 T-cycle cost. Interrupts are checked even while halted, since that is
// what wakes the CPU back up.
func (c *CPU) serviceInterrupt() (int, bool) {
	ie := c.Mem.ReadByte(addrIE)
	iflag := c.Mem.ReadByte(addrIF)
	pending := ie & iflag & 0x1F

	if pending != 0 && c.Halted {
		c.Halted = false
	}

	if !c.IME || pending == 0 {
		return 0, false
	}

	for _, v := range interruptVectors {
		if pending&v.bit == 0 {
			continue
		}
		c.IME = false
		c.Mem.WriteByte(addrIF, iflag&^v.bit)
		c.push16(c.Regs.PC)
		c.Regs.PC = v.vector
		c.log(debug.LogLevelDebug, "serviced interrupt vector=0x%04X", v.vector)
		return 20, true
	}
	return 0, false
}
