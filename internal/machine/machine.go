// Package machine wires the CPU, MMU, PPU, timer, and joypad into the
// single containing struct that sequences one emulated frame at a time.
package machine

import (
	"github.com/retrocoderamen/corelx-boy/internal/cpu"
	"github.com/retrocoderamen/corelx-boy/internal/debug"
	"github.com/retrocoderamen/corelx-boy/internal/input"
	"github.com/retrocoderamen/corelx-boy/internal/memory"
	"github.com/retrocoderamen/corelx-boy/internal/ppu"
)

// cyclesPerFrame is the number of T-cycles in one 70,224-cycle video
// frame: 154 scanlines at 456 cycles each.
const cyclesPerFrame = 154 * 456

// Machine owns every component and steps them in lockstep: each CPU
// instruction reports the T-cycles it took, and that count drives the PPU
// and timer forward by the same amount.
type Machine struct {
	CPU    *cpu.CPU
	MMU    *memory.MMU
	PPU    *ppu.PPU
	Joypad *input.Joypad
	Logger *debug.Logger
}

// New builds a Machine from a cartridge image and an optional boot ROM.
func New(cart []byte, boot []byte, logger *debug.Logger) (*Machine, error) {
	if logger == nil {
		logger = debug.NewLogger(1024)
	}

	mmu, err := memory.NewMMU(cart, boot)
	if err != nil {
		return nil, err
	}
	mmu.SetLogger(logger)

	joypad := input.NewJoypad()
	mmu.Joypad = joypad

	ppuCore := ppu.NewPPU(mmu)
	ppuCore.SetLogger(logger)

	if !mmu.Header.LogoMatches {
		logger.LogMemoryf(debug.LogLevelWarning,
			"cartridge logo bytes do not match the reference bitmap (title=%q)", mmu.Header.Title)
	}

	cpuCore := cpu.NewCPU(mmu, logger)
	if len(boot) == 0 {
		cpuCore.Regs.Reset()
	} else {
		cpuCore.Regs.ResetForBootROM()
	}

	return &Machine{
		CPU:    cpuCore,
		MMU:    mmu,
		PPU:    ppuCore,
		Joypad: joypad,
		Logger: logger,
	}, nil
}

// RunFrame steps the machine until the PPU has completed one full frame
// (70,224 T-cycles) and returns the frame buffer the PPU just finished.
func (m *Machine) RunFrame() []uint32 {
	m.PPU.FrameReady = false

	elapsed := 0
	for elapsed < cyclesPerFrame {
		cycles := m.CPU.Step()
		m.PPU.Step(cycles)
		m.MMU.Step(cycles)
		elapsed += cycles
	}

	return m.PPU.Framebuffer[:]
}
