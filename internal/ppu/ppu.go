// Package ppu implements the Game Boy picture processing unit: the
// scanline mode timing state machine, background/window/sprite
// composition, and palette translation into a 160x144 frame buffer.
package ppu

import "github.com/retrocoderamen/corelx-boy/internal/debug"

// Mode values occupy STAT's low two bits.
const (
	ModeHBlank uint8 = 0
	ModeVBlank uint8 = 1
	ModeOAM    uint8 = 2
	ModeVRAM   uint8 = 3
)

const (
	cyclesOAM    = 80
	cyclesVRAM   = 172
	cyclesHBlank = 204
	cyclesLine   = cyclesOAM + cyclesVRAM + cyclesHBlank // 456
	visibleLines = 144
	totalLines   = 154

	ScreenWidth  = 160
	ScreenHeight = 144
)

// interrupt bits mirror cpu.IntVBlank/IntLCD; duplicated here for the same
// reason the timer duplicates IntTimer in the memory package.
const (
	intVBlank uint8 = 1 << 0
	intLCD    uint8 = 1 << 1
)

// Bus is the slice of MMU behavior the PPU needs: raw reads for VRAM/OAM
// and registers, and PokeByte for the register writes that are the PPU's
// own (LY, STAT, IF) rather than a CPU access subject to the MMU's normal
// write-blocking policy.
type Bus interface {
	ReadByte(addr uint16) uint8
	PokeByte(addr uint16, v uint8)
}

// PPU drives LY/STAT/LCDC timing and produces one packed-ARGB frame buffer
// per VBlank.
type PPU struct {
	bus Bus

	mode   uint8
	cycles int

	windowLine int

	Framebuffer [ScreenWidth * ScreenHeight]uint32
	FrameReady  bool

	logger *debug.Logger
}

func NewPPU(bus Bus) *PPU {
	p := &PPU{bus: bus, mode: ModeOAM}
	p.bus.PokeByte(0xFF41, ModeOAM)
	return p
}

func (p *PPU) SetLogger(logger *debug.Logger) {
	p.logger = logger
}

func (p *PPU) lcdc() uint8 { return p.bus.ReadByte(0xFF40) }
func (p *PPU) ly() uint8   { return p.bus.ReadByte(0xFF44) }

func (p *PPU) lcdEnabled() bool { return p.lcdc()&0x80 != 0 }

func (p *PPU) setMode(m uint8) {
	p.mode = m
	stat := p.bus.ReadByte(0xFF41)
	stat = (stat &^ 0x03) | m
	p.bus.PokeByte(0xFF41, stat)

	// STAT interrupt sources: mode 0/1/2 each have their own enable bit.
	var statBit uint8
	switch m {
	case ModeHBlank:
		statBit = 0x08
	case ModeVBlank:
		statBit = 0x10
	case ModeOAM:
		statBit = 0x20
	}
	if statBit != 0 && stat&statBit != 0 {
		p.requestInterrupt(intLCD)
	}
}

func (p *PPU) requestInterrupt(bit uint8) {
	iflag := p.bus.ReadByte(0xFF0F)
	p.bus.PokeByte(0xFF0F, iflag|bit)
}

func (p *PPU) setLY(ly uint8) {
	p.bus.PokeByte(0xFF44, ly)
	stat := p.bus.ReadByte(0xFF41)
	lyc := p.bus.ReadByte(0xFF45)
	if ly == lyc {
		stat |= 0x04
		if stat&0x40 != 0 {
			p.requestInterrupt(intLCD)
		}
	} else {
		stat &^= 0x04
	}
	p.bus.PokeByte(0xFF41, stat)
}

// Step advances the PPU by the given T-cycle count, driving the
// OAM(80)->VRAM(172)->HBlank(204) per-line sequence for the 144 visible
// lines followed by a 10-line VBlank period, then wrapping LY back to 0.
func (p *PPU) Step(cycles int) {
	if !p.lcdEnabled() {
		return
	}

	p.cycles += cycles
	before := p.cycles

	switch p.mode {
	case ModeOAM:
		if p.cycles >= cyclesOAM {
			p.cycles -= cyclesOAM
			p.setMode(ModeVRAM)
		}

	case ModeVRAM:
		if p.cycles >= cyclesVRAM {
			p.cycles -= cyclesVRAM
			p.renderScanline(p.ly())
			p.setMode(ModeHBlank)
		}

	case ModeHBlank:
		if p.cycles >= cyclesHBlank {
			p.cycles -= cyclesHBlank
			ly := p.ly() + 1
			p.setLY(ly)
			if int(ly) == visibleLines {
				p.windowLine = 0
				p.FrameReady = true
				p.setMode(ModeVBlank)
				p.requestInterrupt(intVBlank)
			} else {
				p.setMode(ModeOAM)
			}
		}

	case ModeVBlank:
		if p.cycles >= cyclesLine {
			p.cycles -= cyclesLine
			ly := p.ly() + 1
			if int(ly) >= totalLines {
				p.setLY(0)
				p.setMode(ModeOAM)
			} else {
				p.setLY(ly)
			}
		}
	}

	// One call can span several mode boundaries; keep advancing while the
	// remaining cycles still complete the current mode.
	if p.cycles != before {
		p.Step(0)
	}
}
