package memory

import (
	"github.com/retrocoderamen/corelx-boy/internal/debug"
)

// JoypadRegister is implemented by whatever owns button state. The MMU
// delegates all 0xFF00 reads and writes to it rather than treating the
// joypad as a plain memory byte.
type JoypadRegister interface {
	Read() uint8
	Write(v uint8)
}

// MMU is the flat 64 KiB address space backing the CPU, PPU, and timer. A
// single backing array holds the whole space; the cartridge is mapped
// directly into the low 32 KiB and no bank switching occurs.
type MMU struct {
	mem [0x10000]uint8

	boot       [256]byte
	bootLoaded bool
	bootMapped bool

	Header CartridgeHeader

	Joypad JoypadRegister

	timer timerState

	logger *debug.Logger
}

// NewMMU builds an MMU over cart, which must be at least MinCartridgeSize
// bytes. boot, if non-nil, is mapped over 0x0000-0x00FF until the program
// disables it by writing a non-zero value to 0xFF50.
func NewMMU(cart []uint8, boot []byte) (*MMU, error) {
	if len(cart) < MinCartridgeSize {
		return nil, &InvalidCartridgeError{Size: len(cart)}
	}

	m := &MMU{}
	m.Header = readCartridgeHeader(cart)

	romBytes := cart
	if len(romBytes) > 0x8000 {
		romBytes = romBytes[:0x8000]
	}
	copy(m.mem[:], romBytes)

	if len(boot) > 0 {
		n := copy(m.boot[:], boot)
		m.bootLoaded = n > 0
		m.bootMapped = m.bootLoaded
	}

	// Power-on I/O defaults match the values the boot ROM would have left
	// behind; a cartridge run without a boot ROM still needs sane joypad
	// and interrupt-flag register contents.
	m.mem[0xFF00] = 0xCF
	m.mem[0xFF0F] = 0xE1

	return m, nil
}

// SetLogger attaches a logger for diagnostic messages.
func (m *MMU) SetLogger(logger *debug.Logger) {
	m.logger = logger
}

// ppuMode reports the PPU mode currently latched in STAT's low two bits.
// The MMU has no direct reference to the PPU; it only ever reads the byte
// the PPU itself writes through PokeByte, which keeps the two packages
// from depending on each other.
func (m *MMU) ppuMode() uint8 {
	return m.mem[0xFF41] & 0x03
}

// ReadByte reads a single byte from the 64 KiB address space.
func (m *MMU) ReadByte(addr uint16) uint8 {
	if m.bootMapped && addr < 0x0100 {
		return m.boot[addr]
	}

	switch {
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		return 0xFF
	case addr == 0xFF00:
		if m.Joypad != nil {
			return m.Joypad.Read()
		}
		return m.mem[addr]
	default:
		return m.mem[addr]
	}
}

// WriteByte writes a single byte, applying the region write policy: ROM is
// read-only, VRAM is blocked during PPU mode 3, OAM is blocked during PPU
// modes 2 and 3, WRAM writes mirror into echo RAM (and vice versa), and the
// unused region ignores writes entirely.
func (m *MMU) WriteByte(addr uint16, v uint8) {
	switch {
	case addr < 0x8000:
		return // ROM, read-only

	case addr >= 0x8000 && addr <= 0x9FFF:
		if m.ppuMode() == 3 {
			return
		}
		m.mem[addr] = v

	case addr >= 0xC000 && addr <= 0xDDFF:
		m.mem[addr] = v
		m.mem[addr+0x2000] = v

	case addr >= 0xDE00 && addr <= 0xDFFF:
		m.mem[addr] = v // tail of WRAM bank 1, no echo partner

	case addr >= 0xE000 && addr <= 0xFDFF:
		m.mem[addr] = v
		m.mem[addr-0x2000] = v

	case addr >= 0xFE00 && addr <= 0xFE9F:
		mode := m.ppuMode()
		if mode == 2 || mode == 3 {
			return
		}
		m.mem[addr] = v

	case addr >= 0xFEA0 && addr <= 0xFEFF:
		return // unused region, writes ignored

	case addr == 0xFF00:
		if m.Joypad != nil {
			m.Joypad.Write(v)
		}
		m.mem[addr] = v

	case addr == 0xFF04:
		m.timer.divCounter = 0
		m.mem[addr] = 0

	case addr == 0xFF44:
		m.mem[addr] = 0 // LY is read-only to software; writes reset it

	case addr == 0xFF46:
		m.dmaTransfer(v)
		m.mem[addr] = v

	case addr == 0xFF50:
		if v != 0 {
			m.bootMapped = false
		}
		m.mem[addr] = v

	default:
		m.mem[addr] = v
	}
}

// dmaTransfer performs the instant OAM DMA copy triggered by writing to
// 0xFF46: 160 bytes are copied from src<<8 directly into OAM, bypassing
// the normal OAM write-blocking policy since real hardware performs this
// transfer independently of the CPU's bus access.
func (m *MMU) dmaTransfer(src uint8) {
	base := uint16(src) << 8
	for i := uint16(0); i < 160; i++ {
		m.mem[0xFE00+i] = m.mem[base+i]
	}
}

// PokeByte writes directly into the backing array, bypassing every write
// policy WriteByte applies. It exists for components that are part of the
// machine itself rather than software running on it: the PPU advancing LY
// and its own STAT mode bits, for instance, must never be blocked by the
// OAM/VRAM access rules those same bits gate for the CPU.
func (m *MMU) PokeByte(addr uint16, v uint8) {
	m.mem[addr] = v
}

// ReadWord reads a little-endian 16-bit value.
func (m *MMU) ReadWord(addr uint16) uint16 {
	lo := m.ReadByte(addr)
	hi := m.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit value.
func (m *MMU) WriteWord(addr uint16, v uint16) {
	m.WriteByte(addr, uint8(v))
	m.WriteByte(addr+1, uint8(v>>8))
}

// Step advances the timer by the given T-cycle count. The machine driver
// calls this once per CPU step with the cycle count that step reported.
func (m *MMU) Step(cycles int) {
	m.stepTimer(cycles)
}
