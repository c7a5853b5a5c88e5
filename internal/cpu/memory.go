package cpu

// Memory is the address-space contract the interpreter needs. The MMU is
// the only implementation in this repository; the interpreter is written
// against the interface so tests can swap in a flat byte-slice fake without
// pulling in the full memory package.
type Memory interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, v uint8)
	ReadWord(addr uint16) uint16
	WriteWord(addr uint16, v uint16)
}

// Interrupt bit positions within IE (0xFFFF) and IF (0xFF0F), in servicing
// priority order (lowest bit wins when multiple are pending).
const (
	IntVBlank uint8 = 1 << 0
	IntLCD    uint8 = 1 << 1
	IntTimer  uint8 = 1 << 2
	IntSerial uint8 = 1 << 3
	IntJoypad uint8 = 1 << 4
)

const (
	addrIF uint16 = 0xFF0F
	addrIE uint16 = 0xFFFF
)

var interruptVectors = [5]struct {
	bit    uint8
	vector uint16
}{
	{IntVBlank, 0x0040},
	{IntLCD, 0x0048},
	{IntTimer, 0x0050},
	{IntSerial, 0x0058},
	{IntJoypad, 0x0060},
}
