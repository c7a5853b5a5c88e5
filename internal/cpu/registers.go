// Package cpu implements the Sharp LR35902-class instruction set: the
// register file, flag-affecting ALU primitives, and the fetch/decode/execute
// interpreter including the CB-prefixed extension page and interrupt
// servicing.
package cpu

// Flag bit positions within F. The low nibble of F is always zero; every
// write to F is masked to enforce that.
const (
	FlagZ uint8 = 1 << 7 // result was zero
	FlagN uint8 = 1 << 6 // last op was a subtraction
	FlagH uint8 = 1 << 5 // half-carry (bit 3->4 for 8-bit ops, bit 11->12 for 16-bit HL adds)
	FlagC uint8 = 1 << 4 // carry out of bit 7 (8-bit) or bit 15 (16-bit)
)

// Registers holds the eight-bit register file, the flags byte, and the two
// sixteen-bit pointers. AF/BC/DE/HL are views over the eight-bit registers,
// not separate storage.
type Registers struct {
	A, B, C, D, E, H, L uint8
	F                   uint8
	SP, PC              uint16
}

// Reset sets the post-boot-ROM DMG register state, used when a cartridge
// runs without a boot ROM image supplied.
func (r *Registers) Reset() {
	r.A = 0x01
	r.F = 0xB0
	r.SetBC(0x0013)
	r.SetDE(0x00D8)
	r.SetHL(0x014D)
	r.SP = 0xFFFE
	r.PC = 0x0100
}

// ResetForBootROM sets the state the hardware has immediately before the
// boot ROM itself starts executing at PC=0x0000: all registers zero, SP and
// PC undefined by the hardware but conventionally zero until the boot ROM
// sets them.
func (r *Registers) ResetForBootROM() {
	*r = Registers{}
}

func (r *Registers) SetF(v uint8) { r.F = v & 0xF0 }

func (r *Registers) AF() uint16     { return uint16(r.A)<<8 | uint16(r.F) }
func (r *Registers) SetAF(v uint16) { r.A = uint8(v >> 8); r.F = uint8(v) & 0xF0 }

func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

func (r *Registers) flag(mask uint8) bool { return r.F&mask != 0 }
func (r *Registers) setFlag(mask uint8, v bool) {
	if v {
		r.F |= mask
	} else {
		r.F &^= mask
	}
}

func (r *Registers) Zero() bool      { return r.flag(FlagZ) }
func (r *Registers) Sub() bool       { return r.flag(FlagN) }
func (r *Registers) HalfCarry() bool { return r.flag(FlagH) }
func (r *Registers) Carry() bool     { return r.flag(FlagC) }

func (r *Registers) SetZero(v bool)      { r.setFlag(FlagZ, v) }
func (r *Registers) SetSub(v bool)       { r.setFlag(FlagN, v) }
func (r *Registers) SetHalfCarry(v bool) { r.setFlag(FlagH, v) }
func (r *Registers) SetCarry(v bool)     { r.setFlag(FlagC, v) }
