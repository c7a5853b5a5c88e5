package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistersReset(t *testing.T) {
	r := &Registers{}
	r.Reset()

	require.Equal(t, uint8(0x01), r.A)
	require.Equal(t, uint8(0xB0), r.F)
	require.Equal(t, uint16(0x0013), r.BC())
	require.Equal(t, uint16(0x00D8), r.DE())
	require.Equal(t, uint16(0x014D), r.HL())
	require.Equal(t, uint16(0xFFFE), r.SP)
	require.Equal(t, uint16(0x0100), r.PC)
}

func TestSetFLowNibbleAlwaysZero(t *testing.T) {
	r := &Registers{}
	r.SetF(0xFF)
	require.Equal(t, uint8(0xF0), r.F, "F's low nibble must always read back zero")
}

func TestSetAFClearsLowNibble(t *testing.T) {
	r := &Registers{}
	r.SetAF(0x12FF)
	require.Equal(t, uint8(0x12), r.A)
	require.Equal(t, uint8(0xF0), r.F)
	require.Equal(t, uint16(0x12F0), r.AF())
}

func TestRegisterPairRoundTrip(t *testing.T) {
	r := &Registers{}
	r.SetBC(0x1234)
	require.Equal(t, uint8(0x12), r.B)
	require.Equal(t, uint8(0x34), r.C)
	require.Equal(t, uint16(0x1234), r.BC())

	r.SetDE(0xABCD)
	require.Equal(t, uint16(0xABCD), r.DE())

	r.SetHL(0x0102)
	require.Equal(t, uint16(0x0102), r.HL())
}

func TestFlagAccessors(t *testing.T) {
	r := &Registers{}
	r.SetZero(true)
	r.SetCarry(true)
	require.True(t, r.Zero())
	require.True(t, r.Carry())
	require.False(t, r.Sub())
	require.False(t, r.HalfCarry())
	require.Equal(t, FlagZ|FlagC, r.F)
}
