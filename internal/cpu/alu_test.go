package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd8CarryAndHalfCarry(t *testing.T) {
	r := &Registers{}
	result := r.add8(0xFF, 0x01, false)
	require.Equal(t, uint8(0x00), result)
	require.True(t, r.Zero())
	require.False(t, r.Sub())
	require.True(t, r.HalfCarry())
	require.True(t, r.Carry())
}

func TestSub8GenuineBorrow(t *testing.T) {
	r := &Registers{}
	result := r.sub8(0x00, 0x01, false)
	require.Equal(t, uint8(0xFF), result)
	require.False(t, r.Zero())
	require.True(t, r.Sub())
	require.True(t, r.HalfCarry())
	require.True(t, r.Carry())
}

func TestInc8WrapsAndSetsHalfCarryNotCarry(t *testing.T) {
	r := &Registers{}
	r.SetCarry(true)
	result := r.inc8(0xFF)
	require.Equal(t, uint8(0x00), result)
	require.True(t, r.Zero())
	require.False(t, r.Sub())
	require.True(t, r.HalfCarry())
	require.True(t, r.Carry(), "INC must not touch the carry flag")
}

func TestDec8WrapsAndSetsHalfCarryNotCarry(t *testing.T) {
	r := &Registers{}
	r.SetCarry(false)
	result := r.dec8(0x00)
	require.Equal(t, uint8(0xFF), result)
	require.False(t, r.Zero())
	require.True(t, r.Sub())
	require.True(t, r.HalfCarry())
	require.False(t, r.Carry())
}

func TestAddHLHalfCarryAndCarryBoundaries(t *testing.T) {
	r := &Registers{}
	r.SetHL(0x0FFF)
	r.addHL(0x0001)
	require.Equal(t, uint16(0x1000), r.HL())
	require.True(t, r.HalfCarry())
	require.False(t, r.Carry())

	r.SetHL(0xFFFF)
	r.addHL(0x0001)
	require.Equal(t, uint16(0x0000), r.HL())
	require.True(t, r.Carry())
}

func TestDAAAfterBCDAddition(t *testing.T) {
	r := &Registers{}
	r.A = r.add8(0x45, 0x38, false)
	r.daa()
	require.Equal(t, uint8(0x83), r.A)
	require.False(t, r.Carry())
}

func TestRotatesClearZeroVsSetZero(t *testing.T) {
	r := &Registers{}
	r.A = 0x00
	r.rlca()
	require.False(t, r.Zero(), "top-level rotates always clear Z")

	result := r.rlc(0x00)
	require.True(t, r.Zero(), "CB-prefixed rotates set Z from the result")
	require.Equal(t, uint8(0x00), result)
}

func TestBitResSet(t *testing.T) {
	r := &Registers{}
	r.bit(3, 0x08)
	require.False(t, r.Zero())
	require.True(t, r.HalfCarry())

	r.bit(3, 0x00)
	require.True(t, r.Zero())

	require.Equal(t, uint8(0x00), resBit(3, 0x08))
	require.Equal(t, uint8(0x08), setBit(3, 0x00))
}
