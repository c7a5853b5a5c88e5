// Package input implements the joypad register at 0xFF00.
package input

// button bit positions within the low nibble of the P1 register, selected
// by which of bits 4/5 the software clears.
const (
	ButtonRight  uint8 = 1 << 0
	ButtonLeft   uint8 = 1 << 1
	ButtonUp     uint8 = 1 << 2
	ButtonDown   uint8 = 1 << 3
	ButtonA      uint8 = 1 << 0
	ButtonB      uint8 = 1 << 1
	ButtonSelect uint8 = 1 << 2
	ButtonStart  uint8 = 1 << 3
)

const (
	selectDirection uint8 = 1 << 4
	selectAction    uint8 = 1 << 5
)

// Joypad implements memory.JoypadRegister. The P1 register is read
// directly rather than through a latched shift register: writing selects
// which button group (direction or action) the low nibble reflects, and
// the bits read back inverted (0 means pressed).
type Joypad struct {
	directionState uint8 // bit set = pressed, ButtonUp/Down/Left/Right
	actionState    uint8 // bit set = pressed, ButtonA/B/Select/Start

	selected uint8 // raw bits 4/5 as last written
}

func NewJoypad() *Joypad {
	return &Joypad{selected: selectDirection | selectAction}
}

// SetButtonState records whether a button is currently held. It is called
// by whatever owns the host input source (a UI event loop, a test driver
// replaying a button script); the Joypad itself never polls hardware.
func (j *Joypad) SetButtonState(button uint8, pressed bool, isAction bool) {
	state := &j.directionState
	if isAction {
		state = &j.actionState
	}
	if pressed {
		*state |= button
	} else {
		*state &^= button
	}
}

// Read returns the current P1 value: the selection bits as last written,
// and the low nibble as the bitwise-inverted OR of whichever groups are
// selected (both can be selected at once, matching hardware).
func (j *Joypad) Read() uint8 {
	nibble := uint8(0x0F)
	if j.selected&selectDirection == 0 {
		nibble &^= j.directionState
	}
	if j.selected&selectAction == 0 {
		nibble &^= j.actionState
	}
	return 0xC0 | j.selected | nibble
}

// Write stores the selection bits; the low nibble is read-only from the
// CPU's side.
func (j *Joypad) Write(v uint8) {
	j.selected = v & (selectDirection | selectAction)
}
