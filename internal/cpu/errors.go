package cpu

import "fmt"

// UnknownOpcodeError describes one of the eleven documented undefined
// encodings (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC,
// 0xFD). The interpreter never returns this to a caller: it is recovered
// locally as a logged no-op consuming 4 T-cycles. It is exported so tests
// and the logger adapter can describe the condition without
// hand-formatting the message twice.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}
