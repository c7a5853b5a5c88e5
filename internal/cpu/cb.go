package cpu

// executeCB dispatches the 256-entry CB-prefixed extension page. The page
// is fully regular: the top two bits select rotate/shift (00), BIT (01),
// RES (10), or SET (11); the next three bits select the bit index (for
// BIT/RES/SET) or the specific rotate/shift operation; the bottom three
// select the r8 operand.
func (c *CPU) executeCB(cbOpcode uint8) int {
	group := cbOpcode >> 6
	bitOrOp := (cbOpcode >> 3) & 0x7
	reg := cbOpcode & 0x7

	operand := c.readR8(reg)

	switch group {
	case 0: // rotate/shift
		var result uint8
		switch bitOrOp {
		case 0:
			result = c.Regs.rlc(operand)
		case 1:
			result = c.Regs.rrc(operand)
		case 2:
			result = c.Regs.rl(operand)
		case 3:
			result = c.Regs.rr(operand)
		case 4:
			result = c.Regs.sla(operand)
		case 5:
			result = c.Regs.sra(operand)
		case 6:
			result = c.Regs.swap(operand)
		default:
			result = c.Regs.srl(operand)
		}
		c.writeR8(reg, result)
		if reg == r8HL {
			return 16
		}
		return 8

	case 1: // BIT b,r
		c.Regs.bit(bitOrOp, operand)
		if reg == r8HL {
			return 12
		}
		return 8

	case 2: // RES b,r
		c.writeR8(reg, resBit(bitOrOp, operand))
		if reg == r8HL {
			return 16
		}
		return 8

	default: // SET b,r
		c.writeR8(reg, setBit(bitOrOp, operand))
		if reg == r8HL {
			return 16
		}
		return 8
	}
}
