package cpu

import "github.com/hejops/gone6502/mask"

// The processor status byte P packs eight flags:
//
//	7654 3210
//	NV_B DIZC
//
// Bit 5 is unused/reserved and never written by any instruction in this
// core; bit 4 (Break) is likewise never set, since BRK in this core simply
// terminates the interpreter loop without touching P.
var (
	negativeBit = mask.I1
	overflowBit = mask.I2
	decimalBit  = mask.I5
	idBit       = mask.I6
	zeroBit     = mask.I7
	carryBit    = mask.I8
)

// Carry reports the state of the Carry flag (bit 0).
func (c *CPU) Carry() bool { return mask.IsSet(c.P, carryBit) }

// SetCarry sets or clears the Carry flag.
func (c *CPU) SetCarry(v bool) {
	if v {
		c.P = mask.Set(c.P, carryBit, 1)
	} else {
		c.P = mask.Unset(c.P, carryBit, carryBit)
	}
}

// Zero reports the state of the Zero flag (bit 1).
func (c *CPU) Zero() bool { return mask.IsSet(c.P, zeroBit) }

// SetZero sets or clears the Zero flag.
func (c *CPU) SetZero(v bool) {
	if v {
		c.P = mask.Set(c.P, zeroBit, 1)
	} else {
		c.P = mask.Unset(c.P, zeroBit, zeroBit)
	}
}

// InterruptDisable reports the state of the Interrupt-disable flag (bit 2).
func (c *CPU) InterruptDisable() bool { return mask.IsSet(c.P, idBit) }

// SetInterruptDisable sets or clears the Interrupt-disable flag.
func (c *CPU) SetInterruptDisable(v bool) {
	if v {
		c.P = mask.Set(c.P, idBit, 1)
	} else {
		c.P = mask.Unset(c.P, idBit, idBit)
	}
}

// Decimal reports the state of the Decimal flag (bit 3). ADC/SBC in this
// core always perform binary arithmetic regardless of this flag, matching
// NES 6502 behavior.
func (c *CPU) Decimal() bool { return mask.IsSet(c.P, decimalBit) }

// SetDecimal sets or clears the Decimal flag.
func (c *CPU) SetDecimal(v bool) {
	if v {
		c.P = mask.Set(c.P, decimalBit, 1)
	} else {
		c.P = mask.Unset(c.P, decimalBit, decimalBit)
	}
}

// Overflow reports the state of the Overflow flag (bit 6).
func (c *CPU) Overflow() bool { return mask.IsSet(c.P, overflowBit) }

// SetOverflow sets or clears the Overflow flag.
func (c *CPU) SetOverflow(v bool) {
	if v {
		c.P = mask.Set(c.P, overflowBit, 1)
	} else {
		c.P = mask.Unset(c.P, overflowBit, overflowBit)
	}
}

// Negative reports the state of the Negative flag (bit 7).
func (c *CPU) Negative() bool { return mask.IsSet(c.P, negativeBit) }

// SetNegative sets or clears the Negative flag.
func (c *CPU) SetNegative(v bool) {
	if v {
		c.P = mask.Set(c.P, negativeBit, 1)
	} else {
		c.P = mask.Unset(c.P, negativeBit, negativeBit)
	}
}

// updateNZ sets Zero if value == 0, else clears it; sets Negative if bit 7
// of value is set, else clears it. No other bits of P are touched.
func (c *CPU) updateNZ(value byte) {
	c.SetZero(value == 0)
	c.SetNegative(value&0x80 != 0)
}
