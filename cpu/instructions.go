package cpu

// Each routine below implements one mnemonic's documented effect on
// registers, flags and memory. "Load operand" resolves the addressing mode
// and reads the byte found there (for Immediate this is the operand byte
// itself); "NZ" invokes updateNZ on the stated value.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// LDA - Load Accumulator: A <- operand; NZ(A).
func lda(c *CPU, mode AddressingMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.A = v
	c.updateNZ(c.A)
	return nil
}

// STA - Store Accumulator: write A to the resolved address. Flags
// untouched.
func sta(c *CPU, mode AddressingMode) error {
	addr, err := c.resolve(mode)
	if err != nil {
		return err
	}
	c.Bus.Write(addr, c.A)
	return nil
}

// TAX - Transfer Accumulator to X: X <- A; NZ(X).
func tax(c *CPU, mode AddressingMode) error {
	c.X = c.A
	c.updateNZ(c.X)
	return nil
}

// INX - Increment X Register: X <- (X + 1) mod 256; NZ(X).
func inx(c *CPU, mode AddressingMode) error {
	c.X++ // byte arithmetic wraps mod 256
	c.updateNZ(c.X)
	return nil
}

// AND - Logical AND: A <- A & operand; NZ(A).
func and(c *CPU, mode AddressingMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.A &= v
	c.updateNZ(c.A)
	return nil
}

// EOR - Exclusive OR: A <- A ^ operand; NZ(A).
func eor(c *CPU, mode AddressingMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.A ^= v
	c.updateNZ(c.A)
	return nil
}

// ORA - Logical Inclusive OR: A <- A | operand; NZ(A).
func ora(c *CPU, mode AddressingMode) error {
	v, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.A |= v
	c.updateNZ(c.A)
	return nil
}

// ADC - Add with Carry. Computes the 9-bit sum of A, the operand and the
// incoming Carry; Carry is set on unsigned overflow, Overflow is set when
// the operands shared a sign but the result's sign differs from theirs.
func adc(c *CPU, mode AddressingMode) error {
	operand, err := c.loadOperand(mode)
	if err != nil {
		return err
	}

	aBefore := c.A
	var carryIn uint16
	if c.Carry() {
		carryIn = 1
	}

	sum := uint16(aBefore) + uint16(operand) + carryIn
	result := byte(sum)

	c.SetCarry(sum >= 0x100)
	c.SetOverflow((aBefore^operand)&0x80 == 0 && (aBefore^result)&0x80 != 0)

	c.A = result
	c.updateNZ(result)
	return nil
}

// SBC - Subtract with Carry. Carry=1 on entry means "no borrow in"; Carry is
// cleared only if the subtraction underflows. Overflow is set when the
// operands had different signs and the result's sign differs from A's.
func sbc(c *CPU, mode AddressingMode) error {
	operand, err := c.loadOperand(mode)
	if err != nil {
		return err
	}

	aBefore := c.A
	borrow := 1
	if c.Carry() {
		borrow = 0
	}

	diff := int(aBefore) - int(operand) - borrow
	result := byte(diff)

	c.SetCarry(diff >= 0)
	c.SetOverflow((aBefore^operand)&0x80 != 0 && (aBefore^result)&0x80 != 0)

	c.A = result
	c.updateNZ(result)
	return nil
}

// shift is the shared body for ASL/LSR/ROL/ROR: each resolves its target
// (accumulator or memory), derives a new byte from the old one and the
// incoming Carry, writes it back and updates flags. This collapses the
// accumulator/memory duplication each of the four would otherwise repeat.
func shift(c *CPU, mode AddressingMode, next func(old byte, carryIn bool) (newVal byte, carryOut bool)) error {
	t, err := c.target(mode)
	if err != nil {
		return err
	}
	old := t.read()
	newVal, carryOut := next(old, c.Carry())
	c.SetCarry(carryOut)
	c.updateNZ(newVal)
	t.write(newVal)
	return nil
}

// ASL - Arithmetic Shift Left: new = old << 1; Carry <- old bit 7.
func asl(c *CPU, mode AddressingMode) error {
	return shift(c, mode, func(old byte, _ bool) (byte, bool) {
		return old << 1, old&0x80 != 0
	})
}

// LSR - Logical Shift Right: new = old >> 1; Carry <- old bit 0.
func lsr(c *CPU, mode AddressingMode) error {
	return shift(c, mode, func(old byte, _ bool) (byte, bool) {
		return old >> 1, old&0x01 != 0
	})
}

// ROL - Rotate Left: new = (old << 1) | old_Carry; Carry <- old bit 7.
func rol(c *CPU, mode AddressingMode) error {
	return shift(c, mode, func(old byte, carryIn bool) (byte, bool) {
		newVal := old << 1
		if carryIn {
			newVal |= 0x01
		}
		return newVal, old&0x80 != 0
	})
}

// ROR - Rotate Right: new = (old >> 1) | (old_Carry << 7); Carry <- old bit 0.
func ror(c *CPU, mode AddressingMode) error {
	return shift(c, mode, func(old byte, carryIn bool) (byte, bool) {
		newVal := old >> 1
		if carryIn {
			newVal |= 0x80
		}
		return newVal, old&0x01 != 0
	})
}

// BIT - Bit Test: Zero <- (A & M) == 0; Overflow <- M bit 6; Negative <- M
// bit 7. A is unchanged.
func bit(c *CPU, mode AddressingMode) error {
	m, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.SetZero(c.A&m == 0)
	c.SetOverflow(m&0x40 != 0)
	c.SetNegative(m&0x80 != 0)
	return nil
}

// compare is the shared body for CMP/CPX/CPY: Carry <- (reg >= M);
// NZ(reg - M). Neither the register nor memory is otherwise touched.
func compare(c *CPU, mode AddressingMode, reg byte) error {
	m, err := c.loadOperand(mode)
	if err != nil {
		return err
	}
	c.SetCarry(reg >= m)
	c.updateNZ(reg - m) // byte subtraction wraps mod 256
	return nil
}

// CMP - Compare (with Accumulator).
func cmp(c *CPU, mode AddressingMode) error { return compare(c, mode, c.A) }

// CPX - Compare X Register.
func cpx(c *CPU, mode AddressingMode) error { return compare(c, mode, c.X) }

// CPY - Compare Y Register.
func cpy(c *CPU, mode AddressingMode) error { return compare(c, mode, c.Y) }

// branch is the shared body for the eight conditional branches: when taken,
// PC is replaced with the Relative target; the interpreter's unconditional
// operand-bytes advance (see Run in cpu.go) then folds that target to its
// final value. When not taken, PC is left alone, and the same advance
// simply skips the operand byte.
func branch(c *CPU, mode AddressingMode, taken bool) error {
	if !taken {
		return nil
	}
	addr, err := c.resolve(mode)
	if err != nil {
		return err
	}
	c.PC = addr
	return nil
}

// BCC - Branch if Carry Clear.
func bcc(c *CPU, mode AddressingMode) error { return branch(c, mode, !c.Carry()) }

// BCS - Branch if Carry Set.
func bcs(c *CPU, mode AddressingMode) error { return branch(c, mode, c.Carry()) }

// BNE - Branch if Not Equal (Zero clear).
func bne(c *CPU, mode AddressingMode) error { return branch(c, mode, !c.Zero()) }

// BEQ - Branch if Equal (Zero set).
func beq(c *CPU, mode AddressingMode) error { return branch(c, mode, c.Zero()) }

// BPL - Branch if Positive (Negative clear).
func bpl(c *CPU, mode AddressingMode) error { return branch(c, mode, !c.Negative()) }

// BMI - Branch if Minus (Negative set).
func bmi(c *CPU, mode AddressingMode) error { return branch(c, mode, c.Negative()) }

// BVC - Branch if Overflow Clear.
func bvc(c *CPU, mode AddressingMode) error { return branch(c, mode, !c.Overflow()) }

// BVS - Branch if Overflow Set.
func bvs(c *CPU, mode AddressingMode) error { return branch(c, mode, c.Overflow()) }

// CLC - Clear Carry Flag.
func clc(c *CPU, mode AddressingMode) error { c.SetCarry(false); return nil }

// SEC - Set Carry Flag.
func sec(c *CPU, mode AddressingMode) error { c.SetCarry(true); return nil }

// CLD - Clear Decimal Mode. ADC/SBC ignore Decimal regardless of its state.
func cld(c *CPU, mode AddressingMode) error { c.SetDecimal(false); return nil }

// SED - Set Decimal Flag. ADC/SBC ignore Decimal regardless of its state.
func sed(c *CPU, mode AddressingMode) error { c.SetDecimal(true); return nil }

// CLI - Clear Interrupt Disable.
func cli(c *CPU, mode AddressingMode) error { c.SetInterruptDisable(false); return nil }

// SEI - Set Interrupt Disable.
func sei(c *CPU, mode AddressingMode) error { c.SetInterruptDisable(true); return nil }

// CLV - Clear Overflow Flag.
func clv(c *CPU, mode AddressingMode) error { c.SetOverflow(false); return nil }

// BRK - Force Interrupt. In this core, BRK is the interpreter's sole
// termination signal (see Run); the Break flag is never observably set, as
// setting it would require pushing P to a stack this core does not model.
func brk(c *CPU, mode AddressingMode) error { return nil }
