package cpu

import "fmt"

// An AddressingMode tells the CPU where to find the byte(s) an instruction
// operates on. There are 13 possible modes, though this core's decode table
// (see opcodes.go) only ever pairs opcodes with a subset of them.
//
// Most modes can index the full 64 KiB range of memory; ZeroPage and its
// indexed variants are confined to the first 256 bytes.
type AddressingMode int

const (
	None AddressingMode = iota // zero value; never a valid mode for any opcode

	Implied     // does not participate in address resolution
	Accumulator // operates directly on CPU.A; does not participate in address resolution

	Immediate // the operand byte itself is the value
	ZeroPage  // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY
	IndirectX
	IndirectY
	Relative

	Absolute
	AbsoluteX
	AbsoluteY

	// Indirect is carried on the enum for documentation parity with the
	// source this core was adapted from (it backs JMP's indirect form),
	// but no opcode in this core's decode table uses it.
	Indirect
)

// resolve computes the effective 16-bit address for mode, given that c.PC
// points at the first operand byte. It does not advance PC; the interpreter
// loop in Run does that once, after dispatch, using the opcode's
// OperandBytes count.
//
// resolve never mutates CPU state. It returns an error for Implied,
// Accumulator and None, which the caller must never ask to resolve.
func (c *CPU) resolve(mode AddressingMode) (uint16, error) {
	switch mode {

	case Immediate:
		return c.PC, nil

	case ZeroPage:
		return uint16(c.Bus.Read(c.PC)), nil

	case ZeroPageX:
		return uint16(c.Bus.Read(c.PC) + c.X), nil // byte addition wraps mod 256

	case ZeroPageY:
		return uint16(c.Bus.Read(c.PC) + c.Y), nil

	case Absolute:
		return c.Bus.Read16(c.PC), nil

	case AbsoluteX:
		return c.Bus.Read16(c.PC) + uint16(c.X), nil // uint16 addition wraps mod 65536

	case AbsoluteY:
		return c.Bus.Read16(c.PC) + uint16(c.Y), nil

	case IndirectX:
		ptr := c.Bus.Read(c.PC) + c.X // wraps mod 256
		lo := uint16(c.Bus.Read(uint16(ptr)))
		hi := uint16(c.Bus.Read(uint16(ptr + 1))) // ptr+1 wraps mod 256 on the zero page
		return hi<<8 | lo, nil

	case IndirectY:
		ptr := c.Bus.Read(c.PC)
		lo := uint16(c.Bus.Read(uint16(ptr)))
		hi := uint16(c.Bus.Read(uint16(ptr + 1))) // ptr+1 wraps mod 256 on the zero page
		base := hi<<8 | lo
		return base + uint16(c.Y), nil // final sum does not wrap specially

	case Relative:
		rel := int8(c.Bus.Read(c.PC))
		return uint16(int32(c.PC) + int32(rel)), nil

	default:
		return 0, fmt.Errorf("cannot resolve address for mode %v", mode)
	}
}

// loadOperand resolves mode and reads the byte found there. For Immediate
// this yields the operand byte itself.
func (c *CPU) loadOperand(mode AddressingMode) (byte, error) {
	addr, err := c.resolve(mode)
	if err != nil {
		return 0, err
	}
	return c.Bus.Read(addr), nil
}

// target abstracts over the two places a shift/rotate instruction can read
// and write: the accumulator (Accumulator mode) or a resolved memory
// address. This collapses what would otherwise be duplicated
// accumulator/memory branches in every shift instruction.
type target struct {
	read  func() byte
	write func(byte)
}

func (c *CPU) target(mode AddressingMode) (target, error) {
	if mode == Accumulator {
		return target{
			read:  func() byte { return c.A },
			write: func(v byte) { c.A = v },
		}, nil
	}
	addr, err := c.resolve(mode)
	if err != nil {
		return target{}, err
	}
	return target{
		read:  func() byte { return c.Bus.Read(addr) },
		write: func(v byte) { c.Bus.Write(addr, v) },
	}, nil
}
