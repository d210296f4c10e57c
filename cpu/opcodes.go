package cpu

// An Opcode pairs a byte value (0x00-0xff) with the (mnemonic, addressing
// mode, operand-byte-count) triple the interpreter needs to dispatch it.
// Multiple opcode bytes may map to the same mnemonic, differing only in how
// the operand is located; the addressing-mode resolver (see addressing.go)
// handles that, not the instruction routine itself.
type Opcode struct {
	Mnemonic string
	Mode     AddressingMode

	// OperandBytes is how far PC advances past the operand once Run has
	// already advanced. Always 0, 1 or 2.
	OperandBytes byte

	// Run executes the instruction. A taken branch or BRK communicates
	// control transfer back to Run by mutating c.PC directly or simply
	// returning (Run's own opcode==0x00 check stops the loop for BRK).
	Run func(c *CPU, mode AddressingMode) error
}

// opcodeTable realizes exactly the opcodes this core's instruction set
// covers. Opcodes outside this table (including every 6502 mnemonic this
// core does not implement, such as JMP/JSR/the stack instructions/DEC/INC
// family) are a decode failure, per §7's Decode failure error category.
var opcodeTable = map[byte]Opcode{
	// LDA
	0xA9: {Mnemonic: "LDA", Mode: Immediate, OperandBytes: 1, Run: lda},
	0xA5: {Mnemonic: "LDA", Mode: ZeroPage, OperandBytes: 1, Run: lda},
	0xB5: {Mnemonic: "LDA", Mode: ZeroPageX, OperandBytes: 1, Run: lda},
	0xAD: {Mnemonic: "LDA", Mode: Absolute, OperandBytes: 2, Run: lda},
	0xBD: {Mnemonic: "LDA", Mode: AbsoluteX, OperandBytes: 2, Run: lda},
	0xB9: {Mnemonic: "LDA", Mode: AbsoluteY, OperandBytes: 2, Run: lda},
	0xA1: {Mnemonic: "LDA", Mode: IndirectX, OperandBytes: 1, Run: lda},
	0xB1: {Mnemonic: "LDA", Mode: IndirectY, OperandBytes: 1, Run: lda},

	// STA
	0x85: {Mnemonic: "STA", Mode: ZeroPage, OperandBytes: 1, Run: sta},
	0x95: {Mnemonic: "STA", Mode: ZeroPageX, OperandBytes: 1, Run: sta},
	0x8D: {Mnemonic: "STA", Mode: Absolute, OperandBytes: 2, Run: sta},
	0x9D: {Mnemonic: "STA", Mode: AbsoluteX, OperandBytes: 2, Run: sta},
	0x99: {Mnemonic: "STA", Mode: AbsoluteY, OperandBytes: 2, Run: sta},
	0x81: {Mnemonic: "STA", Mode: IndirectX, OperandBytes: 1, Run: sta},
	0x91: {Mnemonic: "STA", Mode: IndirectY, OperandBytes: 1, Run: sta},

	// ALU immediate forms
	0x69: {Mnemonic: "ADC", Mode: Immediate, OperandBytes: 1, Run: adc},
	0xE9: {Mnemonic: "SBC", Mode: Immediate, OperandBytes: 1, Run: sbc},
	0x29: {Mnemonic: "AND", Mode: Immediate, OperandBytes: 1, Run: and},
	0x49: {Mnemonic: "EOR", Mode: Immediate, OperandBytes: 1, Run: eor},
	0x09: {Mnemonic: "ORA", Mode: Immediate, OperandBytes: 1, Run: ora},

	// Shifts/rotates: accumulator and zero-page forms
	0x0A: {Mnemonic: "ASL", Mode: Accumulator, OperandBytes: 0, Run: asl},
	0x06: {Mnemonic: "ASL", Mode: ZeroPage, OperandBytes: 1, Run: asl},
	0x4A: {Mnemonic: "LSR", Mode: Accumulator, OperandBytes: 0, Run: lsr},
	0x46: {Mnemonic: "LSR", Mode: ZeroPage, OperandBytes: 1, Run: lsr},
	0x2A: {Mnemonic: "ROL", Mode: Accumulator, OperandBytes: 0, Run: rol},
	0x26: {Mnemonic: "ROL", Mode: ZeroPage, OperandBytes: 1, Run: rol},
	0x6A: {Mnemonic: "ROR", Mode: Accumulator, OperandBytes: 0, Run: ror},
	0x66: {Mnemonic: "ROR", Mode: ZeroPage, OperandBytes: 1, Run: ror},

	// BIT
	0x24: {Mnemonic: "BIT", Mode: ZeroPage, OperandBytes: 1, Run: bit},
	0x2C: {Mnemonic: "BIT", Mode: Absolute, OperandBytes: 2, Run: bit},

	// Branches
	0x10: {Mnemonic: "BPL", Mode: Relative, OperandBytes: 1, Run: bpl},
	0x30: {Mnemonic: "BMI", Mode: Relative, OperandBytes: 1, Run: bmi},
	0x50: {Mnemonic: "BVC", Mode: Relative, OperandBytes: 1, Run: bvc},
	0x70: {Mnemonic: "BVS", Mode: Relative, OperandBytes: 1, Run: bvs},
	0x90: {Mnemonic: "BCC", Mode: Relative, OperandBytes: 1, Run: bcc},
	0xB0: {Mnemonic: "BCS", Mode: Relative, OperandBytes: 1, Run: bcs},
	0xD0: {Mnemonic: "BNE", Mode: Relative, OperandBytes: 1, Run: bne},
	0xF0: {Mnemonic: "BEQ", Mode: Relative, OperandBytes: 1, Run: beq},

	// Compares
	0xC9: {Mnemonic: "CMP", Mode: Immediate, OperandBytes: 1, Run: cmp},
	0xE0: {Mnemonic: "CPX", Mode: Immediate, OperandBytes: 1, Run: cpx},
	0xC0: {Mnemonic: "CPY", Mode: Immediate, OperandBytes: 1, Run: cpy},

	// Flag ops
	0x18: {Mnemonic: "CLC", Mode: Implied, OperandBytes: 0, Run: clc},
	0x38: {Mnemonic: "SEC", Mode: Implied, OperandBytes: 0, Run: sec},
	0x58: {Mnemonic: "CLI", Mode: Implied, OperandBytes: 0, Run: cli},
	0x78: {Mnemonic: "SEI", Mode: Implied, OperandBytes: 0, Run: sei},
	0xB8: {Mnemonic: "CLV", Mode: Implied, OperandBytes: 0, Run: clv},
	0xD8: {Mnemonic: "CLD", Mode: Implied, OperandBytes: 0, Run: cld},
	0xF8: {Mnemonic: "SED", Mode: Implied, OperandBytes: 0, Run: sed},

	// Transfer/increment
	0xAA: {Mnemonic: "TAX", Mode: Implied, OperandBytes: 0, Run: tax},
	0xE8: {Mnemonic: "INX", Mode: Implied, OperandBytes: 0, Run: inx},

	// BRK
	0x00: {Mnemonic: "BRK", Mode: Implied, OperandBytes: 0, Run: brk},
}
