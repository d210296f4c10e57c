// Package cpu implements the MOS Technology 6502 microprocessor core, as
// used in the NES: a fetch-decode-execute engine that interprets a stream of
// opcodes against a flat 64 KiB memory bus, mutating a small register file
// and a status flag byte.
package cpu

import (
	"fmt"

	"github.com/hejops/gone6502/mem"
)

// reset vector and PRG-ROM load address; see
// https://www.nesdev.org/wiki/CPU_memory_map
const (
	resetVector = 0xfffc
	loadAddr    = 0x8000
)

// A CPU has no memory of its own (aside from a handful of small registers).
// Instead, it interfaces with a Bus that provides the full 64 KiB address
// space.
type CPU struct {
	Bus *mem.Bus

	A byte // Accumulator
	X byte
	Y byte

	PC uint16 // ProgramCounter

	// P is the processor status byte.
	//
	// 7654 3210
	// NV_B DIZC
	P byte
}

// New returns a CPU with a freshly zeroed Bus and zeroed registers.
func New() *CPU {
	return &CPU{Bus: mem.NewBus()}
}

// Read reads one byte from addr.
func (c *CPU) Read(addr uint16) byte { return c.Bus.Read(addr) }

// Write writes data to addr.
func (c *CPU) Write(addr uint16, data byte) { c.Bus.Write(addr, data) }

// Read16 reads a little-endian word starting at addr.
func (c *CPU) Read16(addr uint16) uint16 { return c.Bus.Read16(addr) }

// Write16 writes a little-endian word starting at addr.
func (c *CPU) Write16(addr uint16, data uint16) { c.Bus.Write16(addr, data) }

// Load copies program into the PRG-ROM region starting at 0x8000, and points
// the reset vector at 0xfffc to that address.
func (c *CPU) Load(program []byte) {
	for i, b := range program {
		c.Bus.Write(loadAddr+uint16(i), b)
	}
	c.Bus.Write16(resetVector, loadAddr)
}

// Reset clears A, X, Y and P to zero, then primes PC from the reset vector.
// Power-on RAM contents are not modeled; only the vectored PC matters here.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.P = 0
	c.PC = c.Bus.Read16(resetVector)
}

// StepResult records what the most recently executed step did, for display
// by a debugger (see debugger.go): the opcode byte that was fetched, the
// decode table entry it mapped to, the address it was fetched from, and
// whether it was BRK (signaling the interpreter loop should stop).
type StepResult struct {
	PC    uint16
	Op    byte
	Entry Opcode
	Brk   bool
}

// step fetches, decodes and executes a single instruction, advancing PC
// exactly as Run's loop body does. It is the primitive both Run and the
// debugger are built on.
func (c *CPU) step() (StepResult, error) {
	opByte := c.Bus.Read(c.PC)
	pc := c.PC
	c.PC++

	entry, ok := opcodeTable[opByte]
	if !ok {
		return StepResult{}, fmt.Errorf("gone6502: illegal opcode %#02x at %#04x", opByte, pc)
	}

	if err := entry.Run(c, entry.Mode); err != nil {
		return StepResult{}, fmt.Errorf("gone6502: %s at %#04x: %w", entry.Mnemonic, pc, err)
	}

	// operand-bytes advance is unconditional: a taken branch has already
	// replaced PC with its target, and this advance is still folded into
	// that target per the Relative addressing mode's definition (see
	// addressing.go).
	c.PC += uint16(entry.OperandBytes)

	return StepResult{PC: pc, Op: opByte, Entry: entry, Brk: opByte == 0x00}, nil
}

// Step executes a single instruction and reports what it did. It is exported
// for interactive tools (see the debugger) that want to single-step rather
// than run to completion.
func (c *CPU) Step() (StepResult, error) {
	return c.step()
}

// Run executes fetch-decode-execute cycles until BRK (opcode 0x00), or
// returns an error if an opcode byte has no decode table entry or an
// instruction cannot resolve its addressing mode.
func (c *CPU) Run() error {
	for {
		result, err := c.step()
		if err != nil {
			return err
		}
		if result.Brk {
			return nil
		}
	}
}

// LoadAndRun is the convenience composition of Load, Reset and Run.
func (c *CPU) LoadAndRun(program []byte) error {
	c.Load(program)
	c.Reset()
	return c.Run()
}
