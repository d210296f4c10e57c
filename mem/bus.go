// Package mem implements the flat 64 KiB memory bus the CPU core executes
// against.
package mem

// A Bus is the central object that holds the CPU's entire address space.
// Unlike the real NES, this core models a single flat 64 KiB region; there is
// no PPU/APU mirroring, no mapper, no bank switching. One Bus belongs to
// exactly one CPU instance.
type Bus struct {
	ram [64 * 1024]byte // zeroed on construction
}

// NewBus returns a Bus with every byte zeroed.
func NewBus() *Bus {
	return &Bus{}
}

// Read returns the byte stored at addr.
func (b *Bus) Read(addr uint16) byte {
	return b.ram[addr]
}

// Write stores data at addr.
func (b *Bus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

// Read16 reads a little-endian 16-bit word: the low byte at addr, the high
// byte at addr+1.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Write16 stores a little-endian 16-bit word: the low byte at addr, the high
// byte at addr+1.
func (b *Bus) Write16(addr uint16, data uint16) {
	b.Write(addr, byte(data&0x00ff))
	b.Write(addr+1, byte(data>>8))
}
