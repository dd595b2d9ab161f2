// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

// Package cpubus defines the interface between the CPU and the memory it
// addresses.
//
// The CPU only requires the single byte Read() and Write() functions of the
// Memory interface. The 16-bit and bulk operations are derived from these by
// the functions in this package.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Neither operation can fail. Every 16-bit address is a valid address.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Read16 reads a little-endian 16-bit value from memory. The high byte is
// read from address+1, wrapping around at 0xffff.
func Read16(mem Memory, address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a 16-bit value to memory in little-endian order. The high
// byte is written to address+1, wrapping around at 0xffff.
func Write16(mem Memory, address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}

// Load copies data into memory starting at origin. Data beyond 0xffff wraps
// around to the beginning of memory.
func Load(mem Memory, origin uint16, data []uint8) {
	for i, d := range data {
		mem.Write(origin+uint16(i), d)
	}
}
