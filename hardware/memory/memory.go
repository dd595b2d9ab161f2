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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
)

// Memory is the 64KiB address space of the 2A03.
type Memory struct {
	data [int(memorymap.Memtop) + 1]uint8
}

// NewMemory is the preferred method of initialisation for Memory. All bytes
// are zero.
func NewMemory() *Memory {
	return &Memory{}
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Read16 reads a little-endian 16-bit value.
func (mem *Memory) Read16(address uint16) uint16 {
	return cpubus.Read16(mem, address)
}

// Write16 writes a little-endian 16-bit value.
func (mem *Memory) Write16(address uint16, data uint16) {
	cpubus.Write16(mem, address, data)
}

// Load copies data into memory at the origin address.
func (mem *Memory) Load(origin uint16, data []uint8) {
	cpubus.Load(mem, origin, data)
}

// Copy returns a copy of length bytes starting at origin. The copy wraps
// around at the top of memory.
func (mem *Memory) Copy(origin uint16, length int) []uint8 {
	c := make([]uint8, length)
	for i := range c {
		c[i] = mem.data[origin+uint16(i)]
	}
	return c
}

// Clear sets every byte of memory to zero.
func (mem *Memory) Clear() {
	mem.data = [len(mem.data)]uint8{}
}

// Dump writes a hex listing of length bytes starting at origin. Each line is
// sixteen bytes, prefixed with the address of the first byte.
func (mem *Memory) Dump(w io.Writer, origin uint16, length int) {
	s := strings.Builder{}
	for i := 0; i < length; i += 16 {
		s.WriteString(fmt.Sprintf("%04x |", origin+uint16(i)))
		for j := i; j < i+16 && j < length; j++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[origin+uint16(j)]))
		}
		s.WriteString("\n")
	}
	io.WriteString(w, s.String())
}
