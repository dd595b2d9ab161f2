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

// Package memorymap describes the layout of the 2A03's 16-bit address space.
// The regions are a convention only. The memory package does not enforce
// any access rules on them.
//
// The MapAddress() function returns the Area of an address.
package memorymap

import "fmt"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case IO:
		return "I/O"
	case ExpansionROM:
		return "Expansion ROM"
	case SaveRAM:
		return "Save RAM"
	case ProgramROM:
		return "Program ROM"
	}

	return "undefined"
}

// The different memory areas in the 2A03 address space.
const (
	Undefined Area = iota
	RAM
	IO
	ExpansionROM
	SaveRAM
	ProgramROM
)

// The origin and memory top for each area of memory.
const (
	OriginRAM          = uint16(0x0000)
	MemtopRAM          = uint16(0x1fff)
	OriginIO           = uint16(0x2000)
	MemtopIO           = uint16(0x401f)
	OriginExpansionROM = uint16(0x4020)
	MemtopExpansionROM = uint16(0x5fff)
	OriginSaveRAM      = uint16(0x6000)
	MemtopSaveRAM      = uint16(0x7fff)
	OriginProgramROM   = uint16(0x8000)
	MemtopProgramROM   = uint16(0xffff)
)

// The stack occupies page one of RAM.
const (
	OriginStack = uint16(0x0100)
	MemtopStack = uint16(0x01ff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// Addresses of the interrupt vectors. Each vector is a little-endian 16-bit
// address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// MapAddress returns the Area the address belongs to.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopRAM:
		return RAM
	case address <= MemtopIO:
		return IO
	case address <= MemtopExpansionROM:
		return ExpansionROM
	case address <= MemtopSaveRAM:
		return SaveRAM
	}
	return ProgramROM
}

// Summary returns a one line description of the address and the area it is
// in.
func Summary(address uint16) string {
	s := fmt.Sprintf("$%04x [%s]", address, MapAddress(address))
	if address >= OriginStack && address <= MemtopStack {
		s = fmt.Sprintf("%s (stack)", s)
	}
	return s
}
