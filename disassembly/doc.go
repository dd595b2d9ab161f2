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

// Package disassembly coordinates the disassembly of 2A03 machine code.
//
// Decode() performs a linear decode of a byte sequence. It fails if the
// sequence contains an undefined opcode or if the final instruction is
// truncated:
//
//	dsm, err := disassembly.Decode([]uint8{0xa9, 0x23, 0x00}, 0x8000)
//	fmt.Println(dsm)
//
// Prints:
//
//	LDA #23
//	BRK
//
// FromMemory() decodes a number of instructions from an area of memory and
// never fails. Undefined opcodes are shown as "???". It is used by the
// debugger.
//
// FormatResult() creates an Entry from an execution.Result and is used to
// describe the most recently executed instruction.
package disassembly
