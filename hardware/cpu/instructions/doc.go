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

// Package instructions defines the instruction set of the 2A03 CPU. The table
// of definitions returned by GetDefinitions() is generated from the CSV file
// in the generator directory. To regenerate the table:
//
//	go generate ./hardware/cpu/instructions
//
// Only the 151 documented opcodes of the NMOS 6502 are defined. Undefined
// opcodes have a nil entry in the table.
//
// Each Operator belongs to a Family. The CPU dispatches instructions to a
// handler for each family.
package instructions

//go:generate go run ./generator
