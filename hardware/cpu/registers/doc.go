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

// Package registers implements the three types of register found in the 2A03.
// The Register type is used for the A, X and Y registers. The ProgramCounter
// and StackPointer types are specialised for their tasks, and the
// StatusRegister type stores the processor flags.
//
// The Register type implements the arithmetic and logical operations of the
// CPU. Each operation returns the flags that the operation produces, for
// example:
//
//	carry, overflow := A.Add(value, mc.Status.Carry())
//
// The Register type is also useful as a scratch register, for instance when
// performing a read-modify-write instruction on a memory location. Decimal
// mode arithmetic is not supported by the 2A03 and so is not implemented.
package registers
