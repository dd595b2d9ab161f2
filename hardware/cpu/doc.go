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

// Package cpu emulates the Ricoh 2A03, the 6502 variant found in the NES. The
// 2A03 is identical to the NMOS 6502 except that it lacks decimal mode
// arithmetic. The D flag can be set and cleared but it has no effect.
//
// The CPU is created with NewCPU() and is given the memory it addresses:
//
//	mem := memory.NewMemory()
//	mc := cpu.NewCPU(mem)
//
// A program is loaded with LoadProgram() which also points the reset vector at
// the program. InterruptReset() then prepares the CPU for execution:
//
//	mc.LoadProgram(program)
//	mc.InterruptReset()
//	err := mc.Run()
//
// Run() executes instructions until a BRK instruction has executed. There is
// no interrupt controller so BRK is treated as the end of the program. The
// return address and status register are pushed onto the stack as they would
// be on real hardware but the IRQ vector is not followed.
//
// RunWithCallback() calls a function before every instruction. The function
// can inspect and change the state of the CPU and its memory. Returning the
// StopRun error from the function ends the run loop without error. Any other
// error is fatal.
//
// Step() executes a single instruction. It is the caller's responsibility to
// read the opcode at the PC:
//
//	err := mc.Step(mc.Read(mc.PC.Address()))
//
// The result of the most recent instruction is recorded in the LastResult
// field. The number of cycles is noted but no attempt is made to emulate the
// timing of the CPU.
package cpu
