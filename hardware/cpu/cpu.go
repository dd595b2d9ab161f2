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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
)

// the address of program ROM. LoadProgram() loads programs here.
const programOrigin = memorymap.OriginProgramROM

// CPU implements the 2A03 found in the NES.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// the memory the CPU addresses
	mem cpubus.Memory

	// instruction definitions indexed by opcode
	instructions []*instructions.Definition

	// the result of the most recently executed instruction
	LastResult execution.Result

	// the accumulated number of cycles since the last reset
	Cycles int

	// a BRK instruction has been executed. the run loop will end
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. Note
// that the CPU will be in an initialised state following this call but PC
// will not point to a program. Use InterruptReset() for that.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// memory with the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC,
		mc.A.Label(), mc.A,
		mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP,
		mc.Status.Label(), mc.Status,
	)
}

// Reset puts the registers into their default state. The stack pointer is
// set to 0xff and every other register is zero. Memory is not affected.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Cycles = 0
	mc.Halted = false

	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewStackPointer(0xff)
	mc.Status = registers.NewStatusRegister()
}

// InterruptReset resets the CPU and loads the PC from the reset vector.
func (mc *CPU) InterruptReset() {
	mc.Reset()
	mc.PC.Load(cpubus.Read16(mc.mem, memorymap.Reset))
}

// Load copies data into memory at the origin address. The registers and the
// reset vector are not changed.
func (mc *CPU) Load(origin uint16, data []uint8) {
	cpubus.Load(mc.mem, origin, data)
}

// LoadProgram copies the program into program ROM and points the reset
// vector at it.
func (mc *CPU) LoadProgram(program []uint8) {
	mc.Load(programOrigin, program)
	cpubus.Write16(mc.mem, memorymap.Reset, programOrigin)
}

// Read returns the value at the address without affecting the state of the
// CPU.
func (mc *CPU) Read(address uint16) uint8 {
	return mc.mem.Read(address)
}

// Write a value to the address. Used by debuggers and front ends that provide
// memory mapped input.
func (mc *CPU) Write(address uint16, data uint8) {
	mc.mem.Write(address, data)
}

// Stack returns the contents of the stack from the byte above the stack
// pointer to the top of the stack page.
func (mc *CPU) Stack() string {
	s := strings.Builder{}
	for a := mc.SP.Address() + 1; a <= memorymap.MemtopStack; a++ {
		s.WriteString(fmt.Sprintf("%02x ", mc.mem.Read(a)))
	}
	return strings.TrimSpace(s.String())
}

// push8 writes the value to the stack and then decrements the stack pointer.
func (mc *CPU) push8(v uint8) {
	mc.mem.Write(mc.SP.Address(), v)
	mc.SP.Decrement()
}

// pull8 increments the stack pointer and then reads the value from the stack.
func (mc *CPU) pull8() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(mc.SP.Address())
}

// push16 pushes the high byte and then the low byte.
func (mc *CPU) push16(v uint16) {
	mc.push8(uint8(v >> 8))
	mc.push8(uint8(v))
}

// pull16 pulls the low byte and then the high byte.
func (mc *CPU) pull16() uint16 {
	lo := mc.pull8()
	hi := mc.pull8()
	return uint16(hi)<<8 | uint16(lo)
}
