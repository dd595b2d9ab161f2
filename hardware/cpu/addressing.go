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
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// read16ZeroPage reads a pointer from page zero. The high byte wraps within
// page zero.
func (mc *CPU) read16ZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// indexed adds the index to the base address. If the instruction is page
// sensitive and the addition crosses a page boundary then the extra cycle is
// noted in the LastResult.
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, index uint8) uint16 {
	address := base + uint16(index)
	if defn.PageSensitive && base&0xff00 != address&0xff00 {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
	return address
}

// resolve returns the address of the operand for the instruction. The PC must
// point to the first byte after the opcode.
//
// Implied, accumulator and relative addressing modes have no operand address.
// Branch instructions calculate the branch target from the operand.
func (mc *CPU) resolve(defn *instructions.Definition) (uint16, error) {
	pc := mc.PC.Address()

	switch defn.AddressingMode {
	case instructions.Immediate:
		return pc, nil

	case instructions.ZeroPage:
		return uint16(mc.mem.Read(pc)), nil

	case instructions.ZeroPageIndexedX:
		return uint16(mc.mem.Read(pc) + mc.X.Value()), nil

	case instructions.ZeroPageIndexedY:
		return uint16(mc.mem.Read(pc) + mc.Y.Value()), nil

	case instructions.Absolute:
		return cpubus.Read16(mc.mem, pc), nil

	case instructions.AbsoluteIndexedX:
		return mc.indexed(defn, cpubus.Read16(mc.mem, pc), mc.X.Value()), nil

	case instructions.AbsoluteIndexedY:
		return mc.indexed(defn, cpubus.Read16(mc.mem, pc), mc.Y.Value()), nil

	case instructions.Indirect:
		pointer := cpubus.Read16(mc.mem, pc)

		// the high byte of the address is read from the same page as the
		// low byte. this is a bug in the NMOS 6502 which is emulated here
		if pointer&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
			lo := mc.mem.Read(pointer)
			hi := mc.mem.Read(pointer & 0xff00)
			return uint16(hi)<<8 | uint16(lo), nil
		}

		return cpubus.Read16(mc.mem, pointer), nil

	case instructions.IndexedIndirect:
		return mc.read16ZeroPage(mc.mem.Read(pc) + mc.X.Value()), nil

	case instructions.IndirectIndexed:
		return mc.indexed(defn, mc.read16ZeroPage(mc.mem.Read(pc)), mc.Y.Value()), nil
	}

	return 0, curated.Errorf(NoOperandAddress, defn.AddressingMode)
}
