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

package hardware

import (
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/programs"
	"github.com/jetsetilly/gopher2a03/random"
)

// Console struct is the main container for the emulated components.
type Console struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// random numbers for programs that expect them to be memory mapped
	Random *random.Random

	// the origin of the most recently booted program
	Origin uint16
}

// NewConsole creates a new console with empty memory. The CPU is in its reset
// state but there is no program to run. Use Boot() or BootSnake().
func NewConsole() *Console {
	con := &Console{
		Mem: memory.NewMemory(),
	}
	con.CPU = cpu.NewCPU(con.Mem)
	con.Random = random.NewRandom(func() int {
		return con.CPU.Cycles
	})
	return con
}

// Boot clears memory, loads the program at the origin address and points the
// reset vector at it. The CPU is then reset.
func (con *Console) Boot(program []uint8, origin uint16) {
	con.Mem.Clear()

	if origin == memorymap.OriginProgramROM {
		con.CPU.LoadProgram(program)
	} else {
		con.CPU.Load(origin, program)
		con.Mem.Write16(memorymap.Reset, origin)
	}

	con.Origin = origin
	con.CPU.InterruptReset()

	logger.Logf(logger.Allow, "console", "booted %d bytes at $%04x", len(program), origin)
}

// BootSnake boots the built-in snake program.
func (con *Console) BootSnake() {
	con.Boot(programs.Snake, programs.SnakeOrigin)
}

// Reset the CPU. The PC is loaded from the reset vector. Memory is not
// cleared.
func (con *Console) Reset() {
	con.CPU.InterruptReset()
}
