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
	"github.com/jetsetilly/gopher2a03/programs"
)

// Step executes the instruction at the current PC.
func (con *Console) Step() error {
	return con.CPU.Step(con.Mem.Read(con.CPU.PC.Address()))
}

// Run sets the emulation running until a BRK instruction or until the hook
// function returns cpu.StopRun. The hook is called before every instruction.
// A nil hook is allowed.
func (con *Console) Run(hook func(*cpu.CPU) error) error {
	return con.CPU.RunWithCallback(hook)
}

// SnakeInput writes a new random number and the last key pressed into the
// memory locations read by the snake program. A key value of zero leaves the
// previous key in place.
func (con *Console) SnakeInput(key uint8) {
	con.Mem.Write(programs.SnakeRandom, con.Random.Byte(1, 15))
	if key != 0 {
		con.Mem.Write(programs.SnakeLastKey, key)
	}
}

// SnakeDisplay copies the snake display memory into the pixels slice. The
// slice should be SnakeDisplayWidth * SnakeDisplayHeight in length. Returns
// true if any pixel has changed since the last call with the same slice.
func (con *Console) SnakeDisplay(pixels []uint8) bool {
	var changed bool
	for i := range pixels {
		v := con.Mem.Read(programs.SnakeDisplay + uint16(i))
		if pixels[i] != v {
			pixels[i] = v
			changed = true
		}
	}
	return changed
}
