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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/programs"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestBoot(t *testing.T) {
	con := hardware.NewConsole()

	con.Boot([]uint8{0xa9, 0x05, 0x00}, memorymap.OriginProgramROM)
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8000))
	test.ExpectEquality(t, con.Mem.Read16(memorymap.Reset), uint16(0x8000))
	test.ExpectSuccess(t, con.Run(nil))
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x05))
	test.ExpectSuccess(t, con.CPU.Halted)

	// memory is cleared by Boot()
	con.Boot([]uint8{0xe8, 0x00}, 0x0400)
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x0400))
	test.ExpectEquality(t, con.Mem.Read(0x8000), uint8(0x00))
	test.ExpectEquality(t, con.Origin, uint16(0x0400))

	test.ExpectSuccess(t, con.Step())
	test.ExpectEquality(t, con.CPU.X.Value(), uint8(0x01))

	con.Reset()
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x0400))
	test.ExpectEquality(t, con.CPU.X.Value(), uint8(0x00))
}

func TestSnake(t *testing.T) {
	con := hardware.NewConsole()
	con.Random.ZeroSeed = true
	con.BootSnake()
	test.ExpectEquality(t, con.CPU.PC.Address(), programs.SnakeOrigin)

	const steps = 5000

	var count int
	err := con.Run(func(_ *cpu.CPU) error {
		count++
		if count > steps {
			return cpu.StopRun
		}
		con.SnakeInput(0)
		v := con.Mem.Read(programs.SnakeRandom)
		if v < 1 || v > 15 {
			t.Fatalf("random number out of range: %d", v)
		}
		return nil
	})
	test.ExpectSuccess(t, err)

	// the apple and the snake should both have been drawn
	pixels := make([]uint8, programs.SnakeDisplayWidth*programs.SnakeDisplayHeight)
	test.ExpectSuccess(t, con.SnakeDisplay(pixels))

	var lit int
	for _, p := range pixels {
		if p != 0 {
			lit++
		}
	}
	test.ExpectSuccess(t, lit > 0)

	// nothing has changed since the last call
	test.ExpectFailure(t, con.SnakeDisplay(pixels))
}

func TestSnakeInput(t *testing.T) {
	con := hardware.NewConsole()
	con.BootSnake()

	con.SnakeInput(programs.SnakeLeft)
	test.ExpectEquality(t, con.Mem.Read(programs.SnakeLastKey), programs.SnakeLeft)

	// zero does not overwrite the last key
	con.SnakeInput(0)
	test.ExpectEquality(t, con.Mem.Read(programs.SnakeLastKey), programs.SnakeLeft)
}
