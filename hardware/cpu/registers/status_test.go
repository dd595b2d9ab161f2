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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
	test.ExpectEquality(t, sr.Value(), registers.Unused)

	sr.SetNegative(true)
	sr.SetCarry(true)
	test.ExpectEquality(t, sr.String(), "Nv-bdizC")
	test.ExpectEquality(t, sr.Value(), 0xa1)

	sr.SetNegative(false)
	sr.SetOverflow(true)
	sr.SetBreak(true)
	sr.SetDecimal(true)
	sr.SetInterruptDisable(true)
	sr.SetZero(true)
	test.ExpectEquality(t, sr.String(), "nV-BDIZC")
	test.ExpectSuccess(t, sr.Overflow())
	test.ExpectSuccess(t, sr.Break())
	test.ExpectSuccess(t, sr.Decimal())
	test.ExpectSuccess(t, sr.InterruptDisable())
	test.ExpectSuccess(t, sr.Zero())
	test.ExpectSuccess(t, sr.Carry())
	test.ExpectFailure(t, sr.Negative())

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "nv-bdizc")

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)
}

// SetZN must produce the same flags whatever the previous state of the
// register.
func TestSetZN(t *testing.T) {
	for _, prior := range []uint8{0x00, registers.Zero | registers.Negative, 0xff} {
		for v := 0; v <= 0xff; v++ {
			sr := registers.NewStatusRegister()
			sr.Load(prior)
			sr.SetZN(uint8(v))
			test.ExpectEquality(t, sr.Zero(), v == 0, prior, v)
			test.ExpectEquality(t, sr.Negative(), v >= 0x80, prior, v)

			// other flags are untouched
			test.ExpectEquality(t, sr.Value()&^(registers.Zero|registers.Negative),
				(prior|registers.Unused)&^(registers.Zero|registers.Negative), prior, v)
		}
	}
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 1)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 3)

	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0)

	// branching forwards and backwards
	pc.Load(0x8010)
	test.ExpectFailure(t, pc.Branch(0x05))
	test.ExpectEquality(t, pc.Address(), 0x8015)
	test.ExpectFailure(t, pc.Branch(0xfb))
	test.ExpectEquality(t, pc.Address(), 0x8010)

	// branching across a page
	test.ExpectSuccess(t, pc.Branch(0x80))
	test.ExpectEquality(t, pc.Address(), 0x7f90)
	test.ExpectEquality(t, pc.String(), "7f90")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)
	sp.Increment()
	test.ExpectEquality(t, sp.Value(), 0x00)
	test.ExpectEquality(t, sp.Address(), 0x0100)
	sp.Decrement()
	sp.Decrement()
	test.ExpectEquality(t, sp.Value(), 0xfe)
}
