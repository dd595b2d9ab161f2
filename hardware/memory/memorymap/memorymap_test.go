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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(0x0000), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x01ff), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x1fff), memorymap.RAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x2000), memorymap.IO)
	test.ExpectEquality(t, memorymap.MapAddress(0x401f), memorymap.IO)
	test.ExpectEquality(t, memorymap.MapAddress(0x4020), memorymap.ExpansionROM)
	test.ExpectEquality(t, memorymap.MapAddress(0x5fff), memorymap.ExpansionROM)
	test.ExpectEquality(t, memorymap.MapAddress(0x6000), memorymap.SaveRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x7fff), memorymap.SaveRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0x8000), memorymap.ProgramROM)
	test.ExpectEquality(t, memorymap.MapAddress(memorymap.Reset), memorymap.ProgramROM)
	test.ExpectEquality(t, memorymap.MapAddress(0xffff), memorymap.ProgramROM)
}

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(0x01f0), "$01f0 [RAM] (stack)")
	test.ExpectEquality(t, memorymap.Summary(0x8000), "$8000 [Program ROM]")
}

func TestParseAddress(t *testing.T) {
	a, err := memorymap.ParseAddress("0x8000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0x8000))

	a, err = memorymap.ParseAddress("$fffc")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0xfffc))

	a, err = memorymap.ParseAddress("1536")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0x0600))

	_, err = memorymap.ParseAddress("0x10000")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memorymap.InvalidAddress))

	_, err = memorymap.ParseAddress("foo")
	test.ExpectFailure(t, err)

	_, err = memorymap.ParseAddress("$")
	test.ExpectFailure(t, err)

	b, err := memorymap.ParseByte("$7f")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x7f))

	_, err = memorymap.ParseByte("256")
	test.ExpectFailure(t, err)
}
