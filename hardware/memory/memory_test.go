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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	// fresh memory is zeroed
	for a := 0; a <= 0xffff; a++ {
		if mem.Read(uint16(a)) != 0 {
			t.Fatalf("memory not zeroed at %04x", a)
		}
	}

	mem.Write(0x0000, 0x01)
	mem.Write(0xffff, 0x02)
	test.ExpectEquality(t, mem.Read(0x0000), 0x01)
	test.ExpectEquality(t, mem.Read(0xffff), 0x02)

	mem.Clear()
	test.ExpectEquality(t, mem.Read(0xffff), 0x00)
}

func TestLittleEndian(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write16(0x8000, 0x1234)
	test.ExpectEquality(t, mem.Read(0x8000), 0x34)
	test.ExpectEquality(t, mem.Read(0x8001), 0x12)
	test.ExpectEquality(t, mem.Read16(0x8000), 0x1234)

	// round trip for every value
	for v := 0; v <= 0xffff; v++ {
		mem.Write16(0x0200, uint16(v))
		if mem.Read16(0x0200) != uint16(v) {
			t.Fatalf("16-bit round trip failed for %04x", v)
		}
	}

	// high byte of a 16-bit value at the top of memory wraps to zero
	mem.Write16(0xffff, 0xabcd)
	test.ExpectEquality(t, mem.Read(0xffff), 0xcd)
	test.ExpectEquality(t, mem.Read(0x0000), 0xab)
	test.ExpectEquality(t, cpubus.Read16(mem, 0xffff), 0xabcd)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()
	mem.Load(0x8000, []uint8{0xa9, 0x05, 0x00})
	test.ExpectEquality(t, mem.Read(0x8000), 0xa9)
	test.ExpectEquality(t, mem.Read(0x8001), 0x05)
	test.ExpectEquality(t, mem.Read(0x8002), 0x00)

	// loading past the top of memory wraps
	mem.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectEquality(t, mem.Read(0xfffe), 0x01)
	test.ExpectEquality(t, mem.Read(0xffff), 0x02)
	test.ExpectEquality(t, mem.Read(0x0000), 0x03)

	c := mem.Copy(0xfffe, 3)
	test.DemandEquality(t, len(c), 3)
	test.ExpectEquality(t, c[2], 0x03)
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()
	mem.Load(0x0010, []uint8{0xde, 0xad, 0xbe, 0xef})

	tw := &test.Writer{}
	mem.Dump(tw, 0x0010, 4)
	test.ExpectEquality(t, tw.String(), "0010 | de ad be ef\n")

	tw.Clear()
	mem.Dump(tw, 0x0000, 20)
	test.ExpectEquality(t, tw.String(),
		"0000 | 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00\n"+
			"0010 | de ad be ef\n")
}
