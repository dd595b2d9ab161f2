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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/programs"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestDecode(t *testing.T) {
	dsm, err := disassembly.Decode([]uint8{0xa9, 0x23, 0x00}, 0x8000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.String(), "LDA #23\nBRK")

	dsm, err = disassembly.Decode([]uint8{}, 0x8000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.String(), "")
}

func TestAddressingModes(t *testing.T) {
	for _, tc := range []struct {
		data     []uint8
		expected string
	}{
		{[]uint8{0xea}, "NOP"},
		{[]uint8{0x0a}, "ASL A"},
		{[]uint8{0xa9, 0xff}, "LDA #ff"},
		{[]uint8{0xa5, 0x10}, "LDA $10"},
		{[]uint8{0xb5, 0x10}, "LDA $10,X"},
		{[]uint8{0xb6, 0x10}, "LDX $10,Y"},
		{[]uint8{0xd0, 0xfd}, "BNE *-3"},
		{[]uint8{0x10, 0x05}, "BPL *+5"},
		{[]uint8{0xad, 0x00, 0x80}, "LDA $8000"},
		{[]uint8{0xbd, 0x34, 0x12}, "LDA $1234,X"},
		{[]uint8{0xb9, 0x34, 0x12}, "LDA $1234,Y"},
		{[]uint8{0x6c, 0xfc, 0xff}, "JMP ($fffc)"},
		{[]uint8{0xa1, 0x20}, "LDA ($20,X)"},
		{[]uint8{0xb1, 0x20}, "LDA ($20),Y"},
	} {
		dsm, err := disassembly.Decode(tc.data, 0x0000)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, dsm.String(), tc.expected)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := disassembly.Decode([]uint8{0xa9, 0x23, 0x02}, 0x8000)
	test.ExpectSuccess(t, curated.Is(err, disassembly.UnknownOpcode))
	test.ExpectEquality(t, err.Error(), "disassembly: unknown opcode (0x02) at (0x8002)")

	_, err = disassembly.Decode([]uint8{0xa9, 0x23, 0xad, 0x00}, 0x8000)
	test.ExpectSuccess(t, curated.Is(err, disassembly.TruncatedOperand))
}

func TestSnake(t *testing.T) {
	dsm, err := disassembly.Decode(programs.Snake, programs.SnakeOrigin)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 164)
	test.ExpectEquality(t, dsm.Entries[0].String(), "JSR $0606")
	test.ExpectEquality(t, dsm.Entries[0].Address, "$0600")
	test.ExpectEquality(t, dsm.Entries[1].String(), "JSR $0638")
	test.ExpectEquality(t, dsm.Entries[len(dsm.Entries)-1].String(), "RTS")
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.Decode([]uint8{0xa9, 0x23, 0x00}, 0x8000)
	test.DemandSuccess(t, err)

	tw := &test.Writer{}
	dsm.Write(tw, disassembly.WriteAttr{})
	test.ExpectEquality(t, tw.String(), "$8000 LDA #23\n$8002 BRK\n")

	tw.Clear()
	dsm.Write(tw, disassembly.WriteAttr{ByteCode: true, Cycles: true})
	test.ExpectEquality(t, tw.String(),
		"$8000 a9 23    LDA #23      ; 2\n"+
			"$8002 00       BRK          ; 7\n")
}

func TestFromMemory(t *testing.T) {
	mem := memory.NewMemory()
	mem.Load(0x8000, []uint8{0xa2, 0x01, 0x02, 0x8d, 0x00, 0x02})

	dsm := disassembly.FromMemory(mem, 0x8000, 4)
	test.DemandEquality(t, len(dsm.Entries), 4)
	test.ExpectEquality(t, dsm.Entries[0].String(), "LDX #01")
	test.ExpectEquality(t, dsm.Entries[1].String(), "???")
	test.ExpectEquality(t, dsm.Entries[1].Address, "$8002")
	test.ExpectEquality(t, dsm.Entries[2].String(), "STA $0200")
	test.ExpectEquality(t, dsm.Entries[2].Bytecode, "8d 00 02")
	test.ExpectEquality(t, dsm.Entries[3].String(), "BRK")
	test.ExpectEquality(t, dsm.Entries[3].Address, "$8006")
}

func TestFormatResult(t *testing.T) {
	defn, ok := instructions.Lookup(0x8d)
	test.DemandSuccess(t, ok)

	// a partially decoded instruction
	e := disassembly.FormatResult(execution.Result{
		Address:         0x8000,
		Defn:            defn,
		ByteCount:       2,
		InstructionData: 0x0034,
	})
	test.ExpectEquality(t, e.Bytecode, "8d 34 ??")
	test.ExpectEquality(t, e.String(), "STA ?")

	e = disassembly.FormatResult(execution.Result{
		Address:         0x8000,
		Defn:            defn,
		ByteCount:       3,
		InstructionData: 0x1234,
		Final:           true,
	})
	test.ExpectEquality(t, e.Bytecode, "8d 34 12")
	test.ExpectEquality(t, e.String(), "STA $1234")
}
