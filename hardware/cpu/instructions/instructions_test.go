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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestDefinitionsTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	legal := 0
	operators := make(map[instructions.Operator]bool)

	for i, defn := range defs {
		if defn == nil {
			continue
		}
		legal++

		// each entry is in the position indicated by its opcode
		test.ExpectEquality(t, int(defn.OpCode), i)

		// the number of bytes is consistent with the addressing mode
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.OperandBytes()+1, defn.Operator)

		// every operator belongs to a family
		test.ExpectInequality(t, defn.Operator.Family(), instructions.NoFamily, defn.Operator)

		operators[defn.Operator] = true
	}

	test.ExpectEquality(t, legal, 151)

	// every operator is used by at least one opcode
	test.ExpectEquality(t, len(operators), int(instructions.NumOperators))
}

func TestEffects(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}

		switch defn.Operator.Family() {
		case instructions.Store:
			test.ExpectEquality(t, defn.Effect, instructions.Write, defn.Operator)
		case instructions.Branch:
			test.ExpectEquality(t, defn.Effect, instructions.Flow, defn.Operator)
			test.ExpectSuccess(t, defn.IsBranch(), defn.Operator)
			test.ExpectSuccess(t, defn.PageSensitive, defn.Operator)
		case instructions.Shift, instructions.Rotate, instructions.Crement:
			if defn.AddressingMode == instructions.Accumulator {
				test.ExpectEquality(t, defn.Effect, instructions.Read, defn.Operator)
			} else {
				test.ExpectEquality(t, defn.Effect, instructions.RMW, defn.Operator)
			}
		default:
			test.ExpectFailure(t, defn.IsBranch(), defn.Operator)
		}
	}
}

func TestLookup(t *testing.T) {
	defn, ok := instructions.Lookup(0xa9)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Operator, instructions.Lda)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defn.Bytes, 2)
	test.ExpectEquality(t, defn.Cycles, 2)

	defn, ok = instructions.Lookup(0x6c)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Operator, instructions.Jmp)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)

	_, ok = instructions.Lookup(0x02)
	test.ExpectFailure(t, ok)
	_, ok = instructions.Lookup(0xff)
	test.ExpectFailure(t, ok)
}

func TestOperators(t *testing.T) {
	test.ExpectEquality(t, instructions.Adc.String(), "ADC")
	test.ExpectEquality(t, instructions.Tya.String(), "TYA")
	test.ExpectEquality(t, instructions.Tya.GoString(), "Tya")

	for o := instructions.Operator(0); o < instructions.NumOperators; o++ {
		p, ok := instructions.ParseOperator(o.String())
		test.ExpectSuccess(t, ok, o)
		test.ExpectEquality(t, p, o)
	}

	p, ok := instructions.ParseOperator(" lda ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, instructions.Lda)

	_, ok = instructions.ParseOperator("XYZ")
	test.ExpectFailure(t, ok)
}
