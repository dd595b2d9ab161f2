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

package disassembly

import (
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// Patterns for the errors returned by Decode().
const (
	UnknownOpcode    = "disassembly: unknown opcode (%#02x) at (%#04x)"
	TruncatedOperand = "disassembly: truncated operand for %v at (%#04x)"
)

// Disassembly is a sequence of disassembled instructions.
type Disassembly struct {
	Origin  uint16
	Entries []*Entry
}

// String returns the disassembled instructions separated by newlines. There
// is no trailing newline.
func (dsm *Disassembly) String() string {
	s := make([]string, len(dsm.Entries))
	for i, e := range dsm.Entries {
		s[i] = e.String()
	}
	return strings.Join(s, "\n")
}

// decodeOne decodes the instruction at the start of data. The returned result
// has a ByteCount less than Defn.Bytes if data is too short.
func decodeOne(data []uint8, address uint16) execution.Result {
	r := execution.Result{
		Address:   address,
		ByteCount: 1,
	}

	defn, ok := instructions.Lookup(data[0])
	if !ok {
		return r
	}
	r.Defn = defn

	for i := 1; i < defn.Bytes && i < len(data); i++ {
		r.InstructionData |= uint16(data[i]) << (8 * (i - 1))
		r.ByteCount++
	}

	r.Final = r.ByteCount == defn.Bytes

	return r
}

// Decode performs a linear disassembly of the data. The origin is the address
// of the first byte.
func Decode(data []uint8, origin uint16) (*Disassembly, error) {
	dsm := &Disassembly{Origin: origin}

	for i := 0; i < len(data); {
		address := origin + uint16(i)

		r := decodeOne(data[i:], address)
		if r.Defn == nil {
			return nil, curated.Errorf(UnknownOpcode, data[i], address)
		}
		if !r.Final {
			return nil, curated.Errorf(TruncatedOperand, r.Defn.Operator, address)
		}

		dsm.Entries = append(dsm.Entries, FormatResult(r))
		i += r.ByteCount
	}

	return dsm, nil
}

// FromMemory disassembles count instructions from memory starting at the
// address. Undefined opcodes are included in the disassembly as single byte
// entries.
func FromMemory(mem cpubus.Memory, address uint16, count int) *Disassembly {
	dsm := &Disassembly{Origin: address}

	for i := 0; i < count; i++ {
		var data [3]uint8
		for j := range data {
			data[j] = mem.Read(address + uint16(j))
		}

		r := decodeOne(data[:], address)
		dsm.Entries = append(dsm.Entries, FormatResult(r))
		address += uint16(r.ByteCount)
	}

	return dsm
}
