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

package execution

import (
	"github.com/jetsetilly/gopher2a03/curated"
)

// Patterns for the errors returned by IsValid().
const (
	NotFinalised     = "cpu: execution not finalised (bad opcode?)"
	UnexpectedFault  = "cpu: unexpected page fault"
	WrongByteCount   = "cpu: unexpected number of bytes read during decode (%d instead of %d)"
	WrongCycleCount  = "cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)"
	WrongBranchCount = "cpu: number of cycles wrong for branch %#02x [%s] (%d instead of %d, %d or %d)"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final || r.Defn == nil {
		return curated.Errorf(NotFinalised)
	}

	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf(UnexpectedFault)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(WrongByteCount, r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsBranch() {
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 && r.Cycles != r.Defn.Cycles+2 {
			return curated.Errorf(WrongBranchCount, r.Defn.OpCode, r.Defn.Operator,
				r.Cycles, r.Defn.Cycles, r.Defn.Cycles+1, r.Defn.Cycles+2)
		}
		return nil
	}

	expected := r.Defn.Cycles
	if r.PageFault {
		expected++
	}
	if r.Cycles != expected {
		return curated.Errorf(WrongCycleCount, r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
