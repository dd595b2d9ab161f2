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
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction at the address
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. equal to
	// Defn.Bytes once the instruction has been decoded
	ByteCount int

	// the operand of the instruction. for instructions with a single byte
	// operand only the low byte is used
	InstructionData uint16

	// the address the instruction operated on. not meaningful for
	// instructions that do not address memory
	EffectiveAddress uint16

	// number of cycles the instruction took to execute
	Cycles int

	// whether an extra cycle was required because of 8-bit addition
	// overflow during indexing
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether branch instruction test passed (ie. branched) or not.
	BranchSuccess bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
