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

package debugger

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

func TestBreakpointList(t *testing.T) {
	bp := newBreakpoints()
	test.ExpectEquality(t, bp.String(), "no breakpoints")
	test.ExpectFailure(t, bp.check(0x8000))

	test.ExpectSuccess(t, bp.add(0x8000))
	test.ExpectSuccess(t, bp.add(0x0600))
	test.ExpectFailure(t, bp.add(0x8000))
	test.ExpectSuccess(t, bp.check(0x8000))
	test.ExpectEquality(t, bp.String(), " 0: $0600\n 1: $8000\n")

	test.ExpectSuccess(t, bp.drop(0x8000))
	test.ExpectFailure(t, bp.drop(0x8000))
	test.ExpectFailure(t, bp.check(0x8000))

	bp.clear()
	test.ExpectFailure(t, bp.check(0x0600))
}
