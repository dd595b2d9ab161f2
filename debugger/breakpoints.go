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
	"fmt"
	"sort"
	"strings"
)

// breakpoints are checked by the RUN command before every instruction.
type breakpoints struct {
	addresses map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		addresses: make(map[uint16]bool),
	}
}

func (bp *breakpoints) add(address uint16) error {
	if bp.addresses[address] {
		return fmt.Errorf("breakpoint already exists at $%04x", address)
	}
	bp.addresses[address] = true
	return nil
}

func (bp *breakpoints) drop(address uint16) error {
	if !bp.addresses[address] {
		return fmt.Errorf("no breakpoint at $%04x", address)
	}
	delete(bp.addresses, address)
	return nil
}

func (bp *breakpoints) clear() {
	bp.addresses = make(map[uint16]bool)
}

func (bp *breakpoints) check(address uint16) bool {
	return bp.addresses[address]
}

// String lists the breakpoints in address order, one per line.
func (bp *breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}

	l := make([]int, 0, len(bp.addresses))
	for a := range bp.addresses {
		l = append(l, int(a))
	}
	sort.Ints(l)

	s := strings.Builder{}
	for i, a := range l {
		s.WriteString(fmt.Sprintf("% 2d: $%04x\n", i, a))
	}
	return s.String()
}
