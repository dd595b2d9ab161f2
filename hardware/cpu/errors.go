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

package cpu

import "errors"

// Patterns for the curated errors returned by the CPU. All of these errors
// are fatal.
const (
	// raised when the opcode has no definition. the third value is a dump of
	// the CPU registers
	UnimplementedOpcode = "cpu: unimplemented opcode (%#02x) at (%#04x) [%v]"

	// raised when an operator is passed to a handler for a different family
	// of operators
	InvalidOperatorForHandler = "cpu: invalid operator for %s handler (%v)"

	// raised when an address is requested for an addressing mode that does
	// not have one
	NoOperandAddress = "cpu: %s addressing mode has no operand address"

	// raised when the function passed to RunWithCallback() returns an error
	// other than StopRun
	HookError = "cpu: hook: %v"
)

// StopRun should be returned by the function passed to RunWithCallback() to
// stop the run loop cleanly.
var StopRun = errors.New("cpu: run stopped")
