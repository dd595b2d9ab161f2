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

package instructions

// Family groups operators that are executed by the same handler in the CPU.
type Family int

// List of operator families.
const (
	NoFamily Family = iota
	Arithmetic
	Logical
	Shift
	Rotate
	BitTest
	Branch
	Break
	Compare
	Crement
	Flag
	Jump
	Call
	Return
	Load
	Store
	NoOperation
	Register
	Stack
)

func (f Family) String() string {
	switch f {
	case Arithmetic:
		return "arithmetic"
	case Logical:
		return "logical"
	case Shift:
		return "shift"
	case Rotate:
		return "rotate"
	case BitTest:
		return "bit test"
	case Branch:
		return "branch"
	case Break:
		return "break"
	case Compare:
		return "compare"
	case Crement:
		return "increment/decrement"
	case Flag:
		return "flag"
	case Jump:
		return "jump"
	case Call:
		return "call"
	case Return:
		return "return"
	case Load:
		return "load"
	case Store:
		return "store"
	case NoOperation:
		return "no operation"
	case Register:
		return "register"
	case Stack:
		return "stack"
	}
	return "no family"
}
