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

// Package script allows the emulation to be controlled by a Lua script. The
// script is loaded with NewHook() and the Hook() function is passed to
// hardware.Console.Run().
//
// The script can define a global function called step(). It is called before
// every instruction. The following functions are available to the script:
//
//	peek(address)          returns the byte at address
//	poke(address, value)   writes value to address
//	reg(name)              returns the value of a register. one of A, X, Y, SP, PC or P
//	cycles()               returns the number of cycles executed since reset
//	halt()                 stops the emulation after the step() function returns
//	log(message)           adds an entry to the central log
//
// For example, to stop the emulation when the X register reaches 10:
//
//	function step()
//		if reg("X") == 10 then
//			halt()
//		end
//	end
package script
