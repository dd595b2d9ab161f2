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

// Package debugger implements a command line debugger for the 2A03 emulation.
// It is started with the Start() function and runs until the user quits or
// the input terminal is closed.
//
// Interaction with the user is through an implementation of the
// terminal.Terminal interface. The plainterm and colorterm packages are the
// two implementations used by the gopher2a03 program.
//
// Commands are case insensitive. More than one command can be entered on a
// single line by separating them with a semi-colon. The HELP command lists
// the available commands.
//
// Addresses and values can be entered in hexadecimal, with a "0x" or "$"
// prefix, or in decimal.
package debugger
