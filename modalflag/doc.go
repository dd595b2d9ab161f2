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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows a different set of flags for
// each mode.
//
// Arguments are given to the Modes type with NewArgs() and then processed
// with Parse(), which takes no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	_, _ = md.Parse()
//
// The first sub-mode is the default. After Parse() the selected mode is
// returned by Mode() and the flags for that mode can be added before the next
// call to Parse():
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x8000, "load address")
//		bytes := md.AddBool("bytes", false, "show raw bytes")
//		p, err := md.Parse()
//		...
//	}
//
// Sub-mode comparisons are case insensitive.
//
// Arguments that are neither flags nor sub-modes are returned by
// RemainingArgs() and GetArg().
//
// In addition to the flag types of the flag package, AddAddress() accepts
// addresses in any notation understood by memorymap.ParseAddress() and
// AddChoice() restricts a string flag to a list of values.
package modalflag
