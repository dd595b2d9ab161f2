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

// Package hardware is the base package for the 2A03 console emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains external
// references to all the console sub-systems. From here, the emulation can
// either be started to run continuously (with optional hook function to check
// for continuation) or it can be stepped one instruction at a time.
//
// The console has no video or sound hardware. Programs that need a display,
// such as the built-in snake program, use memory mapped pixels that a front
// end reads directly from memory.
package hardware
