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

// Package memory implements the flat 64KiB memory addressed by the 2A03. The
// Memory type satisfies the cpubus.Memory interface and adds some convenience
// functions for the debugger and for front ends that render memory mapped
// displays.
//
// The memorymap sub-package describes the conventional areas of the address
// space. The areas are not enforced by the Memory type. Every byte can be read
// and written.
package memory
