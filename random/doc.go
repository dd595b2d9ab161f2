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

// Package random should be used in preference to the math/rand package when a
// random number is required by the emulation. For example, the snake program
// expects a new random number in memory before every instruction.
//
// Numbers are based on the number of cycles that the CPU has executed. The
// same cycle count will always produce the same number for the lifetime of
// the process, unless ZeroSeed is set. In which case the same cycle count will
// always produce the same number for any process. This is useful for testing
// purposes.
package random
