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

// Package gui contains the state shared between the emulation and a graphical
// front end. The front end itself is in a sub-package. The sdl package is the
// only one currently.
//
// The emulation and the front end run in different goroutines. The front end
// must run on the main thread because of the requirements of SDL. The
// SnakeState type is safe to use from both goroutines.
package gui
