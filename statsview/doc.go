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

// Package statsview is an optional package that is built only when the
// statsview build tag is present. It runs a local HTTP server that shows the
// runtime statistics of the emulator, using "github.com/go-echarts/statsview".
//
// After launch, graphs are viewable at:
//
//	localhost:12603/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12603/debug/pprof/
//
// Without the build tag, Available() returns false and Launch() does nothing
// except say so.
package statsview

// DefaultAddress is the address the stats server listens on if no address is
// given to Launch().
const DefaultAddress = "localhost:12603"

const url = "/debug/statsview"
