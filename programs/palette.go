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

package programs

import "image/color"

// SnakeColor returns the color of a snake display pixel. Values 9 to 14
// repeat the colors of values 2 to 7. Any value not otherwise listed is cyan.
func SnakeColor(v uint8) color.RGBA {
	switch v {
	case 0:
		return color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	case 1:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case 2, 9:
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	case 3, 10:
		return color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	case 4, 11:
		return color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	case 5, 12:
		return color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	case 6, 13:
		return color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	case 7, 14:
		return color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	}
	return color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
}
