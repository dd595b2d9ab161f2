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

package memorymap

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
)

// InvalidAddress is the error pattern returned by ParseAddress().
const InvalidAddress = "memorymap: invalid address (%s)"

// ParseAddress converts a string to an address. Hexadecimal addresses are
// prefixed with either "0x" or "$". Anything else is decimal.
func ParseAddress(s string) (uint16, error) {
	t := strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(t, "$"):
		t = t[1:]
		base = 16
	case strings.HasPrefix(t, "0x"), strings.HasPrefix(t, "0X"):
		t = t[2:]
		base = 16
	}

	v, err := strconv.ParseUint(t, base, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidAddress, s)
	}

	return uint16(v), nil
}

// ParseByte converts a string to an 8-bit value using the same notation as
// ParseAddress().
func ParseByte(s string) (uint8, error) {
	v, err := ParseAddress(s)
	if err != nil {
		return 0, err
	}
	if v > 0xff {
		return 0, curated.Errorf(InvalidAddress, s)
	}
	return uint8(v), nil
}
