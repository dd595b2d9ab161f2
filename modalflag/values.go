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

package modalflag

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
)

type addressValue uint16

func (a *addressValue) String() string {
	return fmt.Sprintf("%#04x", uint16(*a))
}

func (a *addressValue) Set(s string) error {
	v, err := memorymap.ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addressValue(v)
	return nil
}

// AddAddress flag for next call to Parse(). The address can be specified in
// hexadecimal with a "0x" or "$" prefix, or in decimal.
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	a := addressValue(value)
	md.flags.Var(&a, name, usage)
	return (*uint16)(&a)
}

// choiceValue is a string that must be one of a list of choices. choices are
// case insensitive and are stored in upper case.
type choiceValue struct {
	value   *string
	choices []string
}

func (c choiceValue) String() string {
	if c.value == nil {
		return ""
	}
	return *c.value
}

func (c choiceValue) Set(s string) error {
	s = strings.ToUpper(s)
	for _, ch := range c.choices {
		if s == ch {
			*c.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
}

// AddChoice flag for next call to Parse(). The value of the flag will always
// be one of the choices, in upper case. The first choice is the default.
func (md *Modes) AddChoice(name string, usage string, choices ...string) *string {
	c := choiceValue{
		value:   new(string),
		choices: make([]string, len(choices)),
	}
	for i := range choices {
		c.choices[i] = strings.ToUpper(choices[i])
	}
	if len(c.choices) > 0 {
		*c.value = c.choices[0]
	}

	md.flags.Var(c, name, fmt.Sprintf("%s [%s]", usage, strings.Join(c.choices, "|")))
	return c.value
}
