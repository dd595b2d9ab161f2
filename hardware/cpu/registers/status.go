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

package registers

import "strings"

// Bit masks for the flags in the status register.
const (
	Negative         = uint8(0x80)
	Overflow         = uint8(0x40)
	Unused           = uint8(0x20)
	Break            = uint8(0x10)
	Decimal          = uint8(0x08)
	InterruptDisable = uint8(0x04)
	Zero             = uint8(0x02)
	Carry            = uint8(0x01)
)

// StatusRegister is the P register of the 2A03. The flags are stored packed
// in a single byte, in the same layout as the byte pushed to the stack.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the status register as a string of flag letters. Upper case
// letters indicate a set flag.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for i, c := range "nv-bdizc" {
		if sr.value&(0x80>>i) != 0 && c != '-' {
			s.WriteRune(c - 'a' + 'A')
		} else {
			s.WriteRune(c)
		}
	}
	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.value = 0
}

// Value converts the StatusRegister to a byte. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	return sr.value | Unused
}

// Load the status register from a byte. The value is stored as is.
func (sr *StatusRegister) Load(val uint8) {
	sr.value = val
}

func (sr *StatusRegister) set(mask uint8, v bool) {
	if v {
		sr.value |= mask
	} else {
		sr.value &^= mask
	}
}

// SetZN sets the zero and negative flags according to the value. The previous
// state of the flags is irrelevant.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.set(Zero, v == 0)
	sr.set(Negative, v&0x80 == 0x80)
}

// Negative returns the state of the N flag.
func (sr StatusRegister) Negative() bool {
	return sr.value&Negative == Negative
}

// SetNegative sets the state of the N flag.
func (sr *StatusRegister) SetNegative(v bool) {
	sr.set(Negative, v)
}

// Overflow returns the state of the V flag.
func (sr StatusRegister) Overflow() bool {
	return sr.value&Overflow == Overflow
}

// SetOverflow sets the state of the V flag.
func (sr *StatusRegister) SetOverflow(v bool) {
	sr.set(Overflow, v)
}

// Break returns the state of the B bit.
func (sr StatusRegister) Break() bool {
	return sr.value&Break == Break
}

// SetBreak sets the state of the B bit.
func (sr *StatusRegister) SetBreak(v bool) {
	sr.set(Break, v)
}

// Decimal returns the state of the D flag. The flag has no effect on
// arithmetic in the 2A03.
func (sr StatusRegister) Decimal() bool {
	return sr.value&Decimal == Decimal
}

// SetDecimal sets the state of the D flag.
func (sr *StatusRegister) SetDecimal(v bool) {
	sr.set(Decimal, v)
}

// InterruptDisable returns the state of the I flag.
func (sr StatusRegister) InterruptDisable() bool {
	return sr.value&InterruptDisable == InterruptDisable
}

// SetInterruptDisable sets the state of the I flag.
func (sr *StatusRegister) SetInterruptDisable(v bool) {
	sr.set(InterruptDisable, v)
}

// Zero returns the state of the Z flag.
func (sr StatusRegister) Zero() bool {
	return sr.value&Zero == Zero
}

// SetZero sets the state of the Z flag.
func (sr *StatusRegister) SetZero(v bool) {
	sr.set(Zero, v)
}

// Carry returns the state of the C flag.
func (sr StatusRegister) Carry() bool {
	return sr.value&Carry == Carry
}

// SetCarry sets the state of the C flag.
func (sr *StatusRegister) SetCarry(v bool) {
	sr.set(Carry, v)
}
