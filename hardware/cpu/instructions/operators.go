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

package instructions

import "strings"

// Operator identifies the operation performed by an instruction. There is one
// operator for each of the 56 documented mnemonics.
type Operator int

// List of operators.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// the number of operators. not a valid operator
	NumOperators
)

var mnemonics = [NumOperators]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI",
	"CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR",
	"INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA",
	"STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

// String returns the mnemonic for the operator.
func (o Operator) String() string {
	if o < 0 || o >= NumOperators {
		return "???"
	}
	return mnemonics[o]
}

// GoString returns the name of the operator constant. Used by the table
// generator.
func (o Operator) GoString() string {
	s := o.String()
	return s[:1] + strings.ToLower(s[1:])
}

// ParseOperator returns the operator for the mnemonic. The mnemonic is not
// case sensitive.
func ParseOperator(mnemonic string) (Operator, bool) {
	mnemonic = strings.ToUpper(strings.TrimSpace(mnemonic))
	for i, m := range mnemonics {
		if m == mnemonic {
			return Operator(i), true
		}
	}
	return 0, false
}

// Family returns the group of operators that the operator belongs to.
func (o Operator) Family() Family {
	switch o {
	case Adc, Sbc:
		return Arithmetic
	case And, Ora, Eor:
		return Logical
	case Asl, Lsr:
		return Shift
	case Rol, Ror:
		return Rotate
	case Bit:
		return BitTest
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bvc, Bvs:
		return Branch
	case Brk:
		return Break
	case Cmp, Cpx, Cpy:
		return Compare
	case Inc, Dec:
		return Crement
	case Clc, Cld, Cli, Clv, Sec, Sed, Sei:
		return Flag
	case Jmp:
		return Jump
	case Jsr:
		return Call
	case Rti, Rts:
		return Return
	case Lda, Ldx, Ldy:
		return Load
	case Sta, Stx, Sty:
		return Store
	case Nop:
		return NoOperation
	case Tax, Txa, Tay, Tya, Dex, Dey, Inx, Iny:
		return Register
	case Txs, Tsx, Pha, Pla, Php, Plp:
		return Stack
	}
	return NoFamily
}
