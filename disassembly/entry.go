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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// Entry is a disassembled instruction. The string fields are the formatted
// representation of the information in the Result field.
type Entry struct {
	Result execution.Result

	Address  string
	Bytecode string
	Operator string
	Operand  string
}

// String returns the operator and operand of the instruction separated by a
// single space. Instructions without an operand are the operator alone.
func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// FormatResult creates an Entry for the execution.Result. The result does not
// need to be final. Operand bytes that have not been read are shown as
// question marks.
func FormatResult(result execution.Result) *Entry {
	e := &Entry{
		Result:  result,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Operator.String()

	operand := result.InstructionData
	bytecode := []string{fmt.Sprintf("%02x", result.Defn.OpCode)}
	for i := 1; i < result.Defn.Bytes; i++ {
		if i < result.ByteCount {
			bytecode = append(bytecode, fmt.Sprintf("%02x", uint8(operand>>(8*(i-1)))))
		} else {
			bytecode = append(bytecode, "??")
		}
	}
	e.Bytecode = strings.Join(bytecode, " ")

	if result.ByteCount < result.Defn.Bytes {
		e.Operand = "?"
		return e
	}

	e.Operand = decorate(result.Defn.AddressingMode, operand)

	return e
}

// decorate returns the operand formatted according to the addressing mode.
func decorate(mode instructions.AddressingMode, operand uint16) string {
	switch mode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#%02x", operand)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", operand)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", operand)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", operand)
	case instructions.Relative:
		return fmt.Sprintf("*%+d", int8(operand))
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", operand)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", operand)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", operand)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", operand)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", operand)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", operand)
	}
	return ""
}
