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
	"io"

	"github.com/fatih/color"
)

// WriteAttr controls what is written by Write().
type WriteAttr struct {
	// include the raw bytes of each instruction
	ByteCode bool

	// include the number of cycles from the instruction definition
	Cycles bool

	// colourise the output. colour is only ever added if the color package
	// has detected a colour capable terminal
	Color bool
}

var (
	addressPen  = color.New(color.FgCyan).SprintFunc()
	bytecodePen = color.New(color.FgHiBlack).SprintFunc()
	operatorPen = color.New(color.FgYellow, color.Bold).SprintFunc()
	operandPen  = color.New(color.FgGreen).SprintFunc()
)

// Write the disassembly as a listing, one instruction per line.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for _, e := range dsm.Entries {
		WriteLine(output, attr, e)
	}
}

// WriteLine writes a single entry as a line in a listing.
func WriteLine(output io.Writer, attr WriteAttr, e *Entry) {
	pen := func(f func(a ...any) string, s string) string {
		if attr.Color {
			return f(s)
		}
		return s
	}

	fmt.Fprintf(output, "%s ", pen(addressPen, e.Address))
	if attr.ByteCode {
		fmt.Fprintf(output, "%s ", pen(bytecodePen, fmt.Sprintf("%-8s", e.Bytecode)))
	}
	fmt.Fprintf(output, "%s", pen(operatorPen, e.Operator))
	if e.Operand != "" {
		fmt.Fprintf(output, " %s", pen(operandPen, e.Operand))
	}
	if attr.Cycles && e.Result.Defn != nil {
		// pad the instruction so that the cycles column is aligned
		fmt.Fprintf(output, "%*s ; %d", 12-len(e.String()), "", e.Result.Defn.Cycles)
		if e.Result.Defn.PageSensitive {
			fmt.Fprint(output, "*")
		}
	}
	fmt.Fprintln(output)
}
