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

// The generator program creates the table.go file in the instructions package
// from the instructions.csv file. It is run by go generate from the
// instructions package directory.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

const definitionsCSVFile = "generator/instructions.csv"
const generatedGoFile = "table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the 2A03.\n" +
	"// The table is indexed by opcode. Undefined opcodes are nil.\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{"

const trailingBoilerPlate = "}\n}"

type mode struct {
	mode instructions.AddressingMode
	name string
}

var modes = map[string]mode{
	"IMPLIED":             {instructions.Implied, "Implied"},
	"ACCUMULATOR":         {instructions.Accumulator, "Accumulator"},
	"IMMEDIATE":           {instructions.Immediate, "Immediate"},
	"RELATIVE":            {instructions.Relative, "Relative"},
	"ABSOLUTE":            {instructions.Absolute, "Absolute"},
	"ZERO_PAGE":           {instructions.ZeroPage, "ZeroPage"},
	"INDIRECT":            {instructions.Indirect, "Indirect"},
	"INDEXED_INDIRECT":    {instructions.IndexedIndirect, "IndexedIndirect"},
	"INDIRECT_INDEXED":    {instructions.IndirectIndexed, "IndirectIndexed"},
	"ABSOLUTE_INDEXED_X":  {instructions.AbsoluteIndexedX, "AbsoluteIndexedX"},
	"ABSOLUTE_INDEXED_Y":  {instructions.AbsoluteIndexedY, "AbsoluteIndexedY"},
	"ZERO_PAGE_INDEXED_X": {instructions.ZeroPageIndexedX, "ZeroPageIndexedX"},
	"ZERO_PAGE_INDEXED_Y": {instructions.ZeroPageIndexedY, "ZeroPageIndexedY"},
}

var effects = map[string]string{
	"READ":        "Read",
	"WRITE":       "Write",
	"RMW":         "RMW",
	"FLOW":        "Flow",
	"SUB-ROUTINE": "Subroutine",
	"INTERRUPT":   "Interrupt",
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// the effect field is optional so the number of fields varies
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]string)

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		opcode := uint8(n)

		if _, ok := deftable[opcode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", opcode, line)
		}

		// field: operator
		operator, ok := instructions.ParseOperator(rec[1])
		if !ok {
			return "", fmt.Errorf("invalid operator for %#02x (%s) [line %d]", opcode, rec[1], line)
		}

		// field: cycle count
		cycles, err := strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", opcode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also defines how many
		// bytes an opcode requires
		am, ok := modes[strings.ToUpper(rec[3])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", opcode, rec[3], line)
		}

		// field: page sensitive
		var pageSensitive bool
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			pageSensitive = true
		case "FALSE":
			pageSensitive = false
		default:
			return "", fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", opcode, rec[4], line)
		}

		// field: effect category. defaults to read
		effect := effects["READ"]
		if len(rec) == 6 {
			effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", opcode, rec[5], line)
			}
		}

		deftable[opcode] = fmt.Sprintf("&Definition{OpCode: %#x, Operator: %#v, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %v, Effect: %s}",
			opcode, operator, am.mode.OperandBytes()+1, cycles, am.name, pageSensitive, effect)
	}

	fmt.Printf("%d opcodes defined, %d undefined\n", len(deftable), 256-len(deftable))

	output := strings.Builder{}
	for opcode := 0; opcode < 256; opcode++ {
		if defn, ok := deftable[uint8(opcode)]; ok {
			output.WriteString(fmt.Sprintf("\n%s,", defn))
		} else {
			output.WriteString("\nnil,")
		}
	}

	return output.String(), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formattedOutput, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
