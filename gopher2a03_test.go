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

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/test"
)

func writeProgram(t *testing.T, program []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.bin")
	if err := os.WriteFile(fn, program, 0o600); err != nil {
		t.Fatal(err)
	}
	return fn
}

func newModes(w *test.Writer, args ...string) *modalflag.Modes {
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	return md
}

func TestDisasmMode(t *testing.T) {
	w := &test.Writer{}
	fn := writeProgram(t, []uint8{0xa9, 0x23, 0x00})

	err := disasm(newModes(w, fn))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("$8000 LDA #23\n$8002 BRK\n"))

	w.Clear()
	err = disasm(newModes(w, "-origin", "$0600", fn))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("$0600 LDA #23\n$0602 BRK\n"))

	// snake program disassembles at its own origin
	w.Clear()
	err = disasm(newModes(w, "-snake"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "$0600 JSR $0606\n"))

	// undefined opcode
	w.Clear()
	err = disasm(newModes(w, writeProgram(t, []uint8{0x02})))
	test.ExpectFailure(t, err)
}

func TestRunMode(t *testing.T) {
	w := &test.Writer{}

	// LDA #5; TAX; BRK
	fn := writeProgram(t, []uint8{0xa9, 0x05, 0xaa, 0x00})

	err := run(newModes(w, fn), nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "A=05 X=05"))

	// missing program file
	w.Clear()
	err = run(newModes(w), nil)
	test.ExpectFailure(t, err)

	// too many arguments
	err = run(newModes(w, fn, fn), nil)
	test.ExpectFailure(t, err)
}

func TestChainHooks(t *testing.T) {
	test.ExpectSuccess(t, chainHooks() == nil)
	test.ExpectSuccess(t, chainHooks(nil, nil) == nil)

	var order []int
	a := func(_ *cpu.CPU) error {
		order = append(order, 1)
		return nil
	}
	b := func(_ *cpu.CPU) error {
		order = append(order, 2)
		return cpu.StopRun
	}
	c := func(_ *cpu.CPU) error {
		order = append(order, 3)
		return nil
	}

	err := chainHooks(a, nil, b, c)(nil)
	test.ExpectSuccess(t, errors.Is(err, cpu.StopRun))
	test.ExpectEquality(t, len(order), 2)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 2)
}
