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

package debugger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/test"
)

// mockTerm feeds a list of input lines to the debugger and collects the
// output. when the input runs out the terminal reports a UserAbort.
type mockTerm struct {
	input  []string
	output []string
	styles []terminal.Style

	initialised bool
	cleanedUp   bool
	completion  terminal.TabCompletion
}

func (trm *mockTerm) Initialise() error {
	trm.initialised = true
	return nil
}

func (trm *mockTerm) CleanUp() {
	trm.cleanedUp = true
}

func (trm *mockTerm) RegisterTabCompletion(tc terminal.TabCompletion) {
	trm.completion = tc
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	if len(trm.input) == 0 {
		return 0, curated.Errorf(terminal.UserAbort)
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return copy(buffer, s), nil
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.output = append(trm.output, s)
	trm.styles = append(trm.styles, sty)
}

func (trm *mockTerm) last() string {
	if len(trm.output) == 0 {
		return ""
	}
	return trm.output[len(trm.output)-1]
}

func (trm *mockTerm) lastStyle() terminal.Style {
	return trm.styles[len(trm.styles)-1]
}

// run the debugger with the program loaded at 0x8000 and the list of input
// lines. the mockTerm is returned for inspection.
func run(t *testing.T, program []uint8, input ...string) (*mockTerm, *hardware.Console) {
	t.Helper()

	con := hardware.NewConsole()
	con.Boot(program, memorymap.OriginProgramROM)

	trm := &mockTerm{input: input}
	dbg := debugger.NewDebugger(con, trm)
	test.DemandSuccess(t, dbg.Start())

	test.ExpectSuccess(t, trm.initialised)
	test.ExpectSuccess(t, trm.cleanedUp)

	return trm, con
}

// LDA #$05; TAX; INX; BRK
var program = []uint8{0xa9, 0x05, 0xaa, 0xe8, 0x00}

func TestStep(t *testing.T) {
	trm, con := run(t, program, "step", "STEP 2")
	test.ExpectEquality(t, len(trm.output), 3)
	test.ExpectEquality(t, trm.output[0], "$8000 a9 05    LDA #05")
	test.ExpectEquality(t, trm.output[2], "$8003 e8       INX")
	test.ExpectEquality(t, trm.lastStyle(), terminal.StyleCPUStep)
	test.ExpectEquality(t, con.CPU.X.Value(), uint8(0x06))

	trm, _ = run(t, program, "step 10")
	test.ExpectEquality(t, trm.last(), "halted at $8004")

	trm, _ = run(t, program, "step foo")
	test.ExpectEquality(t, trm.last(), "debugger: STEP: invalid count (foo)")
	test.ExpectEquality(t, trm.lastStyle(), terminal.StyleError)
}

func TestRun(t *testing.T) {
	trm, con := run(t, program, "RUN")
	test.ExpectEquality(t, trm.last(), "halted at $8004")
	test.ExpectSuccess(t, con.CPU.Halted)
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x05))
}

func TestBreakpoints(t *testing.T) {
	trm, con := run(t, program, "BREAK $8003", "RUN")
	test.ExpectEquality(t, trm.output[0], "breakpoint added at $8003")
	test.ExpectEquality(t, trm.last(), "breakpoint at $8003")
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8003))
	test.ExpectEquality(t, con.CPU.X.Value(), uint8(0x05))

	// a breakpoint on the current instruction does not stop a run starting
	trm, _ = run(t, program, "BREAK $8003", "RUN", "RUN")
	test.ExpectEquality(t, trm.last(), "halted at $8004")

	trm, _ = run(t, program, "BREAK 0x8003", "BREAK 32771")
	test.ExpectEquality(t, trm.last(), "debugger: BREAK: breakpoint already exists at $8003")

	trm, _ = run(t, program, "BREAK $8003", "BREAK $8001", "LIST")
	test.ExpectEquality(t, trm.output[len(trm.output)-2], " 0: $8001")
	test.ExpectEquality(t, trm.last(), " 1: $8003")

	trm, _ = run(t, program, "BREAK $8003", "CLEAR $8003", "LIST")
	test.ExpectEquality(t, trm.last(), "no breakpoints")

	trm, _ = run(t, program, "BREAK $8003", "BREAK $8001", "CLEAR", "LIST", "RUN")
	test.ExpectEquality(t, trm.output[3], "no breakpoints")
	test.ExpectEquality(t, trm.last(), "halted at $8004")

	trm, _ = run(t, program, "CLEAR $8003")
	test.ExpectEquality(t, trm.last(), "debugger: CLEAR: no breakpoint at $8003")
}

func TestCPU(t *testing.T) {
	trm, _ := run(t, program, "CPU")
	test.ExpectEquality(t, trm.output[0], "PC=8000 A=00 X=00 Y=00 SP=ff SR=nv-bdizc")
	test.ExpectEquality(t, trm.output[1], "cycles=0 stack=[]")

	trm, _ = run(t, program, "LAST", "STEP", "LAST")
	test.ExpectEquality(t, trm.output[0], "no instruction has been executed")
	test.ExpectEquality(t, trm.last(), "$8000 a9 05    LDA #05")
}

func TestPeekPoke(t *testing.T) {
	trm, con := run(t, program, "PEEK $8000", "POKE $10 $ff", "PEEK 0x0010")
	test.ExpectEquality(t, trm.output[0], "$8000 [Program ROM] = a9")
	test.ExpectEquality(t, trm.last(), "$0010 [RAM] = ff")
	test.ExpectEquality(t, con.Mem.Read(0x0010), uint8(0xff))

	trm, _ = run(t, program, "PEEK $8000 5")
	test.ExpectEquality(t, trm.last(), "8000 | a9 05 aa e8 00")

	trm, _ = run(t, program, "POKE $10 256")
	test.ExpectSuccess(t, strings.HasPrefix(trm.last(), "debugger: POKE: "))

	trm, _ = run(t, program, "PEEK")
	test.ExpectEquality(t, trm.last(), "debugger: PEEK: address required")
}

func TestDisasm(t *testing.T) {
	trm, _ := run(t, program, "DISASM $8000 4")
	test.ExpectEquality(t, len(trm.output), 4)
	test.ExpectEquality(t, trm.output[0], "$8000 a9 05    LDA #05")
	test.ExpectEquality(t, trm.output[3], "$8004 00       BRK")
}

func TestReset(t *testing.T) {
	trm, con := run(t, program, "STEP 2", "RESET")
	test.ExpectEquality(t, trm.last(), "cpu reset. PC is $8000")
	test.ExpectEquality(t, con.CPU.A.Value(), uint8(0x00))
}

func TestMultipleCommands(t *testing.T) {
	trm, con := run(t, program, "step ; step; cpu")
	test.ExpectEquality(t, trm.output[2], "PC=8003 A=05 X=05 Y=00 SP=ff SR=nv-bdizc")
	test.ExpectEquality(t, con.CPU.X.Value(), uint8(0x05))

	// an error ends the sequence
	_, con = run(t, program, "step; foo; step")
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8002))
}

func TestQuit(t *testing.T) {
	// commands after QUIT are not processed
	_, con := run(t, program, "QUIT", "STEP")
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8000))

	_, con = run(t, program, "QUIT; STEP")
	test.ExpectEquality(t, con.CPU.PC.Address(), uint16(0x8000))
}

func TestHelp(t *testing.T) {
	trm, _ := run(t, program, "HELP")
	test.ExpectEquality(t, len(trm.output), 15)
	test.ExpectEquality(t, trm.lastStyle(), terminal.StyleHelp)

	trm, _ = run(t, program, "HELP peek")
	test.ExpectEquality(t, trm.output[0], "PEEK <address> [n]")

	trm, _ = run(t, program, "HELP foo")
	test.ExpectEquality(t, trm.last(), "debugger: unknown command (foo)")

	trm, _ = run(t, program, "foo")
	test.ExpectEquality(t, trm.last(), "debugger: unknown command (foo)")
}

func TestTabCompletion(t *testing.T) {
	trm, _ := run(t, program)
	tc := trm.completion
	test.DemandSuccess(t, tc != nil)

	test.ExpectEquality(t, tc.Complete("st"), "STEP ")
	test.ExpectEquality(t, tc.Complete("step 1"), "step 1")
	test.ExpectEquality(t, tc.Complete("xyz"), "xyz")

	// cycle through the commands beginning with C
	tc.Reset()
	test.ExpectEquality(t, tc.Complete("c"), "CLEAR ")
	test.ExpectEquality(t, tc.Complete("CLEAR "), "CPU ")
	test.ExpectEquality(t, tc.Complete("CPU "), "CLEAR ")
}

func TestMemviz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cpu.dot")
	trm, _ := run(t, program, "STEP", "MEMVIZ "+fn)
	test.ExpectEquality(t, trm.last(), "cpu graph written to "+fn)

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestLog(t *testing.T) {
	trm, _ := run(t, program, "LOG 1")
	test.ExpectEquality(t, trm.last(), "debugger: started")
	test.ExpectEquality(t, trm.lastStyle(), terminal.StyleLog)
}
