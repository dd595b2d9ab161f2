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

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/logger"
)

// debugger keywords.
const (
	cmdStep   = "STEP"
	cmdRun    = "RUN"
	cmdBreak  = "BREAK"
	cmdClear  = "CLEAR"
	cmdList   = "LIST"
	cmdCPU    = "CPU"
	cmdLast   = "LAST"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdDisasm = "DISASM"
	cmdReset  = "RESET"
	cmdMemviz = "MEMVIZ"
	cmdLog    = "LOG"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

type command struct {
	name  string
	usage string
	help  string
}

// the order of the list is the order commands are listed by HELP.
var commands = []command{
	{cmdStep, "STEP [n]", "execute the next n instructions (default 1)"},
	{cmdRun, "RUN", "run until a BRK instruction, a breakpoint or an interrupt (ctrl-c)"},
	{cmdBreak, "BREAK <address>", "halt RUN before the instruction at address is executed"},
	{cmdClear, "CLEAR [address]", "clear the breakpoint at address or all breakpoints"},
	{cmdList, "LIST", "list breakpoints"},
	{cmdCPU, "CPU", "show the CPU registers"},
	{cmdLast, "LAST", "show the most recently executed instruction"},
	{cmdPeek, "PEEK <address> [n]", "show the value at address or n bytes from address"},
	{cmdPoke, "POKE <address> <value>", "write value to address"},
	{cmdDisasm, "DISASM [address] [n]", "disassemble n instructions from address (default PC and 10)"},
	{cmdReset, "RESET", "reset the CPU and load the PC from the reset vector"},
	{cmdMemviz, "MEMVIZ <file>", "write a Graphviz description of the CPU to file"},
	{cmdLog, "LOG [n]", "show the last n log entries (default 10)"},
	{cmdHelp, "HELP [command]", "list commands or show help for a command"},
	{cmdQuit, "QUIT", "end the debugging session"},
}

func commandNames() []string {
	n := make([]string, len(commands))
	for i := range commands {
		n[i] = commands[i].name
	}
	return n
}

const (
	defaultDisasmCount = 10
	defaultLogCount    = 10
)

func (dbg *Debugger) processTokens(tokens []string) error {
	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	argErr := func(detail any) error {
		return curated.Errorf(InvalidArguments, cmd, detail)
	}

	maxArgs := func(n int) error {
		if len(args) > n {
			return argErr("too many arguments")
		}
		return nil
	}

	switch cmd {
	case cmdStep:
		if err := maxArgs(1); err != nil {
			return err
		}
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return argErr(fmt.Sprintf("invalid count (%s)", args[0]))
			}
			n = v
		}
		return dbg.step(n)

	case cmdRun:
		if err := maxArgs(0); err != nil {
			return err
		}
		return dbg.run()

	case cmdBreak:
		if len(args) != 1 {
			return argErr("address required")
		}
		a, err := memorymap.ParseAddress(args[0])
		if err != nil {
			return argErr(err)
		}
		if err := dbg.breakpoints.add(a); err != nil {
			return argErr(err)
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at $%04x", a)

	case cmdClear:
		if err := maxArgs(1); err != nil {
			return err
		}
		if len(args) == 0 {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		a, err := memorymap.ParseAddress(args[0])
		if err != nil {
			return argErr(err)
		}
		if err := dbg.breakpoints.drop(a); err != nil {
			return argErr(err)
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint at $%04x cleared", a)

	case cmdList:
		if err := maxArgs(0); err != nil {
			return err
		}
		dbg.printLines(terminal.StyleFeedback, dbg.breakpoints.String())

	case cmdCPU:
		if err := maxArgs(0); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, dbg.con.CPU.String())
		dbg.printLine(terminal.StyleInstrument, "cycles=%d stack=[%s]", dbg.con.CPU.Cycles, dbg.con.CPU.Stack())

	case cmdLast:
		if err := maxArgs(0); err != nil {
			return err
		}
		if !dbg.con.CPU.LastResult.Final {
			dbg.printLine(terminal.StyleFeedback, "no instruction has been executed")
			return nil
		}
		dbg.printResult(dbg.con.CPU.LastResult)

	case cmdPeek:
		if len(args) < 1 {
			return argErr("address required")
		}
		if err := maxArgs(2); err != nil {
			return err
		}
		a, err := memorymap.ParseAddress(args[0])
		if err != nil {
			return argErr(err)
		}
		n := 1
		if len(args) == 2 {
			n, err = strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return argErr(fmt.Sprintf("invalid count (%s)", args[1]))
			}
		}
		if n == 1 {
			dbg.printLine(terminal.StyleInstrument, "%s = %02x", memorymap.Summary(a), dbg.con.Mem.Read(a))
			return nil
		}
		s := &strings.Builder{}
		dbg.con.Mem.Dump(s, a, n)
		dbg.printLines(terminal.StyleInstrument, s.String())

	case cmdPoke:
		if len(args) != 2 {
			return argErr("address and value required")
		}
		a, err := memorymap.ParseAddress(args[0])
		if err != nil {
			return argErr(err)
		}
		v, err := memorymap.ParseByte(args[1])
		if err != nil {
			return argErr(err)
		}
		dbg.con.Mem.Write(a, v)
		dbg.printLine(terminal.StyleInstrument, "%s = %02x", memorymap.Summary(a), v)

	case cmdDisasm:
		if err := maxArgs(2); err != nil {
			return err
		}
		a := dbg.con.CPU.PC.Address()
		n := defaultDisasmCount
		if len(args) >= 1 {
			var err error
			a, err = memorymap.ParseAddress(args[0])
			if err != nil {
				return argErr(err)
			}
		}
		if len(args) == 2 {
			var err error
			n, err = strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return argErr(fmt.Sprintf("invalid count (%s)", args[1]))
			}
		}
		s := &strings.Builder{}
		disassembly.FromMemory(dbg.con.Mem, a, n).Write(s, disassembly.WriteAttr{ByteCode: true})
		dbg.printLines(terminal.StyleFeedback, s.String())

	case cmdReset:
		if err := maxArgs(0); err != nil {
			return err
		}
		dbg.con.Reset()
		dbg.printLine(terminal.StyleFeedback, "cpu reset. PC is $%04x", dbg.con.CPU.PC.Address())

	case cmdMemviz:
		if len(args) != 1 {
			return argErr("filename required")
		}
		if err := dbg.memviz(args[0]); err != nil {
			return argErr(err)
		}
		dbg.printLine(terminal.StyleFeedback, "cpu graph written to %s", args[0])

	case cmdLog:
		if err := maxArgs(1); err != nil {
			return err
		}
		n := defaultLogCount
		if len(args) == 1 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return argErr(fmt.Sprintf("invalid count (%s)", args[0]))
			}
		}
		s := &strings.Builder{}
		logger.Tail(s, n)
		dbg.printLines(terminal.StyleLog, s.String())

	case cmdHelp:
		if err := maxArgs(1); err != nil {
			return err
		}
		return dbg.help(args)

	case cmdQuit:
		dbg.running = false

	default:
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return nil
}

func (dbg *Debugger) printResult(result execution.Result) {
	s := &strings.Builder{}
	disassembly.WriteLine(s, disassembly.WriteAttr{ByteCode: true}, disassembly.FormatResult(result))
	dbg.printLines(terminal.StyleCPUStep, s.String())
}

func (dbg *Debugger) step(n int) error {
	for i := 0; i < n; i++ {
		if err := dbg.con.Step(); err != nil {
			return err
		}
		dbg.printResult(dbg.con.CPU.LastResult)
		if dbg.con.CPU.Halted {
			dbg.printLine(terminal.StyleFeedback, "halted at $%04x", dbg.con.CPU.LastResult.Address)
			return nil
		}
	}
	return nil
}

func (dbg *Debugger) run() error {
	// drain any interrupt that arrived before the run began
	select {
	case <-dbg.intEvents:
	default:
	}

	var reason string
	first := true

	err := dbg.con.Run(func(mc *cpu.CPU) error {
		// a breakpoint on the current instruction does not prevent the run from
		// starting
		if !first && dbg.breakpoints.check(mc.PC.Address()) {
			reason = fmt.Sprintf("breakpoint at $%04x", mc.PC.Address())
			return cpu.StopRun
		}
		first = false

		select {
		case <-dbg.intEvents:
			reason = "interrupted"
			return cpu.StopRun
		default:
		}

		return nil
	})
	if err != nil {
		return err
	}

	if dbg.con.CPU.Halted {
		reason = fmt.Sprintf("halted at $%04x", dbg.con.CPU.LastResult.Address)
	}

	if dbg.con.CPU.LastResult.Final {
		dbg.printResult(dbg.con.CPU.LastResult)
	}
	dbg.printLine(terminal.StyleFeedback, reason)

	return nil
}

// the parts of the CPU that are shown by MEMVIZ. the memory is not included.
type cpuState struct {
	PC         registers.ProgramCounter
	A          registers.Register
	X          registers.Register
	Y          registers.Register
	SP         registers.StackPointer
	Status     registers.StatusRegister
	LastResult execution.Result
	Cycles     int
	Halted     bool
}

func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	mc := dbg.con.CPU
	state := &cpuState{
		PC:         mc.PC,
		A:          mc.A,
		X:          mc.X,
		Y:          mc.Y,
		SP:         mc.SP,
		Status:     mc.Status,
		LastResult: mc.LastResult,
		Cycles:     mc.Cycles,
		Halted:     mc.Halted,
	}
	memviz.Map(f, state)

	return nil
}

func (dbg *Debugger) help(args []string) error {
	if len(args) == 0 {
		for _, c := range commands {
			dbg.printLine(terminal.StyleHelp, "%-24s %s", c.usage, c.help)
		}
		return nil
	}

	name := strings.ToUpper(args[0])
	for _, c := range commands {
		if c.name == name {
			dbg.printLine(terminal.StyleHelp, c.usage)
			dbg.printLine(terminal.StyleHelp, "  %s", c.help)
			return nil
		}
	}

	return curated.Errorf(UnknownCommand, args[0])
}
