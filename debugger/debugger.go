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
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	con  *hardware.Console
	term terminal.Terminal

	breakpoints *breakpoints

	// interrupt signals from the operating system. the channel is given to
	// the terminal during TermRead() and checked by the RUN command
	intEvents chan os.Signal

	tabCompletion *tabCompletion

	// the input loop ends when running is false
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session. Use the Start() method to actually begin the session.
func NewDebugger(con *hardware.Console, term terminal.Terminal) *Debugger {
	return &Debugger{
		con:           con,
		term:          term,
		breakpoints:   newBreakpoints(),
		intEvents:     make(chan os.Signal, 1),
		tabCompletion: newTabCompletion(commandNames()),
	}
}

// Start the main debugger sequence. Returns when the user quits.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(dbg.tabCompletion)

	signal.Notify(dbg.intEvents, os.Interrupt)
	defer signal.Stop(dbg.intEvents)

	logger.Log(logger.Allow, "debugger", "started")
	defer logger.Log(logger.Allow, "debugger", "finished")

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, 256)
	events := &terminal.ReadEvents{IntEvents: dbg.intEvents}

	dbg.running = true
	for dbg.running {
		n, err := dbg.term.TermRead(buffer, dbg.prompt(), events)
		if err != nil {
			switch {
			case curated.Is(err, terminal.UserAbort):
				return nil
			case curated.Is(err, terminal.UserInterrupt):
				dbg.printLine(terminal.StyleFeedback, "use QUIT to end the debugging session")
				continue // for loop
			}
			return curated.Errorf(TerminalError, err)
		}

		dbg.parseInput(string(buffer[:n]))
	}

	return nil
}

// parseInput executes each of the semi-colon separated commands in the input
// string. errors are printed to the terminal and end the sequence of
// commands.
func (dbg *Debugger) parseInput(input string) {
	for _, cmd := range strings.Split(input, ";") {
		tokens := strings.Fields(cmd)
		if len(tokens) == 0 {
			continue // for loop
		}

		dbg.printLine(terminal.StyleEcho, strings.Join(tokens, " "))

		if err := dbg.processTokens(tokens); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			return
		}

		if !dbg.running {
			return
		}
	}
}

// prompt shows the next instruction to be executed.
func (dbg *Debugger) prompt() terminal.Prompt {
	dsm := disassembly.FromMemory(dbg.con.Mem, dbg.con.CPU.PC.Address(), 1)
	e := dsm.Entries[0]
	return terminal.Prompt{
		Content: fmt.Sprintf("%s %s", e.Address, e),
		Halted:  dbg.con.CPU.Halted,
	}
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(style, s)
}

// printLines prints each line of the string as a separate call to
// TermPrintLine(). a trailing newline does not produce an empty line.
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return
	}
	for _, l := range strings.Split(s, "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}
