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

//go:build !windows

package colorterm

import (
	"github.com/fatih/color"

	"github.com/jetsetilly/gopher2a03/debugger/terminal"
)

func newPens() map[terminal.Style]*color.Color {
	return map[terminal.Style]*color.Color{
		terminal.StyleHelp:       color.New(color.FgWhite, color.Faint),
		terminal.StyleFeedback:   color.New(color.FgWhite),
		terminal.StyleCPUStep:    color.New(color.FgYellow),
		terminal.StyleInstrument: color.New(color.FgCyan),
		terminal.StyleLog:        color.New(color.FgHiBlack),
		terminal.StyleError:      color.New(color.FgRed, color.Bold),
	}
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input has already been echoed by the editor
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = "* " + s
	}

	ct.TermPrint("\r")
	if pen, ok := ct.pens[style]; ok {
		ct.TermPrint(pen.Sprint(s))
	} else {
		ct.TermPrint(s)
	}
	ct.TermPrint("\n")
}
