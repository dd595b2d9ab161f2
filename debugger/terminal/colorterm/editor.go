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
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher2a03/debugger/terminal/colorterm/easyterm/ansi"
)

// editor reads a single line of input from a terminal in raw mode. the input
// line is redrawn in its entirety after every keypress.
type editor struct {
	rd io.RuneReader
	w  io.Writer

	// history is shared between calls to read()
	history *[]string
	tab     terminal.TabCompletion

	// called when the suspend key is pressed
	suspend func()
}

func (ed *editor) read(buffer []byte, prompt string) (int, error) {
	var line []rune
	var cursor int

	// the history entry being edited. equal to len(history) when editing a
	// new line
	hist := len(*ed.history)

	// the new line is stored while the user is browsing the history
	var stash []rune

	promptLen := utf8.RuneCountInString(prompt)

	if ed.tab != nil {
		ed.tab.Reset()
	}

	for {
		fmt.Fprintf(ed.w, "\r%s%s%s\r%s", ansi.ClearLine, prompt, string(line), ansi.CursorMove(promptLen+cursor))

		r, _, err := ed.rd.ReadRune()
		if err != nil {
			if err == io.EOF {
				return 0, curated.Errorf(terminal.UserAbort)
			}
			return 0, err
		}

		if r != easyterm.KeyTab && ed.tab != nil {
			ed.tab.Reset()
		}

		switch r {
		case easyterm.KeyInterrupt:
			io.WriteString(ed.w, "\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOT:
			if len(line) == 0 {
				io.WriteString(ed.w, "\r\n")
				return 0, curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			if ed.suspend != nil {
				ed.suspend()
			}

		case easyterm.KeyCarriageReturn, '\n':
			io.WriteString(ed.w, "\r\n")

			s := string(line)
			if s != "" {
				h := *ed.history
				if len(h) == 0 || h[len(h)-1] != s {
					*ed.history = append(h, s)
				}
			}

			return copy(buffer, s), nil

		case easyterm.KeyTab:
			if ed.tab != nil {
				s := []rune(ed.tab.Complete(string(line[:cursor])))
				line = append(s, line[cursor:]...)
				cursor = len(s)
			}

		case easyterm.KeyBackspace, easyterm.KeyCtrlH:
			if cursor > 0 {
				line = append(line[:cursor-1], line[cursor:]...)
				cursor--
			}

		case easyterm.KeyEsc:
			r, _, err = ed.rd.ReadRune()
			if err != nil {
				return 0, err
			}
			if r != easyterm.EscCursor {
				break // switch
			}

			r, _, err = ed.rd.ReadRune()
			if err != nil {
				return 0, err
			}

			switch r {
			case easyterm.CursorUp:
				if hist > 0 {
					if hist == len(*ed.history) {
						stash = append(stash[:0], line...)
					}
					hist--
					line = []rune((*ed.history)[hist])
					cursor = len(line)
				}
			case easyterm.CursorDown:
				if hist < len(*ed.history) {
					hist++
					if hist == len(*ed.history) {
						line = append([]rune{}, stash...)
					} else {
						line = []rune((*ed.history)[hist])
					}
					cursor = len(line)
				}
			case easyterm.CursorForward:
				if cursor < len(line) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(line)
			case easyterm.CursorDelete:
				// the delete sequence ends with a tilde
				_, _, _ = ed.rd.ReadRune()
				if cursor < len(line) {
					line = append(line[:cursor], line[cursor+1:]...)
				}
			}

		default:
			if unicode.IsPrint(r) {
				line = append(line[:cursor], append([]rune{r}, line[cursor:]...)...)
				cursor++
			}
		}
	}
}
