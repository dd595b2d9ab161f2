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
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/test"
)

// completes the word "STEP" and nothing else
type mockCompletion struct {
	resets int
}

func (tc *mockCompletion) Complete(input string) string {
	if strings.HasPrefix("STEP", strings.ToUpper(input)) {
		return "STEP "
	}
	return input
}

func (tc *mockCompletion) Reset() {
	tc.resets++
}

func readLine(t *testing.T, ed *editor, keys string) (string, error) {
	t.Helper()
	ed.rd = strings.NewReader(keys)
	buffer := make([]byte, 256)
	n, err := ed.read(buffer, "[ $8000 ] >> ")
	return string(buffer[:n]), err
}

func TestEditor(t *testing.T) {
	var history []string
	ed := &editor{
		w:       &test.Writer{},
		history: &history,
	}

	s, err := readLine(t, ed, "peek 10\r")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "peek 10")
	test.ExpectEquality(t, len(history), 1)

	// backspace and cursor movement. left twice and insert
	s, err = readLine(t, ed, "cpx\x7fu\x1b[D\x1b[Dx\r")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "cxpu")

	// home, delete and end
	s, err = readLine(t, ed, "xcpu\x1b[H\x1b[3~\x1b[F!\r")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "cpu!")

	// history. up twice gets the second most recent entry
	s, err = readLine(t, ed, "\x1b[A\x1b[A\r")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "cxpu")

	// down past the end of history restores the line being edited
	s, err = readLine(t, ed, "last\x1b[A\x1b[B\r")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "last")

	// repeated entries are not added to the history
	n := len(history)
	_, _ = readLine(t, ed, "last\r")
	test.ExpectEquality(t, len(history), n)

	// empty lines are not added to the history
	s, err = readLine(t, ed, "\r")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")
	test.ExpectEquality(t, len(history), n)
}

func TestEditorInterrupts(t *testing.T) {
	var history []string
	suspended := false
	ed := &editor{
		w:       &test.Writer{},
		history: &history,
		suspend: func() { suspended = true },
	}

	_, err := readLine(t, ed, "run\x03")
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))

	// ctrl-d only aborts on an empty line
	s, err := readLine(t, ed, "run\x04\r")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "run")

	_, err = readLine(t, ed, "\x04")
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	// end of input
	_, err = readLine(t, ed, "ru")
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	s, err = readLine(t, ed, "\x1astep\r")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, suspended)
	test.ExpectEquality(t, s, "step")
}

func TestEditorTabCompletion(t *testing.T) {
	var history []string
	tc := &mockCompletion{}
	ed := &editor{
		w:       &test.Writer{},
		history: &history,
		tab:     tc,
	}

	s, err := readLine(t, ed, "st\t5\r")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "STEP 5")
	test.ExpectSuccess(t, tc.resets > 0)
}
