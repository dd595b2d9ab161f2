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

package plainterm

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestPlainTerminal(t *testing.T) {
	tw := &test.Writer{}

	pt := &PlainTerminal{}
	pt.initialise(strings.NewReader("step\n"), tw, true)

	buffer := make([]byte, 256)
	n, err := pt.TermRead(buffer, terminal.Prompt{Content: "$8000"}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buffer[:n]), "step\n")
	test.ExpectEquality(t, tw.String(), "[ $8000 ] >> ")

	// the reader is now empty
	_, err = pt.TermRead(buffer, terminal.Prompt{}, nil)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	tw.Clear()
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "STEP")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, tw.String(), "hello\n* bad\n")

	tw.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, tw.String(), "* bad\n")
}
