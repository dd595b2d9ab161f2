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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/debugger/terminal"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " $8000 LDA #05 "}
	test.ExpectEquality(t, p.String(), "[ $8000 LDA #05 ] >> ")

	p.Halted = true
	test.ExpectEquality(t, p.String(), "[ $8000 LDA #05 (halted) ] >> ")
}
