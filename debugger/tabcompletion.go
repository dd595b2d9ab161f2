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
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface. Only the
// command keyword is completed. Repeated calls with the most recent
// completion cycle through the matching commands.
type tabCompletion struct {
	commands []string

	matches []string
	idx     int

	// the most recent string returned by Complete()
	last string
}

func newTabCompletion(commands []string) *tabCompletion {
	return &tabCompletion{
		commands: commands,
	}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	if len(tc.matches) > 0 && input == tc.last {
		tc.idx++
		if tc.idx >= len(tc.matches) {
			tc.idx = 0
		}
		tc.last = tc.matches[tc.idx] + " "
		return tc.last
	}

	// arguments are not completed
	prefix := strings.ToUpper(strings.TrimLeft(input, " "))
	if strings.Contains(prefix, " ") {
		return input
	}

	tc.matches = tc.matches[:0]
	tc.idx = 0
	for _, c := range tc.commands {
		if strings.HasPrefix(c, prefix) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.last = tc.matches[0] + " "
	return tc.last
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.idx = 0
	tc.last = ""
}
