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

package logger_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/test"
)

type stringer struct{}

func (stringer) String() string {
	return "stringer"
}

func TestLogger(t *testing.T) {
	tw := &test.Writer{}

	lg := logger.NewLogger(100)
	lg.Write(tw)
	test.ExpectEquality(t, tw.String(), "")

	lg.Log(logger.Allow, "test", "this is a test")
	lg.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	lg.Log(logger.Allow, "test2", "this is another test")
	lg.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	lg.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	lg.Tail(tw, 2)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	lg.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	lg.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeatsAndTypes(t *testing.T) {
	tw := &test.Writer{}
	lg := logger.NewLogger(100)

	lg.Log(logger.Allow, "cpu", "halted")
	lg.Log(logger.Allow, "cpu", "halted")
	lg.Log(logger.Allow, "cpu", "halted")
	test.ExpectEquality(t, lg.Len(), 1)
	lg.Write(tw)
	test.ExpectEquality(t, tw.String(), "cpu: halted (repeat x3)\n")

	tw.Clear()
	lg.Clear()
	lg.Log(logger.Allow, "err", errors.New("an error"))
	lg.Log(logger.Allow, "str", stringer{})
	lg.Logf(logger.Allow, "fmt", "%04x", 0x8000)
	lg.Log(logger.Allow, "int", 10)
	lg.Write(tw)
	test.ExpectEquality(t, tw.String(), "err: an error\nstr: stringer\nfmt: 8000\nint: 10\n")
}

func TestPermissionAndEcho(t *testing.T) {
	tw := &test.Writer{}
	echo := &test.Writer{}
	lg := logger.NewLogger(100)
	lg.SetEcho(echo)

	lg.Log(logger.Deny, "test", "dropped")
	test.ExpectEquality(t, lg.Len(), 0)
	test.ExpectFailure(t, lg.Write(tw))

	lg.Log(logger.Allow, "test", "kept")
	test.ExpectEquality(t, echo.String(), "test: kept\n")

	lg.SetEcho(nil)
	lg.Log(logger.Allow, "test", "not echoed")
	test.ExpectEquality(t, echo.String(), "test: kept\n")
}

func TestMaximum(t *testing.T) {
	tw := &test.Writer{}
	lg := logger.NewLogger(2)
	lg.Log(logger.Allow, "a", "1")
	lg.Log(logger.Allow, "b", "2")
	lg.Log(logger.Allow, "c", "3")
	test.ExpectEquality(t, lg.Len(), 2)
	lg.Write(tw)
	test.ExpectEquality(t, tw.String(), "b: 2\nc: 3\n")
}
