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

// Package logger is the central log repository for gopher2a03. Log entries
// are added with Log() or Logf():
//
//	logger.Log(logger.Allow, "cpu", "halted at BRK")
//
// The first argument is a Permission. Allow is the standard permission and
// should be used in most cases. Other implementations of the Permission
// interface can be used to silence a component conditionally.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count.
//
// The central log can be written to an io.Writer with Write() or Tail(), and
// new entries can be echoed as they arrive with SetEcho().
//
// The Logger type is exported and can be used to create a log distinct from
// the central log. This is mainly useful for testing.
package logger
