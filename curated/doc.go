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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package except that the first argument is
// a pattern rather than a format.
//
// Patterns are string constants exported by the package that raises the
// error. For example, the cpu package exports:
//
//	const UnimplementedOpcode = "cpu: unimplemented opcode (%#02x) at (%#04x)"
//
// The pattern can then be used to test for a specific error:
//
//	if curated.Is(err, cpu.UnimplementedOpcode) {
//		...
//	}
//
// Is() checks the most recent error only. Has() checks the whole chain of
// curated errors, each error having been passed to Errorf() as one of the
// values.
//
// Error messages are chains of "component: detail" parts. When the message
// is built, adjacent identical parts are reduced to one. So:
//
//	cpu: cpu: unimplemented opcode
//
// is reported as:
//
//	cpu: unimplemented opcode
//
// Curated errors implement Unwrap() so that a plain error passed as one of the
// values (the first such value) can be found with errors.Is() and errors.As()
// from the standard library.
package curated
