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

// Package test bundles a bunch of useful functions useful for testing
// purposes, particular useful in conjunction with the standard go test
// harness.
//
// The Expect*() functions report a test error but allow the test to continue.
// The Demand*() functions are fatal to the test and should be used when the
// value being tested is needed for subsequent tests.
//
// The Writer type implements io.Writer and can be used to capture output. The
// Writer.Compare() function can then be used to test for equality.
//
// All functions accept an optional list of tags. The tags are printed as part
// of the failure message and are useful for identifying which iteration of a
// loop failed.
package test
