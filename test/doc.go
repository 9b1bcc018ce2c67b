// This file is part of CoalOS.
//
// CoalOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoalOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoalOS.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions test a value and report a failure with t.Errorf(),
// allowing the test to continue. The Demand functions are the same except
// that a failure is fatal and the test ends immediately. Demands are useful
// when later parts of a test rely on the tested value being correct, for
// example testing the length of a slice before indexing into it.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. Currently supported types are bool and error. It is
// worth describing how the nil type is handled because it is not obvious.
// The nil type is considered a success, because that is how the error type
// works (nil to indicate no error).
//
// All Expect and Demand functions accept optional tags. Tags are printed at
// the start of the failure message and help identify which of many similar
// tests has failed, for example the iteration of a loop.
//
// The RingWriter and CompareWriter types implement io.Writer and are used to
// capture output for later comparison.
package test
