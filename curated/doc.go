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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("savegame: %v", "no save file")
//
//	if curated.Is(e, "savegame: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("engine: %v", e)
//
//	if curated.Has(f, "savegame: %v") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. Wrapping an error with the same prefix at every
// level of the call stack therefore results in a message like:
//
//	commands: value not recognised
//
// and not:
//
//	commands: commands: value not recognised
//
// Chains are thought of as parts separated by the sub-string ': '.
//
// Sentinal errors are achieved through the use of the Is() and Has()
// functions. Sentinal patterns should be stored as a const string, suitably
// named and commented.
//
// Curated errors also support the Unwrap() convention of the standard errors
// package. The first value that is itself an error is returned by Unwrap(),
// meaning that errors.Is() will find os.ErrNotExist inside a curated error
// that wraps a file error.
package curated
