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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes to the flag package, where every mode can
// have its own set of flags.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "DUMP", "VERSION")
//	p, err := md.Parse()
//
// After parsing, the selected mode is returned by Mode(). If the first
// non-flag argument is not one of the sub-modes then the first sub-mode added
// is the default. Mode comparison is case insensitive.
//
// Parsing the flags of the selected mode is done by calling NewMode(), adding
// the flags for the mode and calling Parse() again:
//
//	switch md.Mode() {
//	case "TERM":
//		md.NewMode()
//		speed := md.AddFloat64("speed", 50, "typewriter speed")
//		p, err := md.Parse()
//		...
//	}
//
// The Path() function returns every mode selected so far, separated by a
// slash. Modes can be nested as deeply as required.
//
// The -help flag prints the flags and sub-modes of the current mode to the
// Output writer and Parse() returns ParseHelp.
package modalflag
