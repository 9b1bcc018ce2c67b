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

// Package asciiart loads ASCII art from text files and keeps it in a cache
// keyed by name. Art is looked for in a directory on disk first, with the
// art embedded in the binary as a fallback.
//
// Art is printed to anything with an AppendLine() function. The terminal
// type from the terminal package satisfies the Printer interface.
package asciiart
