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

package logger

import (
	"io"
	"strings"

	"github.com/coalos/coalos/gui/colorterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The first line of
// a write is left alone and any following lines are drawn in dim red. Useful
// when echoing the log to a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	var s strings.Builder
	s.WriteString(l[0])
	s.WriteString("\n")
	if len(l) > 1 {
		s.WriteString(ansi.DimPens["red"])
		for _, t := range l[1:] {
			s.WriteString(t)
			s.WriteString("\n")
		}
		s.WriteString(ansi.NormalPen)
	}

	if _, err := io.WriteString(c.out, s.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}
