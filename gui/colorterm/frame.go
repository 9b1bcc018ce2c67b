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

package colorterm

import (
	"strings"

	"github.com/coalos/coalos/gui/colorterm/ansi"
	"github.com/coalos/coalos/terminal"
	"github.com/mattn/go-runewidth"
)

// viewport for a terminal of the given number of rows. every line of text is
// one row high and there is no padding.
func viewport(rows int) terminal.Viewport {
	return terminal.Viewport{
		Height:     float32(rows),
		LineHeight: 1,
	}
}

// renderFrame converts the render plan into the escape sequences that draw
// the whole screen. lines are truncated to the width of the terminal. rows
// not used by the plan are cleared.
func renderFrame(plan terminal.RenderPlan, rows int, cols int) string {
	var s strings.Builder

	s.WriteString(ansi.CursorHome)

	row := 0
	for _, ins := range plan {
		if row >= rows {
			break
		}
		s.WriteString(ansi.CursorPosition(row, 0))
		s.WriteString(ansi.ClearLine)
		s.WriteString(ansi.TrueColor(ins.Colour.R, ins.Colour.G, ins.Colour.B))
		s.WriteString(runewidth.Truncate(ins.Text, cols, ""))
		row++
	}

	for ; row < rows; row++ {
		s.WriteString(ansi.CursorPosition(row, 0))
		s.WriteString(ansi.ClearLine)
	}

	s.WriteString(ansi.NormalPen)

	return s.String()
}
