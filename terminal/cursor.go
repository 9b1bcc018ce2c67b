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

package terminal

// BlinkInterval is the number of seconds between changes in cursor visibility.
const BlinkInterval = 0.5

// CursorGlyph is drawn at the end of the input line when the cursor is visible.
const CursorGlyph = "_"

// CursorBlinker switches the visibility of the cursor every BlinkInterval.
// The zero value is a hidden cursor. Use NewCursorBlinker() for a cursor that
// starts visible.
type CursorBlinker struct {
	visible bool
	acc     float64
}

// NewCursorBlinker returns a visible cursor.
func NewCursorBlinker() CursorBlinker {
	return CursorBlinker{visible: true}
}

// Update the blink timer by dt seconds. The timer restarts from zero on every
// change in visibility and any left over time is discarded.
func (c *CursorBlinker) Update(dt float64) {
	c.acc += dt
	if c.acc >= BlinkInterval {
		c.visible = !c.visible
		c.acc = 0
	}
}

// Visible returns true if the cursor should be drawn.
func (c *CursorBlinker) Visible() bool {
	return c.visible
}
