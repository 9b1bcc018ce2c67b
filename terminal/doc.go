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

// Package terminal is the text engine of CoalOS. It keeps the scrollback of
// printed lines, reveals new lines one character at a time with a
// typewriter effect, edits the current input line and blinks the cursor.
//
// The Terminal type composes these parts. It is driven by a frame loop with
// one call to Update() and one call to Render() per frame. Render() does not
// draw anything. It returns a RenderPlan describing what should be drawn and
// where, and it is up to the frontend to draw it.
//
// Only one line is revealed at a time. A call to StartReveal() while another
// line is being revealed appends the new line immediately.
//
// The package is not safe for concurrent use.
package terminal
