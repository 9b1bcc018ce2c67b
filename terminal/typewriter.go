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

// MinCharsPerSecond is the slowest speed of the typewriter. Slower speeds are
// raised to this value.
const MinCharsPerSecond = 1.0

// Typewriter reveals a line one character at a time. While a line is being
// revealed the Typewriter is said to be typing.
//
// The line being revealed is a placeholder in a LineBuffer. The placeholder is
// found by its sequence number, so lines appended after the placeholder do not
// disturb the reveal. If the placeholder is cleared or evicted from the buffer
// the reveal continues at the same pace but has no visible effect.
type Typewriter struct {
	typing   bool
	text     []rune
	revealed int
	cps      float64
	acc      float64
	seq      uint64
}

// IsTyping returns true if a line is being revealed.
func (tw *Typewriter) IsTyping() bool {
	return tw.typing
}

// StartReveal begins revealing text at the speed given in characters per
// second. If the Typewriter is already typing then the text is appended to
// the buffer in full and the current reveal carries on. Returns true if the
// reveal was started.
func (tw *Typewriter) StartReveal(buf *LineBuffer, text string, cps float64) bool {
	if tw.typing {
		buf.Append(text)
		return false
	}

	buf.Append("")
	tw.seq, _ = buf.LastSeq()
	tw.text = []rune(text)
	tw.revealed = 0
	tw.cps = max(cps, MinCharsPerSecond)
	tw.acc = 0
	tw.typing = true
	return true
}

// Update advances the reveal by dt seconds. As many characters are revealed
// as fit into the time accumulated since the previous reveal, so a long frame
// reveals more than one character. Returns the number of characters revealed.
func (tw *Typewriter) Update(buf *LineBuffer, dt float64) int {
	if !tw.typing {
		return 0
	}

	tw.acc += dt
	tpc := 1.0 / tw.cps

	var n int
	for tw.acc >= tpc && tw.revealed < len(tw.text) {
		tw.revealed++
		tw.acc -= tpc
		n++
	}

	if n > 0 {
		s := string(tw.text[:tw.revealed])
		if last, ok := buf.LastSeq(); ok && last == tw.seq {
			buf.ReplaceLast(s)
		} else {
			buf.ReplaceSeq(tw.seq, s)
		}
	}

	if tw.revealed >= len(tw.text) {
		tw.typing = false
		tw.text = nil
		tw.revealed = 0
		tw.acc = 0
	}

	return n
}
