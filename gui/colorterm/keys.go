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
	"github.com/coalos/coalos/engine"
	"github.com/coalos/coalos/gui/colorterm/easyterm"
)

// control is a keypress that is handled by the frontend rather than by the
// engine.
type control int

const (
	controlNone control = iota
	controlInterrupt
	controlSuspend
)

// decoder assembles bytes read from a raw terminal into key events. escape
// sequences can arrive over several reads so the decoder keeps state between
// calls to feed().
type decoder struct {
	esc int
}

// feed a single byte to the decoder. returns a key event when one is
// complete.
func (dec *decoder) feed(b byte) (engine.KeyEvent, control, bool) {
	switch dec.esc {
	case 1:
		if b == easyterm.EscCursor {
			dec.esc = 2
		} else {
			dec.esc = 0
		}
		return engine.KeyEvent{}, controlNone, false
	case 2:
		dec.esc = 0
		switch b {
		case easyterm.CursorUp:
			return engine.KeyEvent{Key: engine.KeyUp}, controlNone, true
		case easyterm.CursorDown:
			return engine.KeyEvent{Key: engine.KeyDown}, controlNone, true
		}
		return engine.KeyEvent{}, controlNone, false
	}

	switch b {
	case easyterm.KeyEsc:
		dec.esc = 1
	case easyterm.KeyInterrupt:
		return engine.KeyEvent{}, controlInterrupt, false
	case easyterm.KeySuspend:
		return engine.KeyEvent{}, controlSuspend, false
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		return engine.KeyEvent{Key: engine.KeyEnter}, controlNone, true
	case easyterm.KeyBackspace, easyterm.KeyDelete:
		return engine.KeyEvent{Key: engine.KeyBackspace}, controlNone, true
	case easyterm.KeyTab:
		return engine.KeyEvent{Key: engine.KeyTab}, controlNone, true
	default:
		// the terminal has already applied the shift state
		if b >= 32 && b <= 126 {
			return engine.KeyEvent{Key: engine.KeyRune, Rune: rune(b), Shift: true}, controlNone, true
		}
	}

	return engine.KeyEvent{}, controlNone, false
}
