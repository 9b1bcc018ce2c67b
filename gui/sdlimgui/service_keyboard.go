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

package sdlimgui

import (
	"github.com/coalos/coalos/engine"
	"github.com/veandco/go-sdl2/sdl"
)

// keyFromScancode maps the SDL scancodes used by the terminal to engine keys.
// printable characters are not mapped here, they arrive as text input events.
func keyFromScancode(sc sdl.Scancode) (engine.Key, bool) {
	switch sc {
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER:
		return engine.KeyEnter, true
	case sdl.SCANCODE_BACKSPACE:
		return engine.KeyBackspace, true
	case sdl.SCANCODE_TAB:
		return engine.KeyTab, true
	case sdl.SCANCODE_UP:
		return engine.KeyUp, true
	case sdl.SCANCODE_DOWN:
		return engine.KeyDown, true
	}
	return engine.KeyRune, false
}

// textInputEvents converts the text from an SDL text input event into key
// events. SDL has already applied the shift and caps lock state to the text so
// every event has Shift set.
func textInputEvents(text []byte) []engine.KeyEvent {
	for i, b := range text {
		if b == 0 {
			text = text[:i]
			break
		}
	}

	var evs []engine.KeyEvent
	for _, r := range string(text) {
		evs = append(evs, engine.KeyEvent{Key: engine.KeyRune, Rune: r, Shift: true})
	}
	return evs
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Type == sdl.KEYUP {
		switch ev.Keysym.Scancode {
		case sdl.SCANCODE_F11:
			img.plt.toggleFullScreen()
			img.polling.alert()
		}
		return
	}

	// repeated keys are allowed so that holding backspace deletes more than
	// one character
	if key, ok := keyFromScancode(ev.Keysym.Scancode); ok {
		img.eng.HandleKey(engine.KeyEvent{Key: key})
	}
}

func (img *SdlImgui) serviceTextInput(ev *sdl.TextInputEvent) {
	for _, kev := range textInputEvents(ev.Text[:]) {
		img.eng.HandleKey(kev)
	}
}
