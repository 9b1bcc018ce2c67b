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
	"testing"

	"github.com/coalos/coalos/engine"
	"github.com/coalos/coalos/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyFromScancode(t *testing.T) {
	key, ok := keyFromScancode(sdl.SCANCODE_RETURN)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, engine.KeyEnter)

	key, ok = keyFromScancode(sdl.SCANCODE_KP_ENTER)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, engine.KeyEnter)

	key, ok = keyFromScancode(sdl.SCANCODE_BACKSPACE)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, engine.KeyBackspace)

	key, ok = keyFromScancode(sdl.SCANCODE_TAB)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, engine.KeyTab)

	key, ok = keyFromScancode(sdl.SCANCODE_UP)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, engine.KeyUp)

	key, ok = keyFromScancode(sdl.SCANCODE_DOWN)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, engine.KeyDown)

	// printable keys arrive through text input
	_, ok = keyFromScancode(sdl.SCANCODE_A)
	test.ExpectFailure(t, ok)
}

func TestTextInputEvents(t *testing.T) {
	var text [32]byte
	copy(text[:], "Hi!")

	evs := textInputEvents(text[:])
	test.ExpectEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[0], engine.KeyEvent{Key: engine.KeyRune, Rune: 'H', Shift: true})
	test.ExpectEquality(t, evs[1], engine.KeyEvent{Key: engine.KeyRune, Rune: 'i', Shift: true})
	test.ExpectEquality(t, evs[2], engine.KeyEvent{Key: engine.KeyRune, Rune: '!', Shift: true})

	var empty [32]byte
	test.ExpectEquality(t, len(textInputEvents(empty[:])), 0)
}
