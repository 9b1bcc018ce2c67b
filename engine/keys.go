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

package engine

// Key is the type of a KeyEvent.
type Key int

// List of valid Key values.
const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return "unknown"
}

// KeyEvent is a single key press.
//
// For KeyRune events the Rune field is the character printed on the key, in
// the manner of a keyboard scan code. Letters are lowercased unless Shift is
// true. Frontends that receive text that is already cased, from a terminal
// for example, should set Shift to true so the rune is used as it is.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Shift bool
}

// Printable runes are those in the range 32 to 126.
const (
	firstPrintable = 32
	lastPrintable  = 126
)

// printable returns the rune to add to the input, or false if the event does
// not add anything.
func (ev KeyEvent) printable() (rune, bool) {
	r := ev.Rune
	if r < firstPrintable || r > lastPrintable {
		return 0, false
	}
	if !ev.Shift && r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r, true
}
