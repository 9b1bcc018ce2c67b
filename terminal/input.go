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

// InputEditor is the line of text being typed by the user.
type InputEditor struct {
	line []rune
}

// AppendChar adds the character to the end of the input. No filtering of the
// character is done.
func (ed *InputEditor) AppendChar(r rune) {
	ed.line = append(ed.line, r)
}

// DeleteLast removes the last character of the input, if there is one.
func (ed *InputEditor) DeleteLast() {
	if len(ed.line) > 0 {
		ed.line = ed.line[:len(ed.line)-1]
	}
}

// Set replaces the input.
func (ed *InputEditor) Set(s string) {
	ed.line = append(ed.line[:0], []rune(s)...)
}

func (ed *InputEditor) String() string {
	return string(ed.line)
}

// Submit appends the prompt and the input to the buffer and empties the
// input. Returns the input without the prompt.
func (ed *InputEditor) Submit(buf *LineBuffer, prompt string) string {
	s := string(ed.line)
	buf.Append(prompt + s)
	ed.line = ed.line[:0]
	return s
}
