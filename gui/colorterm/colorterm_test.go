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
	"testing"

	"github.com/coalos/coalos/engine"
	"github.com/coalos/coalos/gui/colorterm/ansi"
	"github.com/coalos/coalos/terminal"
	"github.com/coalos/coalos/test"
)

func feedAll(dec *decoder, s string) []engine.KeyEvent {
	var evs []engine.KeyEvent
	for i := 0; i < len(s); i++ {
		if ev, _, ok := dec.feed(s[i]); ok {
			evs = append(evs, ev)
		}
	}
	return evs
}

func TestDecoderPrintable(t *testing.T) {
	var dec decoder
	evs := feedAll(&dec, "Ls -a")
	test.ExpectEquality(t, len(evs), 5)
	test.ExpectEquality(t, evs[0], engine.KeyEvent{Key: engine.KeyRune, Rune: 'L', Shift: true})
	test.ExpectEquality(t, evs[2], engine.KeyEvent{Key: engine.KeyRune, Rune: ' ', Shift: true})
}

func TestDecoderControl(t *testing.T) {
	var dec decoder
	evs := feedAll(&dec, "\r\n\t\x7f\x08")
	test.ExpectEquality(t, len(evs), 5)
	test.ExpectEquality(t, evs[0].Key, engine.KeyEnter)
	test.ExpectEquality(t, evs[1].Key, engine.KeyEnter)
	test.ExpectEquality(t, evs[2].Key, engine.KeyTab)
	test.ExpectEquality(t, evs[3].Key, engine.KeyBackspace)
	test.ExpectEquality(t, evs[4].Key, engine.KeyBackspace)

	_, ctrl, ok := dec.feed(3)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, ctrl, controlInterrupt)

	_, ctrl, ok = dec.feed(26)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, ctrl, controlSuspend)
}

func TestDecoderEscapeSequences(t *testing.T) {
	var dec decoder
	evs := feedAll(&dec, "\x1b[A\x1b[B")
	test.ExpectEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Key, engine.KeyUp)
	test.ExpectEquality(t, evs[1].Key, engine.KeyDown)

	// cursor left and right are ignored. the sequence must not leak into
	// the input as printable characters
	evs = feedAll(&dec, "\x1b[C\x1b[Dx")
	test.ExpectEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Rune, 'x')

	// sequence split over several feeds
	_, _, ok := dec.feed(27)
	test.ExpectFailure(t, ok)
	_, _, ok = dec.feed('[')
	test.ExpectFailure(t, ok)
	ev, _, ok := dec.feed('A')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Key, engine.KeyUp)
}

func TestRenderFrame(t *testing.T) {
	plan := terminal.RenderPlan{
		{Text: "hello world", Colour: terminal.Green},
		{Text: "root:~$ _", Colour: terminal.Green},
	}

	frame := renderFrame(plan, 4, 5)
	test.ExpectSuccess(t, strings.HasPrefix(frame, ansi.CursorHome))
	test.ExpectSuccess(t, strings.Contains(frame, ansi.TrueColor(0, 1, 0)+"hello"+ansi.CursorPosition(1, 0)))
	test.ExpectFailure(t, strings.Contains(frame, "hello world"))
	test.ExpectSuccess(t, strings.Contains(frame, "root:"))

	// every row is cleared
	test.ExpectEquality(t, strings.Count(frame, ansi.ClearLine), 4)
	test.ExpectSuccess(t, strings.HasSuffix(frame, ansi.NormalPen))
}

func TestRenderFrameRowLimit(t *testing.T) {
	plan := terminal.RenderPlan{
		{Text: "a"}, {Text: "b"}, {Text: "c"},
	}
	frame := renderFrame(plan, 2, 80)
	test.ExpectSuccess(t, strings.Contains(frame, "b"))
	test.ExpectFailure(t, strings.Contains(frame, "c"))
	test.ExpectEquality(t, strings.Count(frame, ansi.ClearLine), 2)
}

func TestViewport(t *testing.T) {
	v := viewport(24)
	test.ExpectEquality(t, v.MaxVisibleLines(), 24)
}
