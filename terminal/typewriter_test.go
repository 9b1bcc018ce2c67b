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

package terminal_test

import (
	"testing"

	"github.com/coalos/coalos/terminal"
	"github.com/coalos/coalos/test"
)

func TestTypewriterReveal(t *testing.T) {
	buf := terminal.NewLineBuffer(0)
	var tw terminal.Typewriter

	test.ExpectSuccess(t, tw.StartReveal(buf, "OK", 2.0))
	test.ExpectSuccess(t, tw.IsTyping())
	test.ExpectEquality(t, buf.Line(0), "")

	test.ExpectEquality(t, tw.Update(buf, 0.5), 1)
	test.ExpectEquality(t, buf.Line(0), "O")
	test.ExpectSuccess(t, tw.IsTyping())

	test.ExpectEquality(t, tw.Update(buf, 0.5), 1)
	test.ExpectEquality(t, buf.Line(0), "OK")
	test.ExpectFailure(t, tw.IsTyping())

	// updating while idle does nothing
	test.ExpectEquality(t, tw.Update(buf, 10), 0)
	test.ExpectEquality(t, buf.Len(), 1)
}

func TestTypewriterCatchUp(t *testing.T) {
	buf := terminal.NewLineBuffer(0)
	var tw terminal.Typewriter

	tw.StartReveal(buf, "OK", 2.0)
	test.ExpectEquality(t, tw.Update(buf, 1.0), 2)
	test.ExpectEquality(t, buf.Line(0), "OK")
	test.ExpectFailure(t, tw.IsTyping())
}

func TestTypewriterSmallSteps(t *testing.T) {
	buf := terminal.NewLineBuffer(0)
	var tw terminal.Typewriter

	tw.StartReveal(buf, "hello", 10.0)
	tw.Update(buf, 0.05)
	test.ExpectEquality(t, buf.Line(0), "")
	tw.Update(buf, 0.06)
	test.ExpectEquality(t, buf.Line(0), "h")
	tw.Update(buf, 0.25)
	test.ExpectEquality(t, buf.Line(0), "hel")
	tw.Update(buf, 1.0)
	test.ExpectEquality(t, buf.Line(0), "hello")
	test.ExpectFailure(t, tw.IsTyping())
}

func TestTypewriterBusy(t *testing.T) {
	buf := terminal.NewLineBuffer(0)
	var tw terminal.Typewriter

	buf.Append("before")
	test.ExpectSuccess(t, tw.StartReveal(buf, "A", 1.0))
	test.ExpectFailure(t, tw.StartReveal(buf, "B", 1.0))

	test.DemandEquality(t, buf.Len(), 3)
	test.ExpectEquality(t, buf.Line(1), "")
	test.ExpectEquality(t, buf.Line(2), "B")

	// the placeholder is revealed even though it is no longer the last line
	tw.Update(buf, 1.0)
	test.ExpectEquality(t, buf.Line(1), "A")
	test.ExpectEquality(t, buf.Line(2), "B")
	test.ExpectFailure(t, tw.IsTyping())
}

func TestTypewriterCleared(t *testing.T) {
	buf := terminal.NewLineBuffer(0)
	var tw terminal.Typewriter

	tw.StartReveal(buf, "abc", 1.0)
	buf.Clear()
	buf.Append("new")

	// the reveal keeps its pace but does not touch the new line
	tw.Update(buf, 1.0)
	test.ExpectSuccess(t, tw.IsTyping())
	test.ExpectEquality(t, buf.Line(0), "new")
	tw.Update(buf, 2.0)
	test.ExpectFailure(t, tw.IsTyping())
	test.ExpectEquality(t, buf.Len(), 1)
	test.ExpectEquality(t, buf.Line(0), "new")
}

func TestTypewriterEdgeCases(t *testing.T) {
	buf := terminal.NewLineBuffer(0)
	var tw terminal.Typewriter

	// empty text finishes on the next update
	tw.StartReveal(buf, "", 50)
	test.ExpectSuccess(t, tw.IsTyping())
	tw.Update(buf, 0)
	test.ExpectFailure(t, tw.IsTyping())
	test.ExpectEquality(t, buf.Line(0), "")

	// speeds below the minimum are clamped
	buf.Clear()
	tw.StartReveal(buf, "xy", 0)
	tw.Update(buf, 1.0/terminal.MinCharsPerSecond)
	test.ExpectEquality(t, buf.Line(0), "x")
	tw.Update(buf, 1.0/terminal.MinCharsPerSecond)
	test.ExpectFailure(t, tw.IsTyping())

	// reveal is by character and not by byte
	buf.Clear()
	tw.StartReveal(buf, "ñé", 1.0)
	tw.Update(buf, 1.0)
	test.ExpectEquality(t, buf.Line(0), "ñ")
}
