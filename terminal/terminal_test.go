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
	"fmt"
	"testing"

	"github.com/coalos/coalos/terminal"
	"github.com/coalos/coalos/test"
)

func TestRenderPlan(t *testing.T) {
	v := terminal.DefaultViewport(2*terminal.DefaultPadding + 5*terminal.DefaultLineHeight)
	trm := terminal.NewTerminal(v)

	for i := range 10 {
		trm.AppendLine(fmt.Sprintf("line %d", i))
	}

	trm.SetPrompt("root:~$ ")
	trm.AppendChar('l')
	trm.AppendChar('s')

	plan := trm.Render()
	test.DemandEquality(t, len(plan), 5)

	for i, d := range plan[:4] {
		test.ExpectEquality(t, d.Text, fmt.Sprintf("line %d", 6+i))
		test.ExpectEquality(t, d.X, float32(terminal.DefaultPadding))
		test.ExpectEquality(t, d.Y, float32(terminal.DefaultPadding+(i+1)*terminal.DefaultLineHeight))
		test.ExpectEquality(t, d.Colour, terminal.Green)
	}

	in := plan.Input()
	test.ExpectEquality(t, in.Text, "root:~$ ls_")
	test.ExpectEquality(t, in.Y, float32(terminal.DefaultPadding+5*terminal.DefaultLineHeight))

	// cursor is hidden after a blink interval
	trm.Update(terminal.BlinkInterval)
	test.ExpectEquality(t, trm.Render().Input().Text, "root:~$ ls")
}

func TestRenderNoPrompt(t *testing.T) {
	trm := terminal.NewTerminal(terminal.DefaultViewport(600))
	test.ExpectSuccess(t, trm.CursorVisible())

	// no cursor without a prompt
	plan := trm.Render()
	test.DemandEquality(t, len(plan), 1)
	test.ExpectEquality(t, plan.Input().Text, "")
	test.ExpectEquality(t, terminal.RenderPlan(nil).Input().Text, "")
}

func TestTerminalReveal(t *testing.T) {
	trm := terminal.NewTerminal(terminal.DefaultViewport(600))
	test.ExpectEquality(t, trm.TypewriterSpeed(), terminal.DefaultCharsPerSecond)

	trm.SetTypewriterSpeed(2)
	test.ExpectSuccess(t, trm.StartRevealDefault("OK"))
	test.ExpectSuccess(t, trm.IsTyping())
	test.ExpectEquality(t, trm.Update(0.5), 1)
	test.ExpectEquality(t, trm.Lines()[0], "O")
	trm.Update(0.5)
	test.ExpectFailure(t, trm.IsTyping())
	test.ExpectEquality(t, trm.Lines()[0], "OK")

	test.ExpectSuccess(t, trm.StartReveal("A", 1.0))
	test.ExpectFailure(t, trm.StartReveal("B", 1.0))
	test.ExpectEquality(t, fmt.Sprint(trm.Lines()), "[OK  B]")
	trm.Update(1.0)
	test.ExpectEquality(t, fmt.Sprint(trm.Lines()), "[OK A B]")

	trm.SetTypewriterSpeed(-10)
	test.ExpectEquality(t, trm.TypewriterSpeed(), terminal.MinCharsPerSecond)
}

func TestTerminalInput(t *testing.T) {
	trm := terminal.NewTerminal(terminal.DefaultViewport(600))
	trm.SetPrompt("> ")
	test.ExpectEquality(t, trm.Prompt(), "> ")

	trm.SetInput("cal")
	test.ExpectEquality(t, trm.GetCurrentInput(), "cal")
	trm.DeleteLast()
	trm.AppendChar('l')
	test.ExpectEquality(t, trm.Submit(), "cal")
	test.ExpectEquality(t, trm.GetCurrentInput(), "")
	test.ExpectEquality(t, fmt.Sprint(trm.Lines()), "[> cal]")

	// clear leaves the input line alone
	trm.SetInput("rm")
	trm.Clear()
	test.ExpectEquality(t, len(trm.Lines()), 0)
	test.ExpectEquality(t, trm.GetCurrentInput(), "rm")
}

func TestTerminalSetters(t *testing.T) {
	trm := terminal.NewTerminal(terminal.DefaultViewport(600))
	test.ExpectEquality(t, trm.GetTextColor(), terminal.Green)

	trm.SetTextColor(1.5, -0.5, 0.25)
	test.ExpectEquality(t, trm.GetTextColor(), terminal.Colour{R: 1, G: 0, B: 0.25})

	v := terminal.DefaultViewport(300)
	trm.SetViewport(v)
	test.ExpectEquality(t, trm.Viewport(), v)
}
