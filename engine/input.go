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

import (
	"github.com/coalos/coalos/gui/display"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/notifications"
	"github.com/coalos/coalos/terminal"
)

// HandleKey applies the key event to the terminal. Key events are ignored
// while booting and after logout.
func (eng *Engine) HandleKey(ev KeyEvent) {
	if eng.mode == ModeBooting || eng.loggingOut {
		return
	}

	switch ev.Key {
	case KeyEnter:
		input := eng.trm.GetCurrentInput()
		eng.trm.Submit()
		eng.history.add(input)
		eng.tab.Reset()
		logger.Logf(eng.env, "engine", "input: %s", input)
		eng.cmds.ParseAndExecute(input)

	case KeyBackspace:
		eng.trm.DeleteLast()
		eng.tab.Reset()

	case KeyTab:
		eng.trm.SetInput(eng.tab.Complete(eng.trm.GetCurrentInput()))

	case KeyUp:
		if s, ok := eng.history.older(); ok {
			eng.trm.SetInput(s)
			eng.tab.Reset()
		}

	case KeyDown:
		if s, ok := eng.history.newer(); ok {
			eng.trm.SetInput(s)
			eng.tab.Reset()
		}

	case KeyRune:
		if r, ok := ev.printable(); ok {
			eng.trm.AppendChar(r)
			eng.tab.Reset()
			eng.sendNotice(notifications.NotifyKeypress)
		}
	}
}

// output is the terminal as seen by the commands package. changes to the
// colour and speed are recorded in the display preferences so they are
// written to disk with the save command.
type output struct {
	*terminal.Terminal
	prefs *display.Preferences
}

func (o *output) SetTextColor(r, g, b float32) {
	o.prefs.SetColour(terminal.Colour{R: r, G: g, B: b})
	c := o.prefs.Colour()
	o.Terminal.SetTextColor(c.R, c.G, c.B)
}

func (o *output) SetTypewriterSpeed(cps float64) {
	o.prefs.SetSpeed(cps)
	o.Terminal.SetTypewriterSpeed(o.prefs.Speed())
}
