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

// the time period, in milliseconds, that the service loop waits for an event
// when there is nothing animating on the screen. the cursor blink is the only
// change so the period can be long
const idleSleepPeriod = 50

// DefaultFPS is the frame rate used when the terminal is animating.
const DefaultFPS = 60

type polling struct {
	img *SdlImgui

	// sleep period in milliseconds when the screen is animating
	activeSleepPeriod int

	// wake is used to preempt the sleep period when we want the next
	// iteration of the service loop to happen immediately. for example, after
	// the window has been resized.
	wake bool
}

func newPolling(img *SdlImgui, fps int) *polling {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &polling{
		img:               img,
		activeSleepPeriod: max(1000/fps, 1),
	}
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// animating returns true if the screen is changing for reasons other than the
// cursor blink.
func (pol *polling) animating() bool {
	eng := pol.img.eng
	if eng.Mode() == engine.ModeBooting || eng.Terminal().IsTyping() {
		return true
	}

	// the noise effect changes every frame
	crt := eng.CRT()
	return crt.Enabled && crt.Noise > 0
}

func (pol *polling) wait() sdl.Event {
	var timeout int

	if pol.wake {
		pol.wake = false
	} else if pol.animating() {
		timeout = pol.activeSleepPeriod
	} else {
		timeout = idleSleepPeriod
	}

	// wait for new SDL event or until the selected timeout period has elapsed
	return sdl.WaitEventTimeout(timeout)
}
