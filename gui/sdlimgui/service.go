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
	"time"

	"github.com/coalos/coalos/terminal"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Service() {
	if img.isFinished() {
		return
	}

	for ev := img.polling.wait(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.finish()
			return

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_EXPOSED:
				img.polling.alert()
			}

		case *sdl.TextInputEvent:
			img.serviceTextInput(ev)

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)
		}
	}

	now := time.Now()
	dt := now.Sub(img.lastService).Seconds()
	img.lastService = now

	// the viewport follows the height of the window
	h := img.plt.displaySize()[1]
	if h != img.viewportHeight {
		img.viewportHeight = h
		img.eng.SetViewport(terminal.DefaultViewport(h))
	}

	img.eng.Update(dt)
	if img.eng.Done() {
		img.finish()
		return
	}

	img.plt.newFrame(dt)
	imgui.NewFrame()
	img.draw()
	imgui.Render() // This call only creates the draw data list. Actual rendering to framebuffer is done below.

	img.glsl.preRender()
	img.glsl.render(img.eng.CRT())
	img.plt.postRender()
}
