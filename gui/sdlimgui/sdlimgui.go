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

// Package sdlimgui is the graphical frontend for CoalOS. It uses SDL for the
// window and for keyboard input, and dear imgui to draw the terminal text. The
// OpenGL renderer draws the imgui command lists and applies the CRT effects
// in a second shader pass.
//
// SDL requires the window to be serviced from the main thread. The SdlImgui
// type should be created, serviced and destroyed from the main thread, for
// example with the help of the mainSync structure in the main package.
package sdlimgui

import (
	"io"
	"sync"
	"time"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/engine"
	"github.com/coalos/coalos/gui/sdlaudio"
	"github.com/coalos/coalos/gui/sounds"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/terminal"
	"github.com/inkyblackness/imgui-go/v4"
)

// Config for NewSdlImgui().
type Config struct {
	// font to use instead of the builtin imgui font. may be empty
	FontFile string

	// frame rate while the terminal is animating. zero selects DefaultFPS
	FPS int

	// open an audio device
	Audio bool
}

// SdlImgui is an sdl based visualiser using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	glsl    *glsl

	// polling decides how long the service loop waits for new events
	polling *polling

	eng   *engine.Engine
	audio *sdlaudio.Audio

	lastService    time.Time
	viewportHeight float32

	// closed when the engine is done or the window has been closed
	finished     chan struct{}
	finishedOnce sync.Once
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui(eng *engine.Engine, cfg Config) (*SdlImgui, error) {
	img := &SdlImgui{
		context:     imgui.CreateContext(nil),
		io:          imgui.CurrentIO(),
		eng:         eng,
		lastService: time.Now(),
		finished:    make(chan struct{}),
	}

	// no imgui windows are saved between sessions
	img.io.SetIniFilename("")

	var err error

	img.plt, err = newPlatform()
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.glsl, err = newGlsl(img, cfg.FontFile)
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.polling = newPolling(img, cfg.FPS)

	if cfg.Audio {
		img.audio, err = sdlaudio.NewAudio(sounds.DefaultRate)
		if err != nil {
			// no sound is not fatal
			logger.Log(logger.Allow, "sdlimgui", err)
			img.audio = nil
		}
	}

	return img, nil
}

// Destroy implements GuiCreator interface
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.finish()

	if img.audio != nil {
		err := img.audio.EndMixing()
		if err != nil {
			output.Write([]byte(err.Error()))
		}
	}

	img.glsl.destroy()

	err := img.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	img.context.Destroy()
}

// Audio returns the audio device, if one was requested and could be opened.
// The returned value is nil otherwise.
func (img *SdlImgui) Audio() *sdlaudio.Audio {
	return img.audio
}

// Finished returns a channel which is closed when the engine is done or when
// the user has closed the window.
func (img *SdlImgui) Finished() <-chan struct{} {
	return img.finished
}

func (img *SdlImgui) finish() {
	img.finishedOnce.Do(func() {
		close(img.finished)
	})
}

func (img *SdlImgui) isFinished() bool {
	select {
	case <-img.finished:
		return true
	default:
	}
	return false
}

// the flags for the window covering the whole display. the window exists only
// to provide a draw list
const screenFlags = imgui.WindowFlagsNoDecoration | imgui.WindowFlagsNoSavedSettings |
	imgui.WindowFlagsNoBringToFrontOnFocus | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
	imgui.WindowFlagsNoBackground

// draw gui. called from service loop.
func (img *SdlImgui) draw() {
	sz := img.plt.displaySize()

	imgui.SetNextWindowPos(imgui.Vec2{})
	imgui.SetNextWindowSize(imgui.Vec2{X: sz[0], Y: sz[1]})
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.Vec2{})
	imgui.PushStyleVarFloat(imgui.StyleVarWindowBorderSize, 0)
	defer imgui.PopStyleVarV(2)

	imgui.BeginV("##terminal", nil, screenFlags)
	defer imgui.End()

	drawPlan(imgui.WindowDrawList(), img.eng.Render(), imgui.FontSize())
}

// drawPlan adds the text of the render plan to the draw list. the y
// coordinate in the plan is the baseline of the text.
func drawPlan(dl imgui.DrawList, plan terminal.RenderPlan, fontSize float32) {
	for _, ins := range plan {
		if ins.Text == "" {
			continue
		}
		col := imgui.PackedColorFromVec4(imgui.Vec4{X: ins.Colour.R, Y: ins.Colour.G, Z: ins.Colour.B, W: 1.0})
		dl.AddText(imgui.Vec2{X: ins.X, Y: ins.Y - fontSize}, col, ins.Text)
	}
}
