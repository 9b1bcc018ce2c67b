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

//go:build !windows

// Package colorterm is a frontend for CoalOS that runs in an ANSI terminal.
// The terminal is put into raw mode and the screen is redrawn from the
// engine's render plan every frame. CRT effects are not available.
package colorterm

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/engine"
	"github.com/coalos/coalos/gui/colorterm/ansi"
	"github.com/coalos/coalos/gui/colorterm/easyterm"
	"github.com/coalos/coalos/logger"
	"golang.org/x/sync/errgroup"
)

// DefaultFPS is the number of frames drawn every second.
const DefaultFPS = 30

// Interrupted is the error pattern returned by Run() when the user presses
// ctrl-c.
const Interrupted = "colorterm: interrupted"

// ColorTerm runs the engine in an ANSI terminal.
type ColorTerm struct {
	easyterm.Terminal

	eng *engine.Engine
	fps int

	dec decoder

	// the last frame drawn to the terminal. the terminal is not redrawn if
	// nothing has changed
	lastFrame string
	lastRows  int
	lastCols  int
}

// NewColorTerm is the preferred method of initialisation for the ColorTerm
// type.
func NewColorTerm(eng *engine.Engine, fps int) *ColorTerm {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &ColorTerm{
		eng: eng,
		fps: fps,
	}
}

// Run the engine until it is done or until the context is cancelled. The
// terminal is restored before Run returns.
func (ct *ColorTerm) Run(ctx context.Context) error {
	err := ct.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.RawMode()
	ct.TermPrint(ansi.CursorHide)
	ct.TermPrint(ansi.ClearScreen)
	defer func() {
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(ansi.ClearScreen)
		ct.TermPrint(ansi.CursorHome)
		ct.TermPrint(ansi.CursorShow)
		ct.CleanUp()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	keys := make(chan byte, 64)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ct.read(ctx, keys)
	})

	g.Go(func() error {
		defer cancel()
		return ct.frames(ctx, keys)
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// read bytes from the terminal and send them to the frame loop. reads from the
// raw terminal time out so the context is checked regularly.
func (ct *ColorTerm) read(ctx context.Context, keys chan<- byte) error {
	b := make([]byte, 16)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := ct.Read(b)
		if err != nil && !errors.Is(err, io.EOF) {
			return curated.Errorf("colorterm: %v", err)
		}

		for i := range n {
			select {
			case keys <- b[i]:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// the frame loop is the only goroutine that touches the engine.
func (ct *ColorTerm) frames(ctx context.Context, keys <-chan byte) error {
	ticker := time.NewTicker(time.Second / time.Duration(ct.fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case b := <-keys:
			ev, ctrl, ok := ct.dec.feed(b)
			switch ctrl {
			case controlInterrupt:
				return curated.Errorf(Interrupted)
			case controlSuspend:
				ct.CanonicalMode()
				easyterm.SuspendProcess()
				ct.RawMode()
				ct.lastFrame = ""
			}
			if ok {
				ct.eng.HandleKey(ev)
			}

		case now := <-ticker.C:
			ct.eng.Update(now.Sub(last).Seconds())
			last = now

			if ct.eng.Done() {
				logger.Log(logger.Allow, "colorterm", "engine is done")
				return nil
			}

			ct.draw()
		}
	}
}

func (ct *ColorTerm) draw() {
	rows, cols := ct.Geometry()
	if rows != ct.lastRows {
		ct.eng.SetViewport(viewport(rows))
	}

	frame := renderFrame(ct.eng.Render(), rows, cols)
	if frame == ct.lastFrame && rows == ct.lastRows && cols == ct.lastCols {
		return
	}

	ct.lastFrame = frame
	ct.lastRows = rows
	ct.lastCols = cols
	ct.TermPrint(frame)
}
