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
	"fmt"
	"strings"
	"time"

	"github.com/coalos/coalos/asciiart"
	"github.com/coalos/coalos/boot"
	"github.com/coalos/coalos/commands"
	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/environment"
	"github.com/coalos/coalos/filesystem"
	"github.com/coalos/coalos/gui/display"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/network"
	"github.com/coalos/coalos/notifications"
	"github.com/coalos/coalos/savegame"
	"github.com/coalos/coalos/terminal"
)

// DefaultDevices is the number of network devices generated for a new game.
const DefaultDevices = 7

// LogoutDelay is the number of seconds between the logout message being
// printed and Done() returning true.
const LogoutDelay = 1.0

// NoSavePath is the error pattern returned by Save() when the engine has no
// save file.
const NoSavePath = "engine: no save path"

// Config for NewEngine(). Only the Env and Prefs fields are required.
type Config struct {
	Env   *environment.Environment
	Prefs *display.Preferences

	Viewport terminal.Viewport

	// the save file to load on start and to write with the save command. an
	// empty string disables saving
	SavePath string

	// if the Stages field of the script is empty then the default script is
	// used
	Script boot.Script

	// can be nil
	Art    *asciiart.Library
	Notify notifications.Notify

	// defaults to time.Now
	Clock func() time.Time

	// defaults to DefaultDevices
	Devices int
}

// Engine is the CoalOS engine.
type Engine struct {
	env    *environment.Environment
	prefs  *display.Preferences
	notify notifications.Notify
	clock  func() time.Time

	trm  *terminal.Terminal
	fs   *filesystem.FileSystem
	reg  *network.Registry
	seq  *boot.Sequence
	cmds *commands.Commands
	tab  *commands.TabCompletion

	savePath string
	prompt   string

	mode    Mode
	remote  *network.Device
	history history

	loggingOut  bool
	logoutTimer float64
	done        bool
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The boot sequence starts immediately.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Env == nil {
		return nil, curated.Errorf("engine: no environment")
	}
	if cfg.Prefs == nil {
		return nil, curated.Errorf("engine: no display preferences")
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Devices <= 0 {
		cfg.Devices = DefaultDevices
	}
	if len(cfg.Script.Stages) == 0 {
		cfg.Script = boot.DefaultScript()
	}
	if cfg.Viewport.LineHeight == 0 {
		cfg.Viewport = terminal.DefaultViewport(cfg.Viewport.Height)
	}

	eng := &Engine{
		env:      cfg.Env,
		prefs:    cfg.Prefs,
		notify:   cfg.Notify,
		clock:    cfg.Clock,
		trm:      terminal.NewTerminal(cfg.Viewport),
		fs:       filesystem.Default(),
		reg:      network.NewRegistry(),
		savePath: cfg.SavePath,
		prompt:   cfg.Script.Prompt,
	}

	c := eng.prefs.Colour()
	eng.trm.SetTextColor(c.R, c.G, c.B)
	eng.trm.SetTypewriterSpeed(eng.prefs.Speed())

	eng.loadGame(cfg.Devices)

	var err error
	eng.cmds, err = commands.NewCommands(commands.Config{
		Perm:       eng.env,
		Terminal:   &output{Terminal: eng.trm, prefs: eng.prefs},
		FileSystem: eng.fs,
		Network:    eng.reg,
		CRT:        eng.prefs,
		Session:    eng,
		Random:     eng.env.Random,
		Clock:      eng.clock,
	})
	if err != nil {
		return nil, curated.Errorf("engine: %v", err)
	}
	eng.tab = commands.NewTabCompletion(eng.cmds)

	var art boot.Art
	if cfg.Art != nil {
		art = cfg.Art
	}
	eng.seq = boot.NewSequence(eng.env, cfg.Script, eng.trm, art)
	eng.startBoot()

	return eng, nil
}

// loadGame from the save file. If there is no save file then a new set of
// network devices is generated.
func (eng *Engine) loadGame(devices int) {
	if eng.savePath != "" {
		d, err := savegame.Load(eng.savePath)
		if err == nil {
			eng.fs.Reset(d.Inventory)
			eng.reg.Load(d.Devices)
			logger.Logf(eng.env, "engine", "loaded %s (%d devices)", eng.savePath, eng.reg.Len())
			return
		}
		if !curated.Is(err, savegame.NoSaveFile) {
			logger.Log(eng.env, "engine", err)
		}
	}

	eng.reg.Populate(eng.env.Random, devices)
	logger.Logf(eng.env, "engine", "generated %d devices (seed %d)", eng.reg.Len(), eng.env.Random.Seed())
}

func (eng *Engine) startBoot() {
	eng.mode = ModeBooting
	eng.remote = nil
	eng.seq.Start()
	eng.sendNotice(notifications.NotifyBootStarted)
}

func (eng *Engine) sendNotice(notice notifications.Notice) {
	if eng.notify == nil {
		return
	}
	if err := eng.notify.Notify(notice); err != nil {
		logger.Log(eng.env, "engine", err)
	}
}

// Update advances the engine by dt seconds.
func (eng *Engine) Update(dt float64) {
	if n := eng.trm.Update(dt); n > 0 {
		eng.sendNotice(notifications.NotifyReveal)
	}

	if eng.mode == ModeBooting {
		eng.seq.Update(dt)
		if eng.seq.Done() {
			eng.mode = ModeTerminal
			eng.sendNotice(notifications.NotifyBootEnded)
		}
	}

	if eng.loggingOut && !eng.done && !eng.trm.IsTyping() {
		eng.logoutTimer += dt
		if eng.logoutTimer >= LogoutDelay {
			eng.done = true
			logger.Log(eng.env, "engine", "logged out")
		}
	}
}

// Render returns the instructions for drawing the terminal.
func (eng *Engine) Render() terminal.RenderPlan {
	return eng.trm.Render()
}

// CRT returns a snapshot of the CRT settings.
func (eng *Engine) CRT() display.CRT {
	return eng.prefs.CRT()
}

// Done returns true once the user has logged out and the goodbye message has
// been shown.
func (eng *Engine) Done() bool {
	return eng.done
}

// Mode returns the current mode of the engine.
func (eng *Engine) Mode() Mode {
	return eng.mode
}

// SetViewport should be called when the size of the frontend's display
// changes.
func (eng *Engine) SetViewport(v terminal.Viewport) {
	eng.trm.SetViewport(v)
}

// Terminal returns the underlying terminal.
func (eng *Engine) Terminal() *terminal.Terminal {
	return eng.trm
}

// FileSystem returns the fake filesystem.
func (eng *Engine) FileSystem() *filesystem.FileSystem {
	return eng.fs
}

// Network returns the fake network.
func (eng *Engine) Network() *network.Registry {
	return eng.reg
}

func (eng *Engine) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "mode: %s\n", eng.mode)
	fmt.Fprintf(&s, "filesystem: %s\n", eng.fs)
	fmt.Fprintf(&s, "devices: %d\n", eng.reg.Len())
	if eng.remote != nil {
		fmt.Fprintf(&s, "remote: %s\n", eng.remote)
	}
	return s.String()
}
