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

package commands

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/filesystem"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/network"
	"github.com/coalos/coalos/random"
	"gopkg.in/yaml.v3"
)

// Terminal defines the terminal operations used by commands.
type Terminal interface {
	AppendLine(line string)
	StartReveal(text string, cps float64) bool
	Clear()
	SetTextColor(r, g, b float32)
	SetTypewriterSpeed(cps float64)
	TypewriterSpeed() float64
}

// CRT is the interface to the CRT effect settings. The SetCRTKnob() function
// returns the value after it has been limited to the range of the knob.
type CRT interface {
	CRTEnabled() bool
	SetCRTEnabled(enabled bool)
	SetCRTKnob(knob string, value float64) (float64, error)
}

// Session is the interface to the game session. It is implemented by the
// engine.
type Session interface {
	Save() error
	Restart()
	Logout()
	Connect(dev network.Device)
	Disconnect()
	Remote() (network.Device, bool)
}

// Config for NewCommands(). CRT and Session can be nil, in which case the
// commands that need them print an error. A nil Random or Clock is replaced
// with a default.
type Config struct {
	Perm       logger.Permission
	Terminal   Terminal
	FileSystem *filesystem.FileSystem
	Network    *network.Registry
	CRT        CRT
	Session    Session
	Random     *random.Random
	Clock      func() time.Time
}

// speed of the typewriter used by some command output
const outputCPS = 40.0

type command struct {
	help string
	run  func(tk *Tokens)
}

// Commands is the command dispatcher.
type Commands struct {
	cfg Config

	main   map[string]command
	remote map[string]command

	headlines []string
}

//go:embed news.yaml
var newsYAML []byte

type news struct {
	Headlines []string `yaml:"headlines"`
}

// NewCommands is the preferred method of initialisation for the Commands type.
func NewCommands(cfg Config) (*Commands, error) {
	if cfg.Random == nil {
		cfg.Random = random.NewRandom()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.FileSystem == nil {
		cfg.FileSystem = filesystem.NewFileSystem()
	}
	if cfg.Network == nil {
		cfg.Network = network.NewRegistry()
	}

	var n news
	if err := yaml.Unmarshal(newsYAML, &n); err != nil {
		return nil, curated.Errorf("commands: %v", err)
	}

	cmds := &Commands{
		cfg:       cfg,
		headlines: n.Headlines,
	}
	cmds.main = cmds.builtins()
	cmds.remote = cmds.remoteBuiltins()

	return cmds, nil
}

// ParseAndExecute tokenises the input and runs the named command. Empty input
// is ignored.
func (cmds *Commands) ParseAndExecute(input string) {
	tk := TokeniseInput(input)
	name, ok := tk.Get()
	if !ok {
		return
	}
	name = strings.ToLower(name)

	table := cmds.main
	if cmds.connected() {
		table = cmds.remote
	}

	c, ok := table[name]
	if !ok {
		logger.Logf(cmds.cfg.Perm, "commands", "unknown command: %s", name)
		if cmds.connected() {
			cmds.print("", "Invalid remote command, type 'help' for a list of commands...", "")
		} else {
			cmds.print("Command invalid. Type 'help' for a list of commands ...", "")
		}
		return
	}

	c.run(tk)
}

// Names returns the sorted list of commands currently available. While
// connected to a remote device this is the list of remote commands.
func (cmds *Commands) Names() []string {
	table := cmds.main
	if cmds.connected() {
		table = cmds.remote
	}
	return sortedNames(table)
}

func sortedNames(table map[string]command) []string {
	n := make([]string, 0, len(table))
	for k := range table {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

func (cmds *Commands) connected() bool {
	if cmds.cfg.Session == nil {
		return false
	}
	_, ok := cmds.cfg.Session.Remote()
	return ok
}

func (cmds *Commands) print(lines ...string) {
	for _, l := range lines {
		cmds.cfg.Terminal.AppendLine(l)
	}
}

func (cmds *Commands) printf(format string, args ...any) {
	cmds.cfg.Terminal.AppendLine(fmt.Sprintf(format, args...))
}

func (cmds *Commands) reveal(text string) {
	cmds.cfg.Terminal.StartReveal(text, outputCPS)
}
