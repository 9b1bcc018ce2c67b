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
	"strconv"
	"strings"

	"github.com/coalos/coalos/filesystem"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/random"
)

// Format of the cal command output.
const CalendarFormat = "15 : 04     02 / 01 / 2006"

// Limits of the speed command.
const (
	MinSpeed = 1.0
	MaxSpeed = 10000.0
)

// CRT knobs in the order they are listed by the crt command. The label is
// used when reporting a changed value.
var crtKnobs = []struct {
	name  string
	label string
}{
	{"scanline", "Scanline intensity"},
	{"curve", "Screen curvature"},
	{"vignette", "Vignette strength"},
	{"glow", "Glow intensity"},
	{"noise", "Noise amount"},
	{"chroma", "Chromatic aberration"},
}

// ColourPreset is a named text colour.
type ColourPreset struct {
	Name    string
	Aliases []string
	R, G, B float32
}

// ColourPresets for the color command.
var ColourPresets = []ColourPreset{
	{Name: "green", R: 0, G: 1, B: 0},
	{Name: "amber", Aliases: []string{"orange"}, R: 1, G: 0.75, B: 0},
	{Name: "white", R: 1, G: 1, B: 1},
	{Name: "cyan", Aliases: []string{"blue"}, R: 0, G: 1, B: 1},
	{Name: "red", R: 1, G: 0, B: 0},
	{Name: "purple", Aliases: []string{"magenta"}, R: 1, G: 0, B: 1},
}

func findPreset(name string) (ColourPreset, bool) {
	for _, p := range ColourPresets {
		if p.Name == name {
			return p, true
		}
		for _, a := range p.Aliases {
			if a == name {
				return p, true
			}
		}
	}
	return ColourPreset{}, false
}

func (cmds *Commands) builtins() map[string]command {
	return map[string]command{
		"help":       {help: "displays list of commands", run: cmds.help},
		"clear":      {help: "clears the screen", run: cmds.clear},
		"ls":         {help: "display everything in your filesystem", run: cmds.ls},
		"rm":         {help: "remove an item from the filesystem", run: cmds.rm},
		"cal":        {help: "prints the current date and time", run: cmds.cal},
		"news":       {help: "display the latest news reports", run: cmds.news},
		"restart":    {help: "restarts CoalOS", run: cmds.restart},
		"logout":     {help: "exit coalOS", run: cmds.logout},
		"color":      {help: "change terminal text color", run: cmds.color},
		"crt":        {help: "toggle or adjust CRT effect", run: cmds.crt},
		"speed":      {help: "adjust typewriter text speed", run: cmds.speed},
		"save":       {help: "save current game state", run: cmds.save},
		"iwlist":     {help: "scans for, and displays nearby wireless internet connections", run: cmds.iwlist},
		"connect":    {help: "connects to a wireless connection", run: cmds.connect},
		"disconnect": {help: "disconnect from the current connection", run: cmds.disconnect},
		"crack":      {help: "cracks the password of a wireless connection", run: cmds.crack},
	}
}

func (cmds *Commands) help(_ *Tokens) {
	cmds.print("", "List of commands:", "")
	for _, n := range sortedNames(cmds.main) {
		l := "     " + n
		if len(l) < 15 {
			l += strings.Repeat(" ", 15-len(l))
		}
		cmds.print(l+" - "+cmds.main[n].help, "")
	}
}

func (cmds *Commands) clear(_ *Tokens) {
	cmds.cfg.Terminal.Clear()
}

func (cmds *Commands) ls(_ *Tokens) {
	cmds.print("", cmds.cfg.FileSystem.String(), "")
}

func (cmds *Commands) rm(tk *Tokens) {
	cmds.print("")

	fn, ok := tk.Get()
	if !ok {
		cmds.print("Usage: rm <filename>", "")
		return
	}

	if cmds.cfg.FileSystem.Remove(fn) {
		cmds.printf("Removed: %s", fn)
	} else {
		cmds.printf("%s does not exist inside filesystem ...", fn)
	}
	cmds.print("")
}

func (cmds *Commands) cal(_ *Tokens) {
	cmds.print("", cmds.cfg.Clock().Format(CalendarFormat), "")
}

func (cmds *Commands) news(_ *Tokens) {
	if len(cmds.headlines) == 0 {
		cmds.print("", "No news today", "")
		return
	}
	cmds.print("", random.Choose(cmds.cfg.Random, cmds.headlines), "")
}

func (cmds *Commands) restart(_ *Tokens) {
	cmds.cfg.Terminal.Clear()
	cmds.print("Restarting CoalOS...", "")
	if cmds.cfg.Session != nil {
		cmds.cfg.Session.Restart()
	}
}

func (cmds *Commands) logout(_ *Tokens) {
	cmds.print("", "Goodbye...", "")
	if cmds.cfg.Session != nil {
		cmds.cfg.Session.Logout()
	}
}

func (cmds *Commands) color(tk *Tokens) {
	cmds.print("")

	choice, ok := tk.Get()
	if !ok {
		cmds.print(
			"Usage: color <preset|rgb>",
			"",
			"Presets:",
			"  green    - Classic green terminal",
			"  amber    - Amber monochrome",
			"  white    - White text",
			"  cyan     - Cyan blue",
			"  red      - Red text",
			"  purple   - Purple/magenta",
			"",
			"RGB: color rgb <r> <g> <b>",
			"  Values from 0.0 to 1.0",
			"  Example: color rgb 1.0 0.5 0.0",
			"",
		)
		return
	}
	choice = strings.ToLower(choice)

	if choice == "rgb" || choice == "custom" {
		if tk.Remaining() < 3 {
			cmds.print(
				"Error: RGB requires 3 values",
				"Usage: color rgb <r> <g> <b>",
				"Values from 0.0 to 1.0",
				"",
			)
			return
		}

		var rgb [3]float32
		for i := range rgb {
			s, _ := tk.Get()
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				cmds.print("Error: Invalid RGB values", "")
				return
			}
			rgb[i] = min(max(float32(v), 0), 1)
		}

		cmds.cfg.Terminal.SetTextColor(rgb[0], rgb[1], rgb[2])
		cmds.printf("Color set to RGB(%f, %f, %f)", rgb[0], rgb[1], rgb[2])
		cmds.print("")
		return
	}

	p, ok := findPreset(choice)
	if !ok {
		cmds.printf("Unknown color preset: %s", choice)
		cmds.print("Type 'color' for help", "")
		return
	}

	cmds.cfg.Terminal.SetTextColor(p.R, p.G, p.B)
	cmds.printf("Color set to %s", p.Name)
	cmds.print("")
}

func (cmds *Commands) crt(tk *Tokens) {
	if cmds.cfg.CRT == nil {
		cmds.print("", "Error: CRT shader not available", "")
		return
	}

	cmds.print("")

	option, ok := tk.Get()
	if !ok {
		current := "OFF"
		if cmds.cfg.CRT.CRTEnabled() {
			current = "ON"
		}
		cmds.print(
			"CRT Effect Controls:",
			"",
			"  crt on/off        - Toggle effect",
			"  crt scanline <n>  - Scanline intensity (0.0-1.0)",
			"  crt curve <n>     - Screen curvature (0.0-1.0)",
			"  crt vignette <n>  - Vignette strength (0.0-1.0)",
			"  crt glow <n>      - Glow intensity (0.0-1.0)",
			"  crt noise <n>     - Noise amount (0.0-1.0)",
			"  crt chroma <n>    - Chromatic aberration (0.0-2.0)",
			"",
			"Current: "+current,
			"",
		)
		return
	}
	option = strings.ToLower(option)

	switch option {
	case "on":
		cmds.cfg.CRT.SetCRTEnabled(true)
		cmds.print("CRT effect enabled")
	case "off":
		cmds.cfg.CRT.SetCRTEnabled(false)
		cmds.print("CRT effect disabled")
	default:
		s, ok := tk.Get()
		if !ok {
			cmds.print("Usage: crt <option> <value>")
			break
		}

		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			cmds.print("Error: Invalid value")
			break
		}

		label := ""
		for _, k := range crtKnobs {
			if k.name == option {
				label = k.label
				break
			}
		}
		if label == "" {
			cmds.printf("Unknown CRT option: %s", option)
			break
		}

		v, err = cmds.cfg.CRT.SetCRTKnob(option, v)
		if err != nil {
			logger.Log(cmds.cfg.Perm, "commands", err)
			cmds.printf("Unknown CRT option: %s", option)
			break
		}
		cmds.printf("%s set to %f", label, v)
	}

	cmds.print("")
}

func (cmds *Commands) speed(tk *Tokens) {
	cmds.print("")

	s, ok := tk.Get()
	if !ok {
		cmds.print(
			"Usage: speed <characters per second>",
			"Examples:",
			"  speed 20    - Slow typewriter",
			"  speed 50    - Normal (default)",
			"  speed 100   - Fast",
			"  speed 1000  - Instant",
			"",
		)
		return
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		cmds.print("Error: Invalid speed value", "")
		return
	}
	v = min(max(v, MinSpeed), MaxSpeed)

	cmds.cfg.Terminal.SetTypewriterSpeed(v)
	cmds.printf("Typewriter speed set to %f chars/sec", v)
	cmds.print("")
}

func (cmds *Commands) save(_ *Tokens) {
	cmds.print("")

	if cmds.cfg.Session == nil {
		cmds.print("Error: Save system not available", "")
		return
	}

	cmds.reveal("Saving game state...")
	if err := cmds.cfg.Session.Save(); err != nil {
		logger.Log(cmds.cfg.Perm, "commands", err)
		cmds.print("Error: Game could not be saved", "")
		return
	}
	cmds.print("Game saved successfully!", "")
}

func (cmds *Commands) iwlist(_ *Tokens) {
	devs := cmds.cfg.Network.All()
	cmds.print("", "Scanning...")
	cmds.printf("%d wireless connections found...", len(devs))
	cmds.print("")
	for _, d := range devs {
		cmds.printf("  %-16s %-20s %s", d.ESSID, d.IP, d.OS)
	}
	cmds.print("")
}

func (cmds *Commands) connect(tk *Tokens) {
	cmds.print("")

	if tk.Remaining() < 2 {
		cmds.print("Usage: connect <ip> <password>", "")
		return
	}
	ip, _ := tk.Get()
	pw, _ := tk.Get()

	if cmds.cfg.Session == nil {
		cmds.print("Error: Remote login not available", "")
		return
	}

	d, ok := cmds.cfg.Network.Get(ip)
	if !ok {
		cmds.printf("No connection found at %s ...", ip)
		cmds.print("")
		return
	}

	if d.Password != pw {
		cmds.printf("Password, %s is invalid...", pw)
		cmds.print("")
		return
	}

	cmds.reveal("Attempting login...")
	cmds.print("Login successful!", "")
	cmds.cfg.Session.Connect(d)
	logger.Logf(cmds.cfg.Perm, "commands", "connected to %s", d)
}

func (cmds *Commands) disconnect(_ *Tokens) {
	cmds.print("", "Not connected to a remote device ...", "")
}

func (cmds *Commands) crack(tk *Tokens) {
	cmds.print("")

	ip, ok := tk.Get()
	if !ok {
		cmds.print("Usage: crack <ip>", "")
		return
	}

	if !cmds.cfg.FileSystem.Exists(filesystem.DefaultFile) {
		cmds.printf("Error: %s not found in filesystem ...", filesystem.DefaultFile)
		cmds.print("")
		return
	}

	d, ok := cmds.cfg.Network.Get(ip)
	if !ok {
		cmds.printf("No connection found at %s ...", ip)
		cmds.print("")
		return
	}

	cmds.reveal("Running dictionary attack against " + d.String() + " ...")
	cmds.printf("Password found: %s", d.Password)
	cmds.print("")
}
