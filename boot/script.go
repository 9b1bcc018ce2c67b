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

package boot

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"

	"github.com/coalos/coalos/curated"
	"gopkg.in/yaml.v3"
)

//go:embed script.yaml
var defaultScript []byte

// DefaultFilename of the boot script override, relative to the resources path.
const DefaultFilename = "boot.yaml"

// Sentinel error patterns.
const (
	NoScript      = "boot: no script file (%s)"
	InvalidScript = "boot: invalid script (%v)"
)

// Line to be printed during a stage. A CPS of zero means the line is printed
// instantly.
type Line struct {
	Text string  `yaml:"text"`
	CPS  float64 `yaml:"cps"`
}

// Stage of the boot sequence. The At field is the time in seconds since the
// start of the sequence.
type Stage struct {
	At    float64 `yaml:"at"`
	Lines []Line  `yaml:"lines"`

	// name of ASCII art to print after the lines. can be empty
	Art string `yaml:"art"`
}

// Script for the boot sequence.
type Script struct {
	Prompt string  `yaml:"prompt"`
	Stages []Stage `yaml:"stages"`
}

// ParseScript decodes a script from YAML. Stages must be in time order and
// no line can have a negative speed.
func ParseScript(b []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Script{}, curated.Errorf(InvalidScript, err)
	}

	if len(s.Stages) == 0 {
		return Script{}, curated.Errorf(InvalidScript, "no stages")
	}

	for i, st := range s.Stages {
		if st.At < 0 {
			return Script{}, curated.Errorf(InvalidScript, "negative stage time")
		}
		if i > 0 && st.At < s.Stages[i-1].At {
			return Script{}, curated.Errorf(InvalidScript, "stages out of order")
		}
		for _, l := range st.Lines {
			if l.CPS < 0 {
				return Script{}, curated.Errorf(InvalidScript, "negative line speed")
			}
		}
	}

	return s, nil
}

// DefaultScript returns the embedded boot script.
func DefaultScript() Script {
	s, err := ParseScript(defaultScript)
	if err != nil {
		panic(err)
	}
	return s
}

// LoadScript reads a script from a file. If the file does not exist the
// error will match the NoScript pattern.
func LoadScript(path string) (Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Script{}, curated.Errorf(NoScript, path)
		}
		return Script{}, curated.Errorf("boot: %v", err)
	}
	return ParseScript(b)
}
