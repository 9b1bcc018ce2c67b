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

// Package environment describes the context a CoalOS session runs in. The
// main session has an empty label. Sessions created by tests or by the dump
// mode have a label and can be distinguished with IsMain().
package environment

import (
	"github.com/coalos/coalos/random"
)

// Label is used to name the environment.
type Label string

// MainSession is the label of the interactive session.
const MainSession = Label("")

// Environment is used to provide context for a CoalOS session.
type Environment struct {
	Label Label

	// any randomisation required by the session should be retrieved through
	// this field
	Random *random.Random
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. A nil random source is replaced by a time seeded one.
func NewEnvironment(label Label, rnd *random.Random) *Environment {
	if rnd == nil {
		rnd = random.NewRandom()
	}
	return &Environment{
		Label:  label,
		Random: rnd,
	}
}

// IsMain returns true if the environment is the interactive session.
func (env *Environment) IsMain() bool {
	return env.Label == MainSession
}

// AllowLogging implements the logger.Permission interface. Only the main
// session is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMain()
}
