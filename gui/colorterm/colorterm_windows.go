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

//go:build windows

// Package colorterm is not available under windows.
package colorterm

import (
	"context"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/engine"
)

// DefaultFPS is the number of frames drawn every second.
const DefaultFPS = 30

// Interrupted is the error pattern returned by Run() when the user presses
// ctrl-c.
const Interrupted = "colorterm: interrupted"

// ColorTerm runs the engine in an ANSI terminal.
type ColorTerm struct {
}

// NewColorTerm is the preferred method of initialisation for the ColorTerm
// type.
func NewColorTerm(_ *engine.Engine, _ int) *ColorTerm {
	return &ColorTerm{}
}

// Run always fails on windows.
func (ct *ColorTerm) Run(_ context.Context) error {
	return curated.Errorf("colorterm: not available on windows")
}
