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

// Package boot drives the boot sequence of the terminal. The sequence is
// described by a Script, which is a list of stages. Each stage has a start
// time and a list of lines to print. Lines are either printed instantly or
// revealed with the typewriter effect.
//
// A stage starts only once its start time has passed and the terminal has
// stopped typing. The lines of a stage are printed in order, with each
// revealed line waiting for the previous one to finish. When the last stage
// has printed everything, the prompt is set and the sequence is finished.
//
// The default script is embedded in the binary. A different script can be
// loaded from a YAML file with LoadScript().
package boot
