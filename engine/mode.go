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

// Mode of the engine.
type Mode int

// List of valid Mode values.
const (
	ModeBooting Mode = iota
	ModeTerminal
	ModeRemote
)

func (m Mode) String() string {
	switch m {
	case ModeBooting:
		return "booting"
	case ModeTerminal:
		return "terminal"
	case ModeRemote:
		return "remote"
	}
	return "unknown"
}
