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

// Package display holds the preferences for how the terminal is presented:
// the text colour, the typewriter speed and the settings of the CRT effect.
//
// Preferences are stored on disk with the prefs package. Values are kept in
// range by hooks, so a value that is out of range, whether from a command or
// from a hand edited prefs file, is limited to the nearest valid value.
//
// The CRT type is a snapshot of the CRT settings, suitable for passing to a
// shader once per frame.
package display
