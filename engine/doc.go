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

// Package engine is the heart of CoalOS. It owns the terminal and everything
// that affects what the terminal shows: the boot sequence, the commands, the
// fake filesystem, the fake network and the display preferences.
//
// The engine is driven by a frontend. Once per frame the frontend calls
// Update() with the time since the previous frame and then draws the result
// of Render(). Keyboard input is given to the engine as KeyEvent values with
// HandleKey().
//
// The frontend is told about events that it might want to present in some
// way, with a sound for example, through the notifications.Notify interface.
//
// The engine is not safe for concurrent use. All functions should be called
// from the frontend's frame loop.
package engine
