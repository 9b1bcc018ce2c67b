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

// Package sounds provides the sound effects of the terminal. Sounds are either
// loaded from WAV or MP3 files or synthesised.
//
// Sounds are mono and stored as float32 samples in the range -1.0 to 1.0. The
// Player type implements the notifications.Notify interface and sends the
// correct sound for a notice to one or more Output implementations.
package sounds
