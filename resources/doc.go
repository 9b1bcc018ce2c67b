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

// Package resources contains functions to prepare paths for CoalOS resources,
// such as the preferences file and the save game.
//
// JoinPath() creates the directories leading to the path as required but does
// not otherwise touch or create files.
//
// The base path depends on how the binary was built. For builds with the
// "release" build tag the path is rooted in the user's configuration
// directory. On Linux the full path would be something like:
//
//	/home/user/.config/coalos/
//
// For non-release builds the path is rooted in the current working directory:
//
//	.coalos
//
// If a directory called "coalos_portable" exists in the working directory
// then it is used as the base path, whatever the build.
package resources
