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

// Package commands parses and executes the commands typed into the terminal.
//
// A line of input is divided into tokens with TokeniseInput(). The first
// token is the command name and is matched without regard to case. Any
// remaining tokens are the arguments and keep their case.
//
// Commands print their output to the terminal and never return errors to
// the caller. The state they change lives elsewhere: the filesystem, the
// network registry, the CRT settings and the game session are all given to
// NewCommands() in the Config type.
//
// While the session is connected to a remote device a smaller set of remote
// commands is used instead of the main set.
//
// TabCompletion completes the name of a command from a partial name. A
// partial name that is not a prefix of any command is matched fuzzily.
package commands
