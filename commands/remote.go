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

package commands

const remoteRule = "---------------------------------------------------------"

func (cmds *Commands) remoteBuiltins() map[string]command {
	return map[string]command{
		"help":       {help: "displays this screen", run: cmds.remoteHelp},
		"list":       {help: "displays details of the remote device", run: cmds.remoteList},
		"clear":      {help: "clears the screen", run: cmds.clear},
		"exit":       {help: "disconnect from current connection", run: cmds.remoteExit},
		"disconnect": {help: "disconnect from current connection", run: cmds.remoteExit},
	}
}

func (cmds *Commands) remoteHelp(_ *Tokens) {
	cmds.print(
		"",
		remoteRule,
		"clear - clears the screen",
		"exit - disconnect from current connection",
		"help - displays this screen",
		"list - displays details of the remote device",
		remoteRule,
		"",
	)
}

func (cmds *Commands) remoteList(_ *Tokens) {
	d, ok := cmds.cfg.Session.Remote()
	if !ok {
		return
	}
	cmds.print("")
	cmds.printf("ESSID    : %s", d.ESSID)
	cmds.printf("IP       : %s", d.IP)
	cmds.printf("OS       : %s", d.OS)
	cmds.printf("Password : %s", d.Password)
	cmds.print("")
}

func (cmds *Commands) remoteExit(_ *Tokens) {
	d, ok := cmds.cfg.Session.Remote()
	if !ok {
		return
	}
	cmds.print("")
	cmds.printf("Disconnecting from %s ...", d.IP)
	cmds.print("")
	cmds.cfg.Session.Disconnect()
}
