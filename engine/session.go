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

import (
	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/network"
	"github.com/coalos/coalos/notifications"
	"github.com/coalos/coalos/savegame"
)

// The Engine implements the commands.Session interface.

// Save writes the filesystem and network devices to the save file, and the
// display preferences to the prefs file.
func (eng *Engine) Save() error {
	if eng.savePath == "" {
		return curated.Errorf(NoSavePath)
	}

	err := savegame.Save(eng.savePath, savegame.Data{
		Timestamp: eng.clock(),
		Inventory: eng.fs.List(),
		Devices:   eng.reg.All(),
	})
	if err != nil {
		return curated.Errorf("engine: %v", err)
	}

	if err := eng.prefs.Save(); err != nil {
		return curated.Errorf("engine: %v", err)
	}

	logger.Logf(eng.env, "engine", "saved to %s", eng.savePath)
	return nil
}

// Restart runs the boot sequence again.
func (eng *Engine) Restart() {
	logger.Log(eng.env, "engine", "restarting")
	eng.startBoot()
}

// Logout begins the end of the session. Done() will return true shortly
// afterwards.
func (eng *Engine) Logout() {
	eng.loggingOut = true
	eng.logoutTimer = 0
	eng.sendNotice(notifications.NotifyLogout)
}

// Connect to a remote device.
func (eng *Engine) Connect(dev network.Device) {
	eng.remote = &dev
	eng.mode = ModeRemote
	eng.trm.SetPrompt("root ~ " + dev.IP + " > ")
	eng.sendNotice(notifications.NotifyLoginAttempt)
}

// Disconnect from the remote device.
func (eng *Engine) Disconnect() {
	if eng.remote == nil {
		return
	}
	logger.Logf(eng.env, "engine", "disconnected from %s", eng.remote)
	eng.remote = nil
	eng.mode = ModeTerminal
	eng.trm.SetPrompt(eng.prompt)
	eng.sendNotice(notifications.NotifyDisconnect)
}

// Remote returns the remote device, if there is one.
func (eng *Engine) Remote() (network.Device, bool) {
	if eng.remote == nil {
		return network.Device{}, false
	}
	return *eng.remote, true
}
