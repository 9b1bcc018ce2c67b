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

package notifications

// Notice describes events that somehow change the presentation of the
// terminal.
type Notice string

// List of defined notifications.
const (
	// a printable key has been accepted by the input editor
	NotifyKeypress Notice = "NotifyKeypress"

	// a character has been revealed by the typewriter
	NotifyReveal Notice = "NotifyReveal"

	// the boot sequence has started and finished
	NotifyBootStarted Notice = "NotifyBootStarted"
	NotifyBootEnded   Notice = "NotifyBootEnded"

	// a remote login is being attempted. the frontend plays the modem sound
	NotifyLoginAttempt Notice = "NotifyLoginAttempt"

	// the remote connection has been closed
	NotifyDisconnect Notice = "NotifyDisconnect"

	// the crt settings have changed and the frontend should reload them
	NotifyCRTChanged Notice = "NotifyCRTChanged"

	// the user has asked to leave CoalOS
	NotifyLogout Notice = "NotifyLogout"
)

// Notify is used for direct communication between the engine and the
// frontend. The frontend implements this interface.
type Notify interface {
	Notify(notice Notice) error
}
