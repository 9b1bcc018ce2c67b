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

// Package prefs facilitates the storage of preferential values in the CoalOS
// system. It is intended to be used for values that are to be persisted
// between sessions, such as the terminal colour or the CRT effect settings.
//
// A preference value is one of the types Bool, String, Int, Float or Generic.
// Instances of these types are added to a Disk with Add(). The key is the
// name under which the value is written to the preferences file.
//
// The Disk type writes all values with a single call to Save(). Values are
// read back with Load(). Entries in the file that are not added to the Disk
// are preserved, so more than one Disk can share a file.
//
// For example:
//
//	var speed prefs.Float
//	dsk, _ := prefs.NewDisk(fn)
//	dsk.Add("terminal.speed", &speed)
//	dsk.Load(true)
//	speed.Set(100.0)
//	dsk.Save()
//
// Values can also be overridden from the command line by pushing a prefs
// string with PushCommandLineStack(). The format of the string is a list of
// key/value pairs separated by semicolons:
//
//	"terminal.speed::100; crt.enabled::false"
//
// A command line value is consumed the first time the key is loaded by a
// Disk. Command line values are never written back to the file unless the
// value is subsequently changed and saved.
//
// Hooks can be added to a value with SetHookPre() and SetHookPost(). The pre
// hook can prevent a new value from being stored by returning an error. The
// post hook is called after the value has been stored.
package prefs
