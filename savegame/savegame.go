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

// Package savegame reads and writes the CoalOS save file. The save file is a
// JSON document with the contents of the filesystem and the list of network
// devices:
//
//	{
//	    "timestamp": 1700000000,
//	    "version": "1.0",
//	    "inventory": ["rockyou.pwd"],
//	    "devices": [
//	        {"ip": "12.4.200", "essid": "HOME-5G", "password": "Xy7!abcd", "os": "Debian 11"}
//	    ]
//	}
//
// Loading a file that does not exist returns an error matching the
// NoSaveFile pattern. Use curated.Is() to test for it.
package savegame

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/network"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Version of the save file format.
const Version = "1.0"

// DefaultFilename of the save file in the saves directory.
const DefaultFilename = "savegame.json"

// SavesDirectory is where save files are kept, relative to the resources
// path.
const SavesDirectory = "saves"

// Sentinel error patterns.
const (
	NoSaveFile  = "savegame: no save file (%s)"
	InvalidSave = "savegame: invalid save file (%v)"
)

// Data is the contents of a save file.
type Data struct {
	Timestamp time.Time
	Version   string
	Inventory []string
	Devices   []network.Device
}

// Marshal returns the JSON encoding of the data. The version field is always
// the current Version.
func Marshal(d Data) ([]byte, error) {
	var err error
	s := "{}"

	set := func(path string, value any) {
		if err == nil {
			s, err = sjson.Set(s, path, value)
		}
	}

	set("timestamp", d.Timestamp.Unix())
	set("version", Version)

	if err == nil {
		s, err = sjson.SetRaw(s, "inventory", "[]")
	}
	for i, f := range d.Inventory {
		set(fmt.Sprintf("inventory.%d", i), f)
	}

	if err == nil {
		s, err = sjson.SetRaw(s, "devices", "[]")
	}
	for i, dv := range d.Devices {
		set(fmt.Sprintf("devices.%d.ip", i), dv.IP)
		set(fmt.Sprintf("devices.%d.essid", i), dv.ESSID)
		set(fmt.Sprintf("devices.%d.password", i), dv.Password)
		set(fmt.Sprintf("devices.%d.os", i), dv.OS)
	}

	if err != nil {
		return nil, curated.Errorf("savegame: %v", err)
	}

	return pretty.PrettyOptions([]byte(s), &pretty.Options{Width: 80, Indent: "    "}), nil
}

// Unmarshal decodes a save file. Missing fields are left empty.
func Unmarshal(data []byte) (Data, error) {
	if !gjson.ValidBytes(data) {
		return Data{}, curated.Errorf(InvalidSave, "not JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return Data{}, curated.Errorf(InvalidSave, "not an object")
	}

	d := Data{
		Timestamp: time.Unix(doc.Get("timestamp").Int(), 0),
		Version:   doc.Get("version").String(),
	}

	for _, f := range doc.Get("inventory").Array() {
		d.Inventory = append(d.Inventory, f.String())
	}

	doc.Get("devices").ForEach(func(_, v gjson.Result) bool {
		d.Devices = append(d.Devices, network.Device{
			IP:       v.Get("ip").String(),
			ESSID:    v.Get("essid").String(),
			Password: v.Get("password").String(),
			OS:       v.Get("os").String(),
		})
		return true
	})

	return d, nil
}

// Save writes the data to the file at path. The directory is created if
// necessary.
func Save(path string, d Data) error {
	b, err := Marshal(d)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return curated.Errorf("savegame: %v", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return curated.Errorf("savegame: %v", err)
	}
	return nil
}

// Load reads the data from the file at path.
func Load(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Data{}, curated.Errorf(NoSaveFile, path)
		}
		return Data{}, curated.Errorf("savegame: %v", err)
	}
	return Unmarshal(b)
}

// Exists returns true if there is a save file at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
