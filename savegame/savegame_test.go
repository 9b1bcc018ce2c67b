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

package savegame_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/network"
	"github.com/coalos/coalos/random"
	"github.com/coalos/coalos/savegame"
	"github.com/coalos/coalos/test"
)

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), savegame.SavesDirectory, savegame.DefaultFilename)
	test.ExpectFailure(t, savegame.Exists(fn))

	reg := network.NewRegistry()
	reg.Populate(random.NewSeeded(5), 7)

	d := savegame.Data{
		Timestamp: time.Unix(1700000000, 0),
		Inventory: []string{"nmap.exe", "rockyou.pwd"},
		Devices:   reg.All(),
	}
	test.DemandSuccess(t, savegame.Save(fn, d))
	test.ExpectSuccess(t, savegame.Exists(fn))

	l, err := savegame.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Version, savegame.Version)
	test.ExpectEquality(t, l.Timestamp.Unix(), int64(1700000000))
	test.DemandEquality(t, len(l.Inventory), 2)
	test.ExpectEquality(t, l.Inventory[0], "nmap.exe")
	test.ExpectEquality(t, l.Inventory[1], "rockyou.pwd")
	test.DemandEquality(t, len(l.Devices), 7)
	for i := range l.Devices {
		test.ExpectEquality(t, l.Devices[i], d.Devices[i], i)
	}
}

func TestEmpty(t *testing.T) {
	b, err := savegame.Marshal(savegame.Data{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), `"inventory": []`))
	test.ExpectSuccess(t, strings.Contains(string(b), `"version": "1.0"`))

	d, err := savegame.Unmarshal(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d.Inventory), 0)
	test.ExpectEquality(t, len(d.Devices), 0)
}

func TestSpecialCharacters(t *testing.T) {
	dv := network.Device{IP: "1.2.3", ESSID: "NET-PRO", Password: `Qa9"{}\.*?`, OS: "iOS 16"}
	b, err := savegame.Marshal(savegame.Data{Devices: []network.Device{dv}})
	test.DemandSuccess(t, err)

	d, err := savegame.Unmarshal(b)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(d.Devices), 1)
	test.ExpectEquality(t, d.Devices[0], dv)
}

func TestMissingAndInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := savegame.Load(filepath.Join(dir, "missing.json"))
	test.ExpectSuccess(t, curated.Is(err, savegame.NoSaveFile))

	fn := filepath.Join(dir, "bad.json")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("{not json"), 0o600))
	_, err = savegame.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, savegame.InvalidSave))

	_, err = savegame.Unmarshal([]byte(`[1,2]`))
	test.ExpectSuccess(t, curated.Is(err, savegame.InvalidSave))
}
