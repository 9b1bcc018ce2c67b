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

package resources

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coalos/coalos/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("crash", "", n), "crash_20240305_070809")
	test.ExpectEquality(t, uniqueFilename("log", "boot", n), "log_boot_20240305_070809")
}

func TestJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := JoinPath("saves", "savegame.json")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(baseResourcePath, "saves", "savegame.json"))

	info, err := os.Stat(filepath.Dir(p))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	// the base path is not prepended twice
	q, err := JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}

func TestPortable(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(portablePath, 0o700))

	p, err := JoinPath("preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(portablePath, "preferences"))
}
