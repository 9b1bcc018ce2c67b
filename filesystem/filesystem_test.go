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

package filesystem_test

import (
	"fmt"
	"testing"

	"github.com/coalos/coalos/filesystem"
	"github.com/coalos/coalos/test"
)

func TestFileSystem(t *testing.T) {
	fs := filesystem.Default()
	test.ExpectEquality(t, fs.String(), "[ rockyou.pwd ]")
	test.ExpectSuccess(t, fs.Exists(filesystem.DefaultFile))

	test.ExpectSuccess(t, fs.Add("nmap.exe"))
	test.ExpectSuccess(t, fs.Add("a.txt"))
	test.ExpectFailure(t, fs.Add("a.txt"))
	test.ExpectFailure(t, fs.Add(""))
	test.ExpectEquality(t, fs.Len(), 3)
	test.ExpectEquality(t, fs.String(), "[ a.txt, nmap.exe, rockyou.pwd ]")

	test.ExpectSuccess(t, fs.Remove("nmap.exe"))
	test.ExpectFailure(t, fs.Remove("nmap.exe"))
	test.ExpectFailure(t, fs.Exists("nmap.exe"))

	// list is a copy
	l := fs.List()
	l[0] = "changed"
	test.ExpectEquality(t, fmt.Sprint(fs.List()), "[a.txt rockyou.pwd]")

	fs.Reset([]string{"z", "y", "z"})
	test.ExpectEquality(t, fmt.Sprint(fs.List()), "[y z]")

	fs.Reset(nil)
	test.ExpectEquality(t, fs.String(), "Filesystem is empty")
}
