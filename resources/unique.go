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
	"fmt"
	"time"
)

// UniqueFilename creates a filename that is unlikely to clash with an
// existing file. The prefix and name are joined with the current timestamp.
// The result is not rooted in the resource path.
func UniqueFilename(prefix string, name string) string {
	return uniqueFilename(prefix, name, time.Now())
}

func uniqueFilename(prefix string, name string, n time.Time) string {
	ts := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	if name == "" {
		return fmt.Sprintf("%s_%s", prefix, ts)
	}
	return fmt.Sprintf("%s_%s_%s", prefix, name, ts)
}
