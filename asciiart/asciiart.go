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

package asciiart

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/logger"
	"github.com/mattn/go-runewidth"
)

//go:embed art/*.txt
var embedded embed.FS

// Extension of art files.
const Extension = ".txt"

// Logo is the name of the embedded CoalOS logo.
const Logo = "logo"

// Sentinel error patterns.
const (
	NoArt    = "asciiart: no art named %s"
	EmptyArt = "asciiart: art file is empty (%s)"
)

// Printer is the interface required by the Display() function.
type Printer interface {
	AppendLine(line string)
}

// Library of ASCII art.
type Library struct {
	dir   string
	cache map[string][]string
}

// NewLibrary is the preferred method of initialisation for the Library type.
// The dir argument is the directory searched for art files. It can be empty,
// in which case only embedded art is available.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:   dir,
		cache: make(map[string][]string),
	}
}

// Load the named art. Art that has been loaded before is returned from the
// cache.
func (lib *Library) Load(name string) ([]string, error) {
	if lines, ok := lib.cache[name]; ok {
		return lines, nil
	}

	var b []byte
	var err error
	var path string

	if lib.dir != "" {
		path = filepath.Join(lib.dir, name+Extension)
		b, err = os.ReadFile(path)
	} else {
		err = fs.ErrNotExist
	}

	if errors.Is(err, fs.ErrNotExist) {
		path = "art/" + name + Extension
		b, err = embedded.ReadFile(path)
		if err != nil {
			return nil, curated.Errorf(NoArt, name)
		}
	} else if err != nil {
		return nil, curated.Errorf("asciiart: %v", err)
	}

	lines := split(b)
	if len(lines) == 0 {
		return nil, curated.Errorf(EmptyArt, path)
	}

	lib.cache[name] = lines
	logger.Logf(logger.Allow, "asciiart", "loaded %s (%d lines)", path, len(lines))

	return lines, nil
}

// Cached returns the named art only if it is already in the cache.
func (lib *Library) Cached(name string) ([]string, bool) {
	lines, ok := lib.cache[name]
	return lines, ok
}

// Names returns the sorted list of cached art.
func (lib *Library) Names() []string {
	n := make([]string, 0, len(lib.cache))
	for k := range lib.cache {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// ClearCache forgets all loaded art.
func (lib *Library) ClearCache() {
	clear(lib.cache)
}

// Display the named art, loading it if necessary.
func (lib *Library) Display(p Printer, name string) error {
	lines, err := lib.Load(name)
	if err != nil {
		return err
	}
	for _, l := range lines {
		p.AppendLine(l)
	}
	return nil
}

// MaxWidth returns the width in cells of the widest line.
func MaxWidth(lines []string) int {
	var w int
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return w
}

func split(b []byte) []string {
	var lines []string
	s := bufio.NewScanner(bytes.NewReader(b))
	for s.Scan() {
		lines = append(lines, strings.TrimRight(s.Text(), "\r"))
	}
	return lines
}
