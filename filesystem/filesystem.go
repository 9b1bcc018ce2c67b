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

// Package filesystem is the pretend filesystem of CoalOS. It is nothing more
// than a sorted set of file names. No file contents are stored and nothing is
// ever written to the real filesystem.
package filesystem

import (
	"slices"
	"strings"
)

// DefaultFile is the file present on a new system.
const DefaultFile = "rockyou.pwd"

// FileSystem is a sorted set of file names.
type FileSystem struct {
	files []string
}

// NewFileSystem is the preferred method of initialisation for the FileSystem
// type. The new filesystem contains the files listed. Duplicates are ignored.
func NewFileSystem(files ...string) *FileSystem {
	fs := &FileSystem{}
	fs.Reset(files)
	return fs
}

// Default returns the filesystem of a new system.
func Default() *FileSystem {
	return NewFileSystem(DefaultFile)
}

func (fs *FileSystem) String() string {
	if len(fs.files) == 0 {
		return "Filesystem is empty"
	}
	return "[ " + strings.Join(fs.files, ", ") + " ]"
}

// Add a file. Returns false if the file already exists or if the name is
// empty.
func (fs *FileSystem) Add(name string) bool {
	if name == "" {
		return false
	}
	i, found := slices.BinarySearch(fs.files, name)
	if found {
		return false
	}
	fs.files = slices.Insert(fs.files, i, name)
	return true
}

// Remove a file. Returns false if there is no such file.
func (fs *FileSystem) Remove(name string) bool {
	i, found := slices.BinarySearch(fs.files, name)
	if !found {
		return false
	}
	fs.files = slices.Delete(fs.files, i, i+1)
	return true
}

// Exists returns true if the file is in the filesystem.
func (fs *FileSystem) Exists(name string) bool {
	_, found := slices.BinarySearch(fs.files, name)
	return found
}

// List returns a copy of the file names in sorted order.
func (fs *FileSystem) List() []string {
	return slices.Clone(fs.files)
}

// Len returns the number of files.
func (fs *FileSystem) Len() int {
	return len(fs.files)
}

// Reset replaces the contents of the filesystem.
func (fs *FileSystem) Reset(files []string) {
	fs.files = fs.files[:0]
	for _, f := range files {
		fs.Add(f)
	}
}
