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

// history of submitted commands. the cursor points one past the most recent
// entry when the user is not browsing the history.
type history struct {
	entries []string
	cursor  int
}

// maximum number of history entries
const maxHistory = 100

func (h *history) add(s string) {
	if s == "" {
		return
	}
	if len(h.entries) == 0 || h.entries[len(h.entries)-1] != s {
		h.entries = append(h.entries, s)
		if len(h.entries) > maxHistory {
			h.entries = h.entries[1:]
		}
	}
	h.cursor = len(h.entries)
}

// older returns the previous entry and true, or false if there is no older
// entry.
func (h *history) older() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// newer returns the next entry. Moving past the most recent entry returns
// the empty string.
func (h *history) newer() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return "", true
	}
	return h.entries[h.cursor], true
}
