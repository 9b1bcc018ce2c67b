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

package commands

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// TabCompletion completes the first word of the input to the name of a
// command. Calling Complete() again with the previous result cycles through
// the other possible completions.
type TabCompletion struct {
	cmds *Commands

	matches        []string
	match          int
	lastCompletion string
}

// NewTabCompletion is the preferred method of initialisation for TabCompletion.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete the input. The input is returned unchanged if there is no
// possible completion.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through matches if the input is the completion from last time
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	// only the command name is completed
	word := strings.TrimLeft(input, " ")
	if word == "" || strings.ContainsAny(word, " \t") {
		return input
	}
	word = strings.ToLower(word)

	names := tc.cmds.Names()

	for _, n := range names {
		if strings.HasPrefix(n, word) {
			tc.matches = append(tc.matches, n)
		}
	}

	// fuzzy matches come after prefix matches, ordered by score
	for _, m := range fuzzy.Find(word, names) {
		if !strings.HasPrefix(m.Str, word) {
			tc.matches = append(tc.matches, m.Str)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.lastCompletion = tc.matches[0] + " "
	return tc.lastCompletion
}

// Reset is called whenever the tab completion should begin again. In
// practice, this means whenever the input has changed other than by
// Complete().
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.lastCompletion = ""
}
