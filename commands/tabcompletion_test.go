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

package commands_test

import (
	"testing"

	"github.com/coalos/coalos/commands"
	"github.com/coalos/coalos/test"
)

func TestTabCompletion(t *testing.T) {
	f := newFixture(t)
	tc := commands.NewTabCompletion(f.cmds)

	completion := tc.Complete("cr")
	test.ExpectEquality(t, completion, "crack ")

	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "crt ")

	// cycle through the fuzzy matches and back to the start
	for range 10 {
		completion = tc.Complete(completion)
		if completion == "crack " {
			break
		}
	}
	test.ExpectEquality(t, completion, "crack ")

	tc.Reset()
	test.ExpectEquality(t, tc.Complete("HEL"), "help ")

	tc.Reset()
	test.ExpectEquality(t, tc.Complete("spd"), "speed ")

	tc.Reset()
	test.ExpectEquality(t, tc.Complete("xyz"), "xyz")
	test.ExpectEquality(t, tc.Complete(""), "")
	test.ExpectEquality(t, tc.Complete("rm rock"), "rm rock")
}

func TestTabCompletionRemote(t *testing.T) {
	f := newFixture(t)
	f.run("connect 12.34.56 Xy7!abcdEF")

	tc := commands.NewTabCompletion(f.cmds)
	test.ExpectEquality(t, tc.Complete("l"), "list ")

	// the other commands containing an l are fuzzy matches
	test.ExpectInequality(t, tc.Complete("list "), "list ")
}
