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

package boot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coalos/coalos/asciiart"
	"github.com/coalos/coalos/boot"
	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/terminal"
	"github.com/coalos/coalos/test"
)

// run the terminal and sequence together for n steps of dt seconds
func run(trm *terminal.Terminal, seq *boot.Sequence, n int, dt float64) {
	for range n {
		trm.Update(dt)
		seq.Update(dt)
	}
}

func TestDefaultScript(t *testing.T) {
	trm := terminal.NewTerminal(terminal.DefaultViewport(600))
	trm.SetPrompt("> ")

	seq := boot.NewSequence(logger.Allow, boot.DefaultScript(), trm, nil)
	test.ExpectSuccess(t, seq.Done())

	seq.Start()
	test.ExpectFailure(t, seq.Done())
	test.ExpectEquality(t, trm.Prompt(), "")
	test.ExpectEquality(t, seq.State(), boot.Waiting)

	// nothing happens before the first stage
	run(trm, seq, 9, 0.1)
	test.ExpectEquality(t, len(trm.Lines()), 0)
	test.ExpectEquality(t, seq.Stage(), 0)

	run(trm, seq, 3, 0.1)
	test.ExpectEquality(t, seq.Stage(), 1)
	test.ExpectEquality(t, seq.State(), boot.Printing)
	test.ExpectSuccess(t, trm.IsTyping())

	run(trm, seq, 3000, 0.01)
	test.ExpectSuccess(t, seq.Done())
	test.ExpectEquality(t, seq.State(), boot.Finished)
	test.ExpectEquality(t, seq.Stage(), 4)
	test.ExpectEquality(t, trm.Prompt(), "root:~$ ")

	lines := trm.Lines()
	test.DemandEquality(t, len(lines), 16)
	test.ExpectEquality(t, lines[0], "Calculated RAMsize: 66816233991524 Mb")
	test.ExpectEquality(t, lines[1], "Initiating Setup...")
	test.ExpectEquality(t, lines[4], "  root access obtained!")
	test.ExpectEquality(t, lines[8], "  - Nmap ver.8.9.1 ... [ OK ]")
	test.ExpectEquality(t, lines[10], "! Setup Complete !")
	test.ExpectEquality(t, lines[12], "Coal OS - ver 1.4.6")
	test.ExpectEquality(t, lines[13], "Developed by 'Downtime' and 'Dr. Mass'")
	test.ExpectEquality(t, lines[15], "")

	// further updates change nothing
	run(trm, seq, 10, 0.1)
	test.ExpectEquality(t, len(trm.Lines()), 16)
}

func TestStageWaitsForTypewriter(t *testing.T) {
	script := boot.Script{
		Prompt: "$ ",
		Stages: []boot.Stage{
			{At: 0, Lines: []boot.Line{{Text: "abcd", CPS: 1}}},
			{At: 1, Lines: []boot.Line{{Text: "x"}}},
		},
	}

	trm := terminal.NewTerminal(terminal.DefaultViewport(600))
	seq := boot.NewSequence(logger.Allow, script, trm, nil)
	seq.Start()

	// the second stage is due but the first line is still being revealed
	run(trm, seq, 20, 0.1)
	test.ExpectEquality(t, len(trm.Lines()), 1)
	test.ExpectSuccess(t, trm.IsTyping())
	test.ExpectEquality(t, seq.Stage(), 1)
	test.ExpectFailure(t, seq.Done())

	run(trm, seq, 50, 0.1)
	test.ExpectSuccess(t, seq.Done())
	lines := trm.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "abcd")
	test.ExpectEquality(t, lines[1], "x")
	test.ExpectEquality(t, trm.Prompt(), "$ ")
}

func TestLinesInOrder(t *testing.T) {
	script := boot.Script{
		Stages: []boot.Stage{
			{At: 0, Lines: []boot.Line{
				{Text: "one", CPS: 10},
				{Text: "two"},
				{Text: "three", CPS: 10},
			}},
		},
	}

	trm := terminal.NewTerminal(terminal.DefaultViewport(600))
	seq := boot.NewSequence(logger.Allow, script, trm, nil)
	seq.Start()

	run(trm, seq, 2, 0.1)
	test.ExpectEquality(t, len(trm.Lines()), 1)

	run(trm, seq, 30, 0.1)
	test.ExpectSuccess(t, seq.Done())
	lines := trm.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "one")
	test.ExpectEquality(t, lines[1], "two")
	test.ExpectEquality(t, lines[2], "three")
}

func TestArtAndRestart(t *testing.T) {
	script := boot.Script{
		Prompt: "# ",
		Stages: []boot.Stage{
			{At: 0.5, Lines: []boot.Line{{Text: "welcome"}}, Art: asciiart.Logo},
		},
	}

	trm := terminal.NewTerminal(terminal.DefaultViewport(600))
	seq := boot.NewSequence(logger.Allow, script, trm, asciiart.NewLibrary(""))
	seq.Start()
	run(trm, seq, 10, 0.1)
	test.ExpectSuccess(t, seq.Done())
	test.ExpectEquality(t, len(trm.Lines()), 6)
	test.ExpectEquality(t, trm.Lines()[0], "welcome")

	trm.Clear()
	seq.Start()
	test.ExpectFailure(t, seq.Done())
	test.ExpectEquality(t, trm.Prompt(), "")
	test.ExpectApproximate(t, seq.Elapsed(), 0.0, 0.0)

	run(trm, seq, 10, 0.1)
	test.ExpectSuccess(t, seq.Done())
	test.ExpectEquality(t, len(trm.Lines()), 6)
	test.ExpectEquality(t, trm.Prompt(), "# ")
}

func TestParseScript(t *testing.T) {
	s, err := boot.ParseScript([]byte("prompt: \"> \"\nstages:\n  - at: 1\n    lines:\n      - {text: hello, cps: 20}\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Prompt, "> ")
	test.DemandEquality(t, len(s.Stages), 1)
	test.ExpectEquality(t, s.Stages[0].Lines[0].Text, "hello")
	test.ExpectApproximate(t, s.Stages[0].Lines[0].CPS, 20.0, 0.0)

	_, err = boot.ParseScript([]byte("stages: [\n"))
	test.ExpectSuccess(t, curated.Is(err, boot.InvalidScript))

	_, err = boot.ParseScript([]byte("prompt: x\n"))
	test.ExpectSuccess(t, curated.Is(err, boot.InvalidScript))

	_, err = boot.ParseScript([]byte("stages:\n  - at: 2\n  - at: 1\n"))
	test.ExpectSuccess(t, curated.Is(err, boot.InvalidScript))

	_, err = boot.ParseScript([]byte("stages:\n  - at: 1\n    lines:\n      - {text: a, cps: -1}\n"))
	test.ExpectSuccess(t, curated.Is(err, boot.InvalidScript))
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()

	_, err := boot.LoadScript(filepath.Join(dir, boot.DefaultFilename))
	test.ExpectSuccess(t, curated.Is(err, boot.NoScript))

	fn := filepath.Join(dir, boot.DefaultFilename)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("stages:\n  - at: 0\n    lines:\n      - {text: hi}\n"), 0o600))
	s, err := boot.LoadScript(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s.Stages), 1)
}
