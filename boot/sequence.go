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

package boot

import (
	"github.com/coalos/coalos/asciiart"
	"github.com/coalos/coalos/logger"
)

// Terminal defines the terminal operations used by the boot sequence.
type Terminal interface {
	AppendLine(line string)
	StartReveal(text string, cps float64) bool
	IsTyping() bool
	SetPrompt(prompt string)
}

// Art is used to print the ASCII art named by a stage.
type Art interface {
	Display(p asciiart.Printer, name string) error
}

// State of the boot sequence.
type State int

// List of valid State values.
const (
	Waiting State = iota
	Printing
	Finished
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Printing:
		return "printing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Sequence runs a Script.
type Sequence struct {
	perm   logger.Permission
	script Script
	term   Terminal
	art    Art

	state State
	timer float64
	stage int

	// lines of the current stage still to be printed
	pending []Line
	artName string
}

// NewSequence is the preferred method of initialisation for the Sequence type.
// The art argument can be nil. The sequence is started with Start().
func NewSequence(perm logger.Permission, script Script, term Terminal, art Art) *Sequence {
	return &Sequence{
		perm:   perm,
		script: script,
		term:   term,
		art:    art,
		state:  Finished,
	}
}

// Start, or restart, the sequence from the beginning. The prompt is removed
// until the sequence has finished.
func (seq *Sequence) Start() {
	seq.state = Waiting
	seq.timer = 0
	seq.stage = 0
	seq.pending = seq.pending[:0]
	seq.artName = ""
	seq.term.SetPrompt("")
	logger.Log(seq.perm, "boot", "started")
}

// Done returns true once the sequence has finished.
func (seq *Sequence) Done() bool {
	return seq.state == Finished
}

// State returns the current state of the sequence.
func (seq *Sequence) State() State {
	return seq.state
}

// Stage returns the number of stages that have started.
func (seq *Sequence) Stage() int {
	return seq.stage
}

// Elapsed returns the number of seconds since Start().
func (seq *Sequence) Elapsed() float64 {
	return seq.timer
}

// Update advances the sequence by dt seconds. It should be called once per
// frame, after the terminal has been updated.
func (seq *Sequence) Update(dt float64) {
	if seq.state == Finished {
		return
	}

	seq.timer += dt

	for {
		switch seq.state {
		case Waiting:
			if seq.stage >= len(seq.script.Stages) {
				if seq.term.IsTyping() {
					return
				}
				seq.finish()
				return
			}

			st := seq.script.Stages[seq.stage]
			if seq.timer <= st.At || seq.term.IsTyping() {
				return
			}

			seq.pending = append(seq.pending[:0], st.Lines...)
			seq.artName = st.Art
			seq.stage++
			seq.state = Printing
			logger.Logf(seq.perm, "boot", "stage %d at %.2fs", seq.stage, seq.timer)

		case Printing:
			if seq.term.IsTyping() {
				return
			}

			if len(seq.pending) == 0 {
				if seq.artName != "" && seq.art != nil {
					if err := seq.art.Display(seq.term, seq.artName); err != nil {
						logger.Log(seq.perm, "boot", err)
					}
				}
				seq.artName = ""
				seq.state = Waiting
				continue
			}

			l := seq.pending[0]
			seq.pending = seq.pending[1:]
			if l.CPS > 0 {
				seq.term.StartReveal(l.Text, l.CPS)
			} else {
				seq.term.AppendLine(l.Text)
			}

		default:
			return
		}
	}
}

func (seq *Sequence) finish() {
	seq.term.SetPrompt(seq.script.Prompt)
	seq.state = Finished
	logger.Logf(seq.perm, "boot", "finished after %.2fs", seq.timer)
}
