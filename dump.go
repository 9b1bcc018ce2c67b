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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/coalos/coalos/engine"
	"github.com/coalos/coalos/modalflag"
	"github.com/coalos/coalos/resources"
	"github.com/coalos/coalos/terminal"
)

// the step used by the headless loop. the engine is driven as though it were
// running at sixty frames per second.
const headlessStep = 1.0 / 60.0

// headless drives the engine without a frontend for the number of seconds
// given. each command in input is typed once the engine has reached the
// terminal and finished revealing text.
//
// returns the number of commands that were typed.
func headless(eng *engine.Engine, seconds float64, input []string) int {
	typed := 0
	for t := 0.0; t < seconds && !eng.Done(); t += headlessStep {
		eng.Update(headlessStep)
		if typed >= len(input) {
			continue // for loop
		}
		if eng.Mode() != engine.ModeTerminal || eng.Terminal().IsTyping() {
			continue // for loop
		}
		for _, r := range input[typed] {
			eng.HandleKey(engine.KeyEvent{Key: engine.KeyRune, Rune: r, Shift: true})
		}
		eng.HandleKey(engine.KeyEvent{Key: engine.KeyEnter})
		typed++
	}
	return typed
}

// splitInput on the semi-colon. empty commands are discarded.
func splitInput(s string) []string {
	var input []string
	for _, c := range strings.Split(s, ";") {
		c = strings.TrimSpace(c)
		if c != "" {
			input = append(input, c)
		}
	}
	return input
}

// writeLines of the terminal to the output. a line is written for each entry
// in the line buffer, followed by the prompt and current input.
func writeLines(output io.Writer, trm *terminal.Terminal) {
	for _, l := range trm.Lines() {
		fmt.Fprintln(output, l)
	}
	fmt.Fprintf(output, "%s%s\n", trm.Prompt(), trm.GetCurrentInput())
}

func dump(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	duration := md.AddFloat64("duration", 30, "number of seconds to run for")
	input := md.AddString("input", "", "commands to type once the terminal is ready. separate commands with a semi-colon")
	graph := md.AddBool("graph", false, "write a graph of the engine state to a .dot file in the resources directory")

	md.AdditionalHelp("runs the engine without a display and prints the terminal lines")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.parsed(md)

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ses, err := newSession(opts)
	if err != nil {
		return err
	}

	cmds := splitInput(*input)
	if n := headless(ses.eng, *duration, cmds); n < len(cmds) {
		fmt.Printf("! %d of %d commands were not typed\n", len(cmds)-n, len(cmds))
	}

	writeLines(os.Stdout, ses.eng.Terminal())

	if *graph {
		pth, err := resources.JoinPath(resources.UniqueFilename("graph", "") + ".dot")
		if err != nil {
			return err
		}
		f, err := os.Create(pth)
		if err != nil {
			return err
		}
		memviz.Map(f, ses.eng.FileSystem(), ses.eng.Network())
		err = f.Close()
		if err != nil {
			return err
		}
		fmt.Printf("graph written to %s\n", pth)
	}

	return ses.end()
}
