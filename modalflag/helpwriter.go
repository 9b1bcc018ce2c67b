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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// writeHelp prints the flags and sub-modes of a mode. flags are printed in
// lexical order.
func writeHelp(output io.Writer, banner string, flags *flag.FlagSet, subModes []string, additionalHelp string) {
	var b strings.Builder

	var n int
	flags.VisitAll(func(f *flag.Flag) {
		n++
		b.WriteString("  -")
		b.WriteString(f.Name)
		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			b.WriteString(" ")
			b.WriteString(name)
		}
		b.WriteString("\n    \t")
		b.WriteString(usage)
		switch f.DefValue {
		case "", "false", "0", "0s":
		default:
			fmt.Fprintf(&b, " (default %v)", f.DefValue)
		}
		b.WriteString("\n")
	})

	if n == 0 && len(subModes) == 0 {
		if banner == "" {
			io.WriteString(output, "No help available\n")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		}
		return
	}

	if len(subModes) > 0 {
		if n > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(&b, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		b.WriteString("\n")
		b.WriteString(additionalHelp)
		b.WriteString("\n")
	}

	if banner == "" {
		io.WriteString(output, "Usage:\n")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", banner)
	}
	io.WriteString(output, b.String())
}
