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

package display_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/gui/display"
	"github.com/coalos/coalos/prefs"
	"github.com/coalos/coalos/terminal"
	"github.com/coalos/coalos/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := display.NewPreferences(fn)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Colour(), terminal.Green)
	test.ExpectApproximate(t, p.Speed(), 50.0, 0.0)

	crt := p.CRT()
	test.ExpectSuccess(t, crt.Enabled)
	test.ExpectApproximate(t, crt.Scanline, 0.03, 0.001)
	test.ExpectApproximate(t, crt.Curvature, 0.05, 0.001)
	test.ExpectApproximate(t, crt.Vignette, 0.15, 0.001)
	test.ExpectApproximate(t, crt.Chroma, 0.3, 0.001)
	test.ExpectApproximate(t, crt.Glow, 0.1, 0.001)
	test.ExpectApproximate(t, crt.Noise, 0.02, 0.001)

	// the prefs file is created on first use
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(b), "crt.enabled :: true\n"))
	test.ExpectSuccess(t, strings.Contains(string(b), "display.typewriterSpeed :: 50.000\n"))
}

func TestClamping(t *testing.T) {
	p, err := display.NewPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	p.SetColour(terminal.Colour{R: 2, G: -1, B: 0.5})
	test.ExpectEquality(t, p.Colour(), terminal.Colour{R: 1, G: 0, B: 0.5})

	p.SetSpeed(0)
	test.ExpectApproximate(t, p.Speed(), 1.0, 0.0)
	p.SetSpeed(1e6)
	test.ExpectApproximate(t, p.Speed(), 10000.0, 0.0)

	v, err := p.SetCRTKnob(display.KnobScanline, 0.5)
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, v, 0.5, 0.0)

	v, err = p.SetCRTKnob(display.KnobCurve, 4)
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, v, 1.0, 0.0)
	test.ExpectApproximate(t, p.CRT().Curvature, 1.0, 0.0)

	v, err = p.SetCRTKnob(display.KnobChroma, 4)
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, v, 2.0, 0.0)

	v, err = p.SetCRTKnob(display.KnobNoise, -1)
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, v, 0.0, 0.0)

	_, err = p.SetCRTKnob("wobble", 1)
	test.ExpectSuccess(t, curated.Is(err, display.UnknownKnob))

	p.SetCRTEnabled(false)
	test.ExpectFailure(t, p.CRTEnabled())
	test.ExpectFailure(t, p.CRT().Enabled)

	test.ExpectEquality(t, len(display.CRTKnobs()), 6)
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := display.NewPreferences(fn)
	test.DemandSuccess(t, err)

	p.SetColour(terminal.Colour{R: 1, G: 0.75, B: 0})
	p.SetSpeed(120)
	p.SetCRTEnabled(false)
	_, err = p.SetCRTKnob(display.KnobGlow, 0.25)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Save())

	q, err := display.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Colour(), terminal.Colour{R: 1, G: 0.75, B: 0})
	test.ExpectApproximate(t, q.Speed(), 120.0, 0.0)
	test.ExpectFailure(t, q.CRTEnabled())
	test.ExpectApproximate(t, q.CRT().Glow, 0.25, 0.0)

	q.SetDefaults()
	test.ExpectSuccess(t, q.CRTEnabled())
	test.DemandSuccess(t, q.Load())
	test.ExpectFailure(t, q.CRTEnabled())
}

func TestOutOfRangeFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	data := prefs.WarningBoilerPlate + "\n" +
		"crt.scanline :: 7.0\n" +
		"display.typewriterSpeed :: -3\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	p, err := display.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, p.CRT().Scanline, 1.0, 0.0)
	test.ExpectApproximate(t, p.Speed(), 1.0, 0.0)

	// values not in the file keep their defaults
	test.ExpectApproximate(t, p.CRT().Vignette, 0.15, 0.001)
}
