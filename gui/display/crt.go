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

package display

import (
	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/prefs"
)

// Names of the CRT knobs.
const (
	KnobScanline = "scanline"
	KnobCurve    = "curve"
	KnobVignette = "vignette"
	KnobGlow     = "glow"
	KnobNoise    = "noise"
	KnobChroma   = "chroma"
)

// UnknownKnob is the error pattern for a CRT knob that does not exist.
const UnknownKnob = "display: unknown crt knob (%s)"

var knobs = []struct {
	name string
	max  float64
	pref func(p *Preferences) *prefs.Float
}{
	{KnobScanline, 1, func(p *Preferences) *prefs.Float { return &p.Scanline }},
	{KnobCurve, 1, func(p *Preferences) *prefs.Float { return &p.Curvature }},
	{KnobVignette, 1, func(p *Preferences) *prefs.Float { return &p.Vignette }},
	{KnobGlow, 1, func(p *Preferences) *prefs.Float { return &p.Glow }},
	{KnobNoise, 1, func(p *Preferences) *prefs.Float { return &p.Noise }},
	{KnobChroma, 2, func(p *Preferences) *prefs.Float { return &p.Chroma }},
}

// CRT is a snapshot of the CRT settings.
type CRT struct {
	Enabled   bool
	Scanline  float32
	Curvature float32
	Vignette  float32
	Chroma    float32
	Glow      float32
	Noise     float32
}

// CRT returns a snapshot of the current CRT settings.
func (p *Preferences) CRT() CRT {
	f := func(v *prefs.Float) float32 {
		return float32(v.Get().(float64))
	}
	return CRT{
		Enabled:   p.Enabled.Get().(bool),
		Scanline:  f(&p.Scanline),
		Curvature: f(&p.Curvature),
		Vignette:  f(&p.Vignette),
		Chroma:    f(&p.Chroma),
		Glow:      f(&p.Glow),
		Noise:     f(&p.Noise),
	}
}

// CRTEnabled returns true if the CRT effect is enabled.
func (p *Preferences) CRTEnabled() bool {
	return p.Enabled.Get().(bool)
}

// SetCRTEnabled turns the CRT effect on or off.
func (p *Preferences) SetCRTEnabled(enabled bool) {
	p.Enabled.Set(enabled)
}

// SetCRTKnob sets the named knob to the value. The value stored, which might
// have been limited to the range of the knob, is returned.
func (p *Preferences) SetCRTKnob(knob string, value float64) (float64, error) {
	for _, k := range knobs {
		if k.name == knob {
			f := k.pref(p)
			if err := f.Set(value); err != nil {
				return 0, curated.Errorf("display: %v", err)
			}
			return f.Get().(float64), nil
		}
	}
	return 0, curated.Errorf(UnknownKnob, knob)
}

// CRTKnobs returns the names of the CRT knobs.
func CRTKnobs() []string {
	n := make([]string, len(knobs))
	for i, k := range knobs {
		n[i] = k.name
	}
	return n
}
