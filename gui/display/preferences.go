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
	"github.com/coalos/coalos/terminal"
)

// Preferences for the terminal display.
type Preferences struct {
	dsk *prefs.Disk

	ColourR         prefs.Float
	ColourG         prefs.Float
	ColourB         prefs.Float
	TypewriterSpeed prefs.Float

	Enabled   prefs.Bool
	Scanline  prefs.Float
	Curvature prefs.Float
	Vignette  prefs.Float
	Chroma    prefs.Float
	Glow      prefs.Float
	Noise     prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	colourR         = 0.0
	colourG         = 1.0
	colourB         = 0.0
	typewriterSpeed = 50.0
	enabled         = true
	scanline        = 0.03
	curvature       = 0.05
	vignette        = 0.15
	chroma          = 0.3
	glow            = 0.1
	noise           = 0.02
)

// Limits of the typewriter speed.
const (
	MinTypewriterSpeed = 1.0
	MaxTypewriterSpeed = 10000.0
)

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the prefs file at path, which is created if it
// does not exist.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("display.colour.r", &p.ColourR)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.colour.g", &p.ColourG)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.colour.b", &p.ColourB)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.typewriterSpeed", &p.TypewriterSpeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("crt.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("crt.scanline", &p.Scanline)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("crt.curvature", &p.Curvature)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("crt.vignette", &p.Vignette)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("crt.chroma", &p.Chroma)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("crt.glow", &p.Glow)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("crt.noise", &p.Noise)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, curated.Errorf("display: %v", err)
	}

	return p, nil
}

// clampHook returns a post hook that replaces a value outside the range lo
// to hi with the nearest limit. setting the limit calls the hook again but
// the limit is in range so there is no further change.
func clampHook(p *prefs.Float, lo float64, hi float64) func(prefs.Value) error {
	return func(v prefs.Value) error {
		f, ok := v.(float64)
		if !ok {
			return nil
		}
		if f < lo {
			return p.Set(lo)
		}
		if f > hi {
			return p.Set(hi)
		}
		return nil
	}
}

func (p *Preferences) setHooks() {
	p.ColourR.SetHookPost(clampHook(&p.ColourR, 0, 1))
	p.ColourG.SetHookPost(clampHook(&p.ColourG, 0, 1))
	p.ColourB.SetHookPost(clampHook(&p.ColourB, 0, 1))
	p.TypewriterSpeed.SetHookPost(clampHook(&p.TypewriterSpeed, MinTypewriterSpeed, MaxTypewriterSpeed))
	for _, k := range knobs {
		f := k.pref(p)
		f.SetHookPost(clampHook(f, 0, k.max))
	}
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.ColourR.Set(colourR)
	p.ColourG.Set(colourG)
	p.ColourB.Set(colourB)
	p.TypewriterSpeed.Set(typewriterSpeed)
	p.Enabled.Set(enabled)
	p.Scanline.Set(scanline)
	p.Curvature.Set(curvature)
	p.Vignette.Set(vignette)
	p.Chroma.Set(chroma)
	p.Glow.Set(glow)
	p.Noise.Set(noise)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Colour returns the text colour.
func (p *Preferences) Colour() terminal.Colour {
	return terminal.Colour{
		R: float32(p.ColourR.Get().(float64)),
		G: float32(p.ColourG.Get().(float64)),
		B: float32(p.ColourB.Get().(float64)),
	}
}

// SetColour changes the text colour.
func (p *Preferences) SetColour(c terminal.Colour) {
	p.ColourR.Set(c.R)
	p.ColourG.Set(c.G)
	p.ColourB.Set(c.B)
}

// Speed returns the typewriter speed in characters per second.
func (p *Preferences) Speed() float64 {
	return p.TypewriterSpeed.Get().(float64)
}

// SetSpeed changes the typewriter speed.
func (p *Preferences) SetSpeed(cps float64) {
	p.TypewriterSpeed.Set(cps)
}
