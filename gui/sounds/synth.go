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

package sounds

import (
	"math"

	"github.com/coalos/coalos/random"
)

// DefaultRate is the sample rate of synthesised sounds.
const DefaultRate = 44100

// Click synthesises a key click. A short burst of noise with a fast decay.
func Click(rate int, rnd *random.Random) Sample {
	return burst(rate, rnd, 0.012, 0.6, 300)
}

// Tick synthesises the sound of a character being revealed. Quieter and
// shorter than a Click.
func Tick(rate int, rnd *random.Random) Sample {
	return burst(rate, rnd, 0.004, 0.15, 900)
}

func burst(rate int, rnd *random.Random, duration float64, volume float64, decay float64) Sample {
	n := int(float64(rate) * duration)
	s := Sample{Rate: rate, Data: make([]float32, n)}
	for i := range s.Data {
		t := float64(i) / float64(rate)
		noise := float64(rnd.Intn(2001)-1000) / 1000
		s.Data[i] = float32(noise * volume * math.Exp(-t*decay))
	}
	return s
}

// modem tones in Hz. each tone lasts for modemToneLength seconds
var modemTones = []float64{
	350, 440, 1070, 1270, 2025, 2225, 1650, 1850, 2100, 980, 1180,
}

const modemToneLength = 0.09

// Modem synthesises the handshake of a dial-up modem.
func Modem(rate int, rnd *random.Random) Sample {
	var data []float32

	tone := func(freq float64, length float64, noise float64) {
		n := int(float64(rate) * length)
		for i := range n {
			t := float64(i) / float64(rate)
			v := 0.4 * math.Sin(2*math.Pi*freq*t)
			v += noise * float64(rnd.Intn(2001)-1000) / 1000
			data = append(data, float32(v))
		}
	}

	// dial tone followed by the handshake and a burst of static
	tone(350, 0.3, 0)
	for range 2 {
		for _, f := range modemTones {
			tone(f, modemToneLength, 0.05)
		}
	}
	tone(0, 0.4, 0.3)

	return Sample{Rate: rate, Data: data}
}
