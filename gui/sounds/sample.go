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
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/coalos/coalos/curated"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// Sample is a mono sound.
type Sample struct {
	Rate int
	Data []float32
}

// Duration of the sample in seconds.
func (s Sample) Duration() float64 {
	if s.Rate == 0 {
		return 0
	}
	return float64(len(s.Data)) / float64(s.Rate)
}

// PCM16 returns the sample as signed 16 bit little endian data.
func (s Sample) PCM16() []byte {
	b := make([]byte, len(s.Data)*2)
	for i, v := range s.Data {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(toInt16(v)))
	}
	return b
}

// Ints returns the sample as signed 16 bit values.
func (s Sample) Ints() []int {
	d := make([]int, len(s.Data))
	for i, v := range s.Data {
		d[i] = int(toInt16(v))
	}
	return d
}

func toInt16(v float32) int16 {
	v = min(max(v, -1), 1)
	return int16(math.Round(float64(v) * math.MaxInt16))
}

// Resample returns the sample converted to a different rate by linear
// interpolation.
func (s Sample) Resample(rate int) Sample {
	if s.Rate == rate || s.Rate == 0 || len(s.Data) == 0 {
		return Sample{Rate: rate, Data: s.Data}
	}

	n := int(math.Round(float64(len(s.Data)) * float64(rate) / float64(s.Rate)))
	r := Sample{Rate: rate, Data: make([]float32, n)}
	step := float64(s.Rate) / float64(rate)

	for i := range r.Data {
		p := float64(i) * step
		j := int(p)
		if j >= len(s.Data)-1 {
			r.Data[i] = s.Data[len(s.Data)-1]
			continue
		}
		f := float32(p - float64(j))
		r.Data[i] = s.Data[j]*(1-f) + s.Data[j+1]*f
	}

	return r
}

// Load a sample from a WAV or MP3 file. Only the first channel of a stereo
// file is used.
func Load(path string) (Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sample{}, curated.Errorf("sounds: %v", err)
	}
	defer f.Close()
	return Decode(f, filepath.Ext(path))
}

// Decode a sample. The ext argument is the file extension that indicates the
// format of the data.
func Decode(r io.ReadSeeker, ext string) (Sample, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return decodeWAV(r)
	case ".mp3":
		return decodeMP3(r)
	}
	return Sample{}, curated.Errorf("sounds: unsupported file type (%s)", ext)
}

func decodeWAV(r io.ReadSeeker) (Sample, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return Sample{}, curated.Errorf("sounds: wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Sample{}, curated.Errorf("sounds: wav: %v", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	chans := max(int(dec.NumChans), 1)
	scale := float32(math.Pow(2, float64(dec.BitDepth)-1))
	if scale == 0 {
		scale = 1
	}

	s := Sample{
		Rate: int(dec.SampleRate),
		Data: make([]float32, 0, len(floatBuf.Data)/chans),
	}
	for i := 0; i < len(floatBuf.Data); i += chans {
		s.Data = append(s.Data, floatBuf.Data[i]/scale)
	}

	return s, nil
}

func decodeMP3(r io.Reader) (Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Sample{}, curated.Errorf("sounds: mp3: %v", err)
	}

	// the stream is always 16bit little endian with two channels, even if
	// the source is single channel. a sample is therefore four bytes and we
	// take only the left channel
	s := Sample{Rate: dec.SampleRate()}
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(binary.LittleEndian.Uint16(chunk[i:]))
			s.Data = append(s.Data, float32(v)/32768)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return Sample{}, curated.Errorf("sounds: mp3: %v", err)
		}
	}

	return s, nil
}

func (s Sample) String() string {
	return fmt.Sprintf("%d samples at %dHz (%.2fs)", len(s.Data), s.Rate, s.Duration())
}
