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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when EndMixing() is called. Sounds are written one after the other with no
// gaps between them.
package wavwriter

import (
	"os"

	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/gui/sounds"
	"github.com/coalos/coalos/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// bit depth of the WAV file
const bitDepth = 16

// WavWriter implements the sounds.Output interface.
type WavWriter struct {
	filename string
	rate     int
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, rate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}
	if rate <= 0 {
		return nil, curated.Errorf("wavwriter: invalid sample rate (%d)", rate)
	}
	return &WavWriter{
		filename: filename,
		rate:     rate,
	}, nil
}

// Queue implements the sounds.Output interface. Samples at a different rate
// to the WavWriter are resampled.
func (aw *WavWriter) Queue(s sounds.Sample) error {
	aw.buffer = append(aw.buffer, s.Resample(aw.rate).Ints()...)
	return nil
}

// EndMixing writes the buffered audio to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.rate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards the buffered audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
