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

// Package sdlaudio plays sounds through an SDL audio device. The device is
// opened for signed 16 bit mono audio and sounds are played by adding them to
// the SDL audio queue.
package sdlaudio

import (
	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/gui/sounds"
	"github.com/veandco/go-sdl2/sdl"
)

// number of samples in the SDL buffer
const bufferLength = 512

// maxQueued is the amount of queued audio, in seconds, that is allowed before
// new sounds are dropped. without a limit a long run of key clicks would
// lag behind the typing.
const maxQueued = 0.25

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

// NewAudio is the preferred method of initialisation for the Audio Type. The
// SDL audio subsystem must have been initialised.
func NewAudio(rate int) (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Rate returns the sample rate of the audio device.
func (aud *Audio) Rate() int {
	return int(aud.spec.Freq)
}

// Queue implements the sounds.Output interface.
func (aud *Audio) Queue(s sounds.Sample) error {
	limit := uint32(maxQueued * float64(aud.spec.Freq) * 2)
	if sdl.GetQueuedAudioSize(aud.id) > limit {
		return nil
	}

	if s.Rate != int(aud.spec.Freq) {
		s = s.Resample(int(aud.spec.Freq))
	}

	if err := sdl.QueueAudio(aud.id, s.PCM16()); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}
	return nil
}

// EndMixing closes the audio device.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
