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

package sounds_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coalos/coalos/environment"
	"github.com/coalos/coalos/gui/sounds"
	"github.com/coalos/coalos/notifications"
	"github.com/coalos/coalos/random"
	"github.com/coalos/coalos/test"
	"github.com/coalos/coalos/wavwriter"
)

type mockOutput struct {
	played []sounds.Sample
}

func (o *mockOutput) Queue(s sounds.Sample) error {
	o.played = append(o.played, s)
	return nil
}

func TestSynth(t *testing.T) {
	rnd := random.NewSeeded(1)

	c := sounds.Click(sounds.DefaultRate, rnd)
	test.ExpectEquality(t, c.Rate, sounds.DefaultRate)
	test.ExpectApproximate(t, c.Duration(), 0.012, 0.01)

	m := sounds.Modem(sounds.DefaultRate, rnd)
	test.ExpectSuccess(t, m.Duration() > 1.0)
	for _, v := range m.Data {
		if v < -1 || v > 1 {
			t.Fatalf("sample out of range: %f", v)
		}
	}

	// the same seed produces the same sound
	a := sounds.Tick(sounds.DefaultRate, random.NewSeeded(5))
	b := sounds.Tick(sounds.DefaultRate, random.NewSeeded(5))
	test.DemandEquality(t, len(a.Data), len(b.Data))
	for i := range a.Data {
		test.ExpectEquality(t, a.Data[i], b.Data[i])
	}
}

func TestResampleAndPCM(t *testing.T) {
	s := sounds.Sample{Rate: 10, Data: []float32{0, 1, 0, -1}}

	r := s.Resample(20)
	test.ExpectEquality(t, r.Rate, 20)
	test.DemandEquality(t, len(r.Data), 8)
	test.ExpectApproximate(t, r.Data[1], 0.5, 0.001)
	test.ExpectApproximate(t, r.Data[2], 1.0, 0.001)

	test.ExpectEquality(t, len(s.Resample(10).Data), 4)

	pcm := s.PCM16()
	test.DemandEquality(t, len(pcm), 8)
	test.ExpectEquality(t, pcm[2], byte(0xff))
	test.ExpectEquality(t, pcm[3], byte(0x7f))

	ints := s.Ints()
	test.ExpectEquality(t, ints[1], math.MaxInt16)
	test.ExpectEquality(t, ints[3], -math.MaxInt16)
}

func TestWAVRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "click.wav")

	w, err := wavwriter.New(fn, 8000)
	test.DemandSuccess(t, err)
	click := sounds.Click(8000, random.NewSeeded(2))
	test.DemandSuccess(t, w.Queue(click))
	test.DemandSuccess(t, w.EndMixing())

	s, err := sounds.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Rate, 8000)
	test.DemandEquality(t, len(s.Data), len(click.Data))
	for i := range s.Data {
		if math.Abs(float64(s.Data[i]-click.Data[i])) > 0.001 {
			t.Errorf("sample %d: %f does not match %f", i, s.Data[i], click.Data[i])
		}
	}

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	_, err = sounds.Decode(bytes.NewReader(b), ".WAV")
	test.ExpectSuccess(t, err)

	_, err = sounds.Decode(bytes.NewReader(b), ".ogg")
	test.ExpectFailure(t, err)

	_, err = sounds.Decode(bytes.NewReader([]byte("not a wav file")), ".wav")
	test.ExpectFailure(t, err)

	_, err = sounds.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
}

func TestPlayer(t *testing.T) {
	env := environment.NewEnvironment("test", random.NewSeeded(1))
	bank := sounds.NewBank(env, sounds.DefaultRate, "", filepath.Join(t.TempDir(), "missing.mp3"))

	// the modem sound is synthesised when the file can't be loaded
	test.ExpectSuccess(t, bank.Modem.Duration() > 1.0)

	out := &mockOutput{}
	p := sounds.NewPlayer(bank, out)

	now := time.Unix(0, 0)
	p.SetClock(func() time.Time { return now })

	test.ExpectSuccess(t, p.Notify(notifications.NotifyKeypress))
	test.ExpectEquality(t, len(out.played), 1)

	// reveal ticks are throttled
	test.ExpectSuccess(t, p.Notify(notifications.NotifyReveal))
	test.ExpectSuccess(t, p.Notify(notifications.NotifyReveal))
	test.ExpectEquality(t, len(out.played), 2)
	now = now.Add(sounds.TickInterval)
	test.ExpectSuccess(t, p.Notify(notifications.NotifyReveal))
	test.ExpectEquality(t, len(out.played), 3)

	test.ExpectSuccess(t, p.Notify(notifications.NotifyLoginAttempt))
	test.ExpectEquality(t, len(out.played[3].Data), len(bank.Modem.Data))

	// notices without a sound
	test.ExpectSuccess(t, p.Notify(notifications.NotifyLogout))
	test.ExpectEquality(t, len(out.played), 4)

	second := &mockOutput{}
	p.AddOutput(second)
	test.ExpectSuccess(t, p.Notify(notifications.NotifyKeypress))
	test.ExpectEquality(t, len(out.played), 5)
	test.ExpectEquality(t, len(second.played), 1)
}
