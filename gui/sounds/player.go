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
	"time"

	"github.com/coalos/coalos/environment"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/notifications"
)

// Bank of sounds used by the Player.
type Bank struct {
	Click Sample
	Tick  Sample
	Modem Sample
}

// NewBank creates the bank of sounds at the sample rate. The key click and
// modem sound are loaded from the named files if the names are not empty.
// Any sound that can't be loaded is synthesised.
func NewBank(env *environment.Environment, rate int, clickFile string, modemFile string) *Bank {
	b := &Bank{
		Click: Click(rate, env.Random),
		Tick:  Tick(rate, env.Random),
		Modem: Modem(rate, env.Random),
	}

	load := func(fn string, dest *Sample) {
		if fn == "" {
			return
		}
		s, err := Load(fn)
		if err != nil {
			logger.Log(env, "audio", err)
			return
		}
		*dest = s.Resample(rate)
		logger.Logf(env, "audio", "%s: %s", fn, dest)
	}
	load(clickFile, &b.Click)
	load(modemFile, &b.Modem)

	return b
}

// Output is the interface to anything that can play a sound.
type Output interface {
	Queue(s Sample) error
}

// TickInterval is the shortest time between two reveal ticks.
const TickInterval = 40 * time.Millisecond

// Player plays sounds in response to notifications.
type Player struct {
	bank    *Bank
	outputs []Output
	clock   func() time.Time

	lastTick time.Time
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(bank *Bank, outputs ...Output) *Player {
	return &Player{
		bank:    bank,
		outputs: outputs,
		clock:   time.Now,
	}
}

// SetClock replaces the clock used to throttle the reveal ticks.
func (p *Player) SetClock(clock func() time.Time) {
	p.clock = clock
}

// AddOutput adds another output to the player.
func (p *Player) AddOutput(o Output) {
	p.outputs = append(p.outputs, o)
}

// Notify implements the notifications.Notify interface.
func (p *Player) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyKeypress:
		return p.play(p.bank.Click)
	case notifications.NotifyReveal:
		now := p.clock()
		if now.Sub(p.lastTick) < TickInterval {
			return nil
		}
		p.lastTick = now
		return p.play(p.bank.Tick)
	case notifications.NotifyLoginAttempt:
		return p.play(p.bank.Modem)
	}
	return nil
}

func (p *Player) play(s Sample) error {
	for _, o := range p.outputs {
		if err := o.Queue(s); err != nil {
			return err
		}
	}
	return nil
}
