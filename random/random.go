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

package random

import (
	"math/rand/v2"
	"time"
)

// Random is a source of random numbers. It is not safe for concurrent use.
type Random struct {
	seed uint64
	rnd  *rand.Rand
}

// NewRandom creates a new random number source seeded with the current time.
func NewRandom() *Random {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded creates a new random number source with a fixed seed.
func NewSeeded(seed uint64) *Random {
	return &Random{
		seed: seed,
		rnd:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed used to create the source.
func (rnd *Random) Seed() uint64 {
	return rnd.seed
}

// Intn returns a random number in the range [0, n). Returns zero if n is
// less than one.
func (rnd *Random) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return rnd.rnd.IntN(n)
}

// Range returns a random number in the inclusive range [lo, hi].
func (rnd *Random) Range(lo int, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rnd.Intn(hi-lo+1)
}

// Shuffle randomises the order of n elements using the swap function.
func (rnd *Random) Shuffle(n int, swap func(i, j int)) {
	rnd.rnd.Shuffle(n, swap)
}

// Choose returns a random element from the list. The list must not be empty.
func Choose[T any](rnd *Random, list []T) T {
	return list[rnd.Intn(len(list))]
}
