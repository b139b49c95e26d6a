package game

import (
	"math/rand"
	"time"
)

// Rng is the match RNG. It draws raw bytes from a seeded math/rand source
// and reduces them onto ranges with the same multiply-shift reduction the
// battle rolls are specified with, so roll distributions match the generated
// win-probability tables exactly.
type Rng struct {
	r    *rand.Rand
	seed int64
}

// NewRng creates a seeded RNG. A zero seed is replaced with the current time.
func NewRng(seed int64) *Rng {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rng{
		r:    rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed this RNG was created with, for match records and
// reproducing games.
func (g *Rng) Seed() int64 {
	return g.seed
}

// Byte returns a uniform random byte.
func (g *Rng) Byte() uint8 {
	return uint8(g.r.Intn(256))
}

// U8 returns a value in [min, max], reduced from a single random byte.
func (g *Rng) U8(min, max uint8) uint8 {
	return MapByteToRange(g.Byte(), min, max)
}

// Intn returns a uniform value in [0, n).
func (g *Rng) Intn(n int) int {
	return g.r.Intn(n)
}

// Float returns a uniform value in [0, 1).
func (g *Rng) Float() float64 {
	return g.r.Float64()
}

// MapByteToRange maps a random byte onto [min, max] using a multiply-shift
// reduction (https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction).
// The mapping is slightly biased but it is the distribution the
// win-probability tables are computed against, so both sides of the
// generator use this one definition.
func MapByteToRange(num, min, max uint8) uint8 {
	bound := func(num, max uint8) uint8 {
		return uint8(uint16(num) * uint16(max) >> 8)
	}
	if min == 0 {
		if max == 255 {
			return num
		}
		return bound(num, max)
	}
	return min + bound(num, max-min+1)
}
