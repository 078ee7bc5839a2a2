// Package rng is the random source shared by every roll in an attack.
//
// All helpers draw from a Source in a fixed order, so a seeded source
// replays a tracer-then-real attack sequence exactly.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source is the randomness provider for all rolls.
//
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// New returns a deterministic source for seed. A zero seed picks one
// from crypto/rand.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = NewSeed()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSeed returns a non-zero seed from crypto/rand.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 1
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Random2 returns a value in [0, max). Non-positive or unit max yields 0
// without drawing.
func Random2(r Source, max int) int {
	if max <= 1 {
		return 0
	}
	return r.Intn(max)
}

// Random2Avg averages rolls draws: the first over [0, max), the rest over
// [0, max]. The result stays in [0, max) but clusters toward the middle.
func Random2Avg(r Source, max, rolls int) int {
	if rolls < 1 {
		rolls = 1
	}
	sum := Random2(r, max)
	for i := 1; i < rolls; i++ {
		sum += Random2(r, max+1)
	}
	return sum / rolls
}

// RandomRange returns a value in [lo, hi].
func RandomRange(r Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + Random2(r, hi-lo+1)
}

// Coinflip reports heads half the time.
func Coinflip(r Source) bool {
	return Random2(r, 2) == 1
}

// OneChanceIn reports true with probability 1/n. n <= 1 is always true.
func OneChanceIn(r Source, n int) bool {
	return Random2(r, n) == 0
}

// XChanceInY reports true with probability x/y.
func XChanceInY(r Source, x, y int) bool {
	if x <= 0 {
		return false
	}
	if x >= y {
		return true
	}
	return Random2(r, y) < x
}

// DivRandRound divides num by den and rounds the remainder up with
// probability rem/den, so the expected value is exactly num/den.
func DivRandRound(r Source, num, den int) int {
	if den <= 0 {
		return 0
	}
	if num < 0 {
		return -DivRandRound(r, -num, den)
	}
	q, rem := num/den, num%den
	if rem > 0 && Random2(r, den) < rem {
		q++
	}
	return q
}

// ScalePercent returns value*pct/100 with random rounding.
func ScalePercent(r Source, value, pct int) int {
	return DivRandRound(r, value*pct, 100)
}

// ScaleWithVariance scales value by a percentage that wanders between 100
// and mult. The distance from 100 is drawn with Random2Avg over rolls
// draws, so mult is a bound rather than the expected multiplier.
func ScaleWithVariance(r Source, value, mult, rolls int) int {
	switch {
	case mult > 100:
		return DivRandRound(r, value*(100+Random2Avg(r, mult-100, rolls)), 100)
	case mult < 100:
		return DivRandRound(r, value*(100-Random2Avg(r, 100-mult, rolls)), 100)
	}
	return value
}

// StatMultiplier returns the clamped percentage StatAdjust would scale by
// for a stat relative to its baseline.
func StatMultiplier(stat, base, maxMult, minMult int) int {
	if base <= 0 {
		return 100
	}
	mult := (base + (stat-base)/2) * 100 / base
	if mult > maxMult {
		mult = maxMult
	}
	if mult < minMult {
		mult = minMult
	}
	return mult
}

// StatAdjust scales value by how far stat sits from base, halving the
// difference and clamping the multiplier to [minMult, maxMult].
//
// Postcondition: for value >= 0 the result lies within
// [value*minMult/100, ceil(value*maxMult/100)].
func StatAdjust(r Source, value, stat, base, maxMult, minMult int) int {
	return ScaleWithVariance(r, value, StatMultiplier(stat, base, maxMult, minMult), 2)
}

// Dice is an NdS damage expression.
type Dice struct {
	Num, Size int
}

// Max is the largest total the dice can roll.
func (d Dice) Max() int { return d.Num * d.Size }

// Roll sums Num draws of [1, Size]. Zero-sized dice roll 0.
func (d Dice) Roll(r Source) int {
	return RollDice(r, d.Num, d.Size)
}

// RollDice sums num draws of [1, size].
func RollDice(r Source, num, size int) int {
	if num <= 0 || size <= 0 {
		return 0
	}
	total := num
	for i := 0; i < num; i++ {
		total += Random2(r, size)
	}
	return total
}

// SkillBump is the soft skill curve used by returning weapons and nets.
func SkillBump(skill int) int {
	if skill < 3 {
		return skill * 2
	}
	return skill + 3
}
