// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prim

import (
	"math"
	"math/rand/v2"
)

// Rand is a seedable pseudo-random number generator with integer and
// real range helpers. Not synchronized; use one per goroutine.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a generator with a fixed seed, for reproducible
// sequences.
func NewRand(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandAuto creates a generator seeded from the shared global source.
func NewRandAuto() *Rand {
	return NewRand(rand.Uint64())
}

// Uint64 returns a uniformly distributed 64-bit value.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Uint64Range returns a uniform value in [min, max], inclusive on both
// ends. Panics if max < min.
func (r *Rand) Uint64Range(min, max uint64) uint64 {
	if max < min {
		panic("prim: invalid random range")
	}
	span := max - min
	if span == math.MaxUint64 {
		return r.src.Uint64()
	}
	return min + r.src.Uint64N(span+1)
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Float64Range returns a uniform value in [min, max).
// Panics if max < min.
func (r *Rand) Float64Range(min, max float64) float64 {
	if max < min {
		panic("prim: invalid random range")
	}
	return min + r.src.Float64()*(max-min)
}
