package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBernoulli sets each cell of buf to on with probability p and to off
// otherwise. Every cell is sampled independently.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64, on, off uint8) {
	for i := range buf {
		if r.Float64() < p {
			buf[i] = on
			continue
		}
		buf[i] = off
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
