package testutil

import (
	"math/rand"
	"sync"

	"golang.org/x/exp/constraints"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64 spanning the full width.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Int64 returns a pseudo-random int64 spanning the full signed width,
// negatives included.
func (r *RNG) Int64() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(r.rand.Uint64())
}

// Below returns the greatest value of T less than v and reports whether
// one exists. It is false when v is the minimum of the width, where the
// decrement would wrap around.
func Below[T constraints.Integer](v T) (T, bool) {
	b := v - 1
	return b, b < v
}

// Above returns the least value of T greater than v and reports whether
// one exists. It is false when v is the maximum of the width, where the
// increment would wrap around.
func Above[T constraints.Integer](v T) (T, bool) {
	a := v + 1
	return a, a > v
}
