// Package testutil provides testing utilities for boundedgo.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded, thread-safe random source for sampling candidate
// values and helpers for probing the neighbors of a bound without
// wrapping around the primitive width.
//
// # Random Sampling
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Uint64()
//
// # Bound Probes
//
//	if below, ok := testutil.Below(lower); ok {
//		// below is the greatest value under lower at this width
//	}
package testutil
