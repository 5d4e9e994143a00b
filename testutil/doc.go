// Package testutil provides testing utilities for treego.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, seedable random number generator for
// reproducible randomized tree workloads.
//
//	rng := testutil.NewRNG(42)
//	n := rng.Intn(100)
package testutil
