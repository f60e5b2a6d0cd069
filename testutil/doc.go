// Package testutil provides testing utilities for the collections module.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random data generators and brute-force reference
// implementations to check the data structures against.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 3)        // [0, 1)^3
//	ints := rng.Ints(100, 1000)              // [0, 1000)
//
// # Ground Truth
//
//	ids := testutil.BoxFilter(pts, lo, hi)   // brute-force range query
package testutil
