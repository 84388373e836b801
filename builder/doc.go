// Package builder produces deterministic binary arrays for tests, examples
// and benchmarks of the labeling packages.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build:        allocate a zero uint8 array and run constructors in order.
//     – Constructor:  a function painting into that array.
//   - Constructors:
//     – Box:          an axis-aligned hyper-rectangle [lo, hi).
//     – Points:       individual positions.
//     – Checkerboard: positions with an even coordinate sum.
//     – Ball:         a Euclidean ball around a centre.
//     – RandomSparse: independent Bernoulli(p) foreground.
//     – Erase:        run another constructor painting zeros.
//   - Options:
//     – WithSeed, WithRand: randomness for RandomSparse.
//     – WithValue:   the value painted by every constructor (default 1).
//
// Guarantees:
//
//   - Determinism: equal shape, options, seed and constructor order give
//     equal arrays.
//   - Constructors never panic; they return sentinel errors wrapped with
//     their method name. Option constructors panic on programmer error.
package builder
