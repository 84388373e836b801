// SPDX-License-Identifier: MIT
// Package: ndlabel/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit through WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a Build call.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithValue sets the value painted by constructors; see Erase for clearing.
func WithValue(v uint8) Option {
	return func(c *builderConfig) { c.value = v }
}
