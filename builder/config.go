// SPDX-License-Identifier: MIT
// Package: ndlabel/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng   = nil (no randomness unless seeded)
//   • value = 1

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng   *rand.Rand // nil means "no randomness"
	value uint8      // painted foreground value
}

const defaultValue uint8 = 1

// newBuilderConfig applies opts over the defaults, last option wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{value: defaultValue}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
