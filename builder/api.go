// SPDX-License-Identifier: MIT
// Package: ndlabel/builder
//
// api.go - public entry point and constructors.
//
// Design contract:
//   - One orchestrator: Build(shape, opts, cons...). Allocates the array,
//     resolves the config, runs cons in order.
//   - Constructors validate first and paint nothing on error.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndlabel/ndarray"
)

// Constructor paints into a using the resolved configuration.
type Constructor func(a *ndarray.Array[uint8], cfg builderConfig) error

// Build allocates a zero array of the given shape and applies the
// constructors in order. Any constructor error is wrapped as "Build: %w".
//
// Errors:
//   - ErrBadSize for an invalid shape.
//   - ErrConstructFailed for a nil constructor.
//   - whatever a constructor returns.
func Build(shape []int, opts []Option, cons ...Constructor) (*ndarray.Array[uint8], error) {
	a, err := ndarray.New[uint8](shape...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrBadSize, err)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(a, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return a, nil
}

// MustBuild is Build for fixtures known to be valid; it panics on error.
func MustBuild(shape []int, opts []Option, cons ...Constructor) *ndarray.Array[uint8] {
	a, err := Build(shape, opts, cons...)
	if err != nil {
		panic(err)
	}

	return a
}

// Erase runs c with the painted value set to 0, so it clears what earlier
// constructors drew. Box followed by Erase(Box) makes hollow shapes.
func Erase(c Constructor) Constructor {
	return func(a *ndarray.Array[uint8], cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Erase: nil constructor: %w", ErrConstructFailed)
		}
		cfg.value = 0
		return c(a, cfg)
	}
}
