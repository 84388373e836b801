// SPDX-License-Identifier: MIT
// Package: ndlabel/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".

package builder

import "errors"

// ErrBadSize indicates an invalid shape, radius, or corner vector length.
var ErrBadSize = errors.New("builder: invalid size")

// ErrOutOfBounds indicates a coordinate or box outside the array.
var ErrOutOfBounds = errors.New("builder: coordinates out of bounds")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
