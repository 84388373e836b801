// SPDX-License-Identifier: MIT
// Package: ndlabel/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Each position, in row-major order, is painted with probability p.
//     Unpainted positions keep their current value.
//
// Determinism:
//   - One Float64 draw per position in flat order, so a fixed seed and shape
//     always give the same array.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndlabel/ndarray"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor painting each position with probability p.
func RandomSparse(p float64) Constructor {
	return func(a *ndarray.Array[uint8], cfg builderConfig) error {
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		data := a.Data()
		switch p {
		case probMin:
			return nil
		case probMax:
			for i := range data {
				data[i] = cfg.value
			}
			return nil
		}
		for i := range data {
			if cfg.rng.Float64() < p {
				data[i] = cfg.value
			}
		}

		return nil
	}
}
