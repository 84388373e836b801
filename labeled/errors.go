// SPDX-License-Identifier: MIT
// Package labeled: sentinel error set.
//
// Every precondition failure matches errors.Is(err, ErrConfiguration) and
// also the sentinel of its concrete cause, which may come from this package,
// ndarray or strel. Checks run before any output buffer is written.

package labeled

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the umbrella for invalid inputs: shape mismatches,
	// bad structuring elements, unknown edge modes, negative labels.
	ErrConfiguration = errors.New("labeled: configuration error")

	// ErrNegativeLabel indicates a label map holding a value below zero.
	ErrNegativeLabel = errors.New("labeled: negative label")

	// ErrBadRegionSize indicates a negative border slab thickness.
	ErrBadRegionSize = errors.New("labeled: border region size must be non-negative")

	// ErrBadPlacement indicates a Placement value other than Copy or InPlace.
	ErrBadPlacement = errors.New("labeled: unknown placement")

	// ErrTooLarge indicates an array with more elements than an int32 label
	// map can number.
	ErrTooLarge = errors.New("labeled: array too large for int32 labels")

	// ErrNotTwoDimensional indicates a 2-D-only operation applied to another rank.
	ErrNotTwoDimensional = errors.New("labeled: operation requires a 2-D array")
)

// configError tags cause with ErrConfiguration and the operation name.
func configError(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrConfiguration, cause)
}
