// SPDX-License-Identifier: MIT
// Package: ndarray
//
// mode.go: edge-handling modes for neighbourhood reads that fall outside
// the array. With input "a b c d" on one axis the modes extend it as:
//
//	Reflect   d c b a | a b c d | d c b a
//	Nearest   a a a a | a b c d | d d d d
//	Wrap      a b c d | a b c d | a b c d
//	Mirror    d c b   | a b c d |   c b a
//	Constant  0 0 0 0 | a b c d | 0 0 0 0
//	Ignore    (out-of-range neighbours are skipped entirely)

package ndarray

import (
	"fmt"
	"strings"
)

// Mode selects how out-of-range coordinates are handled.
type Mode int

const (
	// Reflect mirrors about the array edge, repeating the edge element.
	Reflect Mode = iota
	// Nearest clamps to the closest edge element.
	Nearest
	// Wrap treats each axis as periodic.
	Wrap
	// Mirror mirrors about the edge element without repeating it.
	Mirror
	// Constant reads out-of-range positions as the zero value.
	Constant
	// Ignore drops out-of-range neighbours instead of substituting a value.
	Ignore
)

// modeNames is indexed by Mode; ParseMode accepts exactly these names.
var modeNames = [...]string{
	Reflect:  "reflect",
	Nearest:  "nearest",
	Wrap:     "wrap",
	Mirror:   "mirror",
	Constant: "constant",
	Ignore:   "ignore",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool { return m >= Reflect && m <= Ignore }

// ParseMode maps a case-insensitive mode name to its Mode.
// Returns ErrUnknownMode for anything else.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == key {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", name, ErrUnknownMode)
}

// Resolve maps coordinate i on an axis of extent n into [0, n).
// ok is false when the coordinate has no in-array counterpart, which happens
// only for Constant (read as zero) and Ignore (skip the neighbour).
// In-range coordinates are returned unchanged for every mode.
func (m Mode) Resolve(i, n int) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch m {
	case Nearest:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case Wrap:
		return floorMod(i, n), true
	case Reflect:
		period := 2 * n
		i = floorMod(i, period)
		if i >= n {
			i = period - 1 - i
		}
		return i, true
	case Mirror:
		if n == 1 {
			return 0, true
		}
		period := 2*n - 2
		i = floorMod(i, period)
		if i >= n {
			i = period - i
		}
		return i, true
	}

	return 0, false
}

// floorMod is i mod n with a result in [0, n) for negative i.
func floorMod(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}

	return r
}
