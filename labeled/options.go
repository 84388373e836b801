// SPDX-License-Identifier: MIT

// Package labeled: functional options shared by the labeling, border and
// perimeter entry points. Each operation reads only the fields it documents;
// the rest are ignored.
package labeled

import (
	"github.com/katalvlaran/ndlabel/ndarray"
	"github.com/katalvlaran/ndlabel/strel"
)

// DefaultMode is the edge mode used by Borders when WithMode is not given.
const DefaultMode = ndarray.Constant

const (
	panicNilLabelBuffer = "labeled: WithLabelBuffer: buffer must be non-nil"
	panicNilMaskBuffer  = "labeled: WithMaskBuffer: buffer must be non-nil"
)

// Option customizes a single call.
type Option func(*options)

type options struct {
	elem   *strel.Element       // nil ⇒ strel.Cross(ndim)
	labels *LabelMap            // Label output buffer
	mask   *ndarray.Array[bool] // Border/Borders output buffer
	mode   ndarray.Mode         // Borders edge handling
}

func gatherOptions(opts []Option) options {
	o := options{mode: DefaultMode}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithStructuringElement sets the neighbourhood. A nil element selects the
// default cross of the array's dimensionality.
func WithStructuringElement(e *strel.Element) Option {
	return func(o *options) { o.elem = e }
}

// WithLabelBuffer makes Label write into buf instead of allocating.
// buf must match the input shape; its previous contents are overwritten.
// Panics if buf is nil.
func WithLabelBuffer(buf *LabelMap) Option {
	if buf == nil {
		panic(panicNilLabelBuffer)
	}

	return func(o *options) { o.labels = buf }
}

// WithMaskBuffer makes Border and Borders write into buf instead of
// allocating. buf must match the label map's shape; it is cleared first.
// Panics if buf is nil.
func WithMaskBuffer(buf *ndarray.Array[bool]) Option {
	if buf == nil {
		panic(panicNilMaskBuffer)
	}

	return func(o *options) { o.mask = buf }
}

// WithMode sets how Borders treats neighbours outside the array.
// An invalid mode is reported as a configuration error by the call.
func WithMode(m ndarray.Mode) Option {
	return func(o *options) { o.mode = m }
}
