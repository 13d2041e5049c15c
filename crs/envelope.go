// SPDX-License-Identifier: MIT
// Package crs: Envelope, an axis-aligned bounding box over n dimensions.
// An Envelope validates its corners once in NewEnvelope and never mutates,
// so the per-ordinate accessors can stay branch-free. Out-of-range dimension
// indices on a constructed Envelope are programmer errors and panic.

package crs

import "fmt"

// panic message for the dimension accessors (no magic strings).
const panicDimensionRange = "crs: dimension index out of range"

// Envelope is an immutable axis-aligned box described by its minimum and
// maximum corners. Both corners always have the same, strictly positive
// number of ordinates, and min[i] ≤ max[i] holds for every dimension.
type Envelope struct {
	min []float64 // lower corner, one ordinate per dimension
	max []float64 // upper corner, same length as min
}

// NewEnvelope constructs an Envelope from its two corners.
// Stage 1 (Validate): corners non-empty, equal length, min[i] ≤ max[i].
// Stage 2 (Copy): ordinates are copied so later mutation of the input
// slices cannot corrupt the envelope.
//
// Errors:
//   - ErrBadDimension when min is empty.
//   - ErrDimensionMismatch when len(min) != len(max).
//   - ErrInvalidInterval when min[i] > max[i] for some i (NaN corners are
//     accepted: a NaN interval is unordered, not inverted).
//
// Complexity: O(n) time and memory, n = dimension count.
func NewEnvelope(min, max []float64) (*Envelope, error) {
	if len(min) == 0 {
		return nil, ErrBadDimension
	}
	if len(min) != len(max) {
		return nil, fmt.Errorf("NewEnvelope: min has %d ordinates, max has %d: %w",
			len(min), len(max), ErrDimensionMismatch)
	}
	for i := range min {
		// NaN ordinates compare unordered and therefore pass; only a
		// definite inversion is rejected.
		if min[i] > max[i] {
			return nil, fmt.Errorf("NewEnvelope: dimension %d: %w", i, ErrInvalidInterval)
		}
	}

	lo := make([]float64, len(min))
	hi := make([]float64, len(max))
	copy(lo, min)
	copy(hi, max)

	return &Envelope{min: lo, max: hi}, nil
}

// Dimension returns the number of ordinates in each corner.
// Complexity: O(1).
func (e *Envelope) Dimension() int {
	return len(e.min)
}

// Minimum returns the lower ordinate of dimension d.
// Panics when d is outside [0, Dimension).
func (e *Envelope) Minimum(d int) float64 {
	if d < 0 || d >= len(e.min) {
		panic(panicDimensionRange)
	}

	return e.min[d]
}

// Maximum returns the upper ordinate of dimension d.
// Panics when d is outside [0, Dimension).
func (e *Envelope) Maximum(d int) float64 {
	if d < 0 || d >= len(e.max) {
		panic(panicDimensionRange)
	}

	return e.max[d]
}

// Span returns the extent of dimension d, Maximum(d)-Minimum(d).
// A degenerate dimension yields 0; callers dividing by a span inherit the
// usual IEEE-754 behavior.
// Panics when d is outside [0, Dimension).
func (e *Envelope) Span(d int) float64 {
	if d < 0 || d >= len(e.min) {
		panic(panicDimensionRange)
	}

	return e.max[d] - e.min[d]
}

// String renders the envelope as "[min0..max0, min1..max1, ...]".
func (e *Envelope) String() string {
	s := "["
	for i := range e.min {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%g..%g", e.min[i], e.max[i])
	}

	return s + "]"
}
