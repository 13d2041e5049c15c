// SPDX-License-Identifier: MIT

// Package matrix: axis-mapping synthesis.
// This file builds transform matrices directly from coordinate-axis
// descriptions: which way each source and destination axis points, and
// optionally which ordinate range each axis covers. The result is always a
// homogeneous matrix of shape (len(dstAxes)+1) × (len(srcAxes)+1) whose
// last row is [0 ... 0 1].
//
// Matching rule:
//   - A destination axis accepts exactly one source axis whose Absolute()
//     direction equals its own Absolute() direction.
//   - Exact direction equality keeps the axis orientation (+1 scale);
//     opposite orientation flips it (-1 scale).
//   - Unmatched source axes contribute zero columns (their ordinates are
//     dropped); every destination axis must be matched.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/geomat/crs"
)

// Operation and argument tags for error wrapping (no magic strings).
const (
	opAxisMapping       = "NewAxisMapping"
	opAxisRegionMapping = "NewAxisRegionMapping"
	opRegionMapping     = "NewRegionMapping"

	argSrcRegion = "srcRegion"
	argDstRegion = "dstRegion"
)

// homogeneousCorner is the value of the bottom-right element of every
// synthesized mapping.
const homogeneousCorner = 1.0

// NewAxisMapping builds the matrix that converts coordinates between two
// axis arrangements that differ only in order and orientation.
// Implementation:
//   - Stage 1: allocate the zero-filled (dst+1)×(src+1) result.
//   - Stage 2: for each destination axis, scan all source axes in
//     declaration order for an absolute-direction match and write the ±1
//     coefficient.
//   - Stage 3: set the homogeneous corner and run the optional affine
//     postcondition.
//
// Behavior highlights:
//   - Deterministic: scanning follows declaration order, so identical
//     inputs always produce identical matrices.
//   - The scan continues past the first match so a second source axis with
//     the same absolute direction is reported, not silently ignored.
//
// Inputs:
//   - srcAxes: directions of the source coordinate system, one per axis.
//   - dstAxes: directions of the destination coordinate system.
//   - opts: optional WithAffineCheck postcondition.
//
// Returns:
//   - *General: the (len(dstAxes)+1) × (len(srcAxes)+1) mapping matrix.
//
// Errors:
//   - ErrColinearAxes when two source axes share one destination axis's
//     absolute direction; the message names both directions.
//   - ErrNoSourceAxis when a destination axis has no source match; the
//     message names the axis.
//   - ErrNotAffine when WithAffineCheck is set, the result is square, and
//     the postcondition fails.
//
// Determinism:
//   - Fixed dst→src scan order; stable output.
//
// Complexity:
//   - Time O(len(dstAxes)*len(srcAxes)), Space O(len(dstAxes)*len(srcAxes)).
//
// Notes:
//   - Axis counts may differ: extra source axes are dropped, which makes
//     the result rectangular and non-invertible by design.
//
// AI-Hints:
//   - For a pure axis swap/flip the result is its own inverse up to
//     orientation; call Invert to go the other way.
func NewAxisMapping(srcAxes, dstAxes []crs.AxisDirection, opts ...Option) (*General, error) {
	return synthesizeAxisMapping(opAxisMapping, nil, srcAxes, nil, dstAxes, false, opts...)
}

// NewAxisRegionMapping builds the matrix that converts coordinates between
// two axis arrangements AND rescales each matched axis from its source
// ordinate range onto its destination range. This is the usual way to map
// a georeferenced region onto a grid or screen, including axis reversal
// (for example NORTH-up data onto a DOWN-oriented row index).
//
// On top of the NewAxisMapping rules, each matched pair (dst d, src s)
// contributes:
//
//	scale     = ±dstRegion.Span(d) / srcRegion.Span(s)
//	translate = dstRegion.Minimum(d)            // same orientation
//	          = dstRegion.Maximum(d)            // flipped orientation
//	translate -= srcRegion.Minimum(s) * scale
//
// Both envelopes are checked against their axis lists before any element
// is written; a mismatch names the offending argument.
//
// Errors:
//   - ErrNilMatrix when either envelope is nil.
//   - ErrDimensionMismatch when an envelope's dimension count differs
//     from its axis count.
//   - ErrColinearAxes, ErrNoSourceAxis, ErrNotAffine as in NewAxisMapping.
//
// A degenerate source span yields the backend's IEEE-754 division result
// (±Inf or NaN) rather than an error; validate envelopes upstream when
// that matters.
//
// Complexity: O(len(dstAxes)*len(srcAxes)).
func NewAxisRegionMapping(srcRegion *crs.Envelope, srcAxes []crs.AxisDirection,
	dstRegion *crs.Envelope, dstAxes []crs.AxisDirection, opts ...Option) (*General, error) {
	return synthesizeAxisMapping(opAxisRegionMapping, srcRegion, srcAxes, dstRegion, dstAxes, true, opts...)
}

// synthesizeAxisMapping is the shared kernel behind NewAxisMapping and
// NewAxisRegionMapping. withRegions selects whether scale/translate terms
// are derived from the envelopes; op labels errors with the public entry
// point's name.
func synthesizeAxisMapping(op string, srcRegion *crs.Envelope, srcAxes []crs.AxisDirection,
	dstRegion *crs.Envelope, dstAxes []crs.AxisDirection,
	withRegions bool, opts ...Option) (*General, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate regions before any element is written.
	if withRegions {
		if err := ValidateEnvelopeDimension(argSrcRegion, srcRegion, len(srcAxes)); err != nil {
			return nil, matrixErrorf(op, err)
		}
		if err := ValidateEnvelopeDimension(argDstRegion, dstRegion, len(dstAxes)); err != nil {
			return nil, matrixErrorf(op, err)
		}
	}

	// Stage 2: allocate the homogeneous result, zero-filled.
	numRows := len(dstAxes) + 1
	numCols := len(srcAxes) + 1
	m, err := New(numRows, numCols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	// Stage 3: match every destination axis against the source axes.
	for dstIndex, dstAxis := range dstAxes {
		found := false
		search := dstAxis.Absolute()
		for srcIndex, srcAxis := range srcAxes {
			if search != srcAxis.Absolute() {
				continue
			}
			if found {
				// A second source axis along the same absolute direction
				// makes the mapping ambiguous.
				return nil, fmt.Errorf("%s: %s and %s: %w", op, srcAxis, dstAxis, ErrColinearAxes)
			}
			found = true

			// Exact equality keeps orientation; opposite flips it.
			same := dstAxis == srcAxis
			scale := 1.0
			if !same {
				scale = -1.0
			}
			translate := 0.0
			if withRegions {
				// A flipped axis anchors on the destination maximum so the
				// source minimum lands on the far edge.
				if same {
					translate = dstRegion.Minimum(dstIndex)
				} else {
					translate = dstRegion.Maximum(dstIndex)
				}
				scale *= dstRegion.Span(dstIndex) / srcRegion.Span(srcIndex)
				translate -= srcRegion.Minimum(srcIndex) * scale
			}
			m.Set(dstIndex, srcIndex, scale)
			m.Set(dstIndex, len(srcAxes), translate)
			// Keep scanning: a later duplicate must surface as colinear.
		}
		if !found {
			return nil, fmt.Errorf("%s: %s: %w", op, dstAxis, ErrNoSourceAxis)
		}
	}

	// Stage 4: homogeneous corner, then the optional postcondition.
	m.Set(len(dstAxes), len(srcAxes), homogeneousCorner)

	if o.affineCheck && numRows == numCols && !m.IsAffine() {
		return nil, matrixErrorf(op, ErrNotAffine)
	}

	return m, nil
}

// NewRegionMapping builds the diagonal scale/translate matrix that maps
// one envelope onto another without reordering or flipping axes. Matched
// dimensions run to min(srcDim, dstDim): extra destination dimensions stay
// zero rows, extra source dimensions are dropped.
//
// Each matched dimension i contributes:
//
//	scale     = dstRegion.Span(i) / srcRegion.Span(i)
//	translate = dstRegion.Minimum(i) - srcRegion.Minimum(i)*scale
//
// Errors:
//   - ErrNilMatrix when either envelope is nil.
//
// Degenerate source spans follow IEEE-754 division, as in
// NewAxisRegionMapping.
//
// Complexity: O(min(srcDim, dstDim)) writes on a
// (dstDim+1)×(srcDim+1) zero matrix.
func NewRegionMapping(srcRegion, dstRegion *crs.Envelope) (*General, error) {
	if srcRegion == nil {
		return nil, fmt.Errorf("%s: %s: %w", opRegionMapping, argSrcRegion, ErrNilMatrix)
	}
	if dstRegion == nil {
		return nil, fmt.Errorf("%s: %s: %w", opRegionMapping, argDstRegion, ErrNilMatrix)
	}

	srcDim := srcRegion.Dimension()
	dstDim := dstRegion.Dimension()
	m, err := New(dstDim+1, srcDim+1)
	if err != nil {
		return nil, matrixErrorf(opRegionMapping, err)
	}

	for i := 0; i < min(srcDim, dstDim); i++ {
		scale := dstRegion.Span(i) / srcRegion.Span(i)
		translate := dstRegion.Minimum(i) - srcRegion.Minimum(i)*scale
		m.Set(i, i, scale)
		m.Set(i, srcDim, translate)
	}
	m.Set(dstDim, srcDim, homogeneousCorner)

	return m, nil
}
