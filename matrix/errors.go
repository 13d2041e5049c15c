// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation may panic on user-triggered error
// conditions; panics are reserved for programmer errors (out-of-range
// element access, nonsensical option values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape/data-length -> dimension mismatch -> numeric
// failures (singular) -> synthesis failures (colinear/no-source) ->
// codec failures (malformed/ragged/empty) -> affine-bridge failures.

var (
	// ErrNilMatrix indicates that a nil argument (Matrix value, General
	// pointer or Envelope pointer) was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil argument")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or
	// c<=0), or when a flat data slice disagrees with rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows indicates nested input rows of unequal length, or a
	// loaded text block whose element count does not divide evenly into
	// its row count.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub on different shapes, Multiply where cols != rows,
	// or a region envelope that disagrees with its axis list.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't (Invert, affine postcondition checks).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when inversion fails because the matrix is
	// singular or numerically too ill-conditioned to invert. The backend
	// diagnostic is wrapped alongside for inspection.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrColinearAxes indicates two source axes sharing one destination
	// axis's absolute direction during axis-mapping synthesis. The message
	// context names both directions.
	ErrColinearAxes = errors.New("matrix: colinear axis directions")

	// ErrNoSourceAxis indicates a destination axis with no source axis of
	// matching absolute direction. The message context names the axis.
	ErrNoSourceAxis = errors.New("matrix: no source axis for destination")

	// ErrMalformedRow indicates a token that could not be parsed as a
	// number under the requested locale. The parse diagnostic is wrapped
	// alongside for inspection.
	ErrMalformedRow = errors.New("matrix: malformed numeric row")

	// ErrEmptyInput indicates that a text load reached end of input
	// without a single data row.
	ErrEmptyInput = errors.New("matrix: no matrix data in input")

	// ErrNotAffine signals a matrix whose last row is not [0 ... 0 1]
	// where an affine transform is required.
	ErrNotAffine = errors.New("matrix: matrix is not affine")

	// ErrNot2D signals a matrix that is not 3×3 and therefore cannot
	// bridge to 2D affine coefficients.
	ErrNot2D = errors.New("matrix: matrix is not two-dimensional")
)
