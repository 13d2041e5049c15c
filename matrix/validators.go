// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors/kernels minimal by delegating shape/nil/bounds checks here.
//  - Return wrapped sentinel errors so call sites stay uniform and tests can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//  - Every validator is O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator documents what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/geomat/crs"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape – Ensures requested dimensions are strictly positive.
//
// Inputs: candidate row and column counts.
// Returns ErrBadShape when rows <= 0 or cols <= 0.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("ValidateShape: %dx%d: %w", rows, cols, ErrBadShape)
	}

	return nil
}

// ValidateDataLen – Ensures a flat row-major slice fits an r×c matrix
// exactly. Assumes the shape itself was validated beforehand.
//
// Returns ErrBadShape when len(data) != rows*cols.
// Complexity: O(1).
func ValidateDataLen(rows, cols int, data []float64) error {
	if len(data) != rows*cols {
		return fmt.Errorf("ValidateDataLen: %d values for %dx%d: %w",
			len(data), rows, cols, ErrBadShape)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns wrapped ErrDimensionMismatch naming the differing axis.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.NumRows() != b.NumRows() {
		return validatorErrorf("ValidateSameShape: rows", ErrDimensionMismatch)
	}
	if a.NumCols() != b.NumCols() {
		return validatorErrorf("ValidateSameShape: columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare – Ensures m has as many rows as columns.
// Assumes m is not nil.
//
// Returns ErrNonSquare on violation.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.NumRows() != m.NumCols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.NumRows(), m.NumCols(), ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.NumCols == b.NumRows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.NumCols() != b.NumRows() {
		return fmt.Errorf("ValidateMulCompatible: %dx%d by %dx%d: %w",
			a.NumRows(), a.NumCols(), b.NumRows(), b.NumCols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateEnvelopeDimension – Ensures a region envelope carries exactly one
// ordinate range per axis in its companion axis list. The argument name is
// embedded so the failure identifies which region disagreed.
//
// Errors: ErrNilMatrix on nil envelope, ErrDimensionMismatch on count drift.
// Complexity: O(1).
func ValidateEnvelopeDimension(name string, region *crs.Envelope, axes int) error {
	if region == nil {
		return fmt.Errorf("ValidateEnvelopeDimension: %s: %w", name, ErrNilMatrix)
	}
	if dim := region.Dimension(); dim != axes {
		return fmt.Errorf("ValidateEnvelopeDimension: %s has %d dimensions, axes have %d: %w",
			name, dim, axes, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSubMatrixBounds – Ensures a numRows×numCols block starting at
// (srcRow,srcCol) exists in src and fits dst at (dstRow,dstCol).
// Assumes src and dst are not nil.
//
// Returns wrapped ErrDimensionMismatch naming the violated side.
// Complexity: O(1).
func ValidateSubMatrixBounds(src, dst Matrix, srcRow, srcCol, numRows, numCols, dstRow, dstCol int) error {
	if srcRow < 0 || srcCol < 0 || dstRow < 0 || dstCol < 0 || numRows < 0 || numCols < 0 {
		return validatorErrorf("ValidateSubMatrixBounds: negative index", ErrDimensionMismatch)
	}
	if srcRow+numRows > src.NumRows() || srcCol+numCols > src.NumCols() {
		return validatorErrorf("ValidateSubMatrixBounds: source block", ErrDimensionMismatch)
	}
	if dstRow+numRows > dst.NumRows() || dstCol+numCols > dst.NumCols() {
		return validatorErrorf("ValidateSubMatrixBounds: destination block", ErrDimensionMismatch)
	}

	return nil
}
