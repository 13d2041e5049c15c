// SPDX-License-Identifier: MIT
// Package matrix: public capability interface.
// Matrix is the minimal read surface consumed by predicates, codecs and
// converters, so foreign matrix implementations interoperate with this
// package without copying. The concrete mutable type is General.

package matrix

// Matrix is the read-only capability every consumer of matrix data needs:
// a shape and random element access.
//
// Implementations MUST return the element at row r, column c from At, and
// MAY panic when r or c is out of range; callers are expected to stay
// within [0,NumRows)×[0,NumCols). General, this package's concrete type,
// panics with the backend's range diagnostics.
type Matrix interface {
	// NumRows returns the number of rows. It is never negative.
	NumRows() int

	// NumCols returns the number of columns. It is never negative.
	NumCols() int

	// At returns the element at row r, column c.
	At(r, c int) float64
}
