// SPDX-License-Identifier: MIT
// Package matrix: numeric backend seam.
// Every gonum call with a failure mode or an aliasing subtlety is
// concentrated here, so the numeric engine underneath General remains
// swappable in one file. All helpers assume dimensions were validated by
// the caller; they never re-check shapes.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// densebuf aliases the backend's dense storage type so the rest of the
// package can name it without importing the engine directly.
type densebuf = mat.Dense

// newDense allocates a zero-filled rows×cols buffer.
// Assumes rows > 0 and cols > 0 (mat.NewDense panics otherwise).
// Complexity: O(r*c).
func newDense(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// newDenseData allocates a rows×cols buffer over a copy of the given
// row-major data. Assumes len(data) == rows*cols and positive dims.
// Complexity: O(r*c).
func newDenseData(rows, cols int, data []float64) *mat.Dense {
	buf := make([]float64, len(data))
	copy(buf, data)

	return mat.NewDense(rows, cols, buf)
}

// cloneDense returns an independent deep copy of src.
// Complexity: O(r*c).
func cloneDense(src *mat.Dense) *mat.Dense {
	var dst mat.Dense
	dst.CloneFrom(src)

	return &dst
}

// denseOf adapts any Matrix value to a dense buffer. A *General passes its
// own buffer through without copying (callers must treat the result as
// read-only); foreign implementations are copied element by element in
// row-major order.
// Complexity: O(1) for *General, O(r*c) otherwise.
func denseOf(m Matrix) *mat.Dense {
	if g, ok := m.(*General); ok {
		return g.buf
	}

	rows, cols := m.NumRows(), m.NumCols()
	buf := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			buf.Set(r, c, m.At(r, c))
		}
	}

	return buf
}

// productOf returns a freshly allocated a×b. Because the result buffer is
// new, a and b may alias each other freely.
// Assumes a.Cols == b.Rows.
// Complexity: O(r*k*c) via the backend's blocked kernel.
func productOf(a, b *mat.Dense) *mat.Dense {
	var dst mat.Dense
	dst.Mul(a, b)

	return &dst
}

// inverseOf returns a freshly allocated inverse of src.
// The backend reports exactly-singular and numerically unusable matrices
// through its error return; both are surfaced as ErrSingular with the
// diagnostic wrapped alongside.
// Assumes src is square.
// Complexity: O(n³).
func inverseOf(src *mat.Dense) (*mat.Dense, error) {
	var dst mat.Dense
	if err := dst.Inverse(src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	return &dst, nil
}

// transposedOf returns a freshly allocated transpose of src. A fresh buffer
// keeps the result contiguous instead of a lazy transposed view.
// Complexity: O(r*c).
func transposedOf(src *mat.Dense) *mat.Dense {
	var dst mat.Dense
	dst.CloneFrom(src.T())

	return &dst
}

// scaleInPlace multiplies every element of buf by f.
// Complexity: O(r*c).
func scaleInPlace(f float64, buf *mat.Dense) {
	buf.Scale(f, buf)
}

// addInPlace accumulates other into dst element-wise.
// Assumes equal shapes.
// Complexity: O(r*c).
func addInPlace(dst, other *mat.Dense) {
	dst.Add(dst, other)
}

// subInPlace subtracts other from dst element-wise.
// Assumes equal shapes.
// Complexity: O(r*c).
func subInPlace(dst, other *mat.Dense) {
	dst.Sub(dst, other)
}

// copyBlock copies a numRows×numCols block of src starting at
// (srcRow,srcCol) into dst starting at (dstRow,dstCol), via backend slice
// views. A zero-extent block is a no-op (Slice cannot express it).
// Assumes bounds were validated; src and dst must not share a buffer.
// Complexity: O(numRows*numCols).
func copyBlock(dst, src *mat.Dense, srcRow, srcCol, numRows, numCols, dstRow, dstCol int) {
	if numRows == 0 || numCols == 0 {
		return
	}

	from := src.Slice(srcRow, srcRow+numRows, srcCol, srcCol+numCols).(*mat.Dense)
	to := dst.Slice(dstRow, dstRow+numRows, dstCol, dstCol+numCols).(*mat.Dense)
	to.Copy(from)
}

// rowInto fills dst with row r of buf, allocating when dst is nil.
// Assumes dst is nil or has length buf's column count; r is in range.
// Complexity: O(c).
func rowInto(dst []float64, r int, buf *mat.Dense) []float64 {
	return mat.Row(dst, r, buf)
}

// colInto fills dst with column c of buf, allocating when dst is nil.
// Assumes dst is nil or has length buf's row count; c is in range.
// Complexity: O(r).
func colInto(dst []float64, c int, buf *mat.Dense) []float64 {
	return mat.Col(dst, c, buf)
}
