// SPDX-License-Identifier: MIT

// Package matrix: General, the concrete mutable matrix.
// This file defines the type, its constructors and its element/data access
// surface. In-place algebra and predicates live in methods.go; the numeric
// kernels they share live in backend.go.

package matrix

import "fmt"

// Operation tags used when wrapping sentinel errors (no magic strings).
const (
	opNew           = "New"
	opNewIdentity   = "NewIdentity"
	opNewFromSlice  = "NewFromSlice"
	opNewFromRows   = "NewFromRows"
	opNewFromMatrix = "NewFromMatrix"
	opSetData       = "SetData"
	opSetRow        = "SetRow"
	opSetColumn     = "SetColumn"
	opCopySub       = "CopySubMatrix"
	opSetSize       = "SetSize"
)

// matrixErrorf wraps an underlying error with the given operation tag.
// Call sites add exactly one tag; validators below them add their own.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// General is a mutable, dense, row-major matrix of float64 backed by a
// gonum buffer. The zero value is unusable; use a constructor. All
// constructors deep-copy their input, so no two General values ever share
// storage.
//
// General implements the Matrix interface. It carries no locking; confine
// a value to one goroutine or synchronize externally.
type General struct {
	buf *densebuf // backing storage, never nil after construction
}

// New returns a zero-filled rows×cols matrix.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
//
// Complexity: O(r*c).
func New(rows, cols int) (*General, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &General{buf: newDense(rows, cols)}, nil
}

// NewIdentity returns a size×size identity matrix.
//
// Errors:
//   - ErrBadShape when size <= 0.
//
// Complexity: O(n²).
func NewIdentity(size int) (*General, error) {
	m, err := New(size, size)
	if err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	for i := 0; i < size; i++ {
		m.buf.Set(i, i, 1)
	}

	return m, nil
}

// NewFromSlice returns a rows×cols matrix initialized from a row-major
// slice. The data is copied; the caller keeps ownership of its slice.
//
// Errors:
//   - ErrBadShape when the shape is non-positive or len(data) != rows*cols.
//
// Complexity: O(r*c).
func NewFromSlice(rows, cols int, data []float64) (*General, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opNewFromSlice, err)
	}
	if err := ValidateDataLen(rows, cols, data); err != nil {
		return nil, matrixErrorf(opNewFromSlice, err)
	}

	return &General{buf: newDenseData(rows, cols, data)}, nil
}

// NewFromRows returns a matrix initialized from nested rows. Every row
// must have the same length; the values are copied.
//
// Errors:
//   - ErrBadShape when rows is empty or the first row is empty.
//   - ErrRaggedRows when any row length differs from the first.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*General, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrBadShape)
	}

	numCols := len(rows[0])
	for r := 1; r < len(rows); r++ {
		if len(rows[r]) != numCols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				opNewFromRows, r, len(rows[r]), numCols, ErrRaggedRows)
		}
	}

	buf := newDense(len(rows), numCols)
	for r, row := range rows {
		buf.SetRow(r, row)
	}

	return &General{buf: buf}, nil
}

// NewFromMatrix returns a deep copy of any Matrix implementation.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrBadShape when src reports a non-positive dimension.
//
// Complexity: O(r*c).
func NewFromMatrix(src Matrix) (*General, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opNewFromMatrix, err)
	}
	if err := ValidateShape(src.NumRows(), src.NumCols()); err != nil {
		return nil, matrixErrorf(opNewFromMatrix, err)
	}
	if g, ok := src.(*General); ok {
		return g.Clone(), nil
	}

	buf := newDense(src.NumRows(), src.NumCols())
	for r := 0; r < src.NumRows(); r++ {
		for c := 0; c < src.NumCols(); c++ {
			buf.Set(r, c, src.At(r, c))
		}
	}

	return &General{buf: buf}, nil
}

// Clone returns an independent deep copy of m.
// Complexity: O(r*c).
func (m *General) Clone() *General {
	return &General{buf: cloneDense(m.buf)}
}

// NumRows returns the number of rows.
// Complexity: O(1).
func (m *General) NumRows() int {
	r, _ := m.buf.Dims()

	return r
}

// NumCols returns the number of columns.
// Complexity: O(1).
func (m *General) NumCols() int {
	_, c := m.buf.Dims()

	return c
}

// At returns the element at row r, column c.
// Panics when r or c is out of range; staying in bounds is the caller's
// contract, not a recoverable condition.
// Complexity: O(1).
func (m *General) At(r, c int) float64 {
	return m.buf.At(r, c)
}

// Set stores v at row r, column c.
// Panics when r or c is out of range, like At.
// Complexity: O(1).
func (m *General) Set(r, c int, v float64) {
	m.buf.Set(r, c, v)
}

// SetData overwrites the whole matrix from a row-major slice without
// changing its shape. The data is copied.
//
// Errors:
//   - ErrBadShape when len(data) != NumRows*NumCols.
//
// Complexity: O(r*c).
func (m *General) SetData(data []float64) error {
	rows, cols := m.buf.Dims()
	if err := ValidateDataLen(rows, cols, data); err != nil {
		return matrixErrorf(opSetData, err)
	}
	for r := 0; r < rows; r++ {
		m.buf.SetRow(r, data[r*cols:(r+1)*cols])
	}

	return nil
}

// SetRow overwrites row r with the given values (copied).
//
// Errors:
//   - ErrDimensionMismatch when len(row) != NumCols.
//
// Panics when r is out of range.
// Complexity: O(c).
func (m *General) SetRow(r int, row []float64) error {
	if len(row) != m.NumCols() {
		return fmt.Errorf("%s: %d values for %d columns: %w",
			opSetRow, len(row), m.NumCols(), ErrDimensionMismatch)
	}
	m.buf.SetRow(r, row)

	return nil
}

// SetColumn overwrites column c with the given values (copied).
//
// Errors:
//   - ErrDimensionMismatch when len(col) != NumRows.
//
// Panics when c is out of range.
// Complexity: O(r).
func (m *General) SetColumn(c int, col []float64) error {
	if len(col) != m.NumRows() {
		return fmt.Errorf("%s: %d values for %d rows: %w",
			opSetColumn, len(col), m.NumRows(), ErrDimensionMismatch)
	}
	m.buf.SetCol(c, col)

	return nil
}

// Row copies row r into dst and returns it. A nil dst allocates a fresh
// slice; a non-nil dst must have length NumCols.
// Panics when r is out of range or dst has the wrong length (backend
// contract, same as At).
// Complexity: O(c).
func (m *General) Row(dst []float64, r int) []float64 {
	return rowInto(dst, r, m.buf)
}

// Column copies column c into dst and returns it. A nil dst allocates a
// fresh slice; a non-nil dst must have length NumRows.
// Panics when c is out of range or dst has the wrong length.
// Complexity: O(r).
func (m *General) Column(dst []float64, c int) []float64 {
	return colInto(dst, c, m.buf)
}

// Elements returns a freshly allocated nested-rows snapshot of the matrix.
// Mutating the result never affects m.
// Complexity: O(r*c).
func (m *General) Elements() [][]float64 {
	rows, _ := m.buf.Dims()
	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = rowInto(nil, r, m.buf)
	}

	return out
}

// CopySubMatrix copies the numRows×numCols block of m starting at
// (srcRow,srcCol) into dst starting at (dstRow,dstCol). Both offsets are
// honored; dst keeps its shape and its elements outside the written block.
// dst may be m itself, including overlapping source and destination
// blocks: the source block is snapshotted before writing.
//
// Errors:
//   - ErrNilMatrix when dst is nil.
//   - ErrDimensionMismatch when the block falls outside m or dst, or any
//     index is negative.
//
// A zero-extent block (numRows or numCols zero) validates its offsets and
// copies nothing.
//
// Complexity: O(numRows*numCols).
func (m *General) CopySubMatrix(srcRow, srcCol, numRows, numCols, dstRow, dstCol int, dst *General) error {
	if dst == nil {
		return matrixErrorf(opCopySub, ErrNilMatrix)
	}
	if err := ValidateSubMatrixBounds(m, dst, srcRow, srcCol, numRows, numCols, dstRow, dstCol); err != nil {
		return matrixErrorf(opCopySub, err)
	}

	src := m.buf
	if dst == m {
		// Snapshot the source so overlapping blocks read pre-write values.
		src = cloneDense(m.buf)
	}
	copyBlock(dst.buf, src, srcRow, srcCol, numRows, numCols, dstRow, dstCol)

	return nil
}

// SetSize reshapes m to rows×cols in place. Elements inside the
// overlapping region (the first min(rows) × min(cols) block) are
// preserved; any grown region is zero-filled. Shrinking discards the
// trimmed elements.
//
// Errors:
//   - ErrBadShape when rows <= 0 or cols <= 0.
//
// Complexity: O(r*c) of the new shape; no-op when the shape is unchanged.
func (m *General) SetSize(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return matrixErrorf(opSetSize, err)
	}

	oldRows, oldCols := m.buf.Dims()
	if rows == oldRows && cols == oldCols {
		return nil
	}

	grown := newDense(rows, cols)
	keepRows := min(rows, oldRows)
	keepCols := min(cols, oldCols)
	copyBlock(grown, m.buf, 0, 0, keepRows, keepCols, 0, 0)
	m.buf = grown

	return nil
}

// String renders the matrix in the fixed-width numeric layout produced by
// Format: right-aligned 12-character fields, six fraction digits, one line
// per row.
func (m *General) String() string {
	return Format(m)
}
