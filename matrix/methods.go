// Package matrix: in-place algebra and predicates on General, plus the
// package-level helpers that accept any Matrix implementation. All
// operations perform strict fail-fast validation and return wrapped
// sentinel errors on dimension conflicts; predicates never allocate.

package matrix

import "math"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opInvert     = "Invert"
	opMultiply   = "Multiply"
	opSetProduct = "SetProduct"
	opAdd        = "Add"
	opSub        = "Sub"
	opElementsOf = "ElementsOf"
)

// identityDiagonal is the expected diagonal value in identity checks.
const identityDiagonal = 1.0

// Negate flips the sign of every element in place.
// Stage 1 (Execute): delegate the element-wise scale to the backend.
// Complexity: O(r*c).
func (m *General) Negate() {
	scaleInPlace(-1, m.buf)
}

// Transpose replaces m with its transpose in place. A rows×cols matrix
// becomes cols×rows; the backing buffer is reallocated to stay contiguous.
// Complexity: O(r*c).
func (m *General) Transpose() {
	m.buf = transposedOf(m.buf)
}

// Invert replaces m with its inverse in place.
// Stage 1 (Validate): m must be square.
// Stage 2 (Execute): backend inversion into a fresh buffer.
// Stage 3 (Finalize): swap the buffer only on success, so a failed
// inversion leaves m untouched.
//
// Errors:
//   - ErrNonSquare when NumRows != NumCols.
//   - ErrSingular when the matrix is singular or numerically unusable;
//     the backend diagnostic is wrapped alongside.
//
// Complexity: O(n³).
func (m *General) Invert() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opInvert, err)
	}

	inv, err := inverseOf(m.buf)
	if err != nil {
		return matrixErrorf(opInvert, err)
	}
	m.buf = inv

	return nil
}

// Multiply replaces m with the product m × other in place. The shape
// becomes NumRows(m) × NumCols(other). other may be m itself.
// Stage 1 (Validate): inner dimensions must agree.
// Stage 2 (Execute): backend product into a fresh buffer.
//
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrDimensionMismatch when NumCols(m) != NumRows(other).
//
// Complexity: O(r*k*c).
func (m *General) Multiply(other Matrix) error {
	if err := ValidateMulCompatible(m, other); err != nil {
		return matrixErrorf(opMultiply, err)
	}
	m.buf = productOf(m.buf, denseOf(other))

	return nil
}

// SetProduct replaces m with the product a × b, discarding m's previous
// shape and contents. Either factor may be m itself.
//
// Errors:
//   - ErrNilMatrix when a or b is nil.
//   - ErrDimensionMismatch when NumCols(a) != NumRows(b).
//
// Complexity: O(r*k*c).
func (m *General) SetProduct(a, b Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opSetProduct, err)
	}
	m.buf = productOf(denseOf(a), denseOf(b))

	return nil
}

// Add accumulates other into m element-wise. other may be m itself.
//
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity: O(r*c).
func (m *General) Add(other Matrix) error {
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opAdd, err)
	}
	addInPlace(m.buf, denseOf(other))

	return nil
}

// Sub subtracts other from m element-wise. other may be m itself.
//
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity: O(r*c).
func (m *General) Sub(other Matrix) error {
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opSub, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opSub, err)
	}
	subInPlace(m.buf, denseOf(other))

	return nil
}

// SetZero overwrites every element with zero, keeping the shape.
// Complexity: O(r*c).
func (m *General) SetZero() {
	m.buf.Zero()
}

// SetIdentity overwrites m with the identity pattern: zeros everywhere,
// ones on the main diagonal. On rectangular matrices the diagonal runs to
// min(NumRows, NumCols).
// Complexity: O(r*c).
func (m *General) SetIdentity() {
	m.buf.Zero()
	rows, cols := m.buf.Dims()
	for i := 0; i < min(rows, cols); i++ {
		m.buf.Set(i, i, identityDiagonal)
	}
}

// IsAffine reports whether m is square with a last row of [0 ... 0 1],
// the homogeneous form of an affine transform. NaN entries in the last
// row fail the check.
// Complexity: O(n) on the last row.
func (m *General) IsAffine() bool {
	return isAffineMatrix(m)
}

// isAffineMatrix is the shared affine-form check behind General.IsAffine
// and the 2D bridge; it accepts any Matrix implementation.
func isAffineMatrix(m Matrix) bool {
	rows, cols := m.NumRows(), m.NumCols()
	if rows != cols {
		return false
	}

	last := rows - 1
	for c := 0; c <= last; c++ {
		want := 0.0
		if c == last {
			want = identityDiagonal
		}
		if m.At(last, c) != want {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is exactly the identity matrix: square,
// ones on the diagonal, zeros elsewhere. NaN entries fail the check.
// Complexity: O(n²).
func (m *General) IsIdentity() bool {
	return IsIdentity(m)
}

// IsIdentityTol reports whether m is the identity matrix within the given
// tolerance: every |element - expected| must not exceed |tol|. The negated
// comparison makes NaN entries fail regardless of tolerance.
// Complexity: O(n²).
func (m *General) IsIdentityTol(tol float64) bool {
	tol = math.Abs(tol)
	rows, cols := m.buf.Dims()
	if rows != cols {
		return false
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e := m.buf.At(r, c)
			if r == c {
				e -= identityDiagonal
			}
			// '!' ordering catches NaN values.
			if !(math.Abs(e) <= tol) {
				return false
			}
		}
	}

	return true
}

// Equals reports whether m and other have the same shape and elements
// within the given tolerance. Two elements match when |a-b| <= |tol| or
// when their IEEE-754 bit patterns are identical; the bit test makes NaN
// equal itself and keeps +Inf equal +Inf under any tolerance.
// A nil other never equals m.
// Complexity: O(r*c).
func (m *General) Equals(other Matrix, tol float64) bool {
	if other == nil {
		return false
	}

	return Equal(m, other, tol)
}

// Equal reports whether a and b have the same shape and elements within
// the given tolerance, with the same bit-pattern special case as
// General.Equals. Two nil matrices are equal; nil never equals non-nil.
// Complexity: O(r*c).
func Equal(a, b Matrix, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.NumRows() != b.NumRows() || a.NumCols() != b.NumCols() {
		return false
	}

	tol = math.Abs(tol)
	for r := 0; r < a.NumRows(); r++ {
		for c := 0; c < a.NumCols(); c++ {
			va, vb := a.At(r, c), b.At(r, c)
			// Tolerance first; the bit comparison rescues NaN==NaN and
			// same-signed infinities.
			if !(math.Abs(va-vb) <= tol) && math.Float64bits(va) != math.Float64bits(vb) {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether any Matrix value is exactly the identity
// matrix. A nil or non-square matrix is not the identity.
// Complexity: O(n²).
func IsIdentity(m Matrix) bool {
	if m == nil {
		return false
	}
	rows, cols := m.NumRows(), m.NumCols()
	if rows != cols {
		return false
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			want := 0.0
			if r == c {
				want = identityDiagonal
			}
			if m.At(r, c) != want {
				return false
			}
		}
	}

	return true
}

// ElementsOf returns a freshly allocated nested-rows snapshot of any
// Matrix value.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity: O(r*c).
func ElementsOf(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opElementsOf, err)
	}

	out := make([][]float64, m.NumRows())
	for r := range out {
		row := make([]float64, m.NumCols())
		for c := range row {
			row[c] = m.At(r, c)
		}
		out[r] = row
	}

	return out, nil
}
