// SPDX-License-Identifier: MIT

// Package matrix: 2D affine bridge.
// Affine2D is the flat six-coefficient form of a 3×3 homogeneous
// transform, matching the classic 2D graphics convention:
//
//	⎡ScaleX ShearX TranslateX⎤      x' = ScaleX*x + ShearX*y + TranslateX
//	⎢ShearY ScaleY TranslateY⎥      y' = ShearY*x + ScaleY*y + TranslateY
//	⎣0      0      1         ⎦
//
// The bridge is exact in both directions: no tolerance is applied when
// checking the homogeneous row.

package matrix

import "fmt"

const (
	opToAffine = "ToAffine2D"

	// affineSize is the only matrix dimension Affine2D can bridge.
	affineSize = 3
)

// Affine2D carries the six coefficients of a 2D affine transform. Field
// order follows the conventional (a, d, b, e, c, f) constructor order of
// 2D graphics toolkits.
type Affine2D struct {
	ScaleX     float64 // a: x scale
	ShearY     float64 // d: y shear
	ShearX     float64 // b: x shear
	ScaleY     float64 // e: y scale
	TranslateX float64 // c: x offset
	TranslateY float64 // f: y offset
}

// ToAffine2D extracts the six affine coefficients from a 3×3 homogeneous
// matrix.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrNot2D when m is not exactly 3×3; the message carries the shape.
//   - ErrNotAffine when the last row is not exactly [0 0 1].
//
// Complexity: O(1).
func ToAffine2D(m Matrix) (Affine2D, error) {
	if err := ValidateNotNil(m); err != nil {
		return Affine2D{}, matrixErrorf(opToAffine, err)
	}
	if m.NumRows() != affineSize || m.NumCols() != affineSize {
		return Affine2D{}, fmt.Errorf("%s: %dx%d: %w",
			opToAffine, m.NumRows(), m.NumCols(), ErrNot2D)
	}
	if !isAffineMatrix(m) {
		return Affine2D{}, matrixErrorf(opToAffine, ErrNotAffine)
	}

	return Affine2D{
		ScaleX:     m.At(0, 0),
		ShearY:     m.At(1, 0),
		ShearX:     m.At(0, 1),
		ScaleY:     m.At(1, 1),
		TranslateX: m.At(0, 2),
		TranslateY: m.At(1, 2),
	}, nil
}

// NewFromAffine2D builds the 3×3 homogeneous matrix of the given affine
// coefficients. The result always satisfies IsAffine, so the round trip
// through ToAffine2D is lossless.
// Complexity: O(1).
func NewFromAffine2D(a Affine2D) *General {
	m := &General{buf: newDense(affineSize, affineSize)}
	m.buf.Set(0, 0, a.ScaleX)
	m.buf.Set(0, 1, a.ShearX)
	m.buf.Set(0, 2, a.TranslateX)
	m.buf.Set(1, 0, a.ShearY)
	m.buf.Set(1, 1, a.ScaleY)
	m.buf.Set(1, 2, a.TranslateY)
	m.buf.Set(2, 2, homogeneousCorner)

	return m
}

// Apply maps the point (x, y) through the transform and returns the
// result.
// Complexity: O(1).
func (a Affine2D) Apply(x, y float64) (float64, float64) {
	return a.ScaleX*x + a.ShearX*y + a.TranslateX,
		a.ShearY*x + a.ScaleY*y + a.TranslateY
}
