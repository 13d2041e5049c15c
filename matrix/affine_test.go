// SPDX-License-Identifier: MIT
// Package matrix_test: 2D affine bridge coverage.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomat/matrix"
)

func TestToAffine2D_ExtractsCoefficients(t *testing.T) {
	m := mustFromSlice(t, 3, 3,
		2, 3, 10,
		4, 5, 20,
		0, 0, 1,
	)

	a, err := matrix.ToAffine2D(m)
	require.NoError(t, err)
	require.Equal(t, matrix.Affine2D{
		ScaleX:     2,
		ShearY:     4,
		ShearX:     3,
		ScaleY:     5,
		TranslateX: 10,
		TranslateY: 20,
	}, a)
}

func TestToAffine2D_ForeignImplementation(t *testing.T) {
	m := mustFromSlice(t, 3, 3, 1, 0, 5, 0, 1, 6, 0, 0, 1)

	a, err := matrix.ToAffine2D(hide{m})
	require.NoError(t, err)
	require.Equal(t, 5.0, a.TranslateX)
	require.Equal(t, 6.0, a.TranslateY)
}

func TestToAffine2D_Errors(t *testing.T) {
	_, err := matrix.ToAffine2D(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.ToAffine2D(mustNew(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNot2D)
	require.Contains(t, err.Error(), "2x2")

	_, err = matrix.ToAffine2D(mustNew(t, 4, 4))
	require.ErrorIs(t, err, matrix.ErrNot2D)

	// Right shape, but the homogeneous row is off.
	bad := mustFromSlice(t, 3, 3, 1, 0, 0, 0, 1, 0, 0, 0.5, 1)
	_, err = matrix.ToAffine2D(bad)
	require.ErrorIs(t, err, matrix.ErrNotAffine)
}

func TestNewFromAffine2D_RoundTrip(t *testing.T) {
	in := matrix.Affine2D{
		ScaleX: 2, ShearY: -1, ShearX: 0.5,
		ScaleY: 3, TranslateX: 100, TranslateY: -200,
	}

	m := matrix.NewFromAffine2D(in)
	require.True(t, m.IsAffine())
	require.Equal(t, [][]float64{
		{2, 0.5, 100},
		{-1, 3, -200},
		{0, 0, 1},
	}, m.Elements())

	out, err := matrix.ToAffine2D(m)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestAffine2D_Apply(t *testing.T) {
	a := matrix.Affine2D{
		ScaleX: 2, ShearX: 3, TranslateX: 10,
		ShearY: 4, ScaleY: 5, TranslateY: 20,
	}

	x, y := a.Apply(1, 1)
	require.Equal(t, 15.0, x)
	require.Equal(t, 29.0, y)
}

func TestAffine2D_ApplyMatchesMatrixProduct(t *testing.T) {
	m := mustFromSlice(t, 3, 3,
		2, 3, 10,
		4, 5, 20,
		0, 0, 1,
	)
	a, err := matrix.ToAffine2D(m)
	require.NoError(t, err)

	// The same point through the homogeneous product.
	point := mustFromSlice(t, 3, 1, 7, -2, 1)
	require.NoError(t, m.Multiply(point))

	x, y := a.Apply(7, -2)
	require.Equal(t, m.At(0, 0), x)
	require.Equal(t, m.At(1, 0), y)
	require.Equal(t, 1.0, m.At(2, 0))
}
