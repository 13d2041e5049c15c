// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Small deterministic constructors that abort the test on failure.
//   - A wrapper type that hides *General so fallback (interface) paths
//     get exercised alongside the fast paths.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/geomat/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions.
// Use hide{X} to force code under test off the *General fast path.
type hide struct{ matrix.Matrix }

// errBrokenReader is the failure injected by brokenReader.
var errBrokenReader = errors.New("broken pipe in test")

// brokenReader fails on the first Read call.
type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errBrokenReader
}

// mustNew allocates a zero-filled rows×cols matrix or aborts the test.
func mustNew(tb testing.TB, rows, cols int) *matrix.General {
	tb.Helper()
	m, err := matrix.New(rows, cols)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustFromSlice builds a rows×cols matrix from row-major data or aborts.
func mustFromSlice(tb testing.TB, rows, cols int, data ...float64) *matrix.General {
	tb.Helper()
	m, err := matrix.NewFromSlice(rows, cols, data)
	if err != nil {
		tb.Fatalf("NewFromSlice(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustIdentity builds a size×size identity matrix or aborts.
func mustIdentity(tb testing.TB, size int) *matrix.General {
	tb.Helper()
	m, err := matrix.NewIdentity(size)
	if err != nil {
		tb.Fatalf("NewIdentity(%d): %v", size, err)
	}

	return m
}

// fillRand fills m with deterministic values in [-1,1).
func fillRand(tb testing.TB, m *matrix.General, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for r := 0; r < m.NumRows(); r++ {
		for c := 0; c < m.NumCols(); c++ {
			m.Set(r, c, rng.Float64()*2-1)
		}
	}
}

// dominateDiagonal adds the matrix order to every diagonal element, which
// keeps randomly filled square matrices comfortably invertible.
func dominateDiagonal(tb testing.TB, m *matrix.General) {
	tb.Helper()
	n := m.NumRows()
	for i := 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+float64(n))
	}
}
