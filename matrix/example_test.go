// SPDX-License-Identifier: MIT
// Package matrix_test: runnable documentation examples.

package matrix_test

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/katalvlaran/geomat/crs"
	"github.com/katalvlaran/geomat/matrix"
)

// A (latitude, longitude) feed reordered into (longitude, latitude):
// the synthesized matrix swaps the two ordinates.
func ExampleNewAxisMapping() {
	m, err := matrix.NewAxisMapping(
		[]crs.AxisDirection{crs.North, crs.East},
		[]crs.AxisDirection{crs.East, crs.North},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	a, _ := matrix.ToAffine2D(m)
	x, y := a.Apply(48.85, 2.35) // Paris as (lat, lon)
	fmt.Printf("%g %g\n", x, y)
	// Output: 2.35 48.85
}

// Fitting the WGS84 extent onto a 360×180 grid whose rows grow
// southward: longitude shifts, latitude flips and anchors on the far
// edge.
func ExampleNewAxisRegionMapping() {
	world, _ := crs.NewEnvelope([]float64{-180, -90}, []float64{180, 90})
	grid, _ := crs.NewEnvelope([]float64{0, 0}, []float64{360, 180})

	m, err := matrix.NewAxisRegionMapping(
		world, []crs.AxisDirection{crs.East, crs.North},
		grid, []crs.AxisDirection{crs.East, crs.South},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	a, _ := matrix.ToAffine2D(m)
	nwX, nwY := a.Apply(-180, 90)
	seX, seY := a.Apply(180, -90)
	fmt.Printf("%g %g\n", nwX, nwY)
	fmt.Printf("%g %g\n", seX, seY)
	// Output:
	// 0 0
	// 360 180
}

func ExampleLoad() {
	in := "  1.5   2.5\n  3.5   4.5\n"

	m, err := matrix.Load(strings.NewReader(in), language.AmericanEnglish)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%dx%d %g\n", m.NumRows(), m.NumCols(), m.At(1, 0))
	// Output: 2x2 3.5
}

func ExampleFormat() {
	m, _ := matrix.NewFromSlice(1, 2, []float64{1.5, -2.25})

	fmt.Print(matrix.Format(m))
	// Output: 1.500000   -2.250000
}

func ExampleGeneral_Invert() {
	m, _ := matrix.NewFromSlice(2, 2, []float64{2, 0, 0, 4})

	if err := m.Invert(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%g %g\n", m.At(0, 0), m.At(1, 1))
	// Output: 0.5 0.25
}

func ExampleToAffine2D() {
	m, _ := matrix.NewFromSlice(3, 3, []float64{
		1, 0, 100,
		0, 1, -50,
		0, 0, 1,
	})

	a, err := matrix.ToAffine2D(m)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%g %g\n", a.TranslateX, a.TranslateY)
	// Output: 100 -50
}
