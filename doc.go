// Package geomat is your in-memory toolbox for building, transforming,
// and serializing the coordinate-transform matrices that sit at the heart
// of geospatial referencing pipelines.
//
// 🚀 What is geomat?
//
//	A focused library around one workhorse type — a mutable, dense,
//	row-major matrix of float64 — plus the geospatial machinery that
//	produces and consumes it:
//		• Core algebra: invert, multiply, transpose, negate, resize, compare
//		• Axis mapping: synthesize swap/flip/rescale matrices straight from
//		  coordinate-axis directions and bounding envelopes
//		• Text codec: read and write whitespace-separated matrix files with
//		  locale-aware number parsing
//		• Affine bridge: convert 3×3 homogeneous matrices to and from flat
//		  2D affine coefficients
//
// ✨ Why choose geomat?
//
//   - Geo-native – axis directions and envelopes are first-class inputs
//   - Explicit failures – singular inversions and malformed files return
//     sentinel errors, never silent NaN propagation
//   - Proven numerics – element storage and kernels delegate to gonum
//   - Locale-correct I/O – number parsing follows CLDR data via x/text
//
// Under the hood, everything is organized under two subpackages:
//
//	crs/    — axis directions and envelopes (the referencing vocabulary)
//	matrix/ — the General matrix type, axis-mapping constructors,
//	          text codec and 2D affine adapter
//
// Quick ASCII example:
//
//	    (EAST, NORTH) ──► (NORTH, EAST)
//
//	    ⎡0 1 0⎤
//	    ⎢1 0 0⎥   a single call to matrix.NewAxisMapping.
//	    ⎣0 0 1⎦
//
// Dive into examples/ for runnable scenarios: axis reprojection, fitting
// an envelope onto a screen, and a locale round-trip through a matrix file.
//
//	go get github.com/katalvlaran/geomat/matrix
package geomat
