// Package matrix implements the mutable, dense, row-major transform matrix
// used throughout coordinate-referencing pipelines, together with the
// machinery that produces and consumes it: axis-mapping synthesis, a
// locale-aware text codec, and a 2D affine bridge.
//
// 🚀 What is matrix?
//
//	One concrete type — General — wrapping a gonum dense buffer, plus:
//	  • Constructors: zero, identity, row-major slice, nested rows, deep
//	    copy of any Matrix implementation
//	  • In-place algebra: Negate, Transpose, Invert, Multiply, SetProduct,
//	    Add, Sub, SetZero, SetIdentity, SetSize
//	  • Predicates: IsAffine, IsIdentity (exact and tolerant), Equals with
//	    bit-level NaN/Inf handling
//	  • Axis mapping: NewAxisMapping / NewAxisRegionMapping /
//	    NewRegionMapping build swap/flip/rescale matrices from crs types
//	  • Text codec: Load / LoadFile read whitespace-separated numeric
//	    blocks under any CLDR locale; Format / Render write them back
//	  • Affine bridge: Affine2D ↔ 3×3 homogeneous matrices
//
// ✨ Key guarantees:
//   - Explicit failures: singular inversion, colinear axes, unmatched
//     axes, ragged input and malformed numbers each return a dedicated
//     sentinel error matched via errors.Is
//   - Element access follows backend semantics: out-of-range indices on
//     At/Set are programmer errors and panic
//   - Deterministic synthesis: axis scanning follows declaration order,
//     so identical inputs always produce identical matrices
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/geomat/matrix"
//
//	m, err := matrix.NewAxisMapping(
//	  []crs.AxisDirection{crs.East, crs.North},
//	  []crs.AxisDirection{crs.North, crs.East},
//	)
//	// m is the 3×3 axis-swap matrix; m.Invert() undoes it.
//
// Concurrency:
//
//	General carries no internal locking. A value confined to one goroutine
//	is safe; share across goroutines only behind external synchronization.
//
// See example_test.go for runnable snippets and examples/ for full
// scenario programs.
package matrix
