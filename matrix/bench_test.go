// Package matrix_test provides benchmarks for the core operations,
// using deterministic random fill for General matrices.
package matrix_test

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/katalvlaran/geomat/crs"
	"github.com/katalvlaran/geomat/matrix"
)

// benchSizes are the square matrix orders to benchmark.
var benchSizes = []int{16, 64, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.General
	sinkV []float64
	sinkS string
	sinkB bool
)

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew(b, n, n)
			y := mustNew(b, n, n)
			fillRand(b, x, 1337)
			fillRand(b, y, 4242)
			out := mustNew(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := out.SetProduct(x, y); err != nil {
					b.Fatal(err)
				}
				sinkM = out
			}
		})
	}
}

func BenchmarkInvert(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := mustNew(b, n, n)
			fillRand(b, src, 99)
			dominateDiagonal(b, src)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m := src.Clone()
				if err := m.Invert(); err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustNew(b, n, n)
			fillRand(b, m, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Transpose()
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew(b, n, n)
			y := mustNew(b, n, n)
			fillRand(b, x, 11)
			fillRand(b, y, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := x.Add(y); err != nil {
					b.Fatal(err)
				}
				sinkM = x
			}
		})
	}
}

func BenchmarkNewAxisRegionMapping(b *testing.B) {
	b.ReportAllocs()
	src, err := crs.NewEnvelope([]float64{-180, -90, 0}, []float64{180, 90, 1000})
	if err != nil {
		b.Fatal(err)
	}
	dst, err := crs.NewEnvelope([]float64{0, 0, 0}, []float64{4096, 4096, 255})
	if err != nil {
		b.Fatal(err)
	}
	srcAxes := []crs.AxisDirection{crs.East, crs.North, crs.Up}
	dstAxes := []crs.AxisDirection{crs.East, crs.South, crs.Up}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.NewAxisRegionMapping(src, srcAxes, dst, dstAxes)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkParseRow(b *testing.B) {
	b.ReportAllocs()
	for _, tag := range []language.Tag{language.AmericanEnglish, language.German} {
		b.Run(tag.String(), func(b *testing.B) {
			rp := matrix.NewRowParser(tag)
			line := strings.TrimSpace(matrix.Render(mustRowFixture(b), tag))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := rp.ParseRow(line)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkFormat(b *testing.B) {
	b.ReportAllocs()
	m := mustNew(b, 64, 8)
	fillRand(b, m, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = matrix.Format(m)
	}
}

func BenchmarkLoad(b *testing.B) {
	b.ReportAllocs()
	m := mustNew(b, 64, 8)
	fillRand(b, m, 5)
	text := matrix.Format(m)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		got, err := matrix.Load(strings.NewReader(text), language.AmericanEnglish)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = got
	}
}

func BenchmarkIsIdentityTol(b *testing.B) {
	b.ReportAllocs()
	m := mustIdentity(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = m.IsIdentityTol(1e-9)
	}
}

// mustRowFixture is a single wide row with mixed magnitudes for the
// parser benchmarks.
func mustRowFixture(b *testing.B) *matrix.General {
	b.Helper()
	m, err := matrix.NewFromSlice(1, 8, []float64{
		1234.5, -7.25, 0.5, 3.75, -0.125, 100, 9999.875, -0.0625,
	})
	if err != nil {
		b.Fatal(err)
	}

	return m
}
