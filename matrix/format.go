// SPDX-License-Identifier: MIT

// Package matrix: text codec, writing side.
// Format renders a matrix in the classic fixed-width layout: every value
// right-aligned in a 12-character field with six fraction digits and no
// grouping, one text line per matrix row, a line separator after every
// row including the last. Render is the localized variant; it reuses the
// RowParser locale probe so its output feeds back through Load unchanged.

package matrix

import (
	"runtime"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

const (
	// formatColumnWidth is the nominal field width values right-align in.
	formatColumnWidth = 12

	// formatFracDigits fixes the rendered fraction length.
	formatFracDigits = 6

	// formatMinPad keeps at least one space between adjacent fields even
	// when a value overflows its column.
	formatMinPad = 1
)

// lineSeparator returns the host platform's line terminator, mirroring
// how desktop GIS tooling writes matrix files.
func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}

// Format renders m in the locale-neutral layout: '.' decimal separator,
// ASCII digits. A nil matrix renders as the empty string.
// Complexity: O(r*c).
func Format(m Matrix) string {
	return render(m, nil)
}

// Render renders m like Format but with the locale's decimal separator
// and digit glyphs. Grouping separators are never emitted, so the output
// of Render(m, tag) loads back exactly under Load(..., tag).
// Complexity: O(r*c).
func Render(m Matrix, tag language.Tag) string {
	return render(m, NewRowParser(tag))
}

// render is the shared layout kernel; a nil parser selects the neutral
// form.
func render(m Matrix, rp *RowParser) string {
	if m == nil {
		return ""
	}

	var sb strings.Builder
	sep := lineSeparator()
	for r := 0; r < m.NumRows(); r++ {
		for c := 0; c < m.NumCols(); c++ {
			field := strconv.FormatFloat(m.At(r, c), 'f', formatFracDigits, 64)
			if rp != nil {
				field = rp.localizeToken(field)
			}
			// Width counts glyphs, not bytes: locale digits may be
			// multi-byte.
			pad := formatColumnWidth - utf8.RuneCountInString(field)
			if pad < formatMinPad {
				pad = formatMinPad
			}
			sb.WriteString(strings.Repeat(" ", pad))
			sb.WriteString(field)
		}
		sb.WriteString(sep)
	}

	return sb.String()
}
