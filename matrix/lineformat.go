// SPDX-License-Identifier: MIT

// Package matrix: locale-aware numeric row parsing.
// RowParser turns one whitespace-separated text line into float64 values
// under a CLDR locale. Rather than hand-maintaining separator tables, the
// parser formats a reference number through x/text at construction time
// and reads the locale's group separator, decimal separator and zero digit
// out of the result; parsing then normalizes each token to the strconv
// grammar. This keeps the accepted syntax bit-for-bit aligned with what
// x/text produces for the same locale, so Render output round-trips.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const opParseRow = "ParseRow"

// probeValue is formatted at construction to discover locale separators.
// Eight integer digits guarantee at least two group separators in every
// CLDR grouping scheme (including 2-2-3 Indian grouping); the exact .5
// fraction survives formatting and exposes the decimal separator.
const probeValue = 12345678.5

// asciiMinus and unicodeMinus are the sign runes accepted on input.
// Several locales format negatives with U+2212 rather than the ASCII
// hyphen-minus.
const (
	asciiMinus   = '-'
	unicodeMinus = '−'
)

// RowParser tokenizes text lines and parses each token as a number under
// one fixed locale. Construct with NewRowParser; the zero value parses
// nothing.
type RowParser struct {
	tag     language.Tag
	group   string // locale group separator, "" when the locale has none
	decimal string // locale decimal separator, "." fallback
	zero    rune   // locale zero digit, '0' for latin-digit locales

	// groupIsSpace marks space-class group separators (NBSP, NNBSP).
	// Those are stripped line-wide before tokenization, because the
	// tokenizer itself splits on white space.
	groupIsSpace bool
}

// NewRowParser builds a parser for the given locale.
// Stage 1 (Probe): format probeValue and 0 through x/text.
// Stage 2 (Extract): runs of non-digit runes flanked by digits on both
// sides are separators; the last such run is the decimal separator, any
// earlier run is the group separator. Sign marks and bidi controls sit
// outside the digits and are ignored by construction.
//
// Complexity: O(1) — two short formats per construction; reuse the parser
// across lines.
func NewRowParser(tag language.Tag) *RowParser {
	p := message.NewPrinter(tag)

	group, decimal := extractSeparators(p.Sprint(number.Decimal(probeValue)))
	zero := extractZeroDigit(p.Sprint(number.Decimal(0)))

	rp := &RowParser{
		tag:     tag,
		group:   group,
		decimal: decimal,
		zero:    zero,
	}
	for _, r := range group {
		if unicode.IsSpace(r) {
			rp.groupIsSpace = true
		}
	}

	return rp
}

// Tag returns the locale this parser was built for.
func (rp *RowParser) Tag() language.Tag {
	return rp.tag
}

// ParseRow splits one text line on white space and parses every token.
// A blank or empty line yields an empty, non-nil slice.
//
// Errors:
//   - ErrMalformedRow when any token fails to parse; the token and the
//     underlying diagnostic are wrapped alongside.
//
// Complexity: O(len(line)).
func (rp *RowParser) ParseRow(line string) ([]float64, error) {
	// Space-class group separators would fracture tokens, so they are
	// removed before tokenization.
	if rp.groupIsSpace {
		line = strings.ReplaceAll(line, rp.group, "")
	}

	fields := strings.Fields(line)
	values := make([]float64, 0, len(fields))
	for _, tok := range fields {
		v, err := rp.parseToken(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// parseToken normalizes one token to the strconv grammar and parses it.
func (rp *RowParser) parseToken(tok string) (float64, error) {
	s := tok
	if rp.group != "" && !rp.groupIsSpace {
		// Group separators carry no value; Java's NumberFormat drops them
		// the same way, so "3.14" under a de locale reads as 314.
		s = strings.ReplaceAll(s, rp.group, "")
	}
	if rp.decimal != "." {
		s = strings.Replace(s, rp.decimal, ".", 1)
	}
	if rp.zero != '0' || strings.ContainsRune(s, unicodeMinus) {
		s = rp.normalizeRunes(s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: token %q: %w: %v", opParseRow, tok, ErrMalformedRow, err)
	}

	return v, nil
}

// localizeToken maps an ASCII-formatted number onto the parser's locale:
// decimal separator first, then digit glyphs. It is the writing-side
// counterpart of parseToken for separator-free fields; render uses it so
// output and input stay aligned per locale.
func (rp *RowParser) localizeToken(s string) string {
	if rp.decimal != "." {
		s = strings.Replace(s, ".", rp.decimal, 1)
	}
	if rp.zero == '0' {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(rp.zero + (r - '0'))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// normalizeRunes maps locale digits onto ASCII digits and U+2212 onto the
// ASCII minus. Runes outside those sets pass through and fall to strconv.
func (rp *RowParser) normalizeRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case rp.zero != '0' && r >= rp.zero && r <= rp.zero+9:
			// Decimal digit blocks are contiguous, so offset arithmetic
			// recovers the value.
			b.WriteRune('0' + (r - rp.zero))
		case r == unicodeMinus:
			b.WriteRune(asciiMinus)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// extractSeparators reads the group and decimal separators out of a
// formatted probe. Only runs of non-digit runes with digits on both sides
// qualify; the last run is the decimal separator, the first earlier run is
// the group separator. A probe with a single inter-digit run has no
// grouping; a probe with none falls back to ".".
func extractSeparators(probe string) (group, decimal string) {
	var runs []string
	var current strings.Builder
	seenDigit := false

	for _, r := range probe {
		if unicode.IsDigit(r) {
			if seenDigit && current.Len() > 0 {
				runs = append(runs, current.String())
			}
			current.Reset()
			seenDigit = true

			continue
		}
		if seenDigit {
			current.WriteRune(r)
		}
		// Non-digits before the first digit (signs, bidi marks) are
		// dropped; a trailing run never flushes because no digit follows.
	}

	switch len(runs) {
	case 0:
		return "", "."
	case 1:
		return "", runs[0]
	default:
		return runs[0], runs[len(runs)-1]
	}
}

// extractZeroDigit returns the last digit rune of a formatted zero,
// skipping any direction marks around it.
func extractZeroDigit(probe string) rune {
	zero := '0'
	for _, r := range probe {
		if unicode.IsDigit(r) {
			zero = r
		}
	}

	return zero
}
