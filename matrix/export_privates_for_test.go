// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Probe Logic and Options Snapshot
//
// Purpose:
//   - Expose the unexported locale-probe helpers and the internal options
//     snapshot to matrix_test ONLY, without widening the production API.
//   - The _test.go suffix keeps this file out of production builds.
//
// Provided Surface:
//   - ExtractSeparators_TestOnly / ExtractZeroDigit_TestOnly: direct access
//     to the probe readers, so separator extraction can be verified against
//     synthetic probes independent of the CLDR tables shipped with x/text.
//   - Parser*_TestOnly accessors: read a constructed RowParser's probe
//     results for the locale actually in use.
//   - LocalizeToken_TestOnly: writing-side counterpart, used to build
//     locale-correct fixtures without hard-coding digit glyphs.
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly: stable read-only
//     view of resolved Options.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields. If Options
//     changes, update snapshotOf accordingly (tests will catch drift).

var (
	// ExtractSeparators_TestOnly exposes extractSeparators for white-box tests.
	ExtractSeparators_TestOnly = extractSeparators
	// ExtractZeroDigit_TestOnly exposes extractZeroDigit for white-box tests.
	ExtractZeroDigit_TestOnly = extractZeroDigit
)

// ParserSeparators_TestOnly returns the group and decimal separators the
// parser probed for its locale.
func ParserSeparators_TestOnly(rp *RowParser) (group, decimal string) {
	return rp.group, rp.decimal
}

// ParserZeroDigit_TestOnly returns the zero digit the parser probed.
func ParserZeroDigit_TestOnly(rp *RowParser) rune {
	return rp.zero
}

// ParserGroupIsSpace_TestOnly reports whether the probed group separator
// is space-class (stripped line-wide before tokenization).
func ParserGroupIsSpace_TestOnly(rp *RowParser) bool {
	return rp.groupIsSpace
}

// LocalizeToken_TestOnly forwards to the private localizeToken, so tests
// can build locale fixtures from ASCII-formatted numbers.
func LocalizeToken_TestOnly(rp *RowParser, s string) string {
	return rp.localizeToken(s)
}

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow matrix_test to assert defaults and setter effects without
//     accessing unexported fields directly.
type OptionsSnapshot struct {
	AffineCheck bool
}

// GatherOptionsSnapshot_TestOnly resolves opts on top of defaults and
// returns a snapshot of the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// snapshotOf copies internal fields to a public struct. Keep in sync with
// the Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		AffineCheck: o.affineCheck,
	}
}
