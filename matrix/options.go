// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for axis-mapping synthesis.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values; none currently take
//     parameters, so no panics are reachable today),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAffineCheck controls whether axis-mapping constructors verify
	// that a square synthesized matrix is affine before returning it. Off
	// by default: the synthesis writes the homogeneous row itself, so the
	// check only guards against future regressions.
	DefaultAffineCheck = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque: public entry points accept `...Option` and
// internally resolve them via gatherOptions.
type Options struct {
	affineCheck bool // DefaultAffineCheck
}

// ---------- Constructors (WithX) ----------

// WithAffineCheck enables a postcondition on axis-mapping synthesis: when
// the produced matrix is square it must satisfy IsAffine, otherwise the
// constructor fails with ErrNotAffine.
// Implementation:
//   - Stage 1: return a setter that flips affineCheck on.
//
// Behavior highlights:
//   - Applies only to square results; rectangular mappings (differing axis
//     counts) have no homogeneous row to verify and are never checked.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1) to set; the check itself is O(n) on the last row.
//
// Notes:
//   - Intended for debug builds and tests; production synthesis satisfies
//     the postcondition by construction.
//
// AI-Hints:
//   - Enable in CI test runs to catch regressions in synthesis logic.
func WithAffineCheck() Option {
	return func(o *Options) { o.affineCheck = true }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for all ...Option surfaces.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		affineCheck: DefaultAffineCheck,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
