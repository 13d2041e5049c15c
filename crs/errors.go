// SPDX-License-Identifier: MIT
// Package crs: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the crs
// package. Constructors MUST return these sentinels and tests MUST check them
// via errors.Is. Accessors on validated values may panic on out-of-range
// indices; that is a programmer error, not a recoverable condition.

package crs

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "crs: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadDimension indicates a zero-dimension envelope was requested.
	ErrBadDimension = errors.New("crs: envelope dimension must be > 0")

	// ErrDimensionMismatch indicates that the minimum and maximum corners
	// passed to NewEnvelope have different lengths.
	ErrDimensionMismatch = errors.New("crs: corner dimension mismatch")

	// ErrInvalidInterval indicates that a minimum ordinate exceeds the
	// corresponding maximum ordinate.
	ErrInvalidInterval = errors.New("crs: minimum exceeds maximum")
)
