// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/geomat/matrix"
)

// 1) TestDefaultOptions_Documented verifies that gatherOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.AffineCheck != matrix.DefaultAffineCheck {
		t.Fatalf("affineCheck default mismatch: got %v, want %v", o.AffineCheck, matrix.DefaultAffineCheck)
	}
}

// 2) TestWithAffineCheck_Sets ensures the setter flips exactly its field.
func TestWithAffineCheck_Sets(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithAffineCheck())

	if !o.AffineCheck {
		t.Fatalf("affineCheck not set: got %v, want true", o.AffineCheck)
	}
}

// 3) TestWithAffineCheck_Idempotent ensures repeated application is stable.
func TestWithAffineCheck_Idempotent(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithAffineCheck(), matrix.WithAffineCheck())

	if !o.AffineCheck {
		t.Fatalf("affineCheck lost under repetition: got %v, want true", o.AffineCheck)
	}
}

// 4) TestOptions_NoStateLeak ensures one resolution never bleeds into the next.
func TestOptions_NoStateLeak(t *testing.T) {
	_ = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithAffineCheck())
	o := matrix.GatherOptionsSnapshot_TestOnly()

	if o.AffineCheck {
		t.Fatalf("options leaked between resolutions: got %v, want false", o.AffineCheck)
	}
}
