// Package main is the geomat command, a small filter around the matrix
// text codec.
//
// It reads one matrix from a file or standard input, applies a single
// operation, and writes the result to standard output in the fixed-width
// matrix layout. Logs go to standard error, so the output stays pipeable.
//
// Configuration:
//   - Environment variables (GEOMAT_* via envconfig)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Invert a transform stored in the usual en-US interchange format
//	geomat -in transform.txt -op invert
//
//	# Reformat a German-locale file into the neutral layout
//	cat kacheln.txt | geomat -locale de
//
//	# Print the six affine coefficients of a 3×3 transform
//	geomat -in world.txt -op affine
//
// Operations: none (reformat), invert, transpose, negate, affine.
package main
