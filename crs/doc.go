// Package crs defines the small coordinate-referencing vocabulary consumed
// by the matrix package: compass-style axis directions and axis-aligned
// bounding envelopes.
//
// AxisDirection models the orientation of one coordinate axis (NORTH, EAST,
// UP, FUTURE and their opposites). Directions come in opposite pairs sharing
// an absolute form, which is what axis-mapping matrix synthesis matches on:
// a SOUTH source axis satisfies a NORTH destination axis with a sign flip.
//
// Envelope is a minimal axis-aligned box: a minimum and maximum corner over
// n dimensions. Envelopes carry the per-axis ranges used to derive scale and
// translation terms when one grid or region is mapped onto another.
//
// Both types are plain values with no hidden state; an Envelope validates
// its corners once at construction and is immutable afterwards.
package crs
