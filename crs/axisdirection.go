// SPDX-License-Identifier: MIT
// Package crs: AxisDirection enumeration.
// Directions form opposite pairs (NORTH/SOUTH, EAST/WEST, UP/DOWN,
// FUTURE/PAST) plus OTHER for axes with no compass meaning. Matching logic
// elsewhere compares absolute forms, then uses exact equality to pick the
// sign of the mapping coefficient.

package crs

import "fmt"

// AxisDirection identifies the orientation of a coordinate-system axis.
// The zero value is Other.
type AxisDirection uint8

// Enumerated axis directions. Positive members of each pair (North, East,
// Up, Future) are their own absolute form; negative members (South, West,
// Down, Past) absolutize to their opposite.
const (
	// Other marks an axis with no defined compass or temporal orientation.
	Other AxisDirection = iota

	// North is the direction of increasing northing.
	North
	// South is the direction of decreasing northing.
	South
	// East is the direction of increasing easting.
	East
	// West is the direction of decreasing easting.
	West
	// Up is the direction of increasing height.
	Up
	// Down is the direction of decreasing height.
	Down
	// Future is the direction of increasing time.
	Future
	// Past is the direction of decreasing time.
	Past

	numDirections // sentinel for validity checks; keep last
)

// Absolute returns the "positive" form of the direction: South becomes
// North, West becomes East, Down becomes Up, Past becomes Future. Directions
// that are already positive, and Other, return themselves.
// Complexity: O(1).
func (d AxisDirection) Absolute() AxisDirection {
	switch d {
	case South:
		return North
	case West:
		return East
	case Down:
		return Up
	case Past:
		return Future
	default:
		return d
	}
}

// Opposite returns the direction pointing the opposite way. Other has no
// opposite and returns itself.
// Complexity: O(1).
func (d AxisDirection) Opposite() AxisDirection {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	case Future:
		return Past
	case Past:
		return Future
	default:
		return d
	}
}

// IsValid reports whether d is one of the enumerated directions.
func (d AxisDirection) IsValid() bool {
	return d < numDirections
}

// directionNames maps enumerated values to their canonical uppercase names.
// The uppercase register matches how referencing systems print axis
// directions, and is what error messages embed.
var directionNames = [...]string{
	Other:  "OTHER",
	North:  "NORTH",
	South:  "SOUTH",
	East:   "EAST",
	West:   "WEST",
	Up:     "UP",
	Down:   "DOWN",
	Future: "FUTURE",
	Past:   "PAST",
}

// String returns the canonical uppercase name of the direction, or a
// "AxisDirection(n)" placeholder for out-of-range values.
func (d AxisDirection) String() string {
	if d < numDirections {
		return directionNames[d]
	}

	return fmt.Sprintf("AxisDirection(%d)", uint8(d))
}
