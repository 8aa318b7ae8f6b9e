// Package snake generates snake-cube shapes: chains of axis-aligned unit
// cubes whose runs turn in random but always orthogonal directions.
//
// Generation is pure CPU work. The renderer consumes the resulting vertex
// list and bounding box; nothing in this package touches OpenGL.
package snake

import (
	"math/rand"

	"github.com/Faultbox/snakecube/pkg/math"
)

// Axis identifies one of the three world axes a segment can run along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// turns lists, for each axis, the two axes a chain may turn onto.
// A segment never continues along the axis the previous segment used.
var turns = [3][2]Axis{
	AxisX: {AxisY, AxisZ},
	AxisY: {AxisX, AxisZ},
	AxisZ: {AxisX, AxisY},
}

// Unit returns the unit vector for the axis.
func (a Axis) Unit() math.Vec3 {
	switch a {
	case AxisX:
		return math.Vec3{X: 1}
	case AxisY:
		return math.Vec3{Y: 1}
	default:
		return math.Vec3{Z: 1}
	}
}

// Turn picks the next axis: one of the two axes orthogonal to a, chosen
// with equal probability from rng.
func (a Axis) Turn(rng *rand.Rand) Axis {
	return turns[a][rng.Intn(2)]
}

// String returns the axis name for logs and test failures.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}
