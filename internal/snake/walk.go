package snake

import (
	"math/rand"

	"github.com/Faultbox/snakecube/pkg/math"
)

// startAxis is the axis the first segment of every chain runs along.
const startAxis = AxisY

// Walk runs the constrained random walk and returns one center point per
// unit cube in the chain. Cubes have half-extent 1, so adjacent centers are
// exactly 2 units apart along the active axis and touch face to face.
//
// The walk starts at the origin heading along startAxis with a positive
// side sign. After each segment it turns onto one of the two orthogonal
// axes and, independently, flips the side sign with probability 1/2. No
// turn or flip happens after the final segment. A non-positive segment
// length places no cubes but still performs the turn and flip, so the
// remainder of the chain is unaffected by the degenerate entry.
//
// Walk draws from rng in a fixed order (turn, then flip, per transition),
// so the same seed and segment list reproduce the same chain exactly.
func Walk(segments []int, rng *rand.Rand) []math.Vec3 {
	var center math.Vec3
	axis := startAxis
	side := float32(1)

	var centers []math.Vec3
	for i, length := range segments {
		step := axis.Unit().Scale(2 * side)
		for j := 0; j < length; j++ {
			centers = append(centers, center)
			center = center.Add(step)
		}
		if i == len(segments)-1 {
			break
		}
		axis = axis.Turn(rng)
		if rng.Intn(2) == 1 {
			side = -side
		}
	}
	return centers
}
