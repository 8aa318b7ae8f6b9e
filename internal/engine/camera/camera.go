// Package camera provides the fixed look-at camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/snakecube/pkg/math"
)

// Camera is a fixed perspective camera looking from Eye toward Target.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	FovY float32 // vertical field of view, radians
	Near float32
	Far  float32
}

// Default returns the camera every viewport cell uses: pulled back along
// -Z, looking at the origin.
func Default() Camera {
	return Camera{
		Eye:  math.Vec3{Z: -18},
		Up:   math.Vec3{Y: 1},
		FovY: float32(45 * gomath.Pi / 180),
		Near: 0.1,
		Far:  100,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for a viewport aspect
// ratio (width/height).
func (c Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}
