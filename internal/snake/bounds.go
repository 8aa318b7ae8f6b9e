package snake

import (
	gomath "math"

	"github.com/Faultbox/snakecube/pkg/math"
)

// Bounds is an axis-aligned bounding box accumulated over vertex positions.
type Bounds struct {
	Min, Max math.Vec3
}

// NewBounds returns an empty box with Min at +Inf and Max at -Inf, so the
// first Extend sets both corners. A box that was never extended stays
// inverted (Min > Max).
func NewBounds() Bounds {
	inf := float32(gomath.Inf(1))
	return Bounds{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend grows the box to contain p.
func (b *Bounds) Extend(p math.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Valid reports whether the box contains at least one point.
func (b Bounds) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}
