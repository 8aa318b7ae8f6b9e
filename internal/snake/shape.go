package snake

import (
	"math/rand"

	"github.com/Faultbox/snakecube/pkg/math"
)

// Vertex is one mesh vertex: absolute world position plus the texture
// coordinate of its corner on the face quad.
type Vertex struct {
	Position math.Vec3
	TexCoord math.Vec2
}

// GPU layout of an interleaved vertex: 3 position floats followed by
// 2 texture coordinate floats, tightly packed.
const (
	VertexFloats   = 5
	VertexStride   = VertexFloats * 4
	PositionOffset = 0
	TexCoordOffset = 3 * 4
)

// VerticesPerCube is the mesh cost of one cube: 6 faces, 2 triangles each.
const VerticesPerCube = 36

// Shape owns the generated mesh and its bounding box. It is immutable once
// Generate returns; the bounding box covers every vertex position and is
// what the renderer pivots the rotation on.
type Shape struct {
	Vertices []Vertex
	Bounds   Bounds
}

// faceCorners holds the four corner offsets of each cube face in cube-local
// space ([-1,1]^3 around the center). Every face is wound the same way seen
// from outside the cube, so back-face culling applies uniformly.
var faceCorners = [6][4]math.Vec3{
	// top
	{{X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}},
	// bottom
	{{X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1}},
	// right
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}},
	// left
	{{X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}},
	// back
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}},
	// front
	{{X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}},
}

// faceUVs maps the four face corners onto the unit quad.
var faceUVs = [4]math.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

// quadTriangles splits a quad's corners 0..3 into two triangles.
var quadTriangles = [6]int{0, 1, 2, 2, 3, 0}

// Generate walks the chain for the given segment lengths and builds the
// shape's triangle mesh and bounding box. It never fails: an empty segment
// list yields a shape with no vertices and an inverted bounding box, which
// callers must filter or tolerate.
//
// rng is advanced deterministically, so generating several shapes from one
// seeded source produces a different chain per shape while the whole batch
// stays reproducible from the single seed.
func Generate(segments []int, rng *rand.Rand) *Shape {
	centers := Walk(segments, rng)

	shape := &Shape{
		Vertices: make([]Vertex, 0, len(centers)*VerticesPerCube),
		Bounds:   NewBounds(),
	}
	for _, center := range centers {
		for _, corners := range faceCorners {
			shape.addFace(center, corners)
		}
	}
	return shape
}

// addFace appends the two triangles of one quad face and folds the new
// vertex positions into the bounding box.
func (s *Shape) addFace(center math.Vec3, corners [4]math.Vec3) {
	for _, i := range quadTriangles {
		p := corners[i].Add(center)
		s.Vertices = append(s.Vertices, Vertex{Position: p, TexCoord: faceUVs[i]})
		s.Bounds.Extend(p)
	}
}

// Interleave flattens the vertices into the tightly packed float32 layout
// the GPU buffer expects: x, y, z, u, v per vertex.
func (s *Shape) Interleave() []float32 {
	data := make([]float32, 0, len(s.Vertices)*VertexFloats)
	for _, v := range s.Vertices {
		data = append(data, v.Position.X, v.Position.Y, v.Position.Z, v.TexCoord.X, v.TexCoord.Y)
	}
	return data
}
