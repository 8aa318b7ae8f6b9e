package snake

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/snakecube/pkg/math"
)

func TestGenerateSingleCube(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	shape := Generate([]int{1}, rng)

	if got := len(shape.Vertices); got != VerticesPerCube {
		t.Fatalf("got %d vertices, want %d", got, VerticesPerCube)
	}

	wantMin := math.Vec3{X: -1, Y: -1, Z: -1}
	wantMax := math.Vec3{X: 1, Y: 1, Z: 1}
	if shape.Bounds.Min != wantMin {
		t.Errorf("Bounds.Min = %v, want %v", shape.Bounds.Min, wantMin)
	}
	if shape.Bounds.Max != wantMax {
		t.Errorf("Bounds.Max = %v, want %v", shape.Bounds.Max, wantMax)
	}
}

func TestGenerateVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		segments []int
		cubes    int
	}{
		{"single cube", []int{1}, 1},
		{"two then one", []int{2, 1}, 3},
		{"reference segments", []int{3, 3, 2, 3}, 11},
	}

	rng := rand.New(rand.NewSource(2))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := Generate(tt.segments, rng)
			if got, want := len(shape.Vertices), tt.cubes*VerticesPerCube; got != want {
				t.Errorf("got %d vertices, want %d", got, want)
			}
		})
	}
}

func TestGenerateBoundsCoverEveryVertex(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	shape := Generate([]int{3, 3, 2, 3}, rng)

	if !shape.Bounds.Valid() {
		t.Fatalf("bounds %+v should be valid for a non-empty shape", shape.Bounds)
	}

	b := shape.Bounds
	for i, v := range shape.Vertices {
		p := v.Position
		if p.X < b.Min.X || p.Y < b.Min.Y || p.Z < b.Min.Z ||
			p.X > b.Max.X || p.Y > b.Max.Y || p.Z > b.Max.Z {
			t.Fatalf("vertex %d at %v outside bounds %+v", i, p, b)
		}
	}

	// The box must be tight: every face of it touches some vertex.
	touched := func(pick func(math.Vec3) bool) bool {
		for _, v := range shape.Vertices {
			if pick(v.Position) {
				return true
			}
		}
		return false
	}
	if !touched(func(p math.Vec3) bool { return p.X == b.Min.X }) ||
		!touched(func(p math.Vec3) bool { return p.X == b.Max.X }) {
		t.Error("bounds are not tight along X")
	}
}

func TestGenerateEmptySegments(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	shape := Generate(nil, rng)

	if len(shape.Vertices) != 0 {
		t.Errorf("got %d vertices for empty segments, want 0", len(shape.Vertices))
	}
	if shape.Bounds.Valid() {
		t.Errorf("bounds %+v should be degenerate (min > max) for an empty shape", shape.Bounds)
	}
}

func TestGenerateDeterministicGivenSeed(t *testing.T) {
	segments := []int{3, 3, 2, 3}

	a := Generate(segments, rand.New(rand.NewSource(42)))
	b := Generate(segments, rand.New(rand.NewSource(42)))

	if a.Bounds != b.Bounds {
		t.Errorf("bounds differ: %+v vs %+v", a.Bounds, b.Bounds)
	}
	if len(a.Vertices) != len(b.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(a.Vertices), len(b.Vertices))
	}
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs: %+v vs %+v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestGenerateTexCoordPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	shape := Generate([]int{1}, rng)

	// Every face quad carries the same 6-vertex texcoord sequence.
	want := [6]math.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	for face := 0; face < 6; face++ {
		for i := 0; i < 6; i++ {
			got := shape.Vertices[face*6+i].TexCoord
			if got != want[i] {
				t.Errorf("face %d vertex %d texcoord = %v, want %v", face, i, got, want[i])
			}
		}
	}
}

func TestGenerateFacesWindOutward(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	shape := Generate([]int{1}, rng)

	// For a cube centered at the origin, each triangle's normal must point
	// away from the center or back-face culling would eat the face.
	for i := 0; i+2 < len(shape.Vertices); i += 3 {
		p0 := shape.Vertices[i].Position
		p1 := shape.Vertices[i+1].Position
		p2 := shape.Vertices[i+2].Position

		normal := p1.Sub(p0).Cross(p2.Sub(p0))
		centroid := p0.Add(p1).Add(p2).Scale(1.0 / 3.0)
		if normal.Dot(centroid) <= 0 {
			t.Errorf("triangle %d winds inward (normal %v at %v)", i/3, normal, centroid)
		}
	}
}

func TestInterleaveLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	shape := Generate([]int{2, 1}, rng)

	data := shape.Interleave()
	if got, want := len(data), len(shape.Vertices)*VertexFloats; got != want {
		t.Fatalf("interleaved length = %d, want %d", got, want)
	}

	for i, v := range shape.Vertices {
		base := i * VertexFloats
		if data[base] != v.Position.X || data[base+1] != v.Position.Y || data[base+2] != v.Position.Z {
			t.Fatalf("vertex %d position mismatch in interleaved data", i)
		}
		if data[base+3] != v.TexCoord.X || data[base+4] != v.TexCoord.Y {
			t.Fatalf("vertex %d texcoord mismatch in interleaved data", i)
		}
	}
}
