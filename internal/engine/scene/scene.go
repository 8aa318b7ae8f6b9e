// Package scene owns the generated shapes and renders them in a grid of
// viewports, one cell per shape.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/snakecube/internal/engine/camera"
	"github.com/Faultbox/snakecube/internal/engine/mesh"
	"github.com/Faultbox/snakecube/internal/engine/scene/shaders"
	"github.com/Faultbox/snakecube/internal/engine/shader"
	"github.com/Faultbox/snakecube/internal/logger"
	"github.com/Faultbox/snakecube/internal/snake"
	"github.com/Faultbox/snakecube/pkg/math"
)

// Columns is the number of viewport cells per grid row.
const Columns = 3

// spinSpeed is the rotation rate in radians per second.
const spinSpeed = -1.5

// spinAxis is the diagonal every shape rotates about.
var spinAxis = math.Vec3{X: 1, Y: 1, Z: 1}.Normalize()

// Config holds scene construction settings.
type Config struct {
	// ShapeCount is the number of independently randomized shapes.
	ShapeCount int
	// Segments is the run length of each straight segment, shared by all
	// shapes.
	Segments []int
	// Seed seeds the single random source the shapes are generated from.
	Seed int64
}

// shapeEntry pairs a GPU mesh with the bounding box its rotation pivots on.
type shapeEntry struct {
	mesh   *mesh.Mesh
	bounds snake.Bounds
}

// Scene holds the generated shapes and the shared shape program.
type Scene struct {
	program uint32
	locMVP  int32
	camera  camera.Camera
	shapes  []shapeEntry
}

// New compiles the shared shape program, generates cfg.ShapeCount shapes
// and uploads their meshes. All shapes draw from ONE random source seeded
// with cfg.Seed: each shape gets a different chain, but the whole scene is
// reproducible from the single seed.
func New(cfg Config) (*Scene, error) {
	program, err := shader.CompileProgram(shaders.ShapeVertexShader, shaders.ShapeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("shape shader: %w", err)
	}

	s := &Scene{
		program: program,
		locMVP:  shader.GetUniform(program, "mvp"),
		camera:  camera.Default(),
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.ShapeCount; i++ {
		shape := snake.Generate(cfg.Segments, rng)
		if len(shape.Vertices) == 0 {
			logger.Warn("skipping empty shape", zap.Int("index", i), zap.Ints("segments", cfg.Segments))
			continue
		}

		m := mesh.New()
		m.SetVertexCount(len(shape.Vertices))
		m.SetVertexSize(snake.VertexStride)
		m.AddVertexAttribute(3, gl.FLOAT, snake.PositionOffset)
		m.AddVertexAttribute(2, gl.FLOAT, snake.TexCoordOffset)
		m.Upload(shape.Interleave())

		s.shapes = append(s.shapes, shapeEntry{mesh: m, bounds: shape.Bounds})

		logger.Debug("shape generated",
			zap.Int("index", i),
			zap.Int("vertices", len(shape.Vertices)),
		)
	}

	logger.Info("scene ready",
		zap.Int("shapes", len(s.shapes)),
		zap.Ints("segments", cfg.Segments),
		zap.Int64("seed", cfg.Seed),
	)

	return s, nil
}

// ShapeCount returns the number of drawable shapes in the scene.
func (s *Scene) ShapeCount() int {
	return len(s.shapes)
}

// RenderFrame draws every shape into its grid cell. Each shape rotates
// about the (1,1,1) diagonal at spinSpeed, pivoted on the center of its own
// bounding box. canvasW and canvasH are the drawable size in pixels.
func (s *Scene) RenderFrame(elapsed float64, canvasW, canvasH int) {
	if len(s.shapes) == 0 || canvasW <= 0 || canvasH <= 0 {
		return
	}

	gl.UseProgram(s.program)

	rows := (len(s.shapes) + Columns - 1) / Columns
	cellW := canvasW / Columns
	cellH := canvasH / rows
	if cellW <= 0 || cellH <= 0 {
		return
	}

	view := s.camera.ViewMatrix()
	projection := s.camera.ProjectionMatrix(float32(cellW) / float32(cellH))
	rotation := math.RotateAxis(spinAxis, float32(spinSpeed*elapsed))

	for i, entry := range s.shapes {
		x := (i % Columns) * cellW
		y := (i / Columns) * cellH
		gl.Viewport(int32(x), int32(y), int32(cellW), int32(cellH))

		pivot := entry.bounds.Center()
		model := rotation.Mul(math.Translate(-pivot.X, -pivot.Y, -pivot.Z))
		mvp := projection.Mul(view).Mul(model)
		gl.UniformMatrix4fv(s.locMVP, 1, false, mvp.Ptr())

		entry.mesh.Draw(gl.TRIANGLES)
	}
}

// Close releases the meshes and the shape program.
func (s *Scene) Close() {
	for _, entry := range s.shapes {
		entry.mesh.Delete()
	}
	s.shapes = nil

	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
