// Package mesh wraps an OpenGL vertex buffer behind a small sink interface:
// declare the vertex layout, hand over the data, draw.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute describes one vertex attribute within the interleaved layout.
type Attribute struct {
	Components int32  // number of components, e.g. 3 for a position
	Type       uint32 // component type, e.g. gl.FLOAT
	Offset     int    // byte offset within a vertex
}

// Mesh is a GPU-resident vertex buffer with a declared attribute layout.
type Mesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
	stride      int32
	attrs       []Attribute
}

// New returns an empty mesh. Declare the layout with SetVertexCount,
// SetVertexSize and AddVertexAttribute, then call Upload.
func New() *Mesh {
	return &Mesh{}
}

// SetVertexCount sets the number of vertices in the buffer.
func (m *Mesh) SetVertexCount(n int) {
	m.vertexCount = int32(n)
}

// SetVertexSize sets the stride of one vertex in bytes.
func (m *Mesh) SetVertexSize(bytes int) {
	m.stride = int32(bytes)
}

// AddVertexAttribute appends an attribute descriptor. Attributes are bound
// to shader locations in the order they are added.
func (m *Mesh) AddVertexAttribute(components int32, glType uint32, offset int) {
	m.attrs = append(m.attrs, Attribute{
		Components: components,
		Type:       glType,
		Offset:     offset,
	})
}

// Upload creates the VAO/VBO and uploads the interleaved vertex data with
// the declared layout. Must be called on the GL thread after the layout is
// declared. An empty data slice is allowed and produces a mesh that draws
// nothing.
func (m *Mesh) Upload(data []float32) {
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	}

	for i, attr := range m.attrs {
		gl.VertexAttribPointerWithOffset(uint32(i), attr.Components, attr.Type, false, m.stride, uintptr(attr.Offset))
		gl.EnableVertexAttribArray(uint32(i))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Draw issues one draw call over the whole buffer with the given primitive
// topology (e.g. gl.TRIANGLES).
func (m *Mesh) Draw(mode uint32) {
	if m.vertexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(mode, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// VertexCount returns the number of vertices in the buffer.
func (m *Mesh) VertexCount() int {
	return int(m.vertexCount)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	m.vertexCount = 0
}
