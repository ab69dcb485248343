package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/twisty/pkg/geom"
)

// Interleaved vertex layout: position, normal, uv, colour.
const (
	positionOffset = 0
	normalOffset   = 3
	uvOffset       = 6
	colorOffset    = 8
	vertexFloats   = 12
	vertexStride   = vertexFloats * 4
)

var white = mgl32.Vec4{1, 1, 1, 1}

// gpuMesh is one uploaded piece.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	model         mgl32.Mat4
	textured      bool
}

// packVertices interleaves a mesh for upload. Missing UVs become (0, 0) and
// missing colours become white.
func packVertices(m *geom.Mesh) []float32 {
	n := m.VertexCount()
	out := make([]float32, n*vertexFloats)
	for i := range n {
		v := out[i*vertexFloats : (i+1)*vertexFloats]
		copy(v[positionOffset:], m.Positions[i][:])
		copy(v[normalOffset:], m.Normals[i][:])
		if m.HasUVs() {
			copy(v[uvOffset:], m.UVs[i][:])
		}
		c := white
		if len(m.Colors) == n {
			c = m.Colors[i]
		}
		copy(v[colorOffset:], c[:])
	}
	return out
}

func uploadMesh(pc geom.Piece) (*gpuMesh, error) {
	if err := pc.Mesh.Validate(); err != nil {
		return nil, err
	}

	vertices := packVertices(pc.Mesh)
	indices := pc.Mesh.Indices

	m := &gpuMesh{
		indexCount: int32(len(indices)),
		model:      pc.Placement.Mat4(),
		textured:   pc.Mesh.HasUVs(),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	attribs := []struct {
		loc, size, offset uint32
	}{
		{0, 3, positionOffset},
		{1, 3, normalOffset},
		{2, 2, uvOffset},
		{3, 4, colorOffset},
	}
	for _, a := range attribs {
		gl.VertexAttribPointerWithOffset(a.loc, int32(a.size), gl.FLOAT, false, vertexStride, uintptr(a.offset*4))
		gl.EnableVertexAttribArray(a.loc)
	}

	gl.BindVertexArray(0)
	return m, nil
}

func (m *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
