// Package geom builds the raw vertex, normal and index buffers for the solids
// puzzles are made of, and the placements that position them.
package geom

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidMesh is returned by Validate and Outward when a mesh breaks an
// invariant.
var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh is an indexed triangle list. Triangles are wound counter-clockwise when
// viewed from the side their normals point to.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2 // nil for flat-coloured solids
	Colors    []mgl32.Vec4 // per-vertex colour for solids without UVs
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// HasUVs reports whether the mesh carries texture coordinates.
func (m *Mesh) HasUVs() bool {
	return m.UVs != nil
}

// Validate checks buffer lengths and index bounds.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d positions", ErrInvalidMesh, len(m.Normals), n)
	}
	if m.UVs != nil && len(m.UVs) != n {
		return fmt.Errorf("%w: %d uvs for %d positions", ErrInvalidMesh, len(m.UVs), n)
	}
	if m.Colors != nil && len(m.Colors) != n {
		return fmt.Errorf("%w: %d colors for %d positions", ErrInvalidMesh, len(m.Colors), n)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

// Centroid returns the mean of all vertex positions.
func (m *Mesh) Centroid() mgl32.Vec3 {
	var sum mgl32.Vec3
	if len(m.Positions) == 0 {
		return sum
	}
	for _, p := range m.Positions {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float32(len(m.Positions)))
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return lo, hi
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return lo, hi
}

// Triangle returns the corner positions and the stored normal of the first
// corner for triangle i.
func (m *Mesh) Triangle(i int) (a, b, c, normal mgl32.Vec3) {
	i0, i1, i2 := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
	return m.Positions[i0], m.Positions[i1], m.Positions[i2], m.Normals[i0]
}

// Outward verifies that every triangle of a convex mesh faces away from its
// centroid and that its winding agrees with the stored normal.
func Outward(m *Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	center := m.Centroid()
	for i := range m.TriangleCount() {
		a, b, c, n := m.Triangle(i)
		mid := a.Add(b).Add(c).Mul(1.0 / 3)
		if n.Dot(mid.Sub(center)) <= 0 {
			return fmt.Errorf("%w: triangle %d normal %v points inward", ErrInvalidMesh, i, n)
		}
		if n.Dot(b.Sub(a).Cross(c.Sub(a))) <= 0 {
			return fmt.Errorf("%w: triangle %d wound against its normal", ErrInvalidMesh, i)
		}
	}
	return nil
}
