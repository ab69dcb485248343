package layout

import "github.com/go-gl/mathgl/mgl32"

// MirrorDimension is the only size a mirror cube comes in.
const MirrorDimension = 3

// ThicknessTable holds full cubie side lengths per axis (X, Y, Z) and per
// layer: index 0 is the positive outer layer, 1 the middle, 2 the negative
// outer layer.
type ThicknessTable [3][MirrorDimension]float32

// Mirror lays out a 3×3×3 grid whose layers have different thicknesses. The
// two outer layers of an axis plus its middle layer and two gaps add up to
// TotalSide, so the shell still spans [-TotalSide/2, TotalSide/2].
type Mirror struct {
	Table     ThicknessTable
	TotalSide float32
	Gap       float32
}

// Size returns the full side lengths of cell c.
func (m Mirror) Size(c Cell) mgl32.Vec3 {
	var s mgl32.Vec3
	for axis := range 3 {
		s[axis] = m.Table[axis][c.Coord(axis)-1]
	}
	return s
}

// HalfExtents returns half of Size.
func (m Mirror) HalfExtents(c Cell) mgl32.Vec3 {
	return m.Size(c).Mul(0.5)
}

// Translation returns the centre of cell c. The middle layer is pushed
// towards the thinner outer layer so both outer layers stay flush with the
// bounding box.
func (m Mirror) Translation(c Cell) mgl32.Vec3 {
	var t mgl32.Vec3
	for axis := range 3 {
		layers := m.Table[axis]
		layer := c.Coord(axis) - 1
		halfMiddle := layers[1] / 2

		step := float32(layer - 1)
		reach := layers[layer]/2 + halfMiddle + m.Gap
		offset := m.TotalSide/2 - (layers[0] + halfMiddle + m.Gap)

		t[axis] = -(step*reach - offset)
	}
	return t
}

// Span returns the extent an axis covers: both outer layers, the middle layer
// and the two gaps between them.
func (m Mirror) Span(axis int) float32 {
	l := m.Table[axis]
	return l[0] + l[1] + l[2] + 2*m.Gap
}
