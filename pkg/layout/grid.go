package layout

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/twisty/pkg/atlas"
	"github.com/Faultbox/twisty/pkg/geom"
)

// Grid lays out uniform cubies with a fixed gap so the whole puzzle spans
// TotalSide on every axis, centred on the origin.
type Grid struct {
	Dimension int
	TotalSide float32
	Gap       float32
}

// CellSize is the edge length of one cubie.
func (g Grid) CellSize() float32 {
	d := float32(g.Dimension)
	return (g.TotalSide - (d-1)*g.Gap) / d
}

// HalfExtents returns the half-extents of every cubie.
func (g Grid) HalfExtents() mgl32.Vec3 {
	h := g.CellSize() / 2
	return mgl32.Vec3{h, h, h}
}

// Translation returns the centre of cell c.
func (g Grid) Translation(c Cell) mgl32.Vec3 {
	l := g.CellSize()
	offset := g.Gap + (g.TotalSide+l)/2

	var t mgl32.Vec3
	for axis := range 3 {
		i := float32(c.Coord(axis))
		t[axis] = -(i*(l+g.Gap) - offset)
	}
	return t
}

// FaceSlots paints the faces of c that lie on the outside of a grid of the
// given dimension with painted[face]; every other face gets interior. Layer 1
// shows the positive face of its axis and layer d the negative one, so a
// single-cell grid is painted on all six faces.
func FaceSlots(c Cell, dimension int, painted geom.FaceSlots, interior atlas.Slot) geom.FaceSlots {
	var out geom.FaceSlots
	for axis := range 3 {
		pos, neg := geom.Face(2*axis), geom.Face(2*axis+1)
		out[pos], out[neg] = interior, interior

		v := c.Coord(axis)
		if v == 1 {
			out[pos] = painted[pos]
		}
		if v == dimension {
			out[neg] = painted[neg]
		}
	}
	return out
}

// PaintedFaces counts the faces of slots that differ from interior.
func PaintedFaces(slots geom.FaceSlots, interior atlas.Slot) int {
	n := 0
	for _, s := range slots {
		if s != interior {
			n++
		}
	}
	return n
}
