package geom

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/twisty/pkg/atlas"
)

// Face identifies one side of a box. The order is shared with colour maps.
type Face int

const (
	FaceRight  Face = iota // +X
	FaceLeft               // -X
	FaceTop                // +Y
	FaceBottom             // -Y
	FaceFront              // +Z
	FaceBack               // -Z

	NumFaces = 6
)

var faceNames = [NumFaces]string{"right", "left", "top", "bottom", "front", "back"}

func (f Face) String() string {
	if f < 0 || f >= NumFaces {
		return "invalid"
	}
	return faceNames[f]
}

// Axis returns the axis index (0=X, 1=Y, 2=Z) the face is perpendicular to.
func (f Face) Axis() int {
	return int(f) / 2
}

// FaceSlots assigns an atlas slot to every box face, indexed by Face.
type FaceSlots [NumFaces]atlas.Slot

const (
	verticesPerQuad = 4
	indicesPerQuad  = 6
	boxVertices     = NumFaces * verticesPerQuad
	boxIndices      = NumFaces * indicesPerQuad
)

// quadFrame spans a face: normal plus two tangents with u x v == normal, so
// the corner order below is counter-clockwise seen from outside.
type quadFrame struct {
	normal, u, v mgl32.Vec3
}

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

var boxFrames = [NumFaces]quadFrame{
	FaceRight:  {axisX, axisY, axisZ},
	FaceLeft:   {axisX.Mul(-1), axisZ, axisY},
	FaceTop:    {axisY, axisZ, axisX},
	FaceBottom: {axisY.Mul(-1), axisX, axisZ},
	FaceFront:  {axisZ, axisX, axisY},
	FaceBack:   {axisZ.Mul(-1), axisY, axisX},
}

// quadCorners are (u, v) signs for the four vertices of a face block.
var quadCorners = [verticesPerQuad][2]float32{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// quadIndices are relative to a face block.
var quadIndices = [indicesPerQuad]uint32{0, 2, 1, 1, 2, 3}

// Box builds a closed box centred on the origin with the given half-extents.
// Each face has four unshared vertices carrying the face normal and the UV of
// its slot in an atlas of slotCount colours, so the face renders flat.
func Box(half mgl32.Vec3, faces FaceSlots, slotCount int) *Mesh {
	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, boxVertices),
		Normals:   make([]mgl32.Vec3, 0, boxVertices),
		UVs:       make([]mgl32.Vec2, 0, boxVertices),
		Indices:   make([]uint32, 0, boxIndices),
	}

	for f, frame := range boxFrames {
		base := uint32(len(m.Positions))
		uv := atlas.UV(faces[f], slotCount)

		for _, c := range quadCorners {
			dir := frame.normal.Add(frame.u.Mul(c[0])).Add(frame.v.Mul(c[1]))
			m.Positions = append(m.Positions, mulElem(dir, half))
			m.Normals = append(m.Normals, frame.normal)
			m.UVs = append(m.UVs, uv)
		}
		for _, i := range quadIndices {
			m.Indices = append(m.Indices, base+i)
		}
	}

	return m
}

// FaceSlot returns the atlas slot a box face samples, recovered from its UVs.
func FaceSlot(m *Mesh, f Face, slotCount int) atlas.Slot {
	return atlas.SlotAt(m.UVs[int(f)*verticesPerQuad][0], slotCount)
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
