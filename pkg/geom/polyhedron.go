package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Face counts of the pyramid solids.
const (
	TetrahedronFaces = 4
	BipyramidFaces   = 6
)

// Tetrahedron face order.
const (
	TetraBottom = iota
	TetraFront
	TetraRight
	TetraLeft
)

// Bipyramid face order: the upper three faces meet at the top apex, the lower
// three at the bottom apex.
const (
	BipyramidUpperFront = iota
	BipyramidUpperRight
	BipyramidUpperLeft
	BipyramidLowerFront
	BipyramidLowerRight
	BipyramidLowerLeft
)

// triangleBase is the equilateral base shared by both solids.
type triangleBase struct {
	back, left, right mgl32.Vec3
}

// tetraHeight is the distance from a regular tetrahedron's base to its apex.
func tetraHeight(side float32) float32 {
	return (side / 3) * math32.Sqrt(6)
}

// newTriangleBase places an equilateral triangle of the given side in the
// plane y = planeY, centroid on the Y axis, front edge towards +Z.
func newTriangleBase(side, planeY float32) triangleBase {
	half := side / 2
	faceHeight := half * math32.Sqrt(3)
	third := faceHeight / 3

	return triangleBase{
		back:  mgl32.Vec3{0, planeY, -2 * third},
		left:  mgl32.Vec3{-half, planeY, third},
		right: mgl32.Vec3{half, planeY, third},
	}
}

// Tetrahedron builds a regular tetrahedron of the given edge length, centred
// vertically on the origin. Faces are flat coloured from colors, indexed by
// TetraBottom..TetraLeft; no UVs are produced.
func Tetrahedron(side float32, colors [TetrahedronFaces]mgl32.Vec4) *Mesh {
	halfHeight := tetraHeight(side) / 2
	b := newTriangleBase(side, -halfHeight)
	top := mgl32.Vec3{0, halfHeight, 0}

	return flatPolyhedron([][3]mgl32.Vec3{
		TetraBottom: {b.back, b.right, b.left},
		TetraFront:  {top, b.left, b.right},
		TetraRight:  {top, b.right, b.back},
		TetraLeft:   {top, b.back, b.left},
	}, colors[:])
}

// Bipyramid builds two regular tetrahedra glued on a shared base lying in the
// plane y = 0, apexes at +/- the tetrahedron height.
func Bipyramid(side float32, colors [BipyramidFaces]mgl32.Vec4) *Mesh {
	height := tetraHeight(side)
	b := newTriangleBase(side, 0)
	top := mgl32.Vec3{0, height, 0}
	bottom := mgl32.Vec3{0, -height, 0}

	return flatPolyhedron([][3]mgl32.Vec3{
		BipyramidUpperFront: {top, b.left, b.right},
		BipyramidUpperRight: {top, b.right, b.back},
		BipyramidUpperLeft:  {top, b.back, b.left},
		BipyramidLowerFront: {bottom, b.right, b.left},
		BipyramidLowerRight: {bottom, b.back, b.right},
		BipyramidLowerLeft:  {bottom, b.left, b.back},
	}, colors[:])
}

// flatPolyhedron emits one unshared triangle per face. The face normal is the
// normalised cross product of the two edges leaving the face's first vertex.
func flatPolyhedron(faces [][3]mgl32.Vec3, colors []mgl32.Vec4) *Mesh {
	n := len(faces) * 3
	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, n),
		Normals:   make([]mgl32.Vec3, 0, n),
		Colors:    make([]mgl32.Vec4, 0, n),
		Indices:   make([]uint32, 0, n),
	}

	for i, f := range faces {
		apex := f[0]
		normal := f[1].Sub(apex).Cross(f[2].Sub(apex)).Normalize()
		for _, p := range f {
			m.Indices = append(m.Indices, uint32(len(m.Positions)))
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, normal)
			m.Colors = append(m.Colors, colors[i])
		}
	}

	return m
}
