package geom

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/twisty/pkg/atlas"
)

const eps = 1e-5

func approx(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

func testSlots() FaceSlots {
	return FaceSlots{0, 1, 2, 3, 4, 5}
}

func TestBoxBufferSizes(t *testing.T) {
	m := Box(mgl32.Vec3{0.5, 0.25, 1}, testSlots(), 7)

	if len(m.Positions) != 24 {
		t.Errorf("expected 24 positions, got %d", len(m.Positions))
	}
	if len(m.Normals) != 24 {
		t.Errorf("expected 24 normals, got %d", len(m.Normals))
	}
	if len(m.UVs) != 24 {
		t.Errorf("expected 24 uvs, got %d", len(m.UVs))
	}
	if len(m.Indices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx >= 24 {
			t.Errorf("index %d = %d out of range", i, idx)
		}
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestBoxOutwardNormals(t *testing.T) {
	for _, half := range []mgl32.Vec3{{0.5, 0.5, 0.5}, {0.1, 2, 0.3}, {3, 0.01, 1}} {
		m := Box(half, testSlots(), 7)
		if err := Outward(m); err != nil {
			t.Errorf("half %v: %v", half, err)
		}

		center := m.Centroid()
		for f := range NumFaces {
			var faceCenter mgl32.Vec3
			for v := range verticesPerQuad {
				faceCenter = faceCenter.Add(m.Positions[f*verticesPerQuad+v])
			}
			faceCenter = faceCenter.Mul(0.25)
			n := m.Normals[f*verticesPerQuad]
			if n.Dot(faceCenter.Sub(center)) <= 0 {
				t.Errorf("half %v face %s: normal %v points inward", half, Face(f), n)
			}
		}
	}
}

func TestBoxExtents(t *testing.T) {
	half := mgl32.Vec3{0.2, 0.3, 0.4}
	m := Box(half, testSlots(), 7)
	lo, hi := m.Bounds()

	for i := range 3 {
		if !approx(hi[i], half[i]) || !approx(lo[i], -half[i]) {
			t.Errorf("axis %d: bounds [%f, %f], want +/-%f", i, lo[i], hi[i], half[i])
		}
	}
}

func TestBoxFaceNormalsMatchFaceOrder(t *testing.T) {
	m := Box(mgl32.Vec3{1, 1, 1}, testSlots(), 7)
	want := [NumFaces]mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}

	for f := range NumFaces {
		for v := range verticesPerQuad {
			if got := m.Normals[f*verticesPerQuad+v]; got != want[f] {
				t.Errorf("face %s vertex %d: normal %v, want %v", Face(f), v, got, want[f])
			}
		}
	}
}

func TestBoxFaceUVs(t *testing.T) {
	slots := FaceSlots{6, 1, 6, 3, 4, 6}
	m := Box(mgl32.Vec3{1, 1, 1}, slots, 7)

	for f := range NumFaces {
		want := atlas.UV(slots[f], 7)
		for v := range verticesPerQuad {
			if got := m.UVs[f*verticesPerQuad+v]; got != want {
				t.Errorf("face %s vertex %d: uv %v, want %v", Face(f), v, got, want)
			}
		}
		if got := FaceSlot(m, Face(f), 7); got != slots[f] {
			t.Errorf("FaceSlot(%s) = %d, want %d", Face(f), got, slots[f])
		}
	}
}

func TestTetrahedron(t *testing.T) {
	colors := [TetrahedronFaces]mgl32.Vec4{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 0, 1}}
	m := Tetrahedron(1, colors)

	if m.VertexCount() != 12 || m.TriangleCount() != 4 {
		t.Fatalf("expected 12 vertices / 4 triangles, got %d / %d", m.VertexCount(), m.TriangleCount())
	}
	if m.HasUVs() {
		t.Error("tetrahedron should not carry UVs")
	}
	if err := Outward(m); err != nil {
		t.Errorf("Outward failed: %v", err)
	}

	// Bottom face normal is straight down.
	if n := m.Normals[TetraBottom*3]; !n.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, eps) {
		t.Errorf("bottom normal = %v, want (0,-1,0)", n)
	}

	// Every edge has unit length.
	for i := range m.TriangleCount() {
		a, b, c, _ := m.Triangle(i)
		for _, e := range []mgl32.Vec3{b.Sub(a), c.Sub(b), a.Sub(c)} {
			if !approx(e.Len(), 1) {
				t.Errorf("triangle %d: edge length %f, want 1", i, e.Len())
			}
		}
	}

	// Vertically symmetric about the origin.
	lo, hi := m.Bounds()
	if !approx(lo[1], -hi[1]) {
		t.Errorf("expected symmetric Y bounds, got [%f, %f]", lo[1], hi[1])
	}
	if !approx(hi[1]-lo[1], math32.Sqrt(6)/3) {
		t.Errorf("height = %f, want %f", hi[1]-lo[1], math32.Sqrt(6)/3)
	}

	for i, c := range m.Colors {
		if c != colors[i/3] {
			t.Errorf("vertex %d: color %v, want %v", i, c, colors[i/3])
		}
	}
}

func TestBipyramid(t *testing.T) {
	var colors [BipyramidFaces]mgl32.Vec4
	for i := range colors {
		colors[i] = mgl32.Vec4{float32(i) / 6, 0, 0, 1}
	}
	m := Bipyramid(1, colors)

	if m.TriangleCount() != 6 {
		t.Fatalf("expected 6 triangles, got %d", m.TriangleCount())
	}
	if err := Outward(m); err != nil {
		t.Errorf("Outward failed: %v", err)
	}

	lo, hi := m.Bounds()
	h := math32.Sqrt(6) / 3
	if !approx(hi[1], h) || !approx(lo[1], -h) {
		t.Errorf("apexes at [%f, %f], want +/-%f", lo[1], hi[1], h)
	}

	for i := range m.Normals {
		if !approx(m.Normals[i].Len(), 1) {
			t.Errorf("normal %d not unit length: %v", i, m.Normals[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Mesh)
	}{
		{"short normals", func(m *Mesh) { m.Normals = m.Normals[:3] }},
		{"short uvs", func(m *Mesh) { m.UVs = m.UVs[:1] }},
		{"short colors", func(m *Mesh) { m.Colors = make([]mgl32.Vec4, 2) }},
		{"ragged indices", func(m *Mesh) { m.Indices = m.Indices[:4] }},
		{"index out of range", func(m *Mesh) { m.Indices[5] = 24 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Box(mgl32.Vec3{1, 1, 1}, testSlots(), 7)
			tt.mutate(m)
			if err := m.Validate(); !errors.Is(err, ErrInvalidMesh) {
				t.Errorf("expected ErrInvalidMesh, got %v", err)
			}
		})
	}
}

func TestOutwardDetectsFlippedWinding(t *testing.T) {
	m := Box(mgl32.Vec3{1, 1, 1}, testSlots(), 7)
	m.Indices[1], m.Indices[2] = m.Indices[2], m.Indices[1]

	if err := Outward(m); !errors.Is(err, ErrInvalidMesh) {
		t.Errorf("expected ErrInvalidMesh for flipped triangle, got %v", err)
	}
}

func TestPlacement(t *testing.T) {
	id := Identity()
	if !id.IsIdentity() {
		t.Error("Identity() should report IsIdentity")
	}
	if (Placement{}).Apply(mgl32.Vec3{1, 2, 3}) != (mgl32.Vec3{1, 2, 3}) {
		t.Error("zero placement should not move points")
	}

	p := At(mgl32.Vec3{1, 2, 3})
	if p.IsIdentity() {
		t.Error("translated placement should not be identity")
	}
	got := p.Apply(mgl32.Vec3{1, 1, 1})
	if got != (mgl32.Vec3{2, 3, 4}) {
		t.Errorf("Apply = %v, want (2,3,4)", got)
	}

	m := p.Mat4()
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Errorf("Mat4 translation = (%f, %f, %f), want (1, 2, 3)", m[12], m[13], m[14])
	}

	rot := Placement{Rotation: mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0})}
	r := rot.Apply(mgl32.Vec3{1, 0, 0})
	if !r.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("rotated point = %v, want (0,0,-1)", r)
	}
}

func TestPieceWorldPositions(t *testing.T) {
	pc := Piece{Mesh: Box(mgl32.Vec3{1, 1, 1}, testSlots(), 7), Placement: At(mgl32.Vec3{10, 0, 0})}
	for i, p := range pc.WorldPositions() {
		if want := pc.Mesh.Positions[i].Add(mgl32.Vec3{10, 0, 0}); p != want {
			t.Errorf("vertex %d: %v, want %v", i, p, want)
		}
	}
}

func TestFaceString(t *testing.T) {
	if FaceFront.String() != "front" {
		t.Errorf("expected front, got %s", FaceFront)
	}
	if Face(9).String() != "invalid" {
		t.Errorf("expected invalid, got %s", Face(9))
	}
	if FaceBottom.Axis() != 1 {
		t.Errorf("expected bottom on Y axis, got %d", FaceBottom.Axis())
	}
}
