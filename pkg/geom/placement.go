package geom

import "github.com/go-gl/mathgl/mgl32"

// Placement is a rigid transform applied to a mesh before it is drawn.
type Placement struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// Identity returns a placement that leaves a mesh where it is.
func Identity() Placement {
	return Placement{Rotation: mgl32.QuatIdent()}
}

// At returns an unrotated placement at t.
func At(t mgl32.Vec3) Placement {
	return Placement{Translation: t, Rotation: mgl32.QuatIdent()}
}

// IsIdentity reports whether the placement neither moves nor rotates.
func (p Placement) IsIdentity() bool {
	return p.Translation == (mgl32.Vec3{}) && p.Rotation.Normalize().ApproxEqual(mgl32.QuatIdent())
}

// Mat4 returns the model matrix (translate * rotate).
func (p Placement) Mat4() mgl32.Mat4 {
	t := p.Translation
	return mgl32.Translate3D(t[0], t[1], t[2]).Mul4(p.Rotation.Normalize().Mat4())
}

// Apply transforms a point.
func (p Placement) Apply(v mgl32.Vec3) mgl32.Vec3 {
	return p.Rotation.Normalize().Rotate(v).Add(p.Translation)
}

// Piece is one renderable fragment of a puzzle.
type Piece struct {
	Mesh      *Mesh
	Placement Placement
}

// WorldPositions returns the mesh positions after placement.
func (pc Piece) WorldPositions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(pc.Mesh.Positions))
	for i, v := range pc.Mesh.Positions {
		out[i] = pc.Placement.Apply(v)
	}
	return out
}
