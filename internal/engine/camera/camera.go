// Package camera provides the viewer's cameras: a static camera looking at the
// puzzle, a free fly camera for inspection, and the drag rotation applied to
// the puzzle itself.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects the active camera.
type Mode int

const (
	ModeStatic Mode = iota
	ModeFly
)

func (m Mode) String() string {
	if m == ModeFly {
		return "fly"
	}
	return "static"
}

// Limits.
const (
	FlyPitchLimit  float32 = 1.5
	ViewPitchLimit float32 = math32.Pi / 4
	tau            float32 = 2 * math32.Pi

	MinDistance     float32 = 1.5
	MaxDistance     float32 = 50
	ZoomSensitivity float32 = 0.1
)

var up = mgl32.Vec3{0, 1, 0}

// StaticCamera looks at a fixed target from a fixed position.
type StaticCamera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// NewStaticCamera places the camera on +Z at the given distance, looking at
// the origin.
func NewStaticCamera(distance float32) StaticCamera {
	return StaticCamera{Position: mgl32.Vec3{0, 0, distance}}
}

// ViewMatrix returns the view matrix for this camera.
func (c StaticCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, up)
}

// Zoom moves the camera along its line of sight by a fraction of the current
// distance, keeping it between MinDistance and MaxDistance.
func (c *StaticCamera) Zoom(delta float32) {
	offset := c.Position.Sub(c.Target)
	distance := offset.Len()
	if distance == 0 {
		return
	}
	next := distance - delta*distance*ZoomSensitivity
	next = mgl32.Clamp(next, MinDistance, MaxDistance)
	c.Position = c.Target.Add(offset.Mul(next / distance))
}

// Orientation returns the world rotation of the camera. The camera looks down
// its local -Z axis.
func (c StaticCamera) Orientation() mgl32.Quat {
	f := c.Target.Sub(c.Position).Normalize()
	r := f.Cross(up).Normalize()
	u := r.Cross(f)
	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(r, u, f.Mul(-1)).Mat4())
}

// FlyCamera moves freely. Pitch and yaw are applied on top of the
// orientation it started from.
type FlyCamera struct {
	Position mgl32.Vec3
	Pitch    float32
	Yaw      float32

	MoveSpeed   float32
	Sensitivity float32

	base mgl32.Quat
}

// NewFlyCamera creates a fly camera starting at the static camera's pose.
func NewFlyCamera(from StaticCamera, moveSpeed, sensitivity float32) *FlyCamera {
	c := &FlyCamera{MoveSpeed: moveSpeed, Sensitivity: sensitivity}
	c.Reset(from)
	return c
}

// Reset moves the camera back to a static pose and clears pitch and yaw.
func (c *FlyCamera) Reset(from StaticCamera) {
	c.Position = from.Position
	c.base = from.Orientation()
	c.Pitch = 0
	c.Yaw = 0
}

// Look turns the camera by a mouse delta in pixels over dt seconds.
func (c *FlyCamera) Look(dx, dy, dt float32) {
	c.Pitch -= dy * dt * c.Sensitivity
	c.Yaw -= dx * dt * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -FlyPitchLimit, FlyPitchLimit)
}

// Rotation returns the current world orientation.
func (c *FlyCamera) Rotation() mgl32.Quat {
	yaw := mgl32.QuatRotate(c.Yaw, up)
	pitch := mgl32.QuatRotate(c.Pitch, mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch).Mul(c.base)
}

// Forward returns the viewing direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	return c.Rotation().Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the camera's right direction.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return c.Rotation().Rotate(mgl32.Vec3{1, 0, 0})
}

// Move translates the camera. forward and right follow the view, lift
// follows world Y. The combined direction is normalised so diagonal motion is
// not faster.
func (c *FlyCamera) Move(forward, right, lift, dt float32) {
	dir := c.Forward().Mul(forward).
		Add(c.Right().Mul(right)).
		Add(up.Mul(lift))
	if dir.Len() < 1e-6 {
		return
	}
	c.Position = c.Position.Add(dir.Normalize().Mul(dt * c.MoveSpeed))
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	p := c.Position
	return c.Rotation().Conjugate().Mat4().Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}

// ViewRotation is the drag rotation applied to the puzzle in static mode.
type ViewRotation struct {
	Pitch       float32
	Yaw         float32
	Sensitivity float32
}

// Drag rotates by a mouse delta in pixels over dt seconds. Pitch is clamped
// to a quarter turn either way, yaw wraps within one full turn.
func (v *ViewRotation) Drag(dx, dy, dt float32) {
	v.Pitch += dy * dt * v.Sensitivity
	v.Yaw += dx * dt * v.Sensitivity

	v.Pitch = mgl32.Clamp(v.Pitch, -ViewPitchLimit, ViewPitchLimit)
	for math32.Abs(v.Yaw) > tau {
		if v.Yaw > 0 {
			v.Yaw -= tau
		} else {
			v.Yaw += tau
		}
	}
}

// Quat returns the rotation, pitch about X applied after yaw about Y.
func (v ViewRotation) Quat() mgl32.Quat {
	pitch := mgl32.QuatRotate(v.Pitch, mgl32.Vec3{1, 0, 0})
	yaw := mgl32.QuatRotate(v.Yaw, up)
	return pitch.Mul(yaw)
}

// Mat4 returns the rotation as a model matrix.
func (v ViewRotation) Mat4() mgl32.Mat4 {
	return v.Quat().Mat4()
}

// Rig holds every camera and switches between them.
type Rig struct {
	Mode   Mode
	Static StaticCamera
	Fly    *FlyCamera
	View   ViewRotation

	FOV  float32 // Vertical field of view in degrees
	Near float32
	Far  float32
}

// NewRig creates a rig in static mode.
func NewRig(distance, fov, moveSpeed, sensitivity float32) *Rig {
	static := NewStaticCamera(distance)
	return &Rig{
		Mode:   ModeStatic,
		Static: static,
		Fly:    NewFlyCamera(static, moveSpeed, sensitivity),
		View:   ViewRotation{Sensitivity: sensitivity},
		FOV:    fov,
		Near:   0.1,
		Far:    100,
	}
}

// Toggle switches between static and fly mode. Entering fly mode starts from
// the static pose.
func (r *Rig) Toggle() Mode {
	if r.Mode == ModeStatic {
		r.Fly.Reset(r.Static)
		r.Mode = ModeFly
	} else {
		r.Mode = ModeStatic
	}
	return r.Mode
}

// ViewMatrix returns the active camera's view matrix.
func (r *Rig) ViewMatrix() mgl32.Mat4 {
	if r.Mode == ModeFly {
		return r.Fly.ViewMatrix()
	}
	return r.Static.ViewMatrix()
}

// EyePosition returns the active camera's position.
func (r *Rig) EyePosition() mgl32.Vec3 {
	if r.Mode == ModeFly {
		return r.Fly.Position
	}
	return r.Static.Position
}

// Projection returns the perspective matrix for a viewport.
func (r *Rig) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(r.FOV), aspect, r.Near, r.Far)
}
