package controls

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
)

// Camera limits. The viewer stays inside a small box near the ground.
var (
	CameraStart = mgl32.Vec3{0, 2, 5}
	CameraMin   = mgl32.Vec3{-10, 2, -10}
	CameraMax   = mgl32.Vec3{10, 5, 10}
)

// Camera motion rates, per second.
const (
	YawRate   = 1.2  // radians
	MoveSpeed = 4.0  // world units
	ClimbRate = 1.5  // world units
	LookPitch = 0.15 // fixed upward tilt, radians
)

// Rig is a yaw-only camera confined to the CameraMin/CameraMax box.
type Rig struct {
	pos mgl32.Vec3
	yaw float64
}

// NewRig returns a camera at CameraStart looking down -Z.
func NewRig() *Rig {
	return &Rig{pos: CameraStart}
}

// Position returns the camera's world position.
func (r *Rig) Position() mgl32.Vec3 {
	return r.pos
}

// Yaw returns the heading in radians; 0 looks down -Z.
func (r *Rig) Yaw() float64 {
	return r.yaw
}

// Forward returns the horizontal unit view direction.
func (r *Rig) Forward() mgl32.Vec3 {
	return mgl32.Vec3{float32(gomath.Sin(r.yaw)), 0, float32(-gomath.Cos(r.yaw))}
}

// Turn rotates the heading by delta radians, wrapped to [-pi, pi).
func (r *Rig) Turn(delta float64) {
	r.yaw = gomath.Remainder(r.yaw+delta, 2*gomath.Pi)
}

// Move translates the camera along its heading, sideways and up, then
// clamps it into the box.
func (r *Rig) Move(forward, right, up float64) {
	f := r.Forward()
	side := mgl32.Vec3{-f.Z(), 0, f.X()}
	r.pos = r.pos.
		Add(f.Mul(float32(forward))).
		Add(side.Mul(float32(right))).
		Add(mgl32.Vec3{0, float32(up), 0})
	r.clamp()
}

func (r *Rig) clamp() {
	for i := range r.pos {
		r.pos[i] = mgl32.Clamp(r.pos[i], CameraMin[i], CameraMax[i])
	}
}

// View returns the view matrix.
func (r *Rig) View() mgl32.Mat4 {
	f := r.Forward()
	target := r.pos.Add(f).Add(mgl32.Vec3{0, float32(gomath.Tan(LookPitch)), 0})
	return mgl32.LookAtV(r.pos, target, mgl32.Vec3{0, 1, 0})
}

// Camera returns the engine's view of the camera.
func (r *Rig) Camera() atmosphere.Camera {
	return atmosphere.Camera{Position: r.pos}
}
