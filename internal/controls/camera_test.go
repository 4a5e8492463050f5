package controls

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRigStart(t *testing.T) {
	r := NewRig()
	if r.Position() != CameraStart {
		t.Errorf("start position = %v, want %v", r.Position(), CameraStart)
	}
	if got := r.Camera().Position; got != CameraStart {
		t.Errorf("engine camera = %v, want %v", got, CameraStart)
	}
}

func TestRigClamp(t *testing.T) {
	tests := []struct {
		name               string
		forward, right, up float64
		want               mgl32.Vec3
	}{
		{"far forward", 100, 0, 0, mgl32.Vec3{0, 2, -10}},
		{"far back", -100, 0, 0, mgl32.Vec3{0, 2, 10}},
		{"far right", 0, 100, 0, mgl32.Vec3{10, 2, 5}},
		{"far left", 0, -100, 0, mgl32.Vec3{-10, 2, 5}},
		{"too high", 0, 0, 100, mgl32.Vec3{0, 5, 5}},
		{"below ground", 0, 0, -100, mgl32.Vec3{0, 2, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig()
			r.Move(tt.forward, tt.right, tt.up)
			if !r.Position().ApproxEqualThreshold(tt.want, 1e-4) {
				t.Errorf("position = %v, want %v", r.Position(), tt.want)
			}
		})
	}
}

func TestRigTurn(t *testing.T) {
	r := NewRig()
	r.Turn(gomath.Pi / 2)

	f := r.Forward()
	if !f.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("forward after quarter turn = %v, want +X", f)
	}

	r.Turn(4 * gomath.Pi)
	if gomath.Abs(r.Yaw()-gomath.Pi/2) > 1e-9 {
		t.Errorf("yaw should wrap, got %v", r.Yaw())
	}
}

func TestRigViewLooksForward(t *testing.T) {
	r := NewRig()
	view := r.View()

	// A point straight ahead lands on the negative view-space z axis.
	ahead := r.Position().Add(r.Forward().Mul(10))
	p := view.Mul4x1(ahead.Vec4(1))
	if p.Z() >= 0 {
		t.Errorf("point ahead has view z %v, want negative", p.Z())
	}
	if gomath.Abs(float64(p.X())) > 1e-4 {
		t.Errorf("point ahead drifted sideways: x = %v", p.X())
	}
}
