package render

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
	"github.com/Faultbox/skyoptics/internal/geometry"
	"github.com/Faultbox/skyoptics/internal/render/shaders"
)

// Rainbow arc placement.
const (
	RainbowInner    = 56.0
	RainbowOuter    = 65.0
	RainbowDistance = float32(70)
	RainbowYaw      = float32(1.56)
)

// RainbowRenderer draws one half-ring rainbow arc. The morning arc hangs
// west of the viewer and the evening arc east.
type RainbowRenderer struct {
	*surface
	x       float32
	opacity float32
}

// NewRainbowRenderer builds an arc; morning selects the western placement.
func NewRainbowRenderer(morning bool) (*RainbowRenderer, error) {
	m := geometry.Ring(RainbowInner, RainbowOuter, 128, 1, 0, gomath.Pi)
	s, err := newSurface(shaders.RainbowFragment, m, mgl32.Ident4(), "uOpacity")
	if err != nil {
		return nil, err
	}
	r := &RainbowRenderer{surface: s, x: RainbowDistance}
	if morning {
		r.x = -RainbowDistance
	}
	r.SetRainbow(atmosphere.RainbowArc{VerticalOffset: atmosphere.ArcOffsetHigh})
	return r, nil
}

// SetRainbow implements atmosphere.RainbowTarget.
func (r *RainbowRenderer) SetRainbow(a atmosphere.RainbowArc) {
	r.opacity = float32(a.Opacity)
	r.model = mgl32.Translate3D(r.x, float32(a.VerticalOffset), 0).Mul4(mgl32.HomogRotate3DY(RainbowYaw))
}

// Render draws the arc. Callers set up blending without depth writes.
func (r *RainbowRenderer) Render(viewProj mgl32.Mat4) {
	if r.opacity <= 0 {
		return
	}
	r.begin(viewProj)
	r.prog.SetFloat("uOpacity", r.opacity)
	r.mesh.draw()
}
