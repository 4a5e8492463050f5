package render

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
	"github.com/Faultbox/skyoptics/internal/geometry"
	"github.com/Faultbox/skyoptics/internal/render/shaders"
)

var haloUniforms = []string{"uCenter", "uColor", "uEdge0", "uEdge1", "uOpacity", "uGlow", "uCloudDens"}

// HaloRenderer draws one billboarded ring or disc centered on the sun. The
// same type serves the four halo layers and the corona.
type HaloRenderer struct {
	*surface
	color   mgl32.Vec3
	falloff atmosphere.Falloff
	glow    bool

	center    mgl32.Vec3
	opacity   float32
	cloudDens float32
}

// NewHaloRenderer builds the ring for one halo layer. The glow layer fades
// its alpha by the falloff; the colored rings tint by it.
func NewHaloRenderer(kind atmosphere.HaloKind) (*HaloRenderer, error) {
	l := atmosphere.HaloLayers[kind]
	m := geometry.Ring(float64(l.InnerRadius), float64(l.OuterRadius), 64, 1, 0, 2*gomath.Pi)
	s, err := newSurface(shaders.HaloFragment, m, mgl32.Ident4(), haloUniforms...)
	if err != nil {
		return nil, err
	}
	return &HaloRenderer{
		surface: s,
		color:   l.Color,
		falloff: l.Falloff,
		glow:    kind == atmosphere.HaloGlow,
	}, nil
}

// NewCoronaRenderer builds the wide white disc around the sun.
func NewCoronaRenderer() (*HaloRenderer, error) {
	s, err := newSurface(shaders.HaloFragment, geometry.Circle(atmosphere.CoronaRadius, 800), mgl32.Ident4(), haloUniforms...)
	if err != nil {
		return nil, err
	}
	return &HaloRenderer{
		surface: s,
		color:   mgl32.Vec3{1, 1, 1},
		falloff: atmosphere.GlowFalloff,
		glow:    true,
	}, nil
}

// SetHalo implements atmosphere.HaloTarget.
func (r *HaloRenderer) SetHalo(p atmosphere.HaloParams) {
	r.model = p.Model
	r.center = p.Center
	r.opacity = float32(p.Opacity)
	r.cloudDens = float32(p.CloudDens)
}

// SetCorona implements atmosphere.CoronaTarget.
func (r *HaloRenderer) SetCorona(p atmosphere.CoronaParams) {
	r.model = p.Model
	r.center = p.Center
	r.opacity = float32(p.Strength)
	// the corona ignores cloud cover; 1 sits inside the halo window
	r.cloudDens = 1
}

// Render draws the layer. Callers set up blending without depth testing.
func (r *HaloRenderer) Render(viewProj mgl32.Mat4) {
	if r.opacity <= 0 {
		return
	}
	r.begin(viewProj)
	r.prog.SetVec3("uCenter", r.center)
	r.prog.SetVec3("uColor", r.color)
	r.prog.SetFloat("uEdge0", float32(r.falloff.Edge0))
	r.prog.SetFloat("uEdge1", float32(r.falloff.Edge1))
	r.prog.SetFloat("uOpacity", r.opacity)
	glow := float32(0)
	if r.glow {
		glow = 1
	}
	r.prog.SetFloat("uGlow", glow)
	r.prog.SetFloat("uCloudDens", r.cloudDens)
	r.mesh.draw()
}
