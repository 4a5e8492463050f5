package render

import (
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
	"github.com/Faultbox/skyoptics/internal/geometry"
	"github.com/Faultbox/skyoptics/internal/render/shaders"
)

// Scene placement.
var (
	CloudOffset  = mgl32.Vec3{0, -50, -2}
	CloudMargin  = float32(7)
	SunRadius    = 10.2
	GroundHeight = float32(-0.5)
)

// Material colors.
var (
	SunColor    = mgl32.Vec3{1.0, 0.7, 0.2}
	LightColor  = mgl32.Vec3{1, 1, 0}
	GroundColor = mustHex("#228a22")
)

func mustHex(s string) mgl32.Vec3 {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return vec3(c)
}

func vec3(c colorful.Color) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

// surface is a mesh drawn with one program at a fixed or per-frame model.
type surface struct {
	prog  *Program
	mesh  *gpuMesh
	model mgl32.Mat4
}

var meshUniforms = []string{"uModel", "uViewProj"}

func newSurface(fragmentSrc string, m *geometry.Mesh, model mgl32.Mat4, uniforms ...string) (*surface, error) {
	prog, err := NewProgram(shaders.MeshVertex, fragmentSrc, append(uniforms, meshUniforms...)...)
	if err != nil {
		return nil, err
	}
	return &surface{prog: prog, mesh: uploadMesh(m), model: model}, nil
}

// begin binds the program and sets the transform uniforms.
func (s *surface) begin(viewProj mgl32.Mat4) {
	s.prog.Use()
	s.prog.SetMat4("uViewProj", viewProj)
	s.prog.SetMat4("uModel", s.model)
}

func (s *surface) destroy() {
	s.mesh.destroy()
	s.prog.Destroy()
}

// SkyRenderer draws the inside of the sky sphere.
type SkyRenderer struct {
	*surface
	params atmosphere.SkyParams
}

// NewSkyRenderer builds the sky sphere of the given radius.
func NewSkyRenderer(radius float64) (*SkyRenderer, error) {
	s, err := newSurface(shaders.SkyFragment, geometry.Sphere(radius, 32, 32), mgl32.Ident4(), "uTime")
	if err != nil {
		return nil, err
	}
	return &SkyRenderer{surface: s}, nil
}

// SetSky implements atmosphere.SkyTarget.
func (r *SkyRenderer) SetSky(p atmosphere.SkyParams) { r.params = p }

// Render draws the sky.
func (r *SkyRenderer) Render(viewProj mgl32.Mat4) {
	r.begin(viewProj)
	r.prog.SetFloat("uTime", float32(r.params.Time))
	r.mesh.draw()
}

// CloudRenderer draws the procedural cloud layer on a sphere slightly
// larger than the sky.
type CloudRenderer struct {
	*surface
	params atmosphere.CloudParams
}

// NewCloudRenderer builds the cloud sphere for a sky of the given radius.
func NewCloudRenderer(skyRadius float64) (*CloudRenderer, error) {
	m := geometry.Sphere(skyRadius+float64(CloudMargin), 32, 32)
	s, err := newSurface(shaders.CloudsFragment, m, mgl32.Translate3D(CloudOffset.Elem()), "uTime", "uDensity")
	if err != nil {
		return nil, err
	}
	return &CloudRenderer{surface: s}, nil
}

// SetClouds implements atmosphere.CloudTarget.
func (r *CloudRenderer) SetClouds(p atmosphere.CloudParams) { r.params = p }

// Render draws the clouds with alpha blending.
func (r *CloudRenderer) Render(viewProj mgl32.Mat4) {
	r.begin(viewProj)
	r.prog.SetFloat("uTime", float32(r.params.Time))
	r.prog.SetFloat("uDensity", float32(r.params.Density))
	r.mesh.draw()
}

// SunRenderer draws the sun disc and exposes the light it casts.
type SunRenderer struct {
	*surface
	sun atmosphere.SunState
}

// NewSunRenderer builds the sun sphere.
func NewSunRenderer() (*SunRenderer, error) {
	s, err := newSurface(shaders.SolidFragment, geometry.Sphere(SunRadius, 16, 16), mgl32.Ident4(), "uColor")
	if err != nil {
		return nil, err
	}
	return &SunRenderer{surface: s}, nil
}

// SetSun implements atmosphere.SunTarget.
func (r *SunRenderer) SetSun(s atmosphere.SunState) {
	r.sun = s
	r.model = mgl32.Translate3D(s.Position.Elem())
}

// Light returns the directional light position and intensity.
func (r *SunRenderer) Light() (mgl32.Vec3, float32) {
	return r.sun.LightPosition, float32(r.sun.Intensity)
}

// Render draws the sun.
func (r *SunRenderer) Render(viewProj mgl32.Mat4) {
	r.begin(viewProj)
	r.prog.SetVec3("uColor", SunColor)
	r.mesh.draw()
}

// GroundRenderer draws the lit ground disc.
type GroundRenderer struct {
	*surface
}

// NewGroundRenderer builds a ground disc of the given radius.
func NewGroundRenderer(radius float64) (*GroundRenderer, error) {
	model := mgl32.Translate3D(0, GroundHeight, 0).Mul4(mgl32.HomogRotate3DX(-gomath.Pi / 2))
	s, err := newSurface(shaders.GroundFragment, geometry.Circle(radius, 64), model,
		"uColor", "uLightPosition", "uLightColor", "uLightIntensity")
	if err != nil {
		return nil, err
	}
	return &GroundRenderer{surface: s}, nil
}

// Render draws the ground under the given light.
func (r *GroundRenderer) Render(viewProj mgl32.Mat4, lightPos mgl32.Vec3, intensity float32) {
	r.begin(viewProj)
	r.prog.SetVec3("uColor", GroundColor)
	r.prog.SetVec3("uLightPosition", lightPos)
	r.prog.SetVec3("uLightColor", LightColor)
	r.prog.SetFloat("uLightIntensity", intensity)
	r.mesh.draw()
}

// enableBlend turns on straight alpha blending, optionally without depth
// writes or depth testing.
func enableBlend(depthWrite, depthTest bool) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(depthWrite)
	if depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func disableBlend() {
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}
