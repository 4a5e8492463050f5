package atmosphere

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skyoptics/pkg/math"
)

// HaloGain scales humidity into ring opacity.
const HaloGain = 0.05

// CoronaRadius is the radius of the corona disc mesh.
const CoronaRadius = 800.0

// HaloKind indexes the fixed halo layer table.
type HaloKind int

const (
	HaloRed HaloKind = iota
	HaloBlue
	HaloPurple
	HaloGlow
	NumHaloLayers
)

// Falloff shapes a layer's per-pixel intensity by distance from the sun.
type Falloff struct {
	Edge0, Edge1 float64
}

// At evaluates the falloff at distance d from the sun's center.
func (f Falloff) At(d float64) float64 {
	return math.Smoothstep(f.Edge0, f.Edge1, d)
}

var (
	// RingFalloff brightens the outer edge of the colored rings.
	RingFalloff = Falloff{45, 50}
	// GlowFalloff fades a wide disc outward from the sun.
	GlowFalloff = Falloff{150, 0}
)

// HaloLayer describes one concentric ring around the sun.
type HaloLayer struct {
	Name        string
	Color       mgl32.Vec3
	InnerRadius float32
	OuterRadius float32
	Gain        float64
	Falloff     Falloff
}

// HaloLayers is the fixed layer table, indexed by HaloKind.
var HaloLayers = [NumHaloLayers]HaloLayer{
	HaloRed:    {Name: "red", Color: mgl32.Vec3{1, 0, 0}, InnerRadius: 25, OuterRadius: 25.7, Gain: HaloGain, Falloff: RingFalloff},
	HaloBlue:   {Name: "blue", Color: mgl32.Vec3{0, 0, 1}, InnerRadius: 25.5, OuterRadius: 25.9, Gain: HaloGain, Falloff: RingFalloff},
	HaloPurple: {Name: "purple", Color: mgl32.Vec3{0.6, 0.4, 1}, InnerRadius: 25.8, OuterRadius: 26, Gain: HaloGain, Falloff: RingFalloff},
	HaloGlow:   {Name: "glow", Color: mgl32.Vec3{1, 1, 1}, InnerRadius: 26, OuterRadius: 350, Gain: HaloGain, Falloff: GlowFalloff},
}

// Halo gate window on cloud density.
const (
	HaloMinDensity  = 0.5
	HaloPeakDensity = 1.0
	HaloMaxDensity  = 1.5
)

// CloudMultiplier is the triangular halo gate: 0 outside density [0.5,1.5],
// rising linearly from the window edges to 1 at density 1.
func CloudMultiplier(density float64) float64 {
	if density < HaloMinDensity || density > HaloMaxDensity {
		return 0
	}
	halfWidth := HaloPeakDensity - HaloMinDensity
	return math.Saturate(1 - gomath.Abs(density-HaloPeakDensity)/halfWidth)
}

// HaloOpacity returns the ring opacity for a layer.
func (l HaloLayer) HaloOpacity(humidity float64, cloud CloudState) float64 {
	return humidity / 100 * l.Gain * CloudMultiplier(cloud.Density)
}

// HaloParams is pushed to one halo layer each frame.
type HaloParams struct {
	Layer     HaloKind   `yaml:"-"`
	Name      string     `yaml:"name"`
	Opacity   float64    `yaml:"opacity"`
	CloudDens float64    `yaml:"cloud_density"`
	Center    mgl32.Vec3 `yaml:"center,flow"`
	Model     mgl32.Mat4 `yaml:"-"`
}

// CoronaParams is pushed to the corona disc each frame.
type CoronaParams struct {
	Strength float64    `yaml:"strength"`
	Center   mgl32.Vec3 `yaml:"center,flow"`
	Model    mgl32.Mat4 `yaml:"-"`
}

// HaloState groups the halo layers and the corona for one frame.
type HaloState struct {
	Layers [NumHaloLayers]HaloParams `yaml:"layers"`
	Corona CoronaParams              `yaml:"corona"`
}

// ComputeHalos re-centers every layer on the sun, turns it toward the camera
// and gates its opacity by humidity and cloud density.
func ComputeHalos(humidity float64, cloud CloudState, sun SunState, cam Camera) HaloState {
	model := Billboard(sun.Position, cam.Position)

	var hs HaloState
	for i, l := range HaloLayers {
		hs.Layers[i] = HaloParams{
			Layer:     HaloKind(i),
			Name:      l.Name,
			Opacity:   l.HaloOpacity(humidity, cloud),
			CloudDens: cloud.Density,
			Center:    sun.Position,
			Model:     model,
		}
	}
	hs.Corona = CoronaParams{
		Strength: 1,
		Center:   sun.Position,
		Model:    model,
	}
	return hs
}

// Billboard returns a model matrix placing an object at pos with its local
// +Z axis pointing at target.
func Billboard(pos, target mgl32.Vec3) mgl32.Mat4 {
	forward := target.Sub(pos)
	if forward.Len() < 1e-6 {
		return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	}
	forward = forward.Normalize()

	up := mgl32.Vec3{0, 1, 0}
	if gomath.Abs(float64(forward.Dot(up))) > 0.999 {
		up = mgl32.Vec3{0, 0, 1}
	}
	right := up.Cross(forward).Normalize()
	up = forward.Cross(right)

	return mgl32.Mat4{
		right.X(), right.Y(), right.Z(), 0,
		up.X(), up.Y(), up.Z(), 0,
		forward.X(), forward.Y(), forward.Z(), 0,
		pos.X(), pos.Y(), pos.Z(), 1,
	}
}
