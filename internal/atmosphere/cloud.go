package atmosphere

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/skyoptics/pkg/math"
)

// Cloud field constants shared with the cloud fragment shader.
const (
	CloudCoordScale = 0.3  // world xz to noise space
	CloudDriftRate  = 0.01 // noise-space drift per hour of time
	CloudSoftness   = 5.0  // width of the coverage transition
	MaxCloudDensity = 2.0
)

var (
	cloudMorning = colorful.Color{R: 1.0, G: 1.0, B: 1.0}
	cloudMidday  = colorful.Color{R: 0.8, G: 0.8, B: 0.9}
	cloudEvening = colorful.Color{R: 0.9, G: 0.7, B: 0.5}
	white        = colorful.Color{R: 1, G: 1, B: 1}
)

// CloudState is the shared cloud density every other engine reads.
type CloudState struct {
	Density float64 `yaml:"density"` // [0,2]
}

// CloudDensity maps okta cover onto density: okta/4.
func CloudDensity(okta float64) float64 {
	return okta / 4
}

// ComputeCloud derives the frame's CloudState.
func ComputeCloud(okta float64) CloudState {
	return CloudState{Density: CloudDensity(okta)}
}

// CloudThreshold returns the coverage window for a density. Denser skies
// lower the window so more of the fbm field passes it.
func CloudThreshold(density float64) (lower, upper float64) {
	lower = 0.5 - density*2.5
	return lower, lower + CloudSoftness
}

// CloudField is the CPU mirror of the per-pixel cloud shader.
type CloudField struct {
	Source NoiseSource
}

// NewCloudField returns a field over src, defaulting to ValueNoise.
func NewCloudField(src NoiseSource) *CloudField {
	if src == nil {
		src = ValueNoise{}
	}
	return &CloudField{Source: src}
}

// Sample returns the raw fbm value at world position (x, z) and time.
func (f *CloudField) Sample(x, z, time float64) float64 {
	return FBM(f.Source, x*CloudCoordScale+time*CloudDriftRate, z*CloudCoordScale)
}

// Coverage returns the cloud alpha at world position (x, z).
func (f *CloudField) Coverage(x, z, time, density float64) float64 {
	lower, upper := CloudThreshold(density)
	return math.Smoothstep(lower, upper, f.Sample(x, z, time))
}

// Color returns the shaded cloud color at world position (x, z).
func (f *CloudField) Color(x, z, time, density float64) colorful.Color {
	return CloudColor(time, density, f.Sample(x, z, time))
}

// CloudColor tints clouds by time of day, darkens them toward 60% brightness
// as density rises and lightens dense noise toward white.
func CloudColor(time, density, fbm float64) colorful.Color {
	c := cloudMorning.BlendRgb(cloudMidday, math.Smoothstep(9, 15, time))
	c = c.BlendRgb(cloudEvening, math.Smoothstep(15, 18, time))

	k := math.Mix(1, 0.6, density)
	c = colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}

	return c.BlendRgb(white, fbm*0.5)
}
