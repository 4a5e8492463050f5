package atmosphere

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun orbit constants.
const (
	SunOrbitRadius  = 105.0
	SunMinElevation = 0.1
	SunFloorLight   = 0.5

	// SolarHourOffset shifts clock time so that 6:00 is the start of the
	// orbit. The [6,18] control range then sweeps a half turn with the
	// peak at noon.
	SolarHourOffset = 6.0
)

// LightOffset is the fixed offset of the directional light from the sun.
var LightOffset = mgl32.Vec3{30, 30, 30}

// SunState is the sun's kinematic state for one frame.
type SunState struct {
	Azimuth       float64    `yaml:"azimuth"`
	Elevation     float64    `yaml:"elevation"`
	Position      mgl32.Vec3 `yaml:"position,flow"`
	LightPosition mgl32.Vec3 `yaml:"light_position,flow"`
	Intensity     float64    `yaml:"intensity"`
}

// SolarHour converts clock time into hours since the start of the orbit.
func SolarHour(time float64) float64 {
	return time - SolarHourOffset
}

// ComputeSun places the sun on its orbit and derives the light intensity.
// Clouds dim the light linearly; intensity never falls below SunFloorLight.
func ComputeSun(time float64, cloud CloudState) SunState {
	h := SolarHour(time)
	angle := h * gomath.Pi / 12
	arc := gomath.Sin(gomath.Pi * h / 12)
	elevation := gomath.Max(SunMinElevation, arc)

	pos := mgl32.Vec3{
		float32(SunOrbitRadius * gomath.Cos(angle)),
		float32(SunOrbitRadius * gomath.Sin(angle)),
		float32(elevation),
	}

	cloudFactor := 1 - cloud.Density/MaxCloudDensity

	return SunState{
		Azimuth:       angle,
		Elevation:     elevation,
		Position:      pos,
		LightPosition: pos.Add(LightOffset),
		Intensity:     (arc*2+2)*cloudFactor + SunFloorLight,
	}
}
