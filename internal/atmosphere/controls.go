// Package atmosphere computes the per-frame parameters of the atmospheric
// optics scene: sky color, cloud field uniforms, sun kinematics, halo and
// corona opacities, rainbow visibility and the rain particle buffer.
//
// Every engine is a pure numeric transform of the environment controls and
// the previous state. The rendering layer consumes RenderParameters through
// Bindings and never feeds anything back except the camera position.
package atmosphere

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skyoptics/pkg/math"
)

// Control ranges. Inputs are expected pre-clamped to these by the caller.
const (
	MinTime      = 6.0
	MaxTime      = 18.0
	MaxOkta      = 8.0
	MaxHumidity  = 100.0
	MaxRainLevel = 3
)

// Controls holds the four environmental inputs polled once per frame.
type Controls struct {
	Time      float64 `yaml:"time"`       // hour of day, [6,18]
	CloudOkta float64 `yaml:"cloud_okta"` // eighths of sky covered, [0,8]
	Humidity  float64 `yaml:"humidity"`   // relative humidity in percent, [0,100]
	RainLevel int     `yaml:"rain_level"` // 0 (dry) to 3 (heavy)
}

// Camera is the geometric state read back from the scene each frame.
type Camera struct {
	Position mgl32.Vec3 `yaml:"position,flow"`
}

// RainIntensity maps a rain level onto the normalized [0,1] intensity the
// rain engine consumes.
func RainIntensity(level int) float64 {
	return math.Saturate(float64(level) / MaxRainLevel)
}

// rainFloor is the minimum humidity and okta a rain level calls for.
type rainFloor struct {
	humidity float64
	okta     float64
}

var rainFloors = [MaxRainLevel + 1]rainFloor{
	{0, 0},
	{60, 3},
	{75, 5},
	{85, 7},
}

// CoupleRainLevel returns c with RainLevel set to level and the humidity and
// cloud cover raised to the floors that level requires. Values already above
// a floor are left alone. It is meant to run only when the rain level
// changes; later edits to humidity or okta do not re-apply it.
func CoupleRainLevel(c Controls, level int) Controls {
	c.RainLevel = level
	if level < 0 || level > MaxRainLevel {
		return c
	}
	f := rainFloors[level]
	if c.Humidity < f.humidity {
		c.Humidity = f.humidity
	}
	if c.CloudOkta < f.okta {
		c.CloudOkta = f.okta
	}
	return c
}
