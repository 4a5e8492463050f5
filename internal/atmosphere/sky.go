package atmosphere

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/skyoptics/pkg/math"
)

// Sky palette.
var (
	SkyMorning = colorful.Color{R: 0.9, G: 0.6, B: 0.3}
	SkyMidday  = colorful.Color{R: 0.1, G: 0.6, B: 1.0}
	SkyEvening = colorful.Color{R: 0.9, G: 0.6, B: 0.3}
)

// SkyWeights holds the two smoothstep blend weights and the resulting share
// of each palette color. The shares always sum to 1.
type SkyWeights struct {
	Midday  float64 `yaml:"midday"`
	Evening float64 `yaml:"evening"`

	MorningShare float64 `yaml:"morning_share"`
	MiddayShare  float64 `yaml:"midday_share"`
	EveningShare float64 `yaml:"evening_share"`
}

// ComputeSkyWeights returns the blend weights for an hour of day.
func ComputeSkyWeights(time float64) SkyWeights {
	m := math.Smoothstep(6, 13, time)
	e := math.Smoothstep(13, 18, time)
	return SkyWeights{
		Midday:       m,
		Evening:      e,
		MorningShare: (1 - m) * (1 - e),
		MiddayShare:  m * (1 - e),
		EveningShare: e,
	}
}

// SkyColor returns mix(mix(morning, midday, m), evening, e).
func SkyColor(time float64) colorful.Color {
	w := ComputeSkyWeights(time)
	return SkyMorning.BlendRgb(SkyMidday, w.Midday).BlendRgb(SkyEvening, w.Evening)
}

// SkyParams is pushed to the sky shader each frame.
type SkyParams struct {
	Time    float64        `yaml:"time"`
	Weights SkyWeights     `yaml:"weights"`
	Color   colorful.Color `yaml:"-"`
	Hex     string         `yaml:"color"`
}

// ComputeSky returns the sky parameters for an hour of day.
func ComputeSky(time float64) SkyParams {
	c := SkyColor(time)
	return SkyParams{
		Time:    time,
		Weights: ComputeSkyWeights(time),
		Color:   c,
		Hex:     c.Clamped().Hex(),
	}
}
