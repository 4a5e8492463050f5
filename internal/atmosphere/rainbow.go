package atmosphere

import "fmt"

// RainbowVisibility enumerates the rainbow state machine.
type RainbowVisibility int

const (
	RainbowHidden RainbowVisibility = iota
	RainbowMorningVisible
	RainbowEveningVisible
)

// String implements fmt.Stringer.
func (v RainbowVisibility) String() string {
	switch v {
	case RainbowHidden:
		return "hidden"
	case RainbowMorningVisible:
		return "morning"
	case RainbowEveningVisible:
		return "evening"
	default:
		return fmt.Sprintf("RainbowVisibility(%d)", int(v))
	}
}

// MarshalYAML renders the state by name.
func (v RainbowVisibility) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// Rainbow guard and timing.
const (
	RainbowMaxOkta     = 7.0
	RainbowMorningEnd  = 9.0
	RainbowEveningFrom = 15.0
)

// Arc vertical offsets. The arc sits lowest while the sun is high.
const (
	ArcOffsetHigh = -10.0
	ArcOffsetMid  = -30.0
	ArcOffsetLow  = -50.0
)

// RainbowArc is the per-frame state of one arc.
type RainbowArc struct {
	Opacity        float64 `yaml:"opacity"`
	VerticalOffset float64 `yaml:"vertical_offset"`
}

// RainbowState holds both arcs. At most one has nonzero opacity.
type RainbowState struct {
	Visibility RainbowVisibility `yaml:"visibility"`
	Morning    RainbowArc        `yaml:"morning"`
	Evening    RainbowArc        `yaml:"evening"`
}

// InitialRainbowState is the state before the first frame.
func InitialRainbowState() RainbowState {
	return RainbowState{
		Visibility: RainbowHidden,
		Morning:    RainbowArc{VerticalOffset: ArcOffsetHigh},
		Evening:    RainbowArc{VerticalOffset: ArcOffsetHigh},
	}
}

// RainbowOpacity is the arc opacity for a cloud cover: (1 - okta/8) / 4.
func RainbowOpacity(okta float64) float64 {
	return (1 - okta/MaxOkta) / 4
}

func morningOffset(time float64) float64 {
	switch {
	case time > 7:
		return ArcOffsetLow
	case time > 6:
		return ArcOffsetMid
	default:
		return ArcOffsetHigh
	}
}

func eveningOffset(time float64) float64 {
	switch {
	case time < 17:
		return ArcOffsetLow
	case time < 18:
		return ArcOffsetMid
	default:
		return ArcOffsetHigh
	}
}

// NextRainbow advances the state machine. Both opacities are always
// rewritten; only the selected arc's offset moves, the other keeps its
// previous value.
func NextRainbow(prev RainbowState, time, okta float64, rainLevel int) RainbowState {
	next := prev
	next.Visibility = RainbowHidden
	next.Morning.Opacity = 0
	next.Evening.Opacity = 0

	if rainLevel <= 0 || okta >= RainbowMaxOkta {
		return next
	}

	switch {
	case time < RainbowMorningEnd:
		next.Visibility = RainbowMorningVisible
		next.Morning.Opacity = RainbowOpacity(okta)
		next.Morning.VerticalOffset = morningOffset(time)
	case time > RainbowEveningFrom:
		next.Visibility = RainbowEveningVisible
		next.Evening.Opacity = RainbowOpacity(okta)
		next.Evening.VerticalOffset = eveningOffset(time)
	}
	return next
}
