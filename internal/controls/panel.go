// Package controls holds the user-facing environment control panel: value
// ranges, stepping and the rain coupling rule applied on rain changes.
package controls

import (
	"fmt"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
	"github.com/Faultbox/skyoptics/pkg/math"
)

// Key identifies one control.
type Key string

const (
	KeyTime     Key = "time"
	KeyOkta     Key = "cloud_okta"
	KeyHumidity Key = "humidity"
	KeyRain     Key = "rain_level"
)

// Range describes an adjustable control.
type Range struct {
	Key   Key
	Label string
	Min   float64
	Max   float64
	Step  float64
}

// Ranges lists the panel controls in display order.
var Ranges = []Range{
	{Key: KeyTime, Label: "Time", Min: atmosphere.MinTime, Max: atmosphere.MaxTime, Step: 0.25},
	{Key: KeyOkta, Label: "Clouds (okta)", Min: 0, Max: atmosphere.MaxOkta, Step: 1},
	{Key: KeyHumidity, Label: "Humidity (%)", Min: 0, Max: atmosphere.MaxHumidity, Step: 5},
	{Key: KeyRain, Label: "Rain", Min: 0, Max: atmosphere.MaxRainLevel, Step: 1},
}

// RangeFor returns the range of a key.
func RangeFor(k Key) (Range, bool) {
	for _, r := range Ranges {
		if r.Key == k {
			return r, true
		}
	}
	return Range{}, false
}

// Panel owns the current control values.
type Panel struct {
	c atmosphere.Controls
}

// NewPanel returns a panel starting at c, clamped to the control ranges.
// The rain coupling is applied to the initial rain level.
func NewPanel(c atmosphere.Controls) *Panel {
	p := &Panel{}
	p.c.Time = clampTo(KeyTime, c.Time)
	p.c.CloudOkta = clampTo(KeyOkta, c.CloudOkta)
	p.c.Humidity = clampTo(KeyHumidity, c.Humidity)
	p.SetRainLevel(c.RainLevel)
	return p
}

// Controls returns the current snapshot.
func (p *Panel) Controls() atmosphere.Controls {
	return p.c
}

func clampTo(k Key, v float64) float64 {
	r, _ := RangeFor(k)
	return math.Clamp(v, r.Min, r.Max)
}

// SetTime sets the hour of day.
func (p *Panel) SetTime(v float64) {
	p.c.Time = clampTo(KeyTime, v)
}

// SetCloudOkta sets the cloud cover. It does not re-run the rain coupling.
func (p *Panel) SetCloudOkta(v float64) {
	p.c.CloudOkta = clampTo(KeyOkta, v)
}

// SetHumidity sets the humidity. It does not re-run the rain coupling.
func (p *Panel) SetHumidity(v float64) {
	p.c.Humidity = clampTo(KeyHumidity, v)
}

// SetRainLevel sets the rain level and raises humidity and cloud cover to
// the level's floors. Setting the current level again is a no-op.
func (p *Panel) SetRainLevel(level int) {
	level = int(clampTo(KeyRain, float64(level)))
	if level == p.c.RainLevel {
		return
	}
	p.c = atmosphere.CoupleRainLevel(p.c, level)
}

// Set assigns a control by key.
func (p *Panel) Set(k Key, v float64) error {
	switch k {
	case KeyTime:
		p.SetTime(v)
	case KeyOkta:
		p.SetCloudOkta(v)
	case KeyHumidity:
		p.SetHumidity(v)
	case KeyRain:
		p.SetRainLevel(int(v))
	default:
		return fmt.Errorf("unknown control %q", k)
	}
	return nil
}

// Get reads a control by key.
func (p *Panel) Get(k Key) (float64, error) {
	switch k {
	case KeyTime:
		return p.c.Time, nil
	case KeyOkta:
		return p.c.CloudOkta, nil
	case KeyHumidity:
		return p.c.Humidity, nil
	case KeyRain:
		return float64(p.c.RainLevel), nil
	default:
		return 0, fmt.Errorf("unknown control %q", k)
	}
}

// Nudge moves a control by steps increments of its range step.
func (p *Panel) Nudge(k Key, steps int) error {
	r, ok := RangeFor(k)
	if !ok {
		return fmt.Errorf("unknown control %q", k)
	}
	v, err := p.Get(k)
	if err != nil {
		return err
	}
	return p.Set(k, v+float64(steps)*r.Step)
}
