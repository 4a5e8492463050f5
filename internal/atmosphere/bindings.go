package atmosphere

import (
	"go.uber.org/zap"
)

// SkyTarget receives sky parameters.
type SkyTarget interface {
	SetSky(SkyParams)
}

// CloudTarget receives cloud field uniforms.
type CloudTarget interface {
	SetClouds(CloudParams)
}

// SunTarget receives the sun and light placement.
type SunTarget interface {
	SetSun(SunState)
}

// HaloTarget receives one halo layer's parameters.
type HaloTarget interface {
	SetHalo(HaloParams)
}

// CoronaTarget receives the corona disc parameters.
type CoronaTarget interface {
	SetCorona(CoronaParams)
}

// RainbowTarget receives one arc's opacity and offset.
type RainbowTarget interface {
	SetRainbow(RainbowArc)
}

// RainTarget receives the rain draw range and positions.
type RainTarget interface {
	SetRain(RainState)
}

// Bindings is the handle table from parameter sets to the scene objects
// that consume them. It is filled once when the scene is built. A nil
// target is skipped: its update is dropped for that frame.
type Bindings struct {
	Sky            SkyTarget
	Clouds         CloudTarget
	Sun            SunTarget
	Halos          [NumHaloLayers]HaloTarget
	Corona         CoronaTarget
	RainbowMorning RainbowTarget
	RainbowEvening RainbowTarget
	Rain           RainTarget

	// Log reports missing targets once each. Nil disables reporting.
	Log    *zap.Logger
	warned map[string]bool
}

func (b *Bindings) missing(name string) {
	if b.Log == nil || b.warned[name] {
		return
	}
	if b.warned == nil {
		b.warned = make(map[string]bool)
	}
	b.warned[name] = true
	b.Log.Debug("render target not bound, skipping", zap.String("target", name))
}

// Apply pushes every parameter set to its bound target.
func (b *Bindings) Apply(p RenderParameters) {
	if b.Sky != nil {
		b.Sky.SetSky(p.Sky)
	} else {
		b.missing("sky")
	}

	if b.Clouds != nil {
		b.Clouds.SetClouds(p.Clouds)
	} else {
		b.missing("clouds")
	}

	if b.Sun != nil {
		b.Sun.SetSun(p.Sun)
	} else {
		b.missing("sun")
	}

	for i, h := range b.Halos {
		if h != nil {
			h.SetHalo(p.Halos.Layers[i])
		} else {
			b.missing("halo." + HaloLayers[i].Name)
		}
	}

	if b.Corona != nil {
		b.Corona.SetCorona(p.Halos.Corona)
	} else {
		b.missing("corona")
	}

	// Both arcs are written every frame so the unselected one is cleared.
	if b.RainbowMorning != nil {
		b.RainbowMorning.SetRainbow(p.Rainbow.Morning)
	} else {
		b.missing("rainbow.morning")
	}
	if b.RainbowEvening != nil {
		b.RainbowEvening.SetRainbow(p.Rainbow.Evening)
	} else {
		b.missing("rainbow.evening")
	}

	if b.Rain != nil {
		b.Rain.SetRain(p.Rain)
	} else {
		b.missing("rain")
	}
}
