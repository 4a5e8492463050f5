package atmosphere

// CloudParams is pushed to the cloud shader each frame.
type CloudParams struct {
	Time    float64 `yaml:"time"`
	Density float64 `yaml:"density"`
}

// AtmosphereState is the derived state threaded from frame to frame.
// Rainbow offsets and the rain buffer are the only parts that carry
// information forward; everything else is recomputed.
type AtmosphereState struct {
	Frame    uint64       `yaml:"frame"`
	Controls Controls     `yaml:"controls"`
	Cloud    CloudState   `yaml:"cloud"`
	Sun      SunState     `yaml:"sun"`
	Halos    HaloState    `yaml:"halos"`
	Rainbow  RainbowState `yaml:"rainbow"`
	Rain     RainState    `yaml:"rain"`
}

// InitialState returns the state before the first frame.
func InitialState() AtmosphereState {
	return AtmosphereState{Rainbow: InitialRainbowState()}
}

// Step runs every engine once in dependency order: clouds, sky and sun,
// halos, rainbow, then rain.
func Step(prev AtmosphereState, c Controls, cam Camera, rain *RainBuffer) AtmosphereState {
	next := AtmosphereState{
		Frame:    prev.Frame + 1,
		Controls: c,
	}
	next.Cloud = ComputeCloud(c.CloudOkta)
	next.Sun = ComputeSun(c.Time, next.Cloud)
	next.Halos = ComputeHalos(c.Humidity, next.Cloud, next.Sun, cam)
	next.Rainbow = NextRainbow(prev.Rainbow, c.Time, c.CloudOkta, c.RainLevel)
	if rain != nil {
		next.Rain = rain.Update(RainIntensity(c.RainLevel))
	}
	return next
}

// RenderParameters is everything the rendering layer consumes for a frame.
type RenderParameters struct {
	Frame   uint64       `yaml:"frame"`
	Sky     SkyParams    `yaml:"sky"`
	Clouds  CloudParams  `yaml:"clouds"`
	Sun     SunState     `yaml:"sun"`
	Halos   HaloState    `yaml:"halos"`
	Rainbow RainbowState `yaml:"rainbow"`
	Rain    RainState    `yaml:"rain"`
}

// Parameters flattens the state into the render parameter set.
func (s AtmosphereState) Parameters() RenderParameters {
	return RenderParameters{
		Frame:   s.Frame,
		Sky:     ComputeSky(s.Controls.Time),
		Clouds:  CloudParams{Time: s.Controls.Time, Density: s.Cloud.Density},
		Sun:     s.Sun,
		Halos:   s.Halos,
		Rainbow: s.Rainbow,
		Rain:    s.Rain,
	}
}
