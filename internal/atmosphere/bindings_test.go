package atmosphere

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	sky      []SkyParams
	clouds   []CloudParams
	sun      []SunState
	halos    []HaloParams
	corona   []CoronaParams
	rainbows []RainbowArc
	rain     []RainState
}

func (r *recorder) SetSky(p SkyParams)       { r.sky = append(r.sky, p) }
func (r *recorder) SetClouds(p CloudParams)  { r.clouds = append(r.clouds, p) }
func (r *recorder) SetSun(p SunState)        { r.sun = append(r.sun, p) }
func (r *recorder) SetHalo(p HaloParams)     { r.halos = append(r.halos, p) }
func (r *recorder) SetCorona(p CoronaParams) { r.corona = append(r.corona, p) }
func (r *recorder) SetRainbow(p RainbowArc)  { r.rainbows = append(r.rainbows, p) }
func (r *recorder) SetRain(p RainState)      { r.rain = append(r.rain, p) }

func TestBindings_ApplyAll(t *testing.T) {
	r := &recorder{}
	b := &Bindings{
		Sky:            r,
		Clouds:         r,
		Sun:            r,
		Halos:          [NumHaloLayers]HaloTarget{r, r, r, r},
		Corona:         r,
		RainbowMorning: r,
		RainbowEvening: r,
		Rain:           r,
	}

	e := New(Options{RainCapacity: 1000})
	b.Apply(e.Advance(Controls{Time: 16, CloudOkta: 2, Humidity: 70, RainLevel: 1}, testCamera()))

	if len(r.sky) != 1 || len(r.clouds) != 1 || len(r.sun) != 1 || len(r.corona) != 1 || len(r.rain) != 1 {
		t.Errorf("unexpected call counts: %+v", r)
	}
	if len(r.halos) != int(NumHaloLayers) {
		t.Errorf("halo calls = %d, want %d", len(r.halos), NumHaloLayers)
	}
	for i, h := range r.halos {
		if h.Layer != HaloKind(i) {
			t.Errorf("halo call %d got layer %v", i, h.Layer)
		}
	}
	if len(r.rainbows) != 2 {
		t.Fatalf("rainbow calls = %d, want 2 (both arcs every frame)", len(r.rainbows))
	}
	if r.rainbows[0].Opacity != 0 || r.rainbows[1].Opacity == 0 {
		t.Errorf("rainbows = %+v, want morning hidden evening visible", r.rainbows)
	}
}

func TestBindings_SkipsMissingTargets(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := &recorder{}
	b := &Bindings{
		Sky: r,
		Log: zap.New(core),
	}

	e := New(Options{RainCapacity: 1000})
	for i := 0; i < 3; i++ {
		b.Apply(e.Advance(Controls{Time: 12}, testCamera()))
	}

	if len(r.sky) != 3 {
		t.Errorf("sky calls = %d, want 3", len(r.sky))
	}

	// clouds, sun, 4 halos, corona, 2 rainbows, rain: each reported once.
	if got := logs.Len(); got != 10 {
		t.Errorf("missing-target logs = %d, want 10", got)
	}
}

func TestBindings_NilLogger(t *testing.T) {
	var b Bindings
	b.Apply(RenderParameters{})
}
