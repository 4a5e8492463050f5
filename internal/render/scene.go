package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
)

// Init loads the GL function pointers and sets the default state.
// Must be called after the GL context is current.
func Init(log *zap.Logger) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)
	return nil
}

// Scene owns every renderer of the sky scene.
type Scene struct {
	sky     *SkyRenderer
	clouds  *CloudRenderer
	sun     *SunRenderer
	ground  *GroundRenderer
	halos   [atmosphere.NumHaloLayers]*HaloRenderer
	corona  *HaloRenderer
	morning *RainbowRenderer
	evening *RainbowRenderer
	rain    *RainRenderer

	width, height int
}

// NewScene builds the scene for a sky of radius sceneSize and a rain buffer
// of rainCapacity drops.
func NewScene(sceneSize float64, rainCapacity, width, height int) (*Scene, error) {
	s := &Scene{width: width, height: height}

	var err error
	if s.sky, err = NewSkyRenderer(sceneSize); err != nil {
		return nil, fmt.Errorf("sky: %w", err)
	}
	if s.clouds, err = NewCloudRenderer(sceneSize); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("clouds: %w", err)
	}
	if s.sun, err = NewSunRenderer(); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("sun: %w", err)
	}
	if s.ground, err = NewGroundRenderer(sceneSize); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("ground: %w", err)
	}
	for i := range s.halos {
		if s.halos[i], err = NewHaloRenderer(atmosphere.HaloKind(i)); err != nil {
			s.Destroy()
			return nil, fmt.Errorf("halo %s: %w", atmosphere.HaloLayers[i].Name, err)
		}
	}
	if s.corona, err = NewCoronaRenderer(); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("corona: %w", err)
	}
	if s.morning, err = NewRainbowRenderer(true); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("morning rainbow: %w", err)
	}
	if s.evening, err = NewRainbowRenderer(false); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("evening rainbow: %w", err)
	}
	if s.rain, err = NewRainRenderer(rainCapacity); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("rain: %w", err)
	}
	return s, nil
}

// Bindings returns the handle table wiring engine output to this scene.
func (s *Scene) Bindings(log *zap.Logger) *atmosphere.Bindings {
	b := &atmosphere.Bindings{
		Sky:            s.sky,
		Clouds:         s.clouds,
		Sun:            s.sun,
		Corona:         s.corona,
		RainbowMorning: s.morning,
		RainbowEvening: s.evening,
		Rain:           s.rain,
		Log:            log,
	}
	for i, h := range s.halos {
		b.Halos[i] = h
	}
	return b
}

// Resize updates the viewport.
func (s *Scene) Resize(width, height int) {
	s.width, s.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Projection returns the perspective projection for the current viewport.
func (s *Scene) Projection() mgl32.Mat4 {
	aspect := float32(s.width) / float32(max(s.height, 1))
	return mgl32.Perspective(mgl32.DegToRad(75), aspect, 0.1, 2000)
}

// Render draws one frame: opaque surfaces first, then the blended layers,
// and the sun halos last on top of everything.
func (s *Scene) Render(view mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	viewProj := s.Projection().Mul4(view)

	s.sky.Render(viewProj)
	s.sun.Render(viewProj)
	lightPos, intensity := s.sun.Light()
	s.ground.Render(viewProj, lightPos, intensity)

	enableBlend(true, true)
	s.clouds.Render(viewProj)

	enableBlend(false, true)
	s.morning.Render(viewProj)
	s.evening.Render(viewProj)
	s.rain.Render(viewProj)

	enableBlend(false, false)
	s.corona.Render(viewProj)
	for _, h := range s.halos {
		h.Render(viewProj)
	}
	disableBlend()
}

// Destroy releases every GL resource the scene holds.
func (s *Scene) Destroy() {
	if s.sky != nil {
		s.sky.destroy()
	}
	if s.clouds != nil {
		s.clouds.destroy()
	}
	if s.sun != nil {
		s.sun.destroy()
	}
	if s.ground != nil {
		s.ground.destroy()
	}
	for _, h := range s.halos {
		if h != nil {
			h.destroy()
		}
	}
	if s.corona != nil {
		s.corona.destroy()
	}
	if s.morning != nil {
		s.morning.destroy()
	}
	if s.evening != nil {
		s.evening.destroy()
	}
	if s.rain != nil {
		s.rain.Destroy()
	}
}
