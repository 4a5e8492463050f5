// Package viewer runs the interactive sky scene in an SDL2 window.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
	"github.com/Faultbox/skyoptics/internal/config"
	"github.com/Faultbox/skyoptics/internal/controls"
	"github.com/Faultbox/skyoptics/internal/input"
	"github.com/Faultbox/skyoptics/internal/profiler"
	"github.com/Faultbox/skyoptics/internal/render"
	"github.com/Faultbox/skyoptics/internal/window"
)

// Viewer is the interactive application.
type Viewer struct {
	log *zap.Logger

	window   *window.Window
	input    *input.Input
	scene    *render.Scene
	bindings *atmosphere.Bindings

	engine *atmosphere.Engine
	panel  *controls.Panel
	rig    *controls.Rig
	stats  *profiler.Profiler

	running bool
}

// New creates the window, GL state and scene for cfg.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	v := &Viewer{
		log:    log,
		engine: atmosphere.New(cfg.EngineOptions()),
		panel:  controls.NewPanel(cfg.Controls),
		rig:    controls.NewRig(),
		stats:  profiler.New(log.Named("profiler")),
		input:  input.New(),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL state needs the context created with the window
	if err := render.Init(log); err != nil {
		v.window.Close()
		return nil, err
	}

	width, height := v.window.Size()
	v.scene, err = render.NewScene(cfg.Scene.Size, cfg.Scene.RainCapacity, width, height)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	v.scene.Resize(width, height)
	v.bindings = v.scene.Bindings(log.Named("bindings"))

	log.Info("viewer ready", zap.Any("controls", v.panel.Controls()))
	return v, nil
}

// Run drives the frame loop until the window closes or Esc is pressed.
func (v *Viewer) Run() error {
	v.running = true
	last := time.Now()

	for v.running {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()
		v.moveCamera(dt)

		params := v.engine.Advance(v.panel.Controls(), v.rig.Camera())
		v.bindings.Apply(params)

		v.scene.Render(v.rig.View())
		v.window.SwapBuffers()

		v.stats.Tick(params.Frame)
	}
	return nil
}

func (v *Viewer) handleEvents() {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.scene.Resize(v.window.Size())
		case input.EventKeyDown:
			if e.Key == keyQuit {
				v.running = false
				continue
			}
			n, ok := nudgeKeys[e.Key]
			if !ok {
				continue
			}
			if err := v.panel.Nudge(n.key, n.steps); err != nil {
				v.log.Warn("control nudge failed", zap.Error(err))
				continue
			}
			v.log.Debug("controls changed", zap.Any("controls", v.panel.Controls()))
			v.updateTitle()
		}
	}
}

func (v *Viewer) moveCamera(dt float64) {
	axis := func(pos, neg sdl.Scancode) float64 {
		a := 0.0
		if v.input.Held(pos) {
			a++
		}
		if v.input.Held(neg) {
			a--
		}
		return a
	}

	turn := axis(keyTurnRight, keyTurnLeft)
	fwd := axis(keyForward, keyBack)
	side := axis(keyStrafeR, keyStrafeL)
	up := axis(keyRise, keySink)
	if turn == 0 && fwd == 0 && side == 0 && up == 0 {
		return
	}
	v.rig.Turn(turn * controls.YawRate * dt)
	v.rig.Move(fwd*controls.MoveSpeed*dt, side*controls.MoveSpeed*dt, up*controls.ClimbRate*dt)
}

func (v *Viewer) updateTitle() {
	c := v.panel.Controls()
	v.window.SetTitle(fmt.Sprintf("Atmospheric Optics | %05.2fh | %.0f okta | %.0f%% RH | rain %d",
		c.Time, c.CloudOkta, c.Humidity, c.RainLevel))
}

// Close releases the scene and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
