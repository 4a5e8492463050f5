// Package config handles skyoptics configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
)

// Noise source names accepted by CloudsConfig.Noise.
const (
	NoiseValue  = "value"
	NoisePerlin = "perlin"
)

// Validation errors.
var (
	ErrInvalidWindow   = errors.New("invalid window size")
	ErrInvalidScene    = errors.New("invalid scene settings")
	ErrInvalidControls = errors.New("initial controls out of range")
	ErrInvalidNoise    = errors.New("unknown cloud noise source")
)

// Config holds all settings.
type Config struct {
	Window   WindowConfig        `yaml:"window"`
	Scene    SceneConfig         `yaml:"scene"`
	Controls atmosphere.Controls `yaml:"controls"`
	Clouds   CloudsConfig        `yaml:"clouds"`
	Logging  LoggingConfig       `yaml:"logging"`
}

// WindowConfig holds display settings for the viewer.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds scene geometry and the rain buffer setup.
type SceneConfig struct {
	Size         float64 `yaml:"size"`          // sky sphere radius and rain spread
	RainCapacity int     `yaml:"rain_capacity"` // particle slots, allocated once
	Seed         uint64  `yaml:"seed"`          // rain RNG seed
}

// CloudsConfig selects the CPU cloud noise source.
type CloudsConfig struct {
	Noise string `yaml:"noise"` // "value" or "perlin"
	Seed  int64  `yaml:"seed"`  // perlin permutation seed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Atmospheric Optics",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Size:         atmosphere.DefaultSceneSize,
			RainCapacity: atmosphere.RainCapacity,
			Seed:         1,
		},
		Controls: atmosphere.Controls{
			Time:      6,
			CloudOkta: 0,
			Humidity:  50,
			RainLevel: 0,
		},
		Clouds: CloudsConfig{
			Noise: NoiseValue,
			Seed:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Scene.Size <= 0 || c.Scene.RainCapacity <= 0 {
		return fmt.Errorf("%w: size %v, rain capacity %d", ErrInvalidScene, c.Scene.Size, c.Scene.RainCapacity)
	}

	ctl := c.Controls
	switch {
	case ctl.Time < atmosphere.MinTime || ctl.Time > atmosphere.MaxTime:
		return fmt.Errorf("%w: time %v", ErrInvalidControls, ctl.Time)
	case ctl.CloudOkta < 0 || ctl.CloudOkta > atmosphere.MaxOkta:
		return fmt.Errorf("%w: cloud okta %v", ErrInvalidControls, ctl.CloudOkta)
	case ctl.Humidity < 0 || ctl.Humidity > atmosphere.MaxHumidity:
		return fmt.Errorf("%w: humidity %v", ErrInvalidControls, ctl.Humidity)
	case ctl.RainLevel < 0 || ctl.RainLevel > atmosphere.MaxRainLevel:
		return fmt.Errorf("%w: rain level %d", ErrInvalidControls, ctl.RainLevel)
	}

	switch c.Clouds.Noise {
	case NoiseValue, NoisePerlin:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNoise, c.Clouds.Noise)
	}
	return nil
}

// EngineOptions converts the scene section into engine options.
func (c *Config) EngineOptions() atmosphere.Options {
	return atmosphere.Options{
		SceneSize:    c.Scene.Size,
		RainCapacity: c.Scene.RainCapacity,
		Seed:         c.Scene.Seed,
	}
}

// NoiseSource builds the configured CPU cloud noise source.
func (c *Config) NoiseSource() atmosphere.NoiseSource {
	if c.Clouds.Noise == NoisePerlin {
		return atmosphere.NewPerlinNoise(c.Clouds.Seed)
	}
	return atmosphere.ValueNoise{}
}
