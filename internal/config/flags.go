package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagTime       = flag.Float64("time", -1, "Initial hour of day (6-18)")
	flagOkta       = flag.Float64("okta", -1, "Initial cloud cover in okta (0-8)")
	flagHumidity   = flag.Float64("humidity", -1, "Initial relative humidity in percent (0-100)")
	flagRain       = flag.Int("rain", -1, "Initial rain level (0-3)")
	flagNoise      = flag.String("noise", "", "Cloud noise source for previews (value, perlin)")
	flagSeed       = flag.Uint64("seed", 0, "Rain RNG seed")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagTime >= 0 {
		cfg.Controls.Time = *flagTime
	}
	if *flagOkta >= 0 {
		cfg.Controls.CloudOkta = *flagOkta
	}
	if *flagHumidity >= 0 {
		cfg.Controls.Humidity = *flagHumidity
	}
	if *flagRain >= 0 {
		cfg.Controls.RainLevel = *flagRain
	}
	if *flagNoise != "" {
		cfg.Clouds.Noise = *flagNoise
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
}
