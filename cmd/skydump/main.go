// Package main runs the atmosphere engine without a window and prints the
// resulting render parameters as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
	"github.com/Faultbox/skyoptics/internal/config"
	"github.com/Faultbox/skyoptics/internal/controls"
	"github.com/Faultbox/skyoptics/internal/logger"
	"github.com/Faultbox/skyoptics/internal/preview"
)

var (
	flagFrames  = flag.Int("frames", 1, "Number of frames to simulate")
	flagOut     = flag.String("out", "", "Write the YAML summary to this file instead of stdout")
	flagPreview = flag.String("preview", "", "Write the cloud coverage field to this .png or .bmp file")
	flagSize    = flag.Int("preview-size", 256, "Preview sample grid width and height")
	flagScale   = flag.Int("preview-scale", 1, "Integer upscale factor applied to the preview")
)

// Summary is the document written by skydump.
type Summary struct {
	Frames     int                         `yaml:"frames"`
	Controls   atmosphere.Controls         `yaml:"controls"`
	Camera     atmosphere.Camera           `yaml:"camera"`
	Parameters atmosphere.RenderParameters `yaml:"parameters"`
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("skydump failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if *flagFrames < 1 {
		return fmt.Errorf("frames must be positive, got %d", *flagFrames)
	}

	panel := controls.NewPanel(cfg.Controls)
	rig := controls.NewRig()
	engine := atmosphere.New(cfg.EngineOptions())

	var params atmosphere.RenderParameters
	for i := 0; i < *flagFrames; i++ {
		params = engine.Advance(panel.Controls(), rig.Camera())
	}
	logger.Debug("simulation done",
		zap.Uint64("frame", params.Frame),
		zap.Int("rain_active", params.Rain.ActiveCount),
	)

	summary := Summary{
		Frames:     *flagFrames,
		Controls:   panel.Controls(),
		Camera:     rig.Camera(),
		Parameters: params,
	}
	if err := writeSummary(summary, *flagOut); err != nil {
		return err
	}

	if *flagPreview != "" {
		if err := writePreview(cfg, params, *flagPreview); err != nil {
			return err
		}
		logger.Info("cloud preview written", zap.String("path", *flagPreview))
	}
	return nil
}

func writeSummary(s Summary, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating summary: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return enc.Close()
}

func writePreview(cfg *config.Config, params atmosphere.RenderParameters, path string) error {
	field := atmosphere.NewCloudField(cfg.NoiseSource())
	img := preview.Clouds(field, params.Clouds.Time, params.Clouds.Density, preview.Options{
		Size:   *flagSize,
		Extent: cfg.Scene.Size,
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating preview: %w", err)
	}
	defer f.Close()

	if err := preview.Encode(f, path, preview.Upscale(img, *flagScale)); err != nil {
		return fmt.Errorf("encoding preview: %w", err)
	}
	return nil
}
