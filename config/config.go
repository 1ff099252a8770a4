package config

import (
	"time"

	"github.com/pkg/errors"
)

// Config gathers the compiled-in constants of the detection pipeline.
// Values are not read from files, flags or the environment.
type Config struct {
	Detection Detection
	Display   Display
	Stats     Stats
}

// Detection holds the shape filter thresholds and mask cleanup parameters.
type Detection struct {
	MinArea         float64 // Contours below this area (px²) are noise
	MinCircularity  float64 // Round targets: 4πA/P² must reach this
	MinAspectRatio  float64 // Elongated targets: height/width must reach this
	KernelSize      int     // Elliptical structuring element extent (odd)
	CentroidEpsilon float64 // Added to M00 before dividing
}

// Display holds window and input polling settings.
type Display struct {
	WindowName string
	PollDelay  int // WaitKey delay in milliseconds
	QuitKey    int
}

// Stats controls periodic pipeline reporting.
type Stats struct {
	ReportInterval time.Duration
}

// Default returns the configuration the program runs with.
func Default() *Config {
	return &Config{
		Detection: Detection{
			MinArea:         800,
			MinCircularity:  0.7,
			MinAspectRatio:  1.3,
			KernelSize:      5,
			CentroidEpsilon: 1e-5,
		},
		Display: Display{
			WindowName: "Detection",
			PollDelay:  1,
			QuitKey:    'q',
		},
		Stats: Stats{
			ReportInterval: 15 * time.Second,
		},
	}
}

// Validate rejects values the pipeline cannot work with.
func (c *Config) Validate() error {
	d := c.Detection
	if d.MinArea <= 0 {
		return errors.Errorf("detection.min_area must be positive, got %v", d.MinArea)
	}
	if d.MinCircularity <= 0 || d.MinCircularity > 1 {
		return errors.Errorf("detection.min_circularity must be in (0,1], got %v", d.MinCircularity)
	}
	if d.MinAspectRatio <= 0 {
		return errors.Errorf("detection.min_aspect_ratio must be positive, got %v", d.MinAspectRatio)
	}
	if d.KernelSize <= 0 || d.KernelSize%2 == 0 {
		return errors.Errorf("detection.kernel_size must be a positive odd number, got %d", d.KernelSize)
	}
	if d.CentroidEpsilon <= 0 {
		return errors.Errorf("detection.centroid_epsilon must be positive, got %v", d.CentroidEpsilon)
	}
	if c.Display.WindowName == "" {
		return errors.New("display.window_name must not be empty")
	}
	if c.Display.PollDelay <= 0 {
		return errors.Errorf("display.poll_delay must be positive, got %d", c.Display.PollDelay)
	}
	if c.Stats.ReportInterval <= 0 {
		return errors.Errorf("stats.report_interval must be positive, got %v", c.Stats.ReportInterval)
	}
	return nil
}
