package config

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Detection.MinArea != 800 || cfg.Detection.MinCircularity != 0.7 || cfg.Detection.MinAspectRatio != 1.3 {
		t.Errorf("unexpected thresholds: %+v", cfg.Detection)
	}
	if cfg.Display.QuitKey != 'q' {
		t.Errorf("quit key = %q, want 'q'", rune(cfg.Display.QuitKey))
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero area", func(c *Config) { c.Detection.MinArea = 0 }, "min_area"},
		{"circularity above one", func(c *Config) { c.Detection.MinCircularity = 1.5 }, "min_circularity"},
		{"negative aspect", func(c *Config) { c.Detection.MinAspectRatio = -1 }, "min_aspect_ratio"},
		{"even kernel", func(c *Config) { c.Detection.KernelSize = 4 }, "kernel_size"},
		{"zero epsilon", func(c *Config) { c.Detection.CentroidEpsilon = 0 }, "centroid_epsilon"},
		{"no window name", func(c *Config) { c.Display.WindowName = "" }, "window_name"},
		{"zero poll", func(c *Config) { c.Display.PollDelay = 0 }, "poll_delay"},
		{"zero interval", func(c *Config) { c.Stats.ReportInterval = 0 }, "report_interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
