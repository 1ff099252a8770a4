package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"colordetect/config"
	"colordetect/detection"
	"colordetect/display"
	"colordetect/inspect"
	"colordetect/metrics"
	"colordetect/overlay"
)

// frameSource supplies frames; false means the stream is over.
type frameSource interface {
	Read(dst *gocv.Mat) bool
}

// surface presents frames and reports key presses.
type surface interface {
	Show(img gocv.Mat)
	PollKey(delay int) int
}

// Runner drives the acquire → detect → annotate → display loop.
type Runner struct {
	cfg      *config.Config
	source   frameSource
	surface  surface
	detector *detection.Detector
	renderer *overlay.Renderer
	sampler  *inspect.Sampler
	stats    *metrics.PipelineStats
	base     zerolog.Logger // untagged; components add their own field
	logger   zerolog.Logger
}

// NewRunner wires the loop. The runner does not own any of its collaborators.
func NewRunner(cfg *config.Config, source frameSource, surface surface, detector *detection.Detector,
	renderer *overlay.Renderer, sampler *inspect.Sampler, stats *metrics.PipelineStats, logger zerolog.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		source:   source,
		surface:  surface,
		detector: detector,
		renderer: renderer,
		sampler:  sampler,
		stats:    stats,
		base:     logger,
		logger:   logger.With().Str("component", "PIPELINE").Logger(),
	}
}

// Run processes frames until the source is exhausted or the quit key is
// pressed. Both are normal terminations and return nil.
func (r *Runner) Run() error {
	frame := gocv.NewMat()
	defer frame.Close()

	for {
		readStart := time.Now()
		if !r.source.Read(&frame) {
			r.logger.Info().Msg("capture source exhausted")
			return nil
		}
		r.stats.UpdateCapture(time.Since(readStart))

		if err := r.processFrame(&frame); err != nil {
			return err
		}

		r.surface.Show(frame)
		if key := r.surface.PollKey(r.cfg.Display.PollDelay); key&0xFF == r.cfg.Display.QuitKey {
			r.logger.Info().Msg("quit requested")
			return nil
		}

		if r.stats.Due(r.cfg.Stats.ReportInterval) {
			r.stats.Report(r.base)
		}
	}
}

// processFrame converts, masks, classifies and annotates one frame in place.
func (r *Runner) processFrame(frame *gocv.Mat) error {
	start := time.Now()

	if err := r.detector.Prepare(*frame); err != nil {
		return errors.Wrap(err, "prepare frame")
	}
	r.sampler.Update(r.detector.HSV())

	for i, target := range r.detector.Targets() {
		objects, err := r.detectAndAnnotate(frame, r.detector.Mask(i), target)
		if err != nil {
			return err
		}
		r.stats.AddDetections(target.Label, len(objects))
	}

	r.renderer.DrawSample(frame, r.sampler.Last())
	r.stats.UpdateProcess(time.Since(start))
	return nil
}

// detectAndAnnotate classifies the contours of mask under target's shape
// policy and draws every surviving object onto frame.
func (r *Runner) detectAndAnnotate(frame *gocv.Mat, mask gocv.Mat, target detection.Target) ([]detection.Object, error) {
	objects, err := detection.Find(*frame, mask, target, r.detector.Params())
	if err != nil {
		return nil, err
	}
	r.renderer.DrawObjects(frame, objects)
	return objects, nil
}

// clickHandler resolves window clicks through the sampler and counts them.
func clickHandler(sampler *inspect.Sampler, stats *metrics.PipelineStats) display.ClickFunc {
	return func(x, y int) {
		if _, ok := sampler.Click(x, y); ok {
			stats.RecordClick()
		}
	}
}
