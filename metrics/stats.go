package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const (
	framesMetric     = "colordetect_frames_processed_total"
	detectionsMetric = "colordetect_detections_total"
	clicksMetric     = "colordetect_clicks_total"
	processMetric    = "colordetect_frame_process_seconds"
	readMetric       = "colordetect_frame_read_seconds"
)

// PipelineStats tracks performance of the capture/detect/display loop.
// Totals live in a private Prometheus registry; the rolling window used for
// periodic FPS reports is kept alongside and reset on every report.
type PipelineStats struct {
	mu       sync.Mutex
	registry *prometheus.Registry

	frames         prometheus.Counter
	clicks         prometheus.Counter
	detections     *prometheus.CounterVec
	processSeconds prometheus.Histogram
	readSeconds    prometheus.Histogram

	// Rolling window since the last report
	lastReportTime time.Time
	windowFrames   int64
	windowReads    int64
	processTotal   time.Duration
	readTotal      time.Duration
}

// Totals is a snapshot of the counters since start.
type Totals struct {
	Frames     uint64
	Clicks     uint64
	Detections map[string]uint64 // by label
}

// NewPipelineStats creates a new pipeline statistics tracker.
func NewPipelineStats() *PipelineStats {
	ps := &PipelineStats{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: framesMetric,
			Help: "Frames run through detection and annotation",
		}),
		clicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: clicksMetric,
			Help: "Pointer clicks resolved to an HSV sample",
		}),
		detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: detectionsMetric,
			Help: "Objects that passed the shape filter",
		}, []string{"label"}),
		processSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    processMetric,
			Help:    "Time spent converting, masking, classifying and drawing one frame",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
		readSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    readMetric,
			Help:    "Time spent waiting for the capture source",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
		lastReportTime: time.Now(),
	}

	ps.registry.MustRegister(ps.frames, ps.clicks, ps.detections, ps.processSeconds, ps.readSeconds)
	return ps
}

// UpdateCapture records one frame read.
func (ps *PipelineStats) UpdateCapture(duration time.Duration) {
	ps.readSeconds.Observe(duration.Seconds())

	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.windowReads++
	ps.readTotal += duration
}

// UpdateProcess records one processed frame.
func (ps *PipelineStats) UpdateProcess(duration time.Duration) {
	ps.frames.Inc()
	ps.processSeconds.Observe(duration.Seconds())

	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.windowFrames++
	ps.processTotal += duration
}

// AddDetections counts n detections for label.
func (ps *PipelineStats) AddDetections(label string, n int) {
	if n <= 0 {
		return
	}
	ps.detections.WithLabelValues(label).Add(float64(n))
}

// RecordClick counts a resolved pointer click.
func (ps *PipelineStats) RecordClick() {
	ps.clicks.Inc()
}

// GetStats returns the window's frame rate and average timings, then resets
// the window.
func (ps *PipelineStats) GetStats() (fps float64, avgRead, avgProcess time.Duration) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	now := time.Now()
	window := now.Sub(ps.lastReportTime).Seconds()
	if window <= 0 {
		window = 1.0
	}

	fps = float64(ps.windowFrames) / window
	if ps.windowReads > 0 {
		avgRead = ps.readTotal / time.Duration(ps.windowReads)
	}
	if ps.windowFrames > 0 {
		avgProcess = ps.processTotal / time.Duration(ps.windowFrames)
	}

	ps.windowFrames = 0
	ps.windowReads = 0
	ps.readTotal = 0
	ps.processTotal = 0
	ps.lastReportTime = now
	return
}

// Due reports whether interval has elapsed since the last report.
func (ps *PipelineStats) Due(interval time.Duration) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return time.Since(ps.lastReportTime) >= interval
}

// Totals gathers the registry into a snapshot.
func (ps *PipelineStats) Totals() (Totals, error) {
	families, err := ps.registry.Gather()
	if err != nil {
		return Totals{}, errors.Wrap(err, "gather pipeline metrics")
	}

	t := Totals{Detections: map[string]uint64{}}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case framesMetric:
				t.Frames = uint64(m.GetCounter().GetValue())
			case clicksMetric:
				t.Clicks = uint64(m.GetCounter().GetValue())
			case detectionsMetric:
				for _, lp := range m.GetLabel() {
					if lp.GetName() == "label" {
						t.Detections[lp.GetValue()] = uint64(m.GetCounter().GetValue())
					}
				}
			}
		}
	}
	return t, nil
}

// Report logs the current window and the running totals.
func (ps *PipelineStats) Report(logger zerolog.Logger) {
	fps, avgRead, avgProcess := ps.GetStats()

	totals, err := ps.Totals()
	if err != nil {
		logger.Warn().Err(err).Str("component", "STATS").Msg("metrics unavailable")
		return
	}

	labels := make([]string, 0, len(totals.Detections))
	for l := range totals.Detections {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	dets := zerolog.Dict()
	for _, l := range labels {
		dets = dets.Uint64(l, totals.Detections[l])
	}

	logger.Info().
		Str("component", "STATS").
		Float64("fps", fps).
		Dur("avg_read", avgRead).
		Dur("avg_process", avgProcess).
		Uint64("frames", totals.Frames).
		Uint64("clicks", totals.Clicks).
		Dict("detections", dets).
		Msg("pipeline performance")
}
