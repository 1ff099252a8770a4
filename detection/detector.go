package detection

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"colordetect/config"
)

// Detector owns the per-frame working matrices: the HSV conversion and one
// cleaned mask per target. Matrices are reused across frames, so values
// returned by HSV and Mask are only valid until the next Prepare.
type Detector struct {
	params  config.Detection
	targets []Target
	kernel  gocv.Mat
	hsv     gocv.Mat
	scratch gocv.Mat
	masks   []gocv.Mat
	logger  zerolog.Logger
}

// NewDetector creates a Detector for the given targets. Call Close to
// release the OpenCV memory it holds.
func NewDetector(params config.Detection, targets []Target, logger zerolog.Logger) (*Detector, error) {
	if len(targets) == 0 {
		return nil, errors.New("detector needs at least one target")
	}
	for _, t := range targets {
		if t.Label == "" {
			return nil, errors.Errorf("target %q has an empty label", t.Name)
		}
		if len(t.Ranges) == 0 {
			return nil, errors.Errorf("target %q has no colour ranges", t.Name)
		}
	}

	d := &Detector{
		params:  params,
		targets: targets,
		kernel:  NewKernel(params.KernelSize),
		hsv:     gocv.NewMat(),
		scratch: gocv.NewMat(),
		masks:   make([]gocv.Mat, len(targets)),
		logger:  logger.With().Str("component", "DETECTOR").Logger(),
	}
	for i := range d.masks {
		d.masks[i] = gocv.NewMat()
	}

	for _, t := range targets {
		ranges := make([]string, len(t.Ranges))
		for i, r := range t.Ranges {
			ranges[i] = r.String()
		}
		d.logger.Info().
			Str("target", t.Name).
			Str("label", t.Label).
			Stringer("shape", t.Shape).
			Strs("ranges", ranges).
			Msg("target configured")
	}
	return d, nil
}

// Targets returns the configured targets in processing order.
func (d *Detector) Targets() []Target {
	return d.targets
}

// Params returns the detection thresholds.
func (d *Detector) Params() config.Detection {
	return d.params
}

// Prepare converts frame to HSV and rebuilds every target mask from it.
func (d *Detector) Prepare(frame gocv.Mat) error {
	if frame.Empty() {
		return errors.New("prepare: empty frame")
	}

	gocv.CvtColor(frame, &d.hsv, gocv.ColorBGRToHSV)

	for i, t := range d.targets {
		if err := BuildMask(d.hsv, t.Ranges, &d.masks[i], &d.scratch); err != nil {
			return errors.Wrapf(err, "target %s", t.Name)
		}
		OpenMask(&d.masks[i], d.kernel)
	}
	return nil
}

// HSV returns the HSV conversion of the last prepared frame.
func (d *Detector) HSV() gocv.Mat {
	return d.hsv
}

// Mask returns the cleaned mask of target i from the last prepared frame.
func (d *Detector) Mask(i int) gocv.Mat {
	return d.masks[i]
}

// Close releases all matrices.
func (d *Detector) Close() {
	d.kernel.Close()
	d.hsv.Close()
	d.scratch.Close()
	for i := range d.masks {
		d.masks[i].Close()
	}
}
