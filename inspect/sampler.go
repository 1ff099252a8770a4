package inspect

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

// Sample is an HSV pixel value read from the cached frame.
type Sample struct {
	H, S, V uint8
}

func (s Sample) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.H, s.S, s.V)
}

// Sampler keeps a copy of the most recent HSV frame so pointer clicks can be
// resolved to a colour value. The display may deliver clicks from its own
// event thread, so every access goes through mu.
type Sampler struct {
	mu     sync.Mutex
	hsv    gocv.Mat
	cached bool
	last   Sample
	out    io.Writer
	logger zerolog.Logger
}

// NewSampler returns a Sampler that prints click readouts to out.
func NewSampler(out io.Writer, logger zerolog.Logger) *Sampler {
	return &Sampler{
		hsv:    gocv.NewMat(),
		out:    out,
		logger: logger.With().Str("component", "INSPECT").Logger(),
	}
}

// Update replaces the cached HSV frame with a copy of hsv.
func (s *Sampler) Update(hsv gocv.Mat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hsv.Empty() {
		return
	}
	hsv.CopyTo(&s.hsv)
	s.cached = true
}

// Click reads the cached frame at column x, row y and records it as the
// last sample. It reports false if no frame is cached yet or the point lies
// outside the frame.
func (s *Sampler) Click(x, y int) (Sample, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cached {
		s.logger.Debug().Int("x", x).Int("y", y).Msg("click before first frame ignored")
		return Sample{}, false
	}
	if x < 0 || y < 0 || x >= s.hsv.Cols() || y >= s.hsv.Rows() {
		s.logger.Debug().Int("x", x).Int("y", y).Msg("click outside frame ignored")
		return Sample{}, false
	}

	v := s.hsv.GetVecbAt(y, x)
	s.last = Sample{H: v[0], S: v[1], V: v[2]}
	fmt.Fprintf(s.out, "[HSV] %s\n", s.last)
	return s.last, true
}

// Last returns the most recent sample, or the zero Sample before any click.
func (s *Sampler) Last() Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Close releases the cached frame.
func (s *Sampler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hsv.Close()
	s.cached = false
}
