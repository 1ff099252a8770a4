package capture

import (
	"fmt"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// DefaultDevice is the camera opened when no source is given.
const DefaultDevice = 0

// Properties describes an opened capture source.
type Properties struct {
	Width  int
	Height int
	FPS    float64
}

func (p Properties) String() string {
	return fmt.Sprintf("%dx%d @ %.1f fps", p.Width, p.Height, p.FPS)
}

// Source supplies sequential frames from a camera or a video file.
type Source struct {
	name string
	cap  *gocv.VideoCapture
}

// Open opens the capture source named by arg. An empty arg opens the default
// camera; an all-digit arg selects that camera index; anything else is
// treated as a file path or stream URL.
func Open(arg string) (*Source, error) {
	var device interface{} = arg
	name := arg
	if arg == "" {
		device = DefaultDevice
		name = fmt.Sprintf("camera %d", DefaultDevice)
	}

	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open camera/video %q", name)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, errors.Errorf("cannot open camera/video %q", name)
	}

	return &Source{name: name, cap: vc}, nil
}

// Name returns a human readable description of the source.
func (s *Source) Name() string {
	return s.name
}

// Properties reports the frame geometry and rate the backend announces.
func (s *Source) Properties() Properties {
	return Properties{
		Width:  int(s.cap.Get(gocv.VideoCaptureFrameWidth)),
		Height: int(s.cap.Get(gocv.VideoCaptureFrameHeight)),
		FPS:    s.cap.Get(gocv.VideoCaptureFPS),
	}
}

// Read fills dst with the next frame. It returns false when the source is
// exhausted or yields an empty frame; callers treat either as end of stream.
func (s *Source) Read(dst *gocv.Mat) bool {
	if ok := s.cap.Read(dst); !ok {
		return false
	}
	return !dst.Empty()
}

// Close releases the underlying capture device.
func (s *Source) Close() error {
	return s.cap.Close()
}
