package overlay

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"

	"colordetect/detection"
	"colordetect/inspect"
)

func blackFrame() gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 200, 300, gocv.MatTypeCV8UC3)
}

// bgrAt returns the pixel at column x, row y as an RGBA colour.
func bgrAt(m gocv.Mat, x, y int) color.RGBA {
	v := m.GetVecbAt(y, x)
	return color.RGBA{R: v[2], G: v[1], B: v[0], A: 255}
}

func TestLabel(t *testing.T) {
	obj := detection.Object{Label: "ball", Center: image.Pt(100, 42)}
	if got := Label(obj); got != "ball(100,42)" {
		t.Errorf("Label = %q", got)
	}
}

func TestSampleText(t *testing.T) {
	if got := SampleText(inspect.Sample{}); got != "HSV: (0,0,0)" {
		t.Errorf("zero sample text = %q", got)
	}
	if got := SampleText(inspect.Sample{H: 12, S: 200, V: 150}); got != "HSV: (12,200,150)" {
		t.Errorf("sample text = %q", got)
	}
}

func TestDrawObjectPixels(t *testing.T) {
	frame := blackFrame()
	defer frame.Close()

	red := color.RGBA{R: 255, A: 255}
	obj := detection.Object{
		Box:    image.Rect(100, 60, 160, 140),
		Center: image.Pt(130, 100),
		Label:  "ball",
		Color:  red,
	}

	NewRenderer().DrawObject(&frame, obj)

	checks := []struct {
		name string
		p    image.Point
		want color.RGBA
	}{
		{"box top edge", image.Pt(110, 60), red},
		{"box left edge", image.Pt(100, 120), red},
		{"marker centre", image.Pt(130, 100), red},
		{"marker arm", image.Pt(136, 100), red},
		{"inside box, off marker", image.Pt(110, 130), color.RGBA{A: 255}},
		{"far corner", image.Pt(290, 190), color.RGBA{A: 255}},
	}
	for _, c := range checks {
		if got := bgrAt(frame, c.p.X, c.p.Y); got != c.want {
			t.Errorf("%s at %v = %v, want %v", c.name, c.p, got, c.want)
		}
	}

	// Caption sits in the band above the box.
	band := frame.Region(image.Rect(100, 40, 200, 58))
	defer band.Close()
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(band, &gray, gocv.ColorBGRToGray)
	if gocv.CountNonZero(gray) == 0 {
		t.Error("no label pixels above the box")
	}
}

func TestDrawObjectsDrawsEach(t *testing.T) {
	frame := blackFrame()
	defer frame.Close()

	blue := color.RGBA{B: 255, A: 255}
	objects := []detection.Object{
		{Box: image.Rect(20, 40, 60, 120), Center: image.Pt(40, 80), Label: "bottle", Color: blue},
		{Box: image.Rect(200, 40, 240, 120), Center: image.Pt(220, 80), Label: "bottle", Color: blue},
	}
	NewRenderer().DrawObjects(&frame, objects)

	for _, obj := range objects {
		if got := bgrAt(frame, obj.Center.X, obj.Center.Y); got != blue {
			t.Errorf("marker at %v = %v, want blue", obj.Center, got)
		}
	}
}

func TestDrawObjectsEmptyLeavesFrame(t *testing.T) {
	frame := blackFrame()
	defer frame.Close()

	NewRenderer().DrawObjects(&frame, nil)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	if n := gocv.CountNonZero(gray); n != 0 {
		t.Errorf("%d pixels drawn for no objects", n)
	}
}

func TestDrawSampleInCorner(t *testing.T) {
	frame := blackFrame()
	defer frame.Close()

	NewRenderer().DrawSample(&frame, inspect.Sample{H: 12, S: 200, V: 150})

	corner := frame.Region(image.Rect(0, 0, 200, 35))
	defer corner.Close()

	channels := gocv.Split(corner)
	defer func() {
		for _, c := range channels {
			c.Close()
		}
	}()
	// Text is pure green: only the G channel carries pixels.
	if gocv.CountNonZero(channels[1]) == 0 {
		t.Error("no green text in the top-left corner")
	}
	if gocv.CountNonZero(channels[0]) != 0 || gocv.CountNonZero(channels[2]) != 0 {
		t.Error("sample text should be pure green")
	}
}
