package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"colordetect/detection"
	"colordetect/inspect"
)

// Renderer handles drawing detections and the HSV readout onto frames.
type Renderer struct {
	boxThickness    int
	markerSize      int
	markerThickness int
	labelScale      float64
	labelThickness  int
	labelOffset     int // pixels above the box top edge
	sampleOrigin    image.Point
	sampleScale     float64
	sampleThickness int
	sampleColor     color.RGBA
}

// NewRenderer creates a renderer with the standard annotation style.
func NewRenderer() *Renderer {
	return &Renderer{
		boxThickness:    2,
		markerSize:      15,
		markerThickness: 2,
		labelScale:      0.55,
		labelThickness:  2,
		labelOffset:     8,
		sampleOrigin:    image.Pt(10, 25),
		sampleScale:     0.7,
		sampleThickness: 2,
		sampleColor:     color.RGBA{R: 0, G: 255, B: 0, A: 255}, // Bright green
	}
}

// DrawObjects annotates every object onto img.
func (r *Renderer) DrawObjects(img *gocv.Mat, objects []detection.Object) {
	for _, obj := range objects {
		r.DrawObject(img, obj)
	}
}

// DrawObject draws the bounding box, a cross at the centre and the
// "label(x,y)" caption, all in the object's colour.
func (r *Renderer) DrawObject(img *gocv.Mat, obj detection.Object) {
	gocv.Rectangle(img, obj.Box, obj.Color, r.boxThickness)
	r.drawCrossMarker(img, obj.Center, obj.Color)

	labelPos := image.Point{obj.Box.Min.X, obj.Box.Min.Y - r.labelOffset}
	gocv.PutText(img, Label(obj), labelPos, gocv.FontHersheySimplex, r.labelScale, obj.Color, r.labelThickness)
}

// drawCrossMarker draws a '+' of markerSize pixels centred on center.
func (r *Renderer) drawCrossMarker(img *gocv.Mat, center image.Point, c color.RGBA) {
	half := r.markerSize / 2

	gocv.Line(img,
		image.Point{center.X - half, center.Y},
		image.Point{center.X + half, center.Y},
		c, r.markerThickness)
	gocv.Line(img,
		image.Point{center.X, center.Y - half},
		image.Point{center.X, center.Y + half},
		c, r.markerThickness)
}

// DrawSample writes the last clicked HSV value in the top-left corner.
func (r *Renderer) DrawSample(img *gocv.Mat, s inspect.Sample) {
	gocv.PutText(img, SampleText(s), r.sampleOrigin, gocv.FontHersheySimplex, r.sampleScale, r.sampleColor, r.sampleThickness)
}

// Label formats the caption drawn above a detection.
func Label(obj detection.Object) string {
	return fmt.Sprintf("%s(%d,%d)", obj.Label, obj.Center.X, obj.Center.Y)
}

// SampleText formats the corner readout of the last clicked sample.
func SampleText(s inspect.Sample) string {
	return fmt.Sprintf("HSV: (%d,%d,%d)", s.H, s.S, s.V)
}
