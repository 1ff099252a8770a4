package detection

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"colordetect/config"
)

// ErrSizeMismatch is returned when a mask does not match its frame's dimensions.
var ErrSizeMismatch = errors.New("mask and frame dimensions differ")

// Object is a contour that passed the area and shape filters.
type Object struct {
	Box         image.Rectangle
	Center      image.Point
	Label       string
	Color       color.RGBA
	Area        float64
	Circularity float64 // only computed for round targets
	AspectRatio float64 // Box height / width
}

// CheckSize returns ErrSizeMismatch (wrapped with both sizes) unless mask
// and frame have the same rows and columns.
func CheckSize(frame, mask gocv.Mat) error {
	if frame.Rows() != mask.Rows() || frame.Cols() != mask.Cols() {
		return errors.Wrapf(ErrSizeMismatch, "frame %dx%d, mask %dx%d",
			frame.Cols(), frame.Rows(), mask.Cols(), mask.Rows())
	}
	return nil
}

// Find checks that mask matches frame and classifies it under target.
func Find(frame, mask gocv.Mat, target Target, params config.Detection) ([]Object, error) {
	if err := CheckSize(frame, mask); err != nil {
		return nil, errors.Wrapf(err, "target %s", target.Name)
	}
	return Classify(mask, target, params), nil
}

// Classify extracts the external contours of mask and returns those that
// survive the area filter and the target's shape filter. It has no side
// effects on mask and keeps no state between calls.
func Classify(mask gocv.Mat, target Target, params config.Detection) []Object {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var objects []Object
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)

		area := gocv.ContourArea(contour)
		if area < params.MinArea {
			continue
		}

		box := gocv.BoundingRect(contour)
		aspect := 0.0
		if box.Dx() > 0 {
			aspect = float64(box.Dy()) / float64(box.Dx())
		}

		obj := Object{
			Box:         box,
			Label:       target.Label,
			Color:       target.Color,
			Area:        area,
			AspectRatio: aspect,
		}

		switch target.Shape {
		case ShapeRound:
			obj.Circularity = Circularity(area, gocv.ArcLength(contour, true))
			if obj.Circularity < params.MinCircularity {
				continue
			}
		case ShapeElongated:
			if aspect < params.MinAspectRatio {
				continue
			}
		}

		// Region moments of the filled contour; may differ from polygon moments by a pixel.
		obj.Center = centroid(contour, box, params.CentroidEpsilon)
		objects = append(objects, obj)
	}

	return objects
}

// Circularity is 4πA/P². A perfect circle scores 1; a zero perimeter scores 0.
func Circularity(area, perimeter float64) float64 {
	if perimeter == 0 {
		return 0
	}
	return 4 * math.Pi * area / (perimeter * perimeter)
}

// centroid fills the contour into a box-sized matrix and takes its image
// moments: (M10/(M00+eps), M01/(M00+eps)), offset back into frame coordinates.
func centroid(contour gocv.PointVector, box image.Rectangle, eps float64) image.Point {
	points := contour.ToPoints()
	for i := range points {
		points[i] = points[i].Sub(box.Min)
	}

	region := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), box.Dy(), box.Dx(), gocv.MatTypeCV8U)
	defer region.Close()

	poly := gocv.NewPointsVectorFromPoints([][]image.Point{points})
	defer poly.Close()
	gocv.FillPoly(&region, poly, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	m := gocv.Moments(region, true)
	return image.Point{
		X: box.Min.X + int(m["m10"]/(m["m00"]+eps)),
		Y: box.Min.Y + int(m["m01"]/(m["m00"]+eps)),
	}
}
