package detection

import (
	"image/color"
)

// Shape selects the filter applied to a contour after the area check.
type Shape int

const (
	// ShapeRound keeps near-circular blobs (circularity filter).
	ShapeRound Shape = iota
	// ShapeElongated keeps tall, narrow blobs (aspect ratio filter).
	ShapeElongated
)

func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeElongated:
		return "elongated"
	default:
		return "unknown"
	}
}

// Target describes one tracked colour: which HSV ranges make up its mask,
// how its contours are filtered and how detections are labelled.
type Target struct {
	Name   string
	Label  string
	Ranges []ColorRange
	Color  color.RGBA // gocv draws color.RGBA as BGR internally
	Shape  Shape
}

// DefaultTargets returns the red ball and blue bottle targets, in drawing order.
func DefaultTargets() []Target {
	return []Target{
		{
			Name:   "red",
			Label:  "ball",
			Ranges: []ColorRange{RedLow, RedHigh},
			Color:  color.RGBA{R: 255, G: 0, B: 0, A: 255},
			Shape:  ShapeRound,
		},
		{
			Name:   "blue",
			Label:  "bottle",
			Ranges: []ColorRange{Blue},
			Color:  color.RGBA{R: 0, G: 0, B: 255, A: 255},
			Shape:  ShapeElongated,
		},
	}
}
