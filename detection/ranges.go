package detection

import (
	"fmt"

	"gocv.io/x/gocv"
)

// HSV is a colour in OpenCV's 8-bit HSV scale: H in [0,180], S and V in [0,255].
type HSV struct {
	H, S, V float64
}

func (h HSV) scalar() gocv.Scalar {
	return gocv.NewScalar(h.H, h.S, h.V, 0)
}

func (h HSV) String() string {
	return fmt.Sprintf("(%g,%g,%g)", h.H, h.S, h.V)
}

// ColorRange is an inclusive lower/upper bound pair in HSV space.
type ColorRange struct {
	Lower HSV
	Upper HSV
}

// contains reports whether the given HSV triple falls inside the range.
func (r ColorRange) contains(c HSV) bool {
	return c.H >= r.Lower.H && c.H <= r.Upper.H &&
		c.S >= r.Lower.S && c.S <= r.Upper.S &&
		c.V >= r.Lower.V && c.V <= r.Upper.V
}

func (r ColorRange) String() string {
	return r.Lower.String() + "-" + r.Upper.String()
}

// Red hue wraps around 0/180, so it is split into two bands.
var (
	RedLow  = ColorRange{Lower: HSV{0, 120, 50}, Upper: HSV{10, 255, 255}}
	RedHigh = ColorRange{Lower: HSV{160, 120, 50}, Upper: HSV{180, 255, 255}}
	Blue    = ColorRange{Lower: HSV{90, 60, 30}, Upper: HSV{130, 255, 255}}
)
