package detection

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// NewKernel returns the elliptical structuring element used to open masks.
// The caller owns the returned Mat.
func NewKernel(size int) gocv.Mat {
	return gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(size, size))
}

// BuildMask writes into dst the union of the pixels of hsv that fall inside
// any of ranges. scratch is used for the intermediate per-range masks.
func BuildMask(hsv gocv.Mat, ranges []ColorRange, dst, scratch *gocv.Mat) error {
	if len(ranges) == 0 {
		return errors.New("build mask: no colour ranges")
	}
	if hsv.Empty() {
		return errors.New("build mask: empty hsv frame")
	}

	gocv.InRangeWithScalar(hsv, ranges[0].Lower.scalar(), ranges[0].Upper.scalar(), dst)
	for _, r := range ranges[1:] {
		gocv.InRangeWithScalar(hsv, r.Lower.scalar(), r.Upper.scalar(), scratch)
		gocv.BitwiseOr(*dst, *scratch, dst)
	}
	return nil
}

// OpenMask removes small foreground blobs in place (erosion then dilation).
// Opening never adds foreground pixels.
func OpenMask(mask *gocv.Mat, kernel gocv.Mat) {
	gocv.MorphologyEx(*mask, mask, gocv.MorphOpen, kernel)
}
