package imgutil

import (
	"github.com/disintegration/imaging"
	"image"
)

// ResizeToFit scales img uniformly so that it fits in a maxWidth x maxHeight box.
// Sizes are always read as (width, height). The result touches the box on at least one axis,
// small images are scaled up.
func ResizeToFit(img image.Image, maxWidth, maxHeight int) *image.NRGBA {
	w, h := FitSize(img.Bounds().Dx(), img.Bounds().Dy(), maxWidth, maxHeight)
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// FitSize returns the dimensions of a w x h rectangle scaled to fit in maxWidth x maxHeight.
// The bounding axis is matched exactly, the other one is truncated.
func FitSize(w, h, maxWidth, maxHeight int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}

	var nw, nh int
	if maxWidth*h <= maxHeight*w { // width bound
		nw, nh = maxWidth, h*maxWidth/w
	} else {
		nw, nh = w*maxHeight/h, maxHeight
	}

	// a degenerate axis would make imaging return an empty image
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
