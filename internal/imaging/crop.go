package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropScaled extracts r from img and enlarges it by factor.
//
// r is in img's coordinate space and must lie inside img's bounds. The result
// always starts at (0,0). A factor of 1 returns the plain crop; larger factors
// resample with a Lanczos filter, which keeps small caption text sharp.
func CropScaled(img image.Image, r image.Rectangle, factor int) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if r.Empty() || !r.In(bounds) {
		return nil, fmt.Errorf("crop region %v outside image bounds %v: %w", r, bounds, ErrInvalidSize)
	}
	if factor <= 0 {
		return nil, fmt.Errorf("scale factor %d: %w", factor, ErrInvalidSize)
	}

	cropped := imaging.Crop(img, r)
	if factor == 1 {
		return cropped, nil
	}
	return imaging.Resize(cropped, r.Dx()*factor, r.Dy()*factor, imaging.Lanczos), nil
}
