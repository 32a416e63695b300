package grid

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ironsheep/image-grid-mcp/internal/imaging"
)

// Overlay returns a copy of canvas with the outline of every cell and caption
// band of l drawn in c. canvas itself is not modified.
func Overlay(canvas image.Image, l *Layout, c imaging.ColorSpec) (*image.NRGBA, error) {
	lineColor, err := c.RGBA()
	if err != nil {
		return nil, err
	}

	b := canvas.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, canvas, b.Min, draw.Src)

	for _, r := range l.Cells {
		outline(out, r, lineColor)
	}
	for _, cp := range l.ColumnCaptions {
		outline(out, cp.Band, lineColor)
	}
	for _, cp := range l.RowCaptions {
		outline(out, cp.Band, lineColor)
	}
	return out, nil
}

// outline draws the 1px border of r, clipped to img.
func outline(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetNRGBA(x, r.Min.Y, c)
		img.SetNRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetNRGBA(r.Min.X, y, c)
		img.SetNRGBA(r.Max.X-1, y, c)
	}
}
