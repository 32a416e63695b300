package grid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/image-grid-mcp/internal/imaging"
)

// ErrFontLoad is returned when a font file cannot be parsed or a face cannot
// be created at the requested size.
var ErrFontLoad = errors.New("cannot load font")

// captionFont wraps a face with the measurements the layout needs. All boxes
// are measured from the top-left of the text line (the ascender line), not
// from the baseline.
type captionFont struct {
	face   font.Face
	ascent fixed.Int26_6
}

// textBox is a pixel bounding box relative to the top-left of the line.
type textBox struct {
	Left, Top, Right, Bottom int
}

func (b textBox) Width() int  { return b.Right - b.Left }
func (b textBox) Height() int { return b.Bottom - b.Top }

// loadCaptionFont loads a TrueType/OpenType font at size pixels. An empty
// path loads the embedded Go Regular font.
func loadCaptionFont(path string, size int) (*captionFont, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("font %s: %w", path, imaging.ErrNotFound)
			}
			return nil, fmt.Errorf("font %s: %w: %v", path, ErrFontLoad, err)
		}
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w: %v", path, ErrFontLoad, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font %q at size %d: %w: %v", path, size, ErrFontLoad, err)
	}

	return &captionFont{face: face, ascent: face.Metrics().Ascent}, nil
}

func (f *captionFont) Close() error {
	return f.face.Close()
}

// bbox returns the ink bounds of s. Empty text has an empty box at the origin.
func (f *captionFont) bbox(s string) textBox {
	if s == "" {
		return textBox{}
	}
	b, _ := font.BoundString(f.face, s)
	return textBox{
		Left:   b.Min.X.Floor(),
		Top:    (f.ascent + b.Min.Y).Floor(),
		Right:  b.Max.X.Ceil(),
		Bottom: (f.ascent + b.Max.Y).Ceil(),
	}
}

// textHeight is the distance from the top of the line to the bottom of a
// capital letter.
func (f *captionFont) textHeight() int {
	return f.bbox("A").Bottom
}

// maxRight is the largest right edge among texts, 0 for none.
func (f *captionFont) maxRight(texts []string) int {
	m := 0
	for _, t := range texts {
		if r := f.bbox(t).Right; r > m {
			m = r
		}
	}
	return m
}

// draw renders s with the top-left of its line at p.
func (f *captionFont) draw(dst *image.NRGBA, p image.Point, s string, c color.Color) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.Point26_6{X: fixed.I(p.X), Y: fixed.I(p.Y) + f.ascent},
	}
	d.DrawString(s)
}
