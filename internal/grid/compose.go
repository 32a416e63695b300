package grid

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Compose pastes images into a grid on a new canvas and draws the captions.
//
// Images are placed row-major: image i goes to column i mod Columns and row
// i div Columns. Images beyond the grid capacity are ignored, and cells
// without an image keep the background color. Images are pasted at their own
// size, unmodified; they are expected to already be CellWidth*Scale by
// CellHeight*Scale (see imaging.ResizeImages).
//
// Captions are drawn only for cells that received an image: the column
// caption above each image of row 0 and the row caption left of each image of
// column 0.
//
// # Errors
//
//   - imaging.ErrInvalidColor if either color cannot be resolved
//   - ErrInvalidLayout if the geometry in cfg is not usable
//   - imaging.ErrNotFound if cfg.Font.Path does not exist
//   - ErrFontLoad if the font cannot be parsed at the scaled size
//
// No canvas is returned on error.
func Compose(images []image.Image, cfg Config) (*image.NRGBA, error) {
	bg, err := cfg.Background.RGBA()
	if err != nil {
		return nil, err
	}
	fg, err := cfg.FontColor.RGBA()
	if err != nil {
		return nil, err
	}

	l, f, err := plan(cfg, len(images))
	if err != nil {
		return nil, err
	}
	if f != nil {
		defer f.Close()
	}

	canvas := imaging.New(l.CanvasWidth, l.CanvasHeight, bg)

	for i, cell := range l.Cells {
		src := images[i]
		sb := src.Bounds()
		draw.Draw(canvas, image.Rectangle{Min: cell.Min, Max: cell.Min.Add(sb.Size())}, src, sb.Min, draw.Src)

		if f == nil {
			continue
		}
		col, row := i%l.Columns, i/l.Columns
		if row == 0 {
			c := l.ColumnCaptions[col]
			f.draw(canvas, c.Origin, c.Text, fg)
		}
		if col == 0 {
			c := l.RowCaptions[row]
			f.draw(canvas, c.Origin, c.Text, fg)
		}
	}

	return canvas, nil
}
