package grid

import (
	"errors"
	"fmt"

	"github.com/ironsheep/image-grid-mcp/internal/imaging"
)

// ErrInvalidLayout is returned for a Config whose geometry cannot produce a
// canvas: non-positive grid shape, cell size or scale, or negative spacing
// or font size.
var ErrInvalidLayout = errors.New("invalid grid layout")

// FontSpec selects the caption font. An empty Path uses the built-in default
// font. Size is in pixels before the resolution scale is applied; 0 disables
// captions entirely.
type FontSpec struct {
	Path string
	Size int
}

// Config describes one grid composition. It is a plain value: build a new one
// for every composition instead of mutating a shared instance.
//
// Cell sizes, spacing and font size are given at 1x; Scale multiplies cell
// size and font size (not spacing) to produce higher resolution output with
// the same proportions.
type Config struct {
	CellWidth  int
	CellHeight int
	Scale      int

	Columns int
	Rows    int

	XSpacing int
	YSpacing int

	Background imaging.ColorSpec
	FontColor  imaging.ColorSpec
	Font       FontSpec

	// ColumnCaptions are drawn above row 0, one per column. Missing entries
	// render as empty text.
	ColumnCaptions []string

	// RowCaptions are drawn left of column 0, one per row. Missing entries
	// render as empty text.
	RowCaptions []string
}

// DefaultConfig returns the standard configuration: 128x64 cells in
// a 6x6 grid, 15px horizontal spacing, black 8px captions on white.
func DefaultConfig() Config {
	return Config{
		CellWidth:  128,
		CellHeight: 64,
		Scale:      1,
		Columns:    6,
		Rows:       6,
		XSpacing:   15,
		YSpacing:   0,
		Background: imaging.NamedColor("white"),
		FontColor:  imaging.NamedColor("black"),
		Font:       FontSpec{Size: 8},
	}
}

// Capacity is the number of cells in the grid.
func (c Config) Capacity() int {
	return c.Columns * c.Rows
}

// Validate checks the geometry fields. Colors and fonts are checked when they
// are resolved during composition.
func (c Config) Validate() error {
	switch {
	case c.Columns <= 0 || c.Rows <= 0:
		return fmt.Errorf("grid %dx%d: %w", c.Columns, c.Rows, ErrInvalidLayout)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("cell %dx%d: %w", c.CellWidth, c.CellHeight, ErrInvalidLayout)
	case c.Scale <= 0:
		return fmt.Errorf("resolution scale %d: %w", c.Scale, ErrInvalidLayout)
	case c.XSpacing < 0 || c.YSpacing < 0:
		return fmt.Errorf("spacing %d,%d: %w", c.XSpacing, c.YSpacing, ErrInvalidLayout)
	case c.Font.Size < 0:
		return fmt.Errorf("font size %d: %w", c.Font.Size, ErrInvalidLayout)
	}
	return nil
}

func captionAt(captions []string, i int) string {
	if i < len(captions) {
		return captions[i]
	}
	return ""
}
