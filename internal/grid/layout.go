package grid

import "image"

// Caption is one caption as it will be drawn on the canvas.
type Caption struct {
	// Index is the column (for column captions) or row (for row captions).
	Index int `json:"index"`

	Text string `json:"text"`

	// Origin is the top-left of the text line.
	Origin image.Point `json:"origin"`

	// Band is the canvas area reserved for the caption, clipped to the canvas.
	Band image.Rectangle `json:"band"`
}

// Layout is the geometry of one composition. All values are in output pixels,
// i.e. after the resolution scale has been applied.
type Layout struct {
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`

	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`
	FontSize   int `json:"font_size"`

	// TextHeight and MaxCaptionWidth are zero when captions are disabled.
	TextHeight      int `json:"text_height"`
	MaxCaptionWidth int `json:"max_caption_width"`

	Columns int `json:"columns"`
	Rows    int `json:"rows"`

	// Cells holds the rectangle of every placed image in row-major order.
	Cells []image.Rectangle `json:"cells"`

	// ColumnCaptions and RowCaptions list the captions that are drawn: one
	// per placed cell in row 0 and column 0 respectively. Both are empty
	// when captions are disabled.
	ColumnCaptions []Caption `json:"column_captions"`
	RowCaptions    []Caption `json:"row_captions"`
}

// CaptionsEnabled reports whether any caption text is rendered.
func (l *Layout) CaptionsEnabled() bool {
	return l.FontSize != 0
}

// Bounds is the canvas rectangle.
func (l *Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.CanvasWidth, l.CanvasHeight)
}

// CellOrigin returns the top-left of the cell holding image i, placed
// row-major.
func (l *Layout) CellOrigin(i int) image.Point {
	return l.Cells[i].Min
}

// PlanLayout computes the layout for placing imageCount images with cfg
// without allocating a canvas. imageCount is capped at the grid capacity.
//
// The font is loaded (and closed again) when captions are enabled, so
// PlanLayout fails the same way Compose does on a bad font.
//
// The caption margin is measured over the column captions only, and the
// canvas is widened for it only when column caption 0 is non-empty. Row
// captions wider than that margin run into column 0; with no column captions
// at all they start on the left edge of column 0.
func PlanLayout(cfg Config, imageCount int) (*Layout, error) {
	l, f, err := plan(cfg, imageCount)
	if err != nil {
		return nil, err
	}
	if f != nil {
		f.Close()
	}
	return l, nil
}

// plan returns the layout and, when captions are enabled, the loaded font.
// The caller owns the font.
func plan(cfg Config, imageCount int) (*Layout, *captionFont, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	cellW := cfg.CellWidth * cfg.Scale
	cellH := cfg.CellHeight * cfg.Scale
	fontSize := cfg.Font.Size * cfg.Scale

	var (
		f          *captionFont
		textHeight int
		maxWidth   int
	)
	if fontSize != 0 {
		var err error
		f, err = loadCaptionFont(cfg.Font.Path, fontSize)
		if err != nil {
			return nil, nil, err
		}
		textHeight = f.textHeight()
		maxWidth = f.maxRight(cfg.ColumnCaptions)
	}

	// The left margin reserved for row captions is keyed on the first
	// column caption, not on the row captions.
	leftMargin := captionAt(cfg.ColumnCaptions, 0) != ""

	width := (cellW+cfg.XSpacing)*cfg.Columns + cfg.XSpacing
	offsetX := 2 * maxWidth
	if leftMargin {
		width += 2 * maxWidth
	} else {
		offsetX += cfg.XSpacing
	}
	height := (cellH+cfg.YSpacing)*cfg.Rows + 4*textHeight + cfg.YSpacing
	offsetY := cfg.YSpacing + 2*textHeight

	n := min(max(imageCount, 0), cfg.Capacity())
	l := &Layout{
		CanvasWidth:     width,
		CanvasHeight:    height,
		CellWidth:       cellW,
		CellHeight:      cellH,
		FontSize:        fontSize,
		TextHeight:      textHeight,
		MaxCaptionWidth: maxWidth,
		Columns:         cfg.Columns,
		Rows:            cfg.Rows,
		Cells:           make([]image.Rectangle, n),
	}
	canvas := l.Bounds()

	for i := 0; i < n; i++ {
		col, row := i%cfg.Columns, i/cfg.Columns
		x := offsetX + col*(cellW+cfg.XSpacing)
		y := offsetY + row*(cellH+cfg.YSpacing)
		cell := image.Rect(x, y, x+cellW, y+cellH)
		l.Cells[i] = cell

		if f == nil {
			continue
		}
		if row == 0 {
			text := captionAt(cfg.ColumnCaptions, col)
			tw := f.bbox(text).Width()
			l.ColumnCaptions = append(l.ColumnCaptions, Caption{
				Index:  col,
				Text:   text,
				Origin: image.Pt(x+floorDiv(cellW-tw, 2), y-textHeight*3/2),
				Band:   image.Rect(x, y-2*textHeight, x+cellW, y).Intersect(canvas),
			})
		}
		if col == 0 {
			text := captionAt(cfg.RowCaptions, row)
			th := f.bbox(text).Height()
			l.RowCaptions = append(l.RowCaptions, Caption{
				Index:  row,
				Text:   text,
				Origin: image.Pt(x-maxWidth*3/2, y+floorDiv(cellH-th, 2)),
				Band:   image.Rect(x-2*maxWidth, y, x, y+cellH).Intersect(canvas),
			})
		}
	}

	return l, f, nil
}

// floorDiv divides rounding toward negative infinity, so text wider than its
// cell is still centered symmetrically.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
