// Package grid composes a set of equally sized images into a captioned grid.
//
// A composition is driven by a Config value. PlanLayout derives the canvas
// size, the cell rectangles and the caption positions; Compose allocates the
// canvas, pastes the images and draws the captions at those positions.
//
// # Geometry
//
// With cell size (w, h) after scaling, spacing (xs, ys), caption text height
// th and widest column caption mw:
//
//	width  = (w + xs) * columns + xs            (+ 2*mw if column caption 0 is set)
//	height = (h + ys) * rows + 4*th + ys
//
// Cells start 2*mw from the left edge (plus xs when column caption 0 is
// empty) and 2*th + ys from the top. Column captions sit 1.5*th above row 0,
// centered over the cell; row captions sit 1.5*mw left of column 0, centered
// on the cell height.
//
// A font size of 0 disables captions: th and mw are zero and nothing is
// drawn.
//
// # Colors and Fonts
//
// Colors are imaging.ColorSpec values resolved to opaque RGBA. The caption
// font is any TrueType/OpenType file; an empty path selects the embedded Go
// Regular font.
//
// Overlay draws the cell and caption band outlines of a Layout onto a copy
// of a composite, for previews.
package grid
