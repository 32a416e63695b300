// Package imaging provides the image I/O around grid composition.
//
// It lists and orders the images of a folder, decodes and resizes them to the
// grid's cell size, resolves color specifications, and writes or previews the
// finished composite. All operations work with standard Go image.Image types
// and use a coordinate system where (0,0) is at the top-left corner, X
// increases rightward, and Y increases downward.
//
// # Ordering
//
// Folder listings are ordered by the first run of digits in each filename,
// compared numerically, with ties broken lexically. Filenames without digits
// come after all numbered ones:
//
//	img2.png, img10.png, a.png, b.png
//
// # Colors
//
// A ColorSpec is either a "#RRGGBB" literal or a color name from the SVG 1.1
// table ("white", "steelblue", ...), matched case-insensitively. Specs always
// resolve to a fully opaque color.
//
// # Error Handling
//
// Failures wrap one of the sentinel errors ErrNotFound, ErrDecode,
// ErrInvalidColor or ErrInvalidSize; test for them with errors.Is.
//
// # Concurrency
//
// Nothing is cached between calls. Every function is safe to call
// concurrently on distinct inputs.
package imaging
