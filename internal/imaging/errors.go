package imaging

import "errors"

// Sentinel errors returned (wrapped) by this package. Callers match them with
// errors.Is; the wrapped message carries the offending path or value.
var (
	// ErrNotFound is returned when a folder or font file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDecode is returned when a file cannot be opened or decoded as an image.
	ErrDecode = errors.New("cannot decode image")

	// ErrInvalidColor is returned for a color string that is neither a
	// "#RRGGBB" literal nor a known color name.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidSize is returned for non-positive resize targets.
	ErrInvalidSize = errors.New("invalid size")
)
