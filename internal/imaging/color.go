package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

type colorKind int

const (
	kindHex colorKind = iota + 1
	kindNamed
)

// ColorSpec is a color given either as a "#RRGGBB" literal or by name.
//
// The zero ColorSpec is invalid; build one with ParseColorSpec, HexColor or
// NamedColor. RGBA resolves it to a fully opaque color.
type ColorSpec struct {
	kind colorKind
	rgb  [3]uint8
	name string
}

// HexColor returns a spec for the given components.
func HexColor(r, g, b uint8) ColorSpec {
	return ColorSpec{kind: kindHex, rgb: [3]uint8{r, g, b}}
}

// NamedColor returns a spec for a color name such as "white" or "SteelBlue".
// The name is resolved, case-insensitively, when RGBA is called.
func NamedColor(name string) ColorSpec {
	return ColorSpec{kind: kindNamed, name: name}
}

// ParseColorSpec classifies s. A string starting with '#' and exactly seven
// characters long is a hex literal and must consist of hex digits; any other
// string is a color name and is checked against the named color table.
//
// Both failure modes wrap ErrInvalidColor.
func ParseColorSpec(s string) (ColorSpec, error) {
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		if !isHex(s[1:]) {
			return ColorSpec{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorSpec{}, fmt.Errorf("%q: %w: %v", s, ErrInvalidColor, err)
		}
		r, g, b := c.RGB255()
		return HexColor(r, g, b), nil
	}

	spec := NamedColor(s)
	if _, err := spec.RGBA(); err != nil {
		return ColorSpec{}, err
	}
	return spec, nil
}

// MustParseColorSpec is like ParseColorSpec but panics on error. Intended for
// package-level defaults.
func MustParseColorSpec(s string) ColorSpec {
	spec, err := ParseColorSpec(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// RGBA resolves the spec to an opaque color.
func (c ColorSpec) RGBA() (color.NRGBA, error) {
	switch c.kind {
	case kindHex:
		return color.NRGBA{R: c.rgb[0], G: c.rgb[1], B: c.rgb[2], A: 255}, nil
	case kindNamed:
		named, ok := colornames.Map[strings.ToLower(c.name)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color name %q: %w", c.name, ErrInvalidColor)
		}
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: 255}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("empty color spec: %w", ErrInvalidColor)
	}
}

// String returns "#RRGGBB" for hex specs and the name for named specs.
func (c ColorSpec) String() string {
	switch c.kind {
	case kindHex:
		return fmt.Sprintf("#%02X%02X%02X", c.rgb[0], c.rgb[1], c.rgb[2])
	case kindNamed:
		return c.name
	}
	return ""
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"` // 255 = fully opaque
}

// HSLColor represents a color in HSL color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"` // "#RRGGBB", alpha excluded
	RGB  RGBColor  `json:"rgb"`
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor extracts the non-premultiplied color at (x, y).
//
// Coordinates are 0-based from the top-left of img's bounds. Used to verify
// background and caption colors of a finished composite.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)

	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	h, s, l := cf.Hsl()

	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}
