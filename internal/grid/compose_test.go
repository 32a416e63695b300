package grid

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/image-grid-mcp/internal/imaging"
)

// solidImage creates a w x h image filled with c.
func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// numberedImages returns n solid 10x8 images whose red channel is 10*(i+1).
func numberedImages(n int) []image.Image {
	imgs := make([]image.Image, n)
	for i := range imgs {
		imgs[i] = solidImage(10, 8, color.NRGBA{uint8(10 * (i + 1)), 0, 0, 255})
	}
	return imgs
}

func TestCompose_RowMajorPlacement(t *testing.T) {
	canvas, err := Compose(numberedImages(4), smallConfig())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if canvas.Bounds() != image.Rect(0, 0, 38, 25) {
		t.Fatalf("bounds: got %v, want 38x25", canvas.Bounds())
	}

	white := color.NRGBA{255, 255, 255, 255}
	for i := 0; i < 6; i++ {
		col, row := i%3, i/3
		x, y := 2+col*12, 3+row*11

		want := white
		if i < 4 {
			want = color.NRGBA{uint8(10 * (i + 1)), 0, 0, 255}
		}
		for _, p := range []image.Point{{x, y}, {x + 9, y + 7}, {x + 5, y + 4}} {
			if got := canvas.NRGBAAt(p.X, p.Y); got != want {
				t.Errorf("cell %d at %v: got %v, want %v", i, p, got, want)
			}
		}
	}

	// Spacing stays background.
	for _, p := range []image.Point{{0, 0}, {1, 3}, {12, 3}, {2, 11}, {37, 24}} {
		if got := canvas.NRGBAAt(p.X, p.Y); got != white {
			t.Errorf("background at %v: got %v", p, got)
		}
	}
}

func TestCompose_Background(t *testing.T) {
	cfg := smallConfig()
	cfg.Background = imaging.MustParseColorSpec("#112233")

	canvas, err := Compose(nil, cfg)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	want := color.NRGBA{0x11, 0x22, 0x33, 255}
	b := canvas.Bounds()
	for _, p := range []image.Point{{0, 0}, {b.Max.X - 1, b.Max.Y - 1}, {b.Max.X / 2, b.Max.Y / 2}} {
		if got := canvas.NRGBAAt(p.X, p.Y); got != want {
			t.Errorf("pixel %v: got %v, want %v", p, got, want)
		}
	}
}

func TestCompose_IgnoresImagesBeyondCapacity(t *testing.T) {
	canvas, err := Compose(numberedImages(9), smallConfig())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	// Last cell holds image 5, not 8.
	if got := canvas.NRGBAAt(2+2*12, 3+11); got.R != 60 {
		t.Errorf("last cell: got %v, want red 60", got)
	}
}

func TestCompose_PastesUnmodified(t *testing.T) {
	// A translucent image replaces the background instead of blending.
	img := solidImage(10, 8, color.NRGBA{0, 0, 255, 128})

	canvas, err := Compose([]image.Image{img}, smallConfig())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if got := canvas.NRGBAAt(2, 3); got != (color.NRGBA{0, 0, 255, 128}) {
		t.Errorf("got %v, want unblended source pixel", got)
	}
}

func TestCompose_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"bad background", func(c *Config) { c.Background = imaging.NamedColor("nope") }, imaging.ErrInvalidColor},
		{"bad font color", func(c *Config) { c.FontColor = imaging.ColorSpec{} }, imaging.ErrInvalidColor},
		{"bad geometry", func(c *Config) { c.Columns = 0 }, ErrInvalidLayout},
		{"missing font", func(c *Config) { c.Font = FontSpec{Path: "/nonexistent/font.ttf", Size: 8} }, imaging.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallConfig()
			tt.modify(&cfg)
			canvas, err := Compose(numberedImages(1), cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if canvas != nil {
				t.Error("expected no canvas on error")
			}
		})
	}
}

func TestCompose_DrawsCaptions(t *testing.T) {
	cfg := smallConfig()
	cfg.CellWidth, cfg.CellHeight = 60, 40
	cfg.Font.Size = 14
	cfg.ColumnCaptions = []string{"Left", "Mid", "Right"}
	cfg.RowCaptions = []string{"Top", "Bottom"}

	imgs := make([]image.Image, 6)
	for i := range imgs {
		imgs[i] = solidImage(60, 40, color.NRGBA{200, 200, 200, 255})
	}

	canvas, err := Compose(imgs, cfg)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	l, err := PlanLayout(cfg, len(imgs))
	if err != nil {
		t.Fatalf("PlanLayout failed: %v", err)
	}
	if canvas.Bounds() != l.Bounds() {
		t.Fatalf("canvas %v does not match layout %v", canvas.Bounds(), l.Bounds())
	}

	for _, c := range append(append([]Caption(nil), l.ColumnCaptions...), l.RowCaptions...) {
		if !hasInk(canvas, c.Band) {
			t.Errorf("caption %q: no text drawn in band %v", c.Text, c.Band)
		}
	}
}

func TestCompose_EmptyCaptionsDrawNothing(t *testing.T) {
	cfg := smallConfig()
	cfg.Font.Size = 8
	cfg.Columns = 5
	cfg.ColumnCaptions = []string{"", "B"}

	canvas, err := Compose(numberedImages(5), cfg)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	l, err := PlanLayout(cfg, 5)
	if err != nil {
		t.Fatalf("PlanLayout failed: %v", err)
	}
	if len(l.ColumnCaptions) != 5 {
		t.Fatalf("got %d column captions, want 5", len(l.ColumnCaptions))
	}
	for _, c := range l.ColumnCaptions {
		drawn := hasInk(canvas, c.Band)
		if (c.Text != "") != drawn {
			t.Errorf("column %d %q: drawn=%v", c.Index, c.Text, drawn)
		}
	}
}

func TestCompose_Deterministic(t *testing.T) {
	cfg := smallConfig()
	cfg.Font.Size = 9
	cfg.ColumnCaptions = []string{"a", "b", "c"}
	cfg.RowCaptions = []string{"1", "2"}

	a, err := Compose(numberedImages(6), cfg)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	b, err := Compose(numberedImages(6), cfg)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if string(a.Pix) != string(b.Pix) {
		t.Error("identical inputs produced different canvases")
	}
}

// hasInk reports whether r contains any pixel that is not white.
func hasInk(img *image.NRGBA, r image.Rectangle) bool {
	white := color.NRGBA{255, 255, 255, 255}
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.NRGBAAt(x, y) != white {
				return true
			}
		}
	}
	return false
}
