package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// SavePNG writes img to path as a PNG, whatever the path's extension.
//
// The image is encoded into a temporary file next to path and renamed into
// place, so a failed save never leaves a truncated file at path. A new file
// gets mode 0644; overwriting an existing file keeps its mode.
func SavePNG(img image.Image, path string) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".grid-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := imaging.Encode(tmp, img, imaging.PNG); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNG returns img encoded as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodePNGBase64 returns img as a base64-encoded PNG.
func EncodePNGBase64(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// PreviewResult contains a scaled copy of a composite for display.
type PreviewResult struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Scale       float64 `json:"scale"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
}

// Preview scales img to fit inside maxWidth x maxHeight, keeping its aspect
// ratio. Small images are scaled up to fill the box.
func Preview(img image.Image, maxWidth, maxHeight int) (*PreviewResult, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("preview box %dx%d: %w", maxWidth, maxHeight, ErrInvalidSize)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty image: %w", ErrInvalidSize)
	}

	scale := math.Min(float64(maxWidth)/float64(b.Dx()), float64(maxHeight)/float64(b.Dy()))
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))

	scaled := transform.Resize(img, w, h, transform.Linear)
	encoded, err := EncodePNGBase64(scaled)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Width:       w,
		Height:      h,
		Scale:       scale,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
