package imaging

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// imageExtensions are the file extensions picked up from a folder listing,
// compared case-insensitively.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
}

// ResizeFilter is the resampling filter used by ResizeImages. Catmull-Rom is
// a bicubic filter.
var ResizeFilter = imaging.CatmullRom

// IsImageFile reports whether name has one of the supported image extensions.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// ListImages returns the image files in folder, sorted by embedded number
// (see SortFilenames). Only regular files with a .png, .jpg, .jpeg or .tif
// extension are listed; subdirectories are ignored.
//
// # Errors
//
//   - ErrNotFound if folder does not exist
//   - any other error from reading the directory, wrapped
func ListImages(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("folder %s: %w", folder, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	SortFilenames(names)
	return names, nil
}

// Open decodes the image file at path.
//
// Any failure, including a missing or unreadable file, is reported as
// ErrDecode.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrDecode, err)
	}
	return img, nil
}

// ResizeImages decodes each file in folder and stretches it to
// (width*scale, height*scale). Aspect ratio is not preserved.
//
// The result has the same length and order as filenames. Decoding stops at
// the first file that fails; no partial result is returned.
//
// # Errors
//
//   - ErrInvalidSize if width, height or scale is not positive
//   - ErrNotFound if folder does not exist
//   - ErrDecode if a file cannot be opened or decoded
func ResizeImages(filenames []string, folder string, width, height, scale int) ([]image.Image, error) {
	if width <= 0 || height <= 0 || scale <= 0 {
		return nil, fmt.Errorf("resize to %dx%d at scale %d: %w", width, height, scale, ErrInvalidSize)
	}

	info, err := os.Stat(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("folder %s: %w", folder, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("folder %s is not a directory: %w", folder, ErrNotFound)
	}

	w, h := width*scale, height*scale
	resized := make([]image.Image, 0, len(filenames))
	for _, name := range filenames {
		img, err := Open(filepath.Join(folder, name))
		if err != nil {
			return nil, err
		}
		resized = append(resized, imaging.Resize(img, w, h, ResizeFilter))
	}
	return resized, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the pixel size of img.
func GetDimensions(img image.Image) DimensionsResult {
	b := img.Bounds()
	return DimensionsResult{Width: b.Dx(), Height: b.Dy()}
}
