package ocr

import (
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/image-grid-mcp/internal/grid"
	"github.com/ironsheep/image-grid-mcp/internal/imaging"
)

// DefaultUpscale is the factor caption bands are enlarged by before OCR.
// Captions are usually a few pixels tall, below what Tesseract reads well.
const DefaultUpscale = 2

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// CaptionText is the OCR reading of a single caption band.
type CaptionText struct {
	// Index is the column or row the caption belongs to.
	Index int `json:"index"`

	// Expected is the caption text that was drawn.
	Expected string `json:"expected"`

	// Text is what Tesseract read, with surrounding whitespace trimmed.
	Text string `json:"text"`

	// Match reports whether Text equals Expected, ignoring whitespace.
	Match bool `json:"match"`

	// Bounds is the band that was read, in composite coordinates.
	Bounds Bounds `json:"bounds"`
}

// CaptionsResult holds the readings for every drawn caption.
type CaptionsResult struct {
	ColumnCaptions []CaptionText `json:"column_captions"`
	RowCaptions    []CaptionText `json:"row_captions"`

	// AllMatch is true when every non-empty caption was read back exactly.
	AllMatch bool `json:"all_match"`
}

// ReadCaptions runs OCR over the caption bands of a composite produced with
// layout and compares the result with the captions that were drawn.
//
// Parameters:
//   - img: the composite returned by grid.Compose.
//   - layout: the layout of the same composition (grid.PlanLayout).
//   - language: Tesseract language code, e.g. "eng".
//
// Empty captions and empty bands are reported without running OCR. A
// composite without captions yields an empty result with AllMatch true.
func ReadCaptions(img image.Image, layout *grid.Layout, language string) (*CaptionsResult, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	result := &CaptionsResult{AllMatch: true}

	for _, c := range layout.ColumnCaptions {
		ct, err := readBand(client, img, c)
		if err != nil {
			return nil, fmt.Errorf("column caption %d: %w", c.Index, err)
		}
		result.ColumnCaptions = append(result.ColumnCaptions, ct)
		result.AllMatch = result.AllMatch && ct.Match
	}
	for _, c := range layout.RowCaptions {
		ct, err := readBand(client, img, c)
		if err != nil {
			return nil, fmt.Errorf("row caption %d: %w", c.Index, err)
		}
		result.RowCaptions = append(result.RowCaptions, ct)
		result.AllMatch = result.AllMatch && ct.Match
	}

	return result, nil
}

func readBand(client *gosseract.Client, img image.Image, c grid.Caption) (CaptionText, error) {
	ct := CaptionText{
		Index:    c.Index,
		Expected: c.Text,
		Bounds:   Bounds{X1: c.Band.Min.X, Y1: c.Band.Min.Y, X2: c.Band.Max.X, Y2: c.Band.Max.Y},
	}
	if strings.TrimSpace(c.Text) == "" || c.Band.Empty() {
		ct.Match = strings.TrimSpace(c.Text) == ""
		return ct, nil
	}

	band, err := imaging.CropScaled(img, c.Band, DefaultUpscale)
	if err != nil {
		return ct, err
	}
	data, err := imaging.EncodePNG(band)
	if err != nil {
		return ct, err
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return ct, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return ct, fmt.Errorf("OCR failed: %w", err)
	}
	ct.Text = strings.TrimSpace(text)
	ct.Match = normalize(ct.Text) == normalize(c.Text)
	return ct, nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), "")
}
