package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/ironsheep/image-grid-mcp/internal/grid"
	"github.com/ironsheep/image-grid-mcp/internal/imaging"
	"github.com/ironsheep/image-grid-mcp/internal/ocr"
)

// Preview box used when a grid_compose call does not give one.
const (
	defaultPreviewWidth  = 1000
	defaultPreviewHeight = 800
)

const defaultOverlayColor = "red"

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "grid_compose").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Printf("Tool %s failed: %v", params.Name, err)
		return errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	s.debugf("Tool %s finished in %s", params.Name, time.Since(start))

	return resultResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Every call starts from the folder listing; nothing is carried over from a
// previous call.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "grid_list_images":
		return s.handleListImages(args)
	case "grid_layout":
		return s.handleLayout(args)
	case "grid_compose":
		return s.handleCompose(args)
	case "grid_sample_color":
		return s.handleSampleColor(args)
	case "grid_read_captions":
		return s.handleReadCaptions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// captionList accepts either a JSON array of strings or a single
// comma-separated string. Items of the string form are trimmed.
type captionList []string

func (c *captionList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*c = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("captions must be an array of strings or a comma-separated string")
	}
	*c = splitCaptions(s)
	return nil
}

func splitCaptions(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// gridArgs are the composition parameters shared by the grid tools. Zero
// values of the non-pointer fields select the defaults of grid.DefaultConfig;
// the pointer fields are pointers because 0 is a meaningful value for them.
type gridArgs struct {
	CellWidth       int         `json:"cell_width"`
	CellHeight      int         `json:"cell_height"`
	ResolutionScale int         `json:"resolution_scale"`
	Columns         int         `json:"columns"`
	Rows            int         `json:"rows"`
	XSpacing        *int        `json:"x_spacing"`
	YSpacing        *int        `json:"y_spacing"`
	BackgroundColor string      `json:"background_color"`
	FontColor       string      `json:"font_color"`
	FontPath        string      `json:"font_path"`
	FontSize        *int        `json:"font_size"`
	ColumnCaptions  captionList `json:"column_captions"`
	RowCaptions     captionList `json:"row_captions"`
}

// config converts the arguments into a grid.Config. Colors are resolved here
// so the composer never sees raw strings.
func (a *gridArgs) config(defaultFont string) (grid.Config, error) {
	cfg := grid.DefaultConfig()
	cfg.Font.Path = defaultFont

	if a.CellWidth != 0 {
		cfg.CellWidth = a.CellWidth
	}
	if a.CellHeight != 0 {
		cfg.CellHeight = a.CellHeight
	}
	if a.ResolutionScale != 0 {
		cfg.Scale = a.ResolutionScale
	}
	if a.Columns != 0 {
		cfg.Columns = a.Columns
	}
	if a.Rows != 0 {
		cfg.Rows = a.Rows
	}
	if a.XSpacing != nil {
		cfg.XSpacing = *a.XSpacing
	}
	if a.YSpacing != nil {
		cfg.YSpacing = *a.YSpacing
	}
	if a.FontPath != "" {
		cfg.Font.Path = a.FontPath
	}
	if a.FontSize != nil {
		cfg.Font.Size = *a.FontSize
	}
	if a.BackgroundColor != "" {
		bg, err := imaging.ParseColorSpec(a.BackgroundColor)
		if err != nil {
			return grid.Config{}, fmt.Errorf("background_color: %w", err)
		}
		cfg.Background = bg
	}
	if a.FontColor != "" {
		fg, err := imaging.ParseColorSpec(a.FontColor)
		if err != nil {
			return grid.Config{}, fmt.Errorf("font_color: %w", err)
		}
		cfg.FontColor = fg
	}
	cfg.ColumnCaptions = a.ColumnCaptions
	cfg.RowCaptions = a.RowCaptions

	return cfg, cfg.Validate()
}

// composition is the outcome of running the whole pipeline once.
type composition struct {
	files  []string
	placed int
	canvas *image.NRGBA
	cfg    grid.Config
}

// compose lists folder, resizes the images that fit the grid and composes
// them. Files beyond the grid capacity are neither decoded nor placed.
func (s *Server) compose(folder string, a *gridArgs) (*composition, error) {
	cfg, err := a.config(s.cfg.DefaultFont)
	if err != nil {
		return nil, err
	}

	files, err := imaging.ListImages(folder)
	if err != nil {
		return nil, err
	}
	placed := files[:min(len(files), cfg.Capacity())]

	images, err := imaging.ResizeImages(placed, folder, cfg.CellWidth, cfg.CellHeight, cfg.Scale)
	if err != nil {
		return nil, err
	}

	canvas, err := grid.Compose(images, cfg)
	if err != nil {
		return nil, err
	}

	s.debugf("Composed %d of %d images from %s into %dx%d",
		len(placed), len(files), folder, canvas.Bounds().Dx(), canvas.Bounds().Dy())
	return &composition{files: files, placed: len(placed), canvas: canvas, cfg: cfg}, nil
}

// === Listing ===

type listImagesArgs struct {
	Folder string `json:"folder"`
}

type listImagesResult struct {
	Folder string   `json:"folder"`
	Count  int      `json:"count"`
	Files  []string `json:"files"`
}

func (s *Server) handleListImages(args json.RawMessage) (interface{}, error) {
	var a listImagesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	files, err := imaging.ListImages(a.Folder)
	if err != nil {
		return nil, err
	}
	return &listImagesResult{Folder: a.Folder, Count: len(files), Files: files}, nil
}

// === Layout ===

type layoutArgs struct {
	gridArgs
	Folder     string `json:"folder"`
	ImageCount *int   `json:"image_count"`
}

func (s *Server) handleLayout(args json.RawMessage) (interface{}, error) {
	var a layoutArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg, err := a.config(s.cfg.DefaultFont)
	if err != nil {
		return nil, err
	}

	count := cfg.Capacity()
	switch {
	case a.ImageCount != nil:
		count = *a.ImageCount
	case a.Folder != "":
		files, err := imaging.ListImages(a.Folder)
		if err != nil {
			return nil, err
		}
		count = len(files)
	}
	return grid.PlanLayout(cfg, count)
}

// === Composition ===

type composeArgs struct {
	gridArgs
	Folder        string `json:"folder"`
	OutputPath    string `json:"output_path"`
	PreviewWidth  int    `json:"preview_width"`
	PreviewHeight int    `json:"preview_height"`
	NoPreview     bool   `json:"no_preview"`
	OverlayLayout bool   `json:"overlay_layout"`
	OverlayColor  string `json:"overlay_color"`
}

type composeResult struct {
	Width        int                    `json:"width"`
	Height       int                    `json:"height"`
	ImagesFound  int                    `json:"images_found"`
	ImagesPlaced int                    `json:"images_placed"`
	OutputPath   string                 `json:"output_path,omitempty"`
	Preview      *imaging.PreviewResult `json:"preview,omitempty"`
}

func (s *Server) handleCompose(args json.RawMessage) (interface{}, error) {
	var a composeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.PreviewWidth == 0 {
		a.PreviewWidth = defaultPreviewWidth
	}
	if a.PreviewHeight == 0 {
		a.PreviewHeight = defaultPreviewHeight
	}
	if a.OverlayColor == "" {
		a.OverlayColor = defaultOverlayColor
	}
	overlayColor, err := imaging.ParseColorSpec(a.OverlayColor)
	if err != nil {
		return nil, fmt.Errorf("overlay_color: %w", err)
	}

	c, err := s.compose(a.Folder, &a.gridArgs)
	if err != nil {
		return nil, err
	}

	dims := imaging.GetDimensions(c.canvas)
	result := &composeResult{
		Width:        dims.Width,
		Height:       dims.Height,
		ImagesFound:  len(c.files),
		ImagesPlaced: c.placed,
	}

	if a.OutputPath != "" {
		if err := imaging.SavePNG(c.canvas, a.OutputPath); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
	}
	if !a.NoPreview {
		var shown image.Image = c.canvas
		if a.OverlayLayout {
			if shown, err = s.overlay(c, overlayColor); err != nil {
				return nil, err
			}
		}
		preview, err := imaging.Preview(shown, a.PreviewWidth, a.PreviewHeight)
		if err != nil {
			return nil, err
		}
		result.Preview = preview
	}
	return result, nil
}

// overlay outlines the cells and caption bands of c for the preview only;
// the saved composite never carries the outlines.
func (s *Server) overlay(c *composition, lineColor imaging.ColorSpec) (image.Image, error) {
	layout, err := grid.PlanLayout(c.cfg, c.placed)
	if err != nil {
		return nil, err
	}
	return grid.Overlay(c.canvas, layout, lineColor)
}

// === Verification ===

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := imaging.Open(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type readCaptionsArgs struct {
	gridArgs
	Folder   string `json:"folder"`
	Language string `json:"language"`
}

func (s *Server) handleReadCaptions(args json.RawMessage) (interface{}, error) {
	var a readCaptionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}

	c, err := s.compose(a.Folder, &a.gridArgs)
	if err != nil {
		return nil, err
	}
	layout, err := grid.PlanLayout(c.cfg, c.placed)
	if err != nil {
		return nil, err
	}
	return ocr.ReadCaptions(c.canvas, layout, a.Language)
}
