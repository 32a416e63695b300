package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// gridProperties returns the schema of the composition parameters shared by
// grid_layout, grid_compose and grid_read_captions.
func gridProperties() map[string]interface{} {
	captions := func(desc string) map[string]interface{} {
		return map[string]interface{}{
			"description": desc + " Either an array of strings or one comma-separated string.",
			"oneOf": []map[string]interface{}{
				{"type": "array", "items": map[string]interface{}{"type": "string"}},
				{"type": "string"},
			},
		}
	}

	return map[string]interface{}{
		"cell_width": map[string]interface{}{
			"type":        "integer",
			"description": "Cell width in pixels before scaling. Default 128",
			"default":     128,
		},
		"cell_height": map[string]interface{}{
			"type":        "integer",
			"description": "Cell height in pixels before scaling. Default 64",
			"default":     64,
		},
		"resolution_scale": map[string]interface{}{
			"type":        "integer",
			"description": "Integer multiplier for cell size and font size. Default 1",
			"default":     1,
		},
		"columns": map[string]interface{}{
			"type":        "integer",
			"description": "Number of grid columns. Default 6",
			"default":     6,
		},
		"rows": map[string]interface{}{
			"type":        "integer",
			"description": "Number of grid rows. Default 6",
			"default":     6,
		},
		"x_spacing": map[string]interface{}{
			"type":        "integer",
			"description": "Horizontal spacing between cells in pixels. Default 15",
			"default":     15,
		},
		"y_spacing": map[string]interface{}{
			"type":        "integer",
			"description": "Vertical spacing between cells in pixels. Default 0",
			"default":     0,
		},
		"background_color": map[string]interface{}{
			"type":        "string",
			"description": "Canvas color as #RRGGBB or a color name. Default white",
			"default":     "white",
		},
		"font_color": map[string]interface{}{
			"type":        "string",
			"description": "Caption color as #RRGGBB or a color name. Default black",
			"default":     "black",
		},
		"font_path": map[string]interface{}{
			"type":        "string",
			"description": "Path to a TrueType/OpenType font. Empty uses the built-in font",
		},
		"font_size": map[string]interface{}{
			"type":        "integer",
			"description": "Caption font size in pixels before scaling; 0 disables captions. Default 8",
			"default":     8,
		},
		"column_captions": captions("Captions drawn above the first row, one per column."),
		"row_captions":    captions("Captions drawn left of the first column, one per row."),
	}
}

func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	folder := map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the folder of images (.png, .jpg, .jpeg, .tif)",
	}

	return []Tool{
		{
			Name:        "grid_list_images",
			Description: "List the images of a folder in grid order: by the first number in each filename, then alphabetically; names without numbers last.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"folder": folder,
				},
				"required": []string{"folder"},
			},
		},
		{
			Name:        "grid_layout",
			Description: "Compute the canvas size, cell rectangles and caption positions of a grid without reading any image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(gridProperties(), map[string]interface{}{
					"folder": folder,
					"image_count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of images to lay out. Defaults to the folder's image count, or the full grid without a folder",
					},
				}),
			},
		},
		{
			Name:        "grid_compose",
			Description: "Compose the images of a folder into a captioned grid. Returns the canvas size and a scaled preview, and saves a PNG when output_path is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(gridProperties(), map[string]interface{}{
					"folder": folder,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the composite PNG. Nothing is written when empty",
					},
					"preview_width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of the preview box. Default 1000",
						"default":     1000,
					},
					"preview_height": map[string]interface{}{
						"type":        "integer",
						"description": "Height of the preview box. Default 800",
						"default":     800,
					},
					"no_preview": map[string]interface{}{
						"type":        "boolean",
						"description": "Skip the base64 preview in the result",
						"default":     false,
					},
					"overlay_layout": map[string]interface{}{
						"type":        "boolean",
						"description": "Outline cells and caption bands in the preview. The saved PNG is unaffected",
						"default":     false,
					},
					"overlay_color": map[string]interface{}{
						"type":        "string",
						"description": "Outline color as #RRGGBB or a color name. Default red",
						"default":     "red",
					},
				}),
				"required": []string{"folder"},
			},
		},
		{
			Name:        "grid_sample_color",
			Description: "Get the exact color of a pixel in a saved composite, e.g. to check the background color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "grid_read_captions",
			Description: "Compose a grid and read every caption back with OCR to check that the captions are legible.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(gridProperties(), map[string]interface{}{
					"folder": folder,
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Default eng",
						"default":     "eng",
					},
				}),
				"required": []string{"folder"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
