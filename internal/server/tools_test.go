package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"grid_list_images",
		"grid_layout",
		"grid_compose",
		"grid_sample_color",
		"grid_read_captions",
	}

	if len(tools) != len(expectedTools) {
		t.Fatalf("got %d tools, want %d", len(tools), len(expectedTools))
	}
	for i, name := range expectedTools {
		if tools[i].Name != name {
			t.Errorf("tool %d: got %s, want %s", i, tools[i].Name, name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema missing 'properties' map")
			}

			// Every schema must serialize for tools/list.
			if _, err := json.Marshal(tool); err != nil {
				t.Errorf("failed to marshal tool: %v", err)
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"grid_list_images", []string{"folder"}},
		{"grid_layout", nil},
		{"grid_compose", []string{"folder"}},
		{"grid_sample_color", []string{"path", "x", "y"}},
		{"grid_read_captions", []string{"folder"}},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool := toolMap[tt.tool]
			required, _ := tool.InputSchema["required"].([]string)
			if len(required) != len(tt.required) {
				t.Fatalf("required: got %v, want %v", required, tt.required)
			}
			props := tool.InputSchema["properties"].(map[string]interface{})
			for i, name := range tt.required {
				if required[i] != name {
					t.Errorf("required[%d]: got %s, want %s", i, required[i], name)
				}
				if _, ok := props[name]; !ok {
					t.Errorf("required property %s is not defined", name)
				}
			}
		})
	}
}

func TestToolDefinitions_GridProperties(t *testing.T) {
	shared := []string{
		"cell_width", "cell_height", "resolution_scale", "columns", "rows",
		"x_spacing", "y_spacing", "background_color", "font_color",
		"font_path", "font_size", "column_captions", "row_captions",
	}

	for _, tool := range GetToolDefinitions() {
		if tool.Name == "grid_list_images" || tool.Name == "grid_sample_color" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		for _, name := range shared {
			if _, ok := props[name]; !ok {
				t.Errorf("%s: missing property %s", tool.Name, name)
			}
		}
	}
}

func TestToolDefinitions_Defaults(t *testing.T) {
	props := gridProperties()

	tests := []struct {
		prop string
		want interface{}
	}{
		{"cell_width", 128},
		{"cell_height", 64},
		{"resolution_scale", 1},
		{"columns", 6},
		{"rows", 6},
		{"x_spacing", 15},
		{"y_spacing", 0},
		{"font_size", 8},
		{"background_color", "white"},
		{"font_color", "black"},
	}

	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			p := props[tt.prop].(map[string]interface{})
			if p["default"] != tt.want {
				t.Errorf("default: got %v, want %v", p["default"], tt.want)
			}
		})
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(Config{})
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: "list-1"})

	if resp.ID != "list-1" {
		t.Errorf("ID: got %v, want list-1", resp.ID)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if _, ok := result["tools"].([]Tool); !ok {
		t.Error("tools should be a slice of Tool")
	}
}
