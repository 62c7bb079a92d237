package server

import (
	"encoding/json"
	"testing"
)

func toolByName(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range GetToolDefinitions() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %s not found", name)
	return Tool{}
}

func requiredOf(t *testing.T, tool Tool) map[string]bool {
	t.Helper()
	required, ok := tool.InputSchema["required"].([]string)
	if !ok {
		t.Fatalf("%s: 'required' should be a string slice", tool.Name)
	}
	set := make(map[string]bool, len(required))
	for _, r := range required {
		set[r] = true
	}
	return set
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"frame_load",
		"frame_dimensions",
		"overlay_annotate",
		"overlay_dashed_line",
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
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
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema missing 'properties' field")
			}
			// Every required field must be described
			for r := range requiredOf(t, tool) {
				if _, ok := props[r]; !ok {
					t.Errorf("required field %s has no property", r)
				}
			}
			if !requiredOf(t, tool)["path"] {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_Annotate(t *testing.T) {
	required := requiredOf(t, toolByName(t, "overlay_annotate"))
	for _, r := range []string{"path", "detection_result"} {
		if !required[r] {
			t.Errorf("overlay_annotate should require '%s'", r)
		}
	}
	if required["output_path"] {
		t.Error("output_path should be optional")
	}
}

func TestToolDefinitions_DashedLine(t *testing.T) {
	tool := toolByName(t, "overlay_dashed_line")
	required := requiredOf(t, tool)
	for _, r := range []string{"path", "start", "end"} {
		if !required[r] {
			t.Errorf("overlay_dashed_line should require '%s'", r)
		}
	}

	props := tool.InputSchema["properties"].(map[string]interface{})
	defaults := map[string]interface{}{
		"color":       "#00FF00",
		"thickness":   1,
		"dash_length": 5,
	}
	for name, want := range defaults {
		prop := props[name].(map[string]interface{})
		if prop["default"] != want {
			t.Errorf("%s default: got %v, want %v", name, prop["default"], want)
		}
	}
	for _, name := range []string{"thickness", "dash_length"} {
		prop := props[name].(map[string]interface{})
		if prop["minimum"] != 1 {
			t.Errorf("%s minimum: got %v, want 1", name, prop["minimum"])
		}
	}
}

func TestToolDefinitions_Marshal(t *testing.T) {
	b, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("tool definitions should marshal: %v", err)
	}

	var decoded []struct {
		Name        string                 `json:"name"`
		InputSchema map[string]interface{} `json:"inputSchema"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, d := range decoded {
		if d.InputSchema == nil {
			t.Errorf("%s: inputSchema missing after round trip", d.Name)
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(nil)
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("tools/list failed: %+v", resp)
	}
	result := resp.Result.(map[string]interface{})
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools type: got %T", result["tools"])
	}
	if len(tools) != 4 {
		t.Errorf("tool count: got %d, want 4", len(tools))
	}
}
