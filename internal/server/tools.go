package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func pointProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x": map[string]interface{}{"type": "integer"},
			"y": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x", "y"},
	}
}

// detectionResultSchema mirrors overlay.DetectionResult.
var detectionResultSchema = map[string]interface{}{
	"type":        "object",
	"description": "Detector output: an ordered list of detections, each with a bounding box and categories ranked best first. Only the first category of each detection is drawn.",
	"properties": map[string]interface{}{
		"detections": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"bounding_box": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"origin_x": map[string]interface{}{"type": "integer"},
							"origin_y": map[string]interface{}{"type": "integer"},
							"width":    map[string]interface{}{"type": "integer"},
							"height":   map[string]interface{}{"type": "integer"},
						},
						"required": []string{"origin_x", "origin_y", "width", "height"},
					},
					"categories": map[string]interface{}{
						"type":     "array",
						"minItems": 1,
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"category_name": map[string]interface{}{"type": "string"},
								"score":         map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
								"index":         map[string]interface{}{"type": "integer"},
								"display_name":  map[string]interface{}{"type": "string"},
							},
							"required": []string{"category_name", "score"},
						},
					},
				},
				"required": []string{"bounding_box", "categories"},
			},
		},
	},
	"required": []string{"detections"},
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Frame Information
		{
			Name:        "frame_load",
			Description: "Load a frame image and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the frame image"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "frame_dimensions",
			Description: "Get the width and height of a frame image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the frame image"),
				},
				"required": []string{"path"},
			},
		},

		// Overlay Rendering
		{
			Name:        "overlay_annotate",
			Description: "Draw detection results onto a frame: a green box and \"name (score)\" label per detection, a red dot on the highest-scoring detection, a green dot on the frame centre and a dashed green line between them. Returns the annotated frame as base64 PNG. The source file is not modified unless output_path points at it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":             pathProperty("Absolute path to the frame image"),
					"detection_result": detectionResultSchema,
					"output_path":      pathProperty("Optional path to also save the annotated frame (.png, .jpg, .jpeg or .bmp)"),
				},
				"required": []string{"path", "detection_result"},
			},
		},
		{
			Name:        "overlay_dashed_line",
			Description: "Draw the overlay's dashed line between two points on a frame. The line is always built from 100 samples (with the default dash length) joined end to end. Returns the frame as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty("Absolute path to the frame image"),
					"start": pointProperty("Start point in pixels"),
					"end":   pointProperty("End point in pixels"),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Line color as #RRGGBB. Default #00FF00",
						"default":     "#00FF00",
					},
					"thickness": map[string]interface{}{
						"type":        "integer",
						"description": "Stroke thickness in pixels, from 1 up to the frame diagonal. Other values are rejected. Default 1",
						"default":     1,
						"minimum":     1,
					},
					"dash_length": map[string]interface{}{
						"type":        "integer",
						"description": "Dash length, at least 1; samples are taken every 2*dash_length thousandths of the line. Default 5",
						"default":     5,
						"minimum":     1,
					},
					"output_path": pathProperty("Optional path to also save the frame (.png, .jpg, .jpeg or .bmp)"),
				},
				"required": []string{"path", "start", "end"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
