package server

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ironsheep/detection-overlay-mcp/internal/imaging"
	"github.com/ironsheep/detection-overlay-mcp/internal/overlay"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "frame_load", "overlay_annotate").
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
// Arguments outside their documented range return -32602; other tool
// execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	started := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	var argErr *invalidArgsError
	if errors.As(err, &argErr) {
		log.Debug().Err(err).Str("tool", params.Name).Msg("Rejected tool arguments")
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}
	if err != nil {
		log.Warn().Err(err).Str("tool", params.Name).Msg("Tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	log.Debug().Str("tool", params.Name).Dur("elapsed", time.Since(started)).Msg("Tool executed")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Frame Information
	case "frame_load":
		return s.handleFrameLoad(args)
	case "frame_dimensions":
		return s.handleFrameDimensions(args)

	// Overlay Rendering
	case "overlay_annotate":
		return s.handleOverlayAnnotate(args)
	case "overlay_dashed_line":
		return s.handleOverlayDashedLine(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// invalidArgsError reports tool arguments outside their documented range.
type invalidArgsError struct {
	msg string
}

func (e *invalidArgsError) Error() string {
	return e.msg
}

func invalidArgs(format string, args ...interface{}) error {
	return &invalidArgsError{msg: fmt.Sprintf(format, args...)}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// outputPath resolves a relative output path against the configured
// output directory.
func (s *Server) outputPath(path string) string {
	if path == "" || s.cfg.OutputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.cfg.OutputDir, path)
}

// save writes img to the resolved output path and returns that path, or
// "" when no output was requested.
func (s *Server) save(path string, img image.Image) (string, error) {
	out := s.outputPath(path)
	if out == "" {
		return "", nil
	}
	if err := imaging.SaveFrame(out, img, s.cfg.JPEGQuality); err != nil {
		return "", err
	}
	return out, nil
}

// === Frame Information Handlers ===

type frameArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleFrameLoad(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadFrameInfo(s.cache, a.Path)
}

func (s *Server) handleFrameDimensions(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Overlay Rendering Handlers ===

type overlayAnnotateArgs struct {
	Path            string                  `json:"path"`
	DetectionResult overlay.DetectionResult `json:"detection_result"`
	OutputPath      string                  `json:"output_path,omitempty"`
}

// AnnotateResult is the overlay_annotate tool result.
type AnnotateResult struct {
	imaging.EncodedFrame
	DetectionCount int                  `json:"detection_count"`
	Highlighted    *overlay.Highlighted `json:"highlighted,omitempty"`
	OutputPath     string               `json:"output_path,omitempty"`
}

func (s *Server) handleOverlayAnnotate(args json.RawMessage) (interface{}, error) {
	var a overlayAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	frame, err := s.cache.Frame(a.Path)
	if err != nil {
		return nil, err
	}

	if _, err := s.annotator.Visualize(frame, a.DetectionResult); err != nil {
		return nil, errors.Wrap(err, "annotate")
	}
	highlighted, _, err := overlay.Highlight(a.DetectionResult)
	if err != nil {
		return nil, errors.Wrap(err, "highlight")
	}

	encoded, err := imaging.EncodePNG(frame)
	if err != nil {
		return nil, err
	}
	saved, err := s.save(a.OutputPath, frame)
	if err != nil {
		return nil, err
	}

	return &AnnotateResult{
		EncodedFrame:   *encoded,
		DetectionCount: len(a.DetectionResult.Detections),
		Highlighted:    highlighted,
		OutputPath:     saved,
	}, nil
}

type pointArg struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p pointArg) point() image.Point {
	return image.Pt(p.X, p.Y)
}

type overlayDashedLineArgs struct {
	Path       string   `json:"path"`
	Start      pointArg `json:"start"`
	End        pointArg `json:"end"`
	Color      string   `json:"color"`
	Thickness  *int     `json:"thickness"`
	DashLength *int     `json:"dash_length"`
	OutputPath string   `json:"output_path,omitempty"`
}

// DashedLineResult is the overlay_dashed_line tool result.
type DashedLineResult struct {
	imaging.EncodedFrame
	SampleCount  int    `json:"sample_count"`
	SegmentCount int    `json:"segment_count"`
	OutputPath   string `json:"output_path,omitempty"`
}

// maxThickness is the largest stroke that still changes the result: a
// brush as wide as the frame diagonal already covers the whole frame.
func maxThickness(bounds image.Rectangle) int {
	return int(math.Ceil(math.Hypot(float64(bounds.Dx()), float64(bounds.Dy()))))
}

func (s *Server) handleOverlayDashedLine(args json.RawMessage) (interface{}, error) {
	var a overlayDashedLineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = "#00FF00"
	}
	thickness := overlay.DefaultLineThickness
	if a.Thickness != nil {
		thickness = *a.Thickness
	}
	dashLength := overlay.DefaultDashLength
	if a.DashLength != nil {
		dashLength = *a.DashLength
	}
	if dashLength < 1 {
		return nil, invalidArgs("dash_length must be at least 1, got %d", dashLength)
	}

	c, err := imaging.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	frame, err := s.cache.Frame(a.Path)
	if err != nil {
		return nil, err
	}
	if limit := maxThickness(frame.Bounds()); thickness < 1 || thickness > limit {
		return nil, invalidArgs("thickness must be between 1 and %d for a %dx%d frame, got %d",
			limit, frame.Bounds().Dx(), frame.Bounds().Dy(), thickness)
	}

	start, end := a.Start.point(), a.End.point()
	overlay.DrawDashedLine(frame, start, end, c, thickness, dashLength)
	samples := len(overlay.DashSamples(start, end, dashLength))

	encoded, err := imaging.EncodePNG(frame)
	if err != nil {
		return nil, err
	}
	saved, err := s.save(a.OutputPath, frame)
	if err != nil {
		return nil, err
	}

	return &DashedLineResult{
		EncodedFrame: *encoded,
		SampleCount:  samples,
		SegmentCount: max(samples-1, 0),
		OutputPath:   saved,
	}, nil
}
