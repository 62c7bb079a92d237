// Package server implements the MCP (Model Context Protocol) server for
// detection overlays.
//
// This package provides a JSON-RPC 2.0 server that exposes the overlay
// renderer through the MCP protocol, so a client holding detector output
// can have it drawn onto a camera frame and get the annotated frame back.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Frame Information:
//   - frame_load: Load a frame and get metadata
//   - frame_dimensions: Get width and height
//
// Overlay Rendering:
//   - overlay_annotate: Draw boxes, labels, the best-detection marker, the
//     frame centre marker and the dashed guide line
//   - overlay_dashed_line: Draw a single dashed line
//
// Rendering tools work on a private copy of the cached frame, so repeated
// calls against the same path never see each other's overlays. When
// output_path is given the annotated frame is also written to disk;
// relative paths resolve against OVERLAY_MCP_OUTPUT_DIR.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Msg("Server error")
//	}
package server
