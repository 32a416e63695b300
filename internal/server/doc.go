// Package server implements the MCP (Model Context Protocol) server for image
// grid composition.
//
// This package provides a JSON-RPC 2.0 server that exposes the grid composer
// through the MCP protocol, so an MCP client can lay out, preview and save
// captioned image grids.
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
//   - grid_list_images: Sorted image files of a folder
//   - grid_layout: Canvas size, cells and caption positions
//   - grid_compose: Compose, preview and optionally save a grid
//   - grid_sample_color: Pixel color of a saved composite
//   - grid_read_captions: OCR check of the drawn captions
//
// # Recomputation
//
// Each tool call recomputes everything from the folder listing onward. No
// decoded image or composite is kept between calls, so a changed file or
// parameter is always reflected in the next call.
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
//	srv := server.New(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
