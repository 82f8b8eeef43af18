// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes caseconv conversions as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mkelsey/caseconv"
	"github.com/mkelsey/caseconv/segmenter"
)

const serverInstructions = `caseconv MCP server — converts strings between casing conventions and rewrites document keys.

Conventions: kebab, camel, dot, snake, screaming-snake, pascal, title.

Configuration: defaults are configurable via CASECONV_* environment variables set in your MCP client config.
- CASECONV_DEFAULT_CONVENTION (default: kebab) — convention used when a tool call omits "to"
- CASECONV_NUMBER_BOUNDARY (default: false) — split words between letters and digits`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "caseconv", Version: caseconv.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert one or more strings to a casing convention (kebab, camel, dot, snake, screaming-snake, pascal, title). Returns the converted string and the segmented words for each input.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "segment",
		Description: "Split a string into its lowercase words using the shared boundary rules (separators, punctuation, camelCase transitions, acronym runs). Useful for inspecting why a conversion produced a particular result.",
	}, handleSegment)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_keys",
		Description: "Rewrite all object keys of a YAML or JSON document to a casing convention. Values are untouched; YAML comments are preserved. Fails if two sibling keys would collide after renaming.",
	}, handleRenameKeys)
}

// serverConverter builds the Converter shared by the tool handlers,
// honoring the number-boundary setting.
func serverConverter() *caseconv.Converter {
	var opts []caseconv.Option
	if cfg.NumberBoundary {
		opts = append(opts, caseconv.WithSegmenter(segmenter.New(segmenter.WithNumberBoundary(true))))
	}
	return caseconv.New(opts...)
}

// resolveConvention maps the optional "to" argument to a Convention,
// falling back to the configured default.
func resolveConvention(name string) (caseconv.Convention, error) {
	if name == "" {
		return cfg.DefaultConvention, nil
	}
	return caseconv.ParseConvention(name)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
