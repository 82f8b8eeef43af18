package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mkelsey/caseconv/segmenter"
)

type segmentInput struct {
	Value string `json:"value" jsonschema:"The string to segment into words"`
}

type segmentOutput struct {
	Words     []string `json:"words"`
	WordCount int      `json:"word_count"`
}

func handleSegment(_ context.Context, _ *mcp.CallToolRequest, input segmentInput) (*mcp.CallToolResult, segmentOutput, error) {
	words := serverSegmenter().Segment(input.Value)
	return nil, segmentOutput{Words: words, WordCount: len(words)}, nil
}

// serverSegmenter builds the segmenter shared by the tool handlers,
// honoring the number-boundary setting.
func serverSegmenter() *segmenter.Segmenter {
	var opts []segmenter.Option
	if cfg.NumberBoundary {
		opts = append(opts, segmenter.WithNumberBoundary(true))
	}
	return segmenter.New(opts...)
}
