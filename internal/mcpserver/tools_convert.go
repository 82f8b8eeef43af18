package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Values []string `json:"values"         jsonschema:"The strings to convert"`
	To     string   `json:"to,omitempty"   jsonschema:"Target convention (kebab\\, camel\\, dot\\, snake\\, screaming-snake\\, pascal\\, title). Defaults to the configured convention."`
}

type convertResult struct {
	Input  string   `json:"input"`
	Output string   `json:"output"`
	Words  []string `json:"words,omitempty"`
}

type convertOutput struct {
	Convention string          `json:"convention"`
	Results    []convertResult `json:"results"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if len(input.Values) == 0 {
		return errResult(fmt.Errorf("at least one value is required")), convertOutput{}, nil
	}

	conv, err := resolveConvention(input.To)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	seg := serverSegmenter()
	output := convertOutput{
		Convention: conv.String(),
		Results:    make([]convertResult, 0, len(input.Values)),
	}
	for _, value := range input.Values {
		words := seg.Segment(value)
		output.Results = append(output.Results, convertResult{
			Input:  value,
			Output: conv.Render(words),
			Words:  words,
		})
	}

	return nil, output, nil
}
