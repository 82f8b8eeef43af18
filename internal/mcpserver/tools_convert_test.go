package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTool(t *testing.T) {
	input := convertInput{
		Values: []string{"helloWorld", "HTTPServer"},
		To:     "kebab",
	}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "kebab", output.Convention)
	require.Len(t, output.Results, 2)
	assert.Equal(t, "hello-world", output.Results[0].Output)
	assert.Equal(t, []string{"hello", "world"}, output.Results[0].Words)
	assert.Equal(t, "http-server", output.Results[1].Output)
}

func TestConvertTool_DefaultConvention(t *testing.T) {
	input := convertInput{Values: []string{"hello world"}}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	// cfg default is kebab unless overridden by environment
	assert.Equal(t, cfg.DefaultConvention.String(), output.Convention)
}

func TestConvertTool_NoValues(t *testing.T) {
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, convertInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_UnknownConvention(t *testing.T) {
	input := convertInput{Values: []string{"x"}, To: "bogus"}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestSegmentTool(t *testing.T) {
	input := segmentInput{Value: "convert-this-string"}
	result, output, err := handleSegment(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, []string{"convert", "this", "string"}, output.Words)
	assert.Equal(t, 3, output.WordCount)
}

func TestSegmentTool_Empty(t *testing.T) {
	result, output, err := handleSegment(context.Background(), &mcp.CallToolRequest{}, segmentInput{Value: "?!"})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Empty(t, output.Words)
	assert.Equal(t, 0, output.WordCount)
}
