package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameKeysTool_YAML(t *testing.T) {
	input := renameKeysInput{
		Content: "serverName: api\nlistenPort: 8080\n",
		To:      "snake",
	}
	result, output, err := handleRenameKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "snake", output.Convention)
	assert.Contains(t, output.Document, "server_name:")
	assert.Contains(t, output.Document, "listen_port:")
}

func TestRenameKeysTool_JSON(t *testing.T) {
	input := renameKeysInput{
		Content: `{"serverName": "api"}`,
		To:      "kebab",
		Format:  "json",
	}
	result, output, err := handleRenameKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Contains(t, output.Document, `"server-name"`)
}

func TestRenameKeysTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input renameKeysInput
	}{
		{name: "missing content", input: renameKeysInput{To: "kebab"}},
		{name: "unknown convention", input: renameKeysInput{Content: "a: 1", To: "bogus"}},
		{name: "unknown format", input: renameKeysInput{Content: "a: 1", Format: "toml"}},
		{name: "key collision", input: renameKeysInput{Content: "userName: 1\nuser_name: 2\n", To: "snake"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleRenameKeys(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"", "auto", "yaml", "yml", "json", "YAML", "JSON"} {
		_, err := parseFormat(name)
		assert.NoError(t, err, "parseFormat(%q)", name)
	}

	_, err := parseFormat("toml")
	assert.Error(t, err)
}
