package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mkelsey/caseconv/renamer"
)

type renameKeysInput struct {
	Content string `json:"content"          jsonschema:"The YAML or JSON document whose object keys should be rewritten"`
	To      string `json:"to,omitempty"     jsonschema:"Target convention for the keys. Defaults to the configured convention."`
	Format  string `json:"format,omitempty" jsonschema:"Document format: yaml\\, json\\, or auto (default)."`
}

type renameKeysOutput struct {
	Convention string `json:"convention"`
	Document   string `json:"document"`
}

func handleRenameKeys(_ context.Context, _ *mcp.CallToolRequest, input renameKeysInput) (*mcp.CallToolResult, renameKeysOutput, error) {
	if input.Content == "" {
		return errResult(fmt.Errorf("content is required")), renameKeysOutput{}, nil
	}

	conv, err := resolveConvention(input.To)
	if err != nil {
		return errResult(err), renameKeysOutput{}, nil
	}

	format, err := parseFormat(input.Format)
	if err != nil {
		return errResult(err), renameKeysOutput{}, nil
	}

	r := renamer.New(conv, renamer.WithConverter(serverConverter()))
	out, err := r.Rename([]byte(input.Content), format)
	if err != nil {
		return errResult(err), renameKeysOutput{}, nil
	}

	return nil, renameKeysOutput{
		Convention: conv.String(),
		Document:   string(out),
	}, nil
}

func parseFormat(name string) (renamer.Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return renamer.FormatAuto, nil
	case "yaml", "yml":
		return renamer.FormatYAML, nil
	case "json":
		return renamer.FormatJSON, nil
	default:
		return 0, fmt.Errorf("invalid format %q: valid formats: auto, yaml, json", name)
	}
}
