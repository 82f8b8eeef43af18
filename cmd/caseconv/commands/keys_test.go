package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkelsey/caseconv/renamer"
)

func TestResolveDocumentFormat(t *testing.T) {
	tests := []struct {
		name      string
		flagValue string
		path      string
		want      renamer.Format
	}{
		{name: "explicit yaml", flagValue: "yaml", path: "x.json", want: renamer.FormatYAML},
		{name: "explicit json", flagValue: "json", path: "x.yaml", want: renamer.FormatJSON},
		{name: "yaml extension", flagValue: "", path: "config.yaml", want: renamer.FormatYAML},
		{name: "yml extension", flagValue: "", path: "config.yml", want: renamer.FormatYAML},
		{name: "json extension", flagValue: "", path: "data.json", want: renamer.FormatJSON},
		{name: "stdin falls back to sniffing", flagValue: "", path: "-", want: renamer.FormatAuto},
		{name: "unknown extension", flagValue: "", path: "data.txt", want: renamer.FormatAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDocumentFormat(tt.flagValue, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid flag value", func(t *testing.T) {
		_, err := resolveDocumentFormat("toml", "x.yaml")
		require.Error(t, err)
	})
}

func TestHandleKeysRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "config.yaml")
	out := filepath.Join(dir, "renamed.yaml")
	require.NoError(t, os.WriteFile(in, []byte("serverName: api\nlistenPort: 8080\n"), 0o600))

	err := HandleKeys([]string{"-t", "snake", "-o", out, in})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server_name:")
	assert.Contains(t, string(data), "listen_port:")
}

func TestHandleKeysErrors(t *testing.T) {
	t.Run("missing target", func(t *testing.T) {
		err := HandleKeys([]string{"somefile.yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "target convention is required")
	})

	t.Run("missing file", func(t *testing.T) {
		err := HandleKeys([]string{"-t", "kebab", filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
	})

	t.Run("no arguments", func(t *testing.T) {
		err := HandleKeys([]string{"-t", "kebab"})
		require.Error(t, err)
	})
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(format))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}
