package mcpserver

import (
	"log/slog"
	"os"

	"github.com/mkelsey/caseconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultConvention is used when a tool call omits the "to" argument.
	DefaultConvention caseconv.Convention

	// NumberBoundary enables letter/digit word boundaries in segmentation.
	NumberBoundary bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASECONV_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultConvention: envConvention("CASECONV_DEFAULT_CONVENTION", caseconv.ConventionKebab),
		NumberBoundary:    envBool("CASECONV_NUMBER_BOUNDARY", false),
	}
}

func envConvention(key string, fallback caseconv.Convention) caseconv.Convention {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	conv, err := caseconv.ParseConvention(v)
	if err != nil {
		slog.Warn("invalid convention env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return conv
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	switch v {
	case "1", "t", "T", "true", "TRUE", "True":
		return true
	case "0", "f", "F", "false", "FALSE", "False":
		return false
	default:
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
}
