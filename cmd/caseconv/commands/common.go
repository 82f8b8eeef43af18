// Package commands provides CLI command handlers for caseconv.
package commands

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/mkelsey/caseconv"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ParseTargetConvention validates the -t/--to flag value, producing a
// friendlier error when the flag is missing entirely.
func ParseTargetConvention(value string) (caseconv.Convention, error) {
	if value == "" {
		return 0, fmt.Errorf("target convention is required (use -t or --to)")
	}
	return caseconv.ParseConvention(value)
}
