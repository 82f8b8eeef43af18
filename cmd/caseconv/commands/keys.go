package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkelsey/caseconv/internal/cliutil"
	"github.com/mkelsey/caseconv/renamer"
)

// KeysFlags contains flags for the keys command
type KeysFlags struct {
	To     string
	Output string
	Format string
}

// SetupKeysFlags creates and configures a FlagSet for the keys command.
// Returns the FlagSet and a KeysFlags struct with bound flag variables.
func SetupKeysFlags() (*flag.FlagSet, *KeysFlags) {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	flags := &KeysFlags{}

	fs.StringVar(&flags.To, "t", "", "target convention for object keys (required)")
	fs.StringVar(&flags.To, "to", "", "target convention for object keys (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", "", "document format: yaml or json (default: by file extension, else content sniffing)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: caseconv keys [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Rewrite all object keys of a YAML or JSON document to a convention.\n")
		cliutil.Writef(fs.Output(), "Values are untouched; YAML comments are preserved.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  caseconv keys -t snake config.yaml\n")
		cliutil.Writef(fs.Output(), "  caseconv keys -t camel -o out.json data.json\n")
		cliutil.Writef(fs.Output(), "  cat config.yaml | caseconv keys -t kebab - > renamed.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Renaming fails if two sibling keys collide under the target convention\n")
	}

	return fs, flags
}

// HandleKeys executes the keys command
func HandleKeys(args []string) error {
	fs, flags := SetupKeysFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("keys command requires exactly one file path, or '-' for stdin")
	}

	conv, err := ParseTargetConvention(flags.To)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	data, err := readDocument(path)
	if err != nil {
		return err
	}

	format, err := resolveDocumentFormat(flags.Format, path)
	if err != nil {
		return err
	}

	out, err := renamer.New(conv).Rename(data, format)
	if err != nil {
		return err
	}

	return writeDocument(flags.Output, out)
}

// resolveDocumentFormat picks the document format from the explicit flag,
// then the file extension, then content sniffing.
func resolveDocumentFormat(flagValue, path string) (renamer.Format, error) {
	switch strings.ToLower(flagValue) {
	case "yaml", "yml":
		return renamer.FormatYAML, nil
	case "json":
		return renamer.FormatJSON, nil
	case "":
	default:
		return 0, fmt.Errorf("invalid format '%s'. Valid formats: yaml, json", flagValue)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return renamer.FormatYAML, nil
	case ".json":
		return renamer.FormatJSON, nil
	}
	return renamer.FormatAuto, nil
}

func readDocument(path string) ([]byte, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func writeDocument(output string, data []byte) error {
	if output == "" {
		cliutil.Writef(os.Stdout, "%s", data)
		return nil
	}
	if err := os.WriteFile(output, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}
