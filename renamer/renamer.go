package renamer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/mkelsey/caseconv"
)

// Format identifies the document format passed to Rename.
type Format int

const (
	// FormatAuto detects the format from the document content.
	FormatAuto Format = iota
	// FormatYAML treats the document as YAML.
	FormatYAML
	// FormatJSON treats the document as JSON.
	FormatJSON
)

// Option configures a Renamer.
type Option func(*Renamer)

// WithConverter replaces the Converter used to rewrite keys. Use this to
// change segmentation behavior (e.g. number boundaries).
func WithConverter(c *caseconv.Converter) Option {
	return func(r *Renamer) {
		if c != nil {
			r.converter = c
		}
	}
}

// Renamer rewrites object keys to a single target convention. It is
// stateless and safe for concurrent use.
type Renamer struct {
	conv      caseconv.Convention
	converter *caseconv.Converter
}

// New creates a Renamer targeting the given convention.
func New(conv caseconv.Convention, opts ...Option) *Renamer {
	r := &Renamer{
		conv:      conv,
		converter: caseconv.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rename rewrites all object keys in the document. With FormatAuto the
// format is detected from the content: documents whose first non-blank byte
// is '{' or '[' are treated as JSON, everything else as YAML.
func (r *Renamer) Rename(data []byte, format Format) ([]byte, error) {
	if format == FormatAuto {
		format = DetectFormat(data)
	}
	switch format {
	case FormatJSON:
		return r.RenameJSON(data)
	case FormatYAML:
		return r.RenameYAML(data)
	default:
		return nil, fmt.Errorf("renamer: unknown format %d", format)
	}
}

// DetectFormat guesses whether data is JSON or YAML. JSON documents whose
// root is a scalar are indistinguishable from YAML and are reported as YAML,
// which parses them identically.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// RenameYAML rewrites all mapping keys in a YAML document, preserving
// comments, anchors, and node order.
func (r *Renamer) RenameYAML(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("renamer: parsing YAML: %w", err)
	}

	// An empty document unmarshals to a zero node with no content.
	if root.Kind == 0 {
		return data, nil
	}

	if err := r.renameNode(&root, ""); err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(&root)
	if err != nil {
		return nil, fmt.Errorf("renamer: marshaling YAML: %w", err)
	}
	return out, nil
}

// renameNode walks a yaml.Node tree, rewriting scalar mapping keys in place.
// path identifies the enclosing mapping for collision error messages.
func (r *Renamer) renameNode(node *yaml.Node, path string) error {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			if err := r.renameNode(child, path); err != nil {
				return err
			}
		}

	case yaml.MappingNode:
		// Content alternates: key, value, key, value...
		seen := make(map[string]string, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			valNode := node.Content[i+1]

			if keyNode.Kind == yaml.ScalarNode {
				renamed := r.converter.ConvertString(keyNode.Value, r.conv)
				if prev, dup := seen[renamed]; dup {
					return collisionError(path, prev, keyNode.Value, renamed)
				}
				seen[renamed] = keyNode.Value
				keyNode.Value = renamed
			}

			childPath := joinPath(path, keyNode.Value)
			if err := r.renameNode(valNode, childPath); err != nil {
				return err
			}
		}

	case yaml.SequenceNode:
		for i, child := range node.Content {
			if err := r.renameNode(child, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}

	// Scalar and alias nodes carry no keys.
	return nil
}

// RenameJSON rewrites all object keys in a JSON document. Output is
// re-marshaled with two-space indentation; object keys are sorted.
func (r *Renamer) RenameJSON(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("renamer: parsing JSON: %w", err)
	}

	renamed, err := r.renameValue(doc, "")
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(renamed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("renamer: marshaling JSON: %w", err)
	}
	return out, nil
}

// renameValue recursively rewrites the keys of decoded JSON values.
func (r *Renamer) renameValue(v any, path string) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		seen := make(map[string]string, len(val))
		for key, child := range val {
			renamed := r.converter.ConvertString(key, r.conv)
			if prev, dup := seen[renamed]; dup {
				return nil, collisionError(path, prev, key, renamed)
			}
			seen[renamed] = key

			converted, err := r.renameValue(child, joinPath(path, renamed))
			if err != nil {
				return nil, err
			}
			out[renamed] = converted
		}
		return out, nil

	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			converted, err := r.renameValue(child, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil

	default:
		return v, nil
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func collisionError(path, first, second, renamed string) error {
	loc := path
	if loc == "" {
		loc = "document root"
	}
	return fmt.Errorf("renamer: key collision at %s: %q and %q both rename to %q",
		loc, first, second, renamed)
}
