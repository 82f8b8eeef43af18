package caseconv

import (
	"github.com/mkelsey/caseconv/caseerrors"
	"github.com/mkelsey/caseconv/segmenter"
)

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for diagnostics. The default is NopLogger.
func WithLogger(l Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSegmenter replaces the word segmenter. Use this to enable non-default
// boundary behavior such as segmenter.WithNumberBoundary.
func WithSegmenter(s *segmenter.Segmenter) Option {
	return func(c *Converter) {
		if s != nil {
			c.seg = s
		}
	}
}

// Converter converts values between casing conventions. It is stateless and
// safe for concurrent use. Construct one with New, or use the package-level
// functions which share a default Converter.
type Converter struct {
	logger Logger
	seg    *segmenter.Segmenter
}

// New creates a Converter with the given options applied.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger: NopLogger{},
		seg:    segmenter.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultConverter backs the package-level conversion functions.
var defaultConverter = New()

// Convert validates input and renders it under the given convention.
//
// Input classification:
//   - nil (or a nil *string) is absent: the result is "" with no error, and
//     a warning is logged on the configured Logger
//   - string and non-nil *string values are converted
//   - anything else fails with *caseerrors.InvalidInputError
func (c *Converter) Convert(input any, conv Convention) (string, error) {
	switch v := input.(type) {
	case nil:
		c.logger.Warn("absent input resolves to empty output", "convention", conv.String())
		return "", nil
	case string:
		return c.ConvertString(v, conv), nil
	case *string:
		if v == nil {
			c.logger.Warn("absent input resolves to empty output", "convention", conv.String())
			return "", nil
		}
		return c.ConvertString(*v, conv), nil
	default:
		return "", caseerrors.NewInvalidInputError(input)
	}
}

// ConvertString segments s and renders it under the given convention.
// Empty, whitespace-only, or punctuation-only input returns "".
func (c *Converter) ConvertString(s string, conv Convention) string {
	return conv.Render(c.seg.Segment(s))
}

// Convert validates input and renders it under the given convention using the
// default Converter.
func Convert(input any, conv Convention) (string, error) {
	return defaultConverter.Convert(input, conv)
}

// ToKebabCase converts input to kebab-case.
// Absent input (nil) returns ""; non-textual input fails with
// *caseerrors.InvalidInputError.
//
// Example: "helloWorld" -> "hello-world"
func ToKebabCase(input any) (string, error) {
	return defaultConverter.Convert(input, ConventionKebab)
}

// ToDotCase converts input to dot.case under the same contract as ToKebabCase.
//
// Example: "HELLO_WORLD" -> "hello.world"
func ToDotCase(input any) (string, error) {
	return defaultConverter.Convert(input, ConventionDot)
}

// ToSnakeCase converts input to snake_case under the same contract as ToKebabCase.
//
// Example: "helloWorld" -> "hello_world"
func ToSnakeCase(input any) (string, error) {
	return defaultConverter.Convert(input, ConventionSnake)
}

// ToScreamingSnakeCase converts input to SCREAMING_SNAKE_CASE under the same
// contract as ToKebabCase.
//
// Example: "helloWorld" -> "HELLO_WORLD"
func ToScreamingSnakeCase(input any) (string, error) {
	return defaultConverter.Convert(input, ConventionScreamingSnake)
}

// ToCamelCase converts s to camelCase.
//
// Example: "convert-this-string" -> "convertThisString"
func ToCamelCase(s string) string {
	return defaultConverter.ConvertString(s, ConventionCamel)
}

// ToPascalCase converts s to PascalCase.
//
// Example: "convert-this-string" -> "ConvertThisString"
func ToPascalCase(s string) string {
	return defaultConverter.ConvertString(s, ConventionPascal)
}

// ToTitleCase converts s to Title Case with space-separated words.
//
// Example: "hello_world" -> "Hello World"
func ToTitleCase(s string) string {
	return defaultConverter.ConvertString(s, ConventionTitle)
}
