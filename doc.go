// Package caseconv converts free-form text between string casing conventions.
//
// caseconv normalizes word boundaries (spaces, underscores, hyphens,
// punctuation, and camelCase transitions) and re-joins the words under a
// target convention: kebab-case, camelCase, dot.case, snake_case,
// SCREAMING_SNAKE_CASE, PascalCase, or Title Case.
//
// # Overview
//
// The module consists of three library packages:
//
//   - caseconv: conversion functions and the Convention renderer
//   - segmenter: the word-boundary scanner shared by every conversion
//   - renamer: rewrites object keys in YAML/JSON documents to a convention
//
// # Quick Start
//
// Convert a string:
//
//	out, err := caseconv.ToKebabCase("helloWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // hello-world
//
// The conversion functions that accept any value classify their input first:
// nil resolves to an empty string, strings are converted, and anything else
// fails with a *caseerrors.InvalidInputError whose message names the offending
// type:
//
//	_, err := caseconv.ToKebabCase(123)
//	// err: invalid input type int (value: 123)
//
// Text-only conversions take a plain string:
//
//	caseconv.ToCamelCase("convert-this-string") // convertThisString
//
// # Segmentation
//
// All conversions share one deterministic segmentation pass, implemented as
// an explicit character scan in the segmenter package. The same input always
// produces the same word sequence, so converting a convention's own output
// again is a fixed point:
//
//	caseconv.ToKebabCase("hello-world") // hello-world
//
// See the segmenter package documentation for the exact boundary rules,
// including acronym handling ("HTTPServer" -> "http", "server").
//
// # Custom Converters
//
// Package-level functions share a default Converter. Build your own to
// attach a logger or change segmentation behavior:
//
//	c := caseconv.New(
//	    caseconv.WithLogger(caseconv.NewSlogAdapter(slog.Default())),
//	    caseconv.WithSegmenter(segmenter.New(segmenter.WithNumberBoundary(true))),
//	)
//	out, err := c.Convert(value, caseconv.ConventionSnake)
//
// # Command-Line Interface
//
// In addition to the library packages, caseconv provides a command-line
// interface:
//
//	# Convert strings
//	caseconv convert -t kebab "helloWorld" "HELLO_WORLD"
//
//	# Rewrite object keys in a YAML or JSON document
//	caseconv keys -t snake config.yaml
//
//	# Serve conversions over MCP (stdio)
//	caseconv mcp
//
// Install the CLI:
//
//	go install github.com/mkelsey/caseconv/cmd/caseconv@latest
//
// # Error Handling
//
// The only library error kind is caseerrors.InvalidInputError, raised when a
// conversion input is present but not textual. Absent, empty, whitespace-only,
// and punctuation-only inputs are not errors; they all resolve to "".
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package caseconv
