// Package segmenter splits free-form text into lowercase words.
//
// Segmentation is the first half of every case conversion: spaces,
// underscores, hyphens, punctuation, and camelCase transitions all mark word
// boundaries, and the resulting words are lowercased before any rendering
// happens. The scan is an explicit character classification rather than a
// regular expression, so boundary behavior is auditable rune by rune.
//
// # Boundary Rules
//
//   - Any rune that is neither a letter nor a digit is a boundary and is
//     dropped from the output (this covers whitespace, underscores, hyphens,
//     and punctuation).
//   - An uppercase letter preceded by a lowercase letter or a digit starts a
//     new word ("helloWorld" -> "hello", "world").
//   - Inside a run of uppercase letters, the final letter starts a new word
//     when a lowercase letter follows ("HTTPServer" -> "http", "server").
//     A trailing run stays together ("myAPI" -> "my", "api").
//
// Consecutive boundaries collapse, leading and trailing boundaries are
// trimmed, and input containing no letters or digits yields no words.
//
// # Quick Start
//
//	words := segmenter.Segment("hello, World!")
//	// words == []string{"hello", "world"}
//
// For non-default behavior, construct a Segmenter:
//
//	s := segmenter.New(segmenter.WithNumberBoundary(true))
//	words := s.Segment("area51")
//	// words == []string{"area", "51"}
package segmenter
