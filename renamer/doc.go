// Package renamer rewrites the object keys of YAML and JSON documents to a
// target casing convention.
//
// Values are never touched: only mapping keys are segmented and re-rendered,
// at every nesting depth. Sequences are traversed so that mappings inside
// lists are rewritten too.
//
// # Quick Start
//
//	r := renamer.New(caseconv.ConventionSnake)
//	out, err := r.Rename(data, renamer.FormatAuto)
//
// YAML comments and document structure are preserved because the rewrite
// operates on the yaml.Node tree rather than on decoded maps. JSON output is
// re-marshaled with two-space indentation and sorted keys.
//
// Renaming fails when two sibling keys collapse to the same name under the
// target convention (e.g. "userName" and "user_name" both become
// "user_name"), since silently dropping one would lose data.
package renamer
