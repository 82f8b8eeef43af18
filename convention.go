package caseconv

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Convention is a word-joining policy: a separator plus a per-word
// capitalization rule. Use ParseConvention to obtain one from user input.
type Convention int

const (
	// ConventionKebab joins lowercase words with hyphens.
	// Example: "hello world" -> hello-world
	ConventionKebab Convention = iota

	// ConventionCamel concatenates words with the first word lowercase and
	// each subsequent word capitalized.
	// Example: "convert this string" -> convertThisString
	ConventionCamel

	// ConventionDot joins lowercase words with dots.
	// Example: "HELLO_WORLD" -> hello.world
	ConventionDot

	// ConventionSnake joins lowercase words with underscores.
	// Example: "helloWorld" -> hello_world
	ConventionSnake

	// ConventionScreamingSnake joins uppercase words with underscores.
	// Example: "helloWorld" -> HELLO_WORLD
	ConventionScreamingSnake

	// ConventionPascal concatenates capitalized words.
	// Example: "hello world" -> HelloWorld
	ConventionPascal

	// ConventionTitle joins capitalized words with spaces, using
	// language-aware title casing.
	// Example: "hello_world" -> Hello World
	ConventionTitle
)

// conventionNames maps each Convention to its canonical name.
// The order must match the constant declarations above.
var conventionNames = []string{
	"kebab",
	"camel",
	"dot",
	"snake",
	"screaming-snake",
	"pascal",
	"title",
}

// String returns the canonical name of the convention.
func (c Convention) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Convention(%d)", int(c))
	}
	return conventionNames[c]
}

// Valid reports whether c is one of the defined conventions.
func (c Convention) Valid() bool {
	return c >= ConventionKebab && int(c) < len(conventionNames)
}

// ValidConventions returns the canonical names of all defined conventions.
// Useful for CLI flag validation messages.
func ValidConventions() []string {
	names := make([]string, len(conventionNames))
	copy(names, conventionNames)
	return names
}

// ParseConvention parses a convention name. Matching is case-insensitive and
// accepts a few common aliases ("kebab-case", "camelCase", "dot.case", ...).
func ParseConvention(name string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kebab", "kebab-case", "dash", "dash-case":
		return ConventionKebab, nil
	case "camel", "camelcase", "lower-camel":
		return ConventionCamel, nil
	case "dot", "dot-case", "dot.case":
		return ConventionDot, nil
	case "snake", "snake-case", "snake_case":
		return ConventionSnake, nil
	case "screaming-snake", "screaming_snake", "upper-snake", "screaming":
		return ConventionScreamingSnake, nil
	case "pascal", "pascalcase", "upper-camel":
		return ConventionPascal, nil
	case "title", "title-case":
		return ConventionTitle, nil
	default:
		return 0, fmt.Errorf("caseconv: unknown convention %q: valid conventions: %s",
			name, strings.Join(conventionNames, ", "))
	}
}

// Render joins a sequence of lowercase words under the convention.
// An empty word sequence always renders to the empty string.
// Render never fails: unknown Convention values render as kebab.
func (c Convention) Render(words []string) string {
	if len(words) == 0 {
		return ""
	}

	switch c {
	case ConventionCamel:
		var b strings.Builder
		b.WriteString(words[0])
		for _, w := range words[1:] {
			b.WriteString(capitalize(w))
		}
		return b.String()

	case ConventionPascal:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(capitalize(w))
		}
		return b.String()

	case ConventionDot:
		return strings.Join(words, ".")

	case ConventionSnake:
		return strings.Join(words, "_")

	case ConventionScreamingSnake:
		upper := make([]string, len(words))
		for i, w := range words {
			upper[i] = strings.ToUpper(w)
		}
		return strings.Join(upper, "_")

	case ConventionTitle:
		// cases.Caser carries state, so build one per call rather than
		// sharing a package-level instance across goroutines.
		caser := cases.Title(language.English)
		titled := make([]string, len(words))
		for i, w := range words {
			titled[i] = caser.String(w)
		}
		return strings.Join(titled, " ")

	default: // ConventionKebab
		return strings.Join(words, "-")
	}
}

// capitalize upcases the first rune of a word. Words arrive from the
// segmenter already lowercased, so the remainder is left untouched.
func capitalize(w string) string {
	if w == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + w[size:]
}
