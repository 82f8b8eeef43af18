package segmenter

import "unicode"

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithNumberBoundary controls whether a transition between letters and
// digits starts a new word. Disabled by default, so digits are ordinary
// word characters ("api2" stays one word).
func WithNumberBoundary(enabled bool) Option {
	return func(s *Segmenter) {
		s.numberBoundary = enabled
	}
}

// Segmenter splits text into lowercase words. The zero value is not usable;
// construct one with New. A Segmenter is stateless and safe for concurrent
// use.
type Segmenter struct {
	numberBoundary bool
}

// New creates a Segmenter with the given options applied.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSegmenter = New()

// Segment splits input into lowercase words using the default Segmenter.
func Segment(input string) []string {
	return defaultSegmenter.Segment(input)
}

// Segment splits input into an ordered sequence of lowercase words.
// Input containing no letters or digits returns nil.
func (s *Segmenter) Segment(input string) []string {
	if input == "" {
		return nil
	}

	runes := []rune(input)
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			// Hard boundary: whitespace, underscore, hyphen, punctuation.
			flush()
			continue
		}

		// len(current) > 0 guarantees runes[i-1] is a word character.
		if len(current) > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				// camelCase transition: "helloWorld", "v2Client"
				flush()
			case unicode.IsUpper(r) && unicode.IsUpper(prev) && nextIsLower(runes, i):
				// End of an acronym run: the last uppercase letter belongs
				// to the following word ("HTTPServer" -> http, server).
				flush()
			case s.numberBoundary && unicode.IsDigit(r) != unicode.IsDigit(prev):
				flush()
			}
		}

		current = append(current, unicode.ToLower(r))
	}
	flush()

	return words
}

// nextIsLower reports whether the rune after position i is a lowercase letter.
func nextIsLower(runes []rune, i int) bool {
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
