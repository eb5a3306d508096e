package expr

import (
	"errors"
	"regexp"
)

// ErrEmptyWord indicates that a word pattern was requested for an empty word.
var ErrEmptyWord = errors.New("empty word")

// WordPattern compiles a pattern matching word as a whole word. The word is
// matched literally, and must be bounded by non-word characters or the ends
// of the text.
func WordPattern(word string) (*regexp.Regexp, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}

	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return nil, err //nolint:wrapcheck // Return the original error.
	}

	return re, nil
}

// ContainsWord reports whether word occurs in text as a whole word.
func ContainsWord(text, word string) bool {
	re, err := WordPattern(word)
	if err != nil {
		return false
	}

	return re.MatchString(text)
}
