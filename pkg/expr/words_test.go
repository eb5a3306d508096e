package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutsearch/roleattrs/pkg/expr"
)

func TestContainsWord(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text string
		word string
		want bool
	}{
		"whole word":              {text: "tax accountant", word: "tax", want: true},
		"prefix of larger word":   {text: "taxonomy lead", word: "tax", want: false},
		"suffix of larger word":   {text: " itax solutions", word: "tax", want: false},
		"punctuation is boundary": {text: "it/digital officer", word: "it", want: true},
		"multi-word keyword":      {text: "human resources advisor", word: "human resources", want: true},
		"hyphen is boundary":      {text: "e-commerce data-analyst", word: "data", want: true},
		"regexp metacharacters":   {text: "c++ developer", word: "c++", want: false},
		"end of text":             {text: "senior engineer", word: "engineer", want: true},
		"empty word":              {text: "anything", word: "", want: false},
		"empty text":              {text: "", word: "tax", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, expr.ContainsWord(tc.text, tc.word))
		})
	}
}

func TestWordPattern(t *testing.T) {
	t.Parallel()

	_, err := expr.WordPattern("")
	require.ErrorIs(t, err, expr.ErrEmptyWord)

	re, err := expr.WordPattern("a.b")
	require.NoError(t, err)
	assert.True(t, re.MatchString("x a.b y"))
	assert.False(t, re.MatchString("x axb y"))
}
