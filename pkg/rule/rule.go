package rule

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/scoutsearch/roleattrs/pkg/expr"
)

// ErrInvalidRule indicates that a rule definition cannot be used.
var ErrInvalidRule = errors.New("invalid rule")

// Rule assigns a set of attributes to roles that mention one of its keywords.
//
// Keywords are matched literally and case-insensitively, on word boundaries,
// against the text "{title} {organization}". They are checked in the order
// they are declared.
//
// Match is an optional CEL expression that is evaluated when no keyword
// matches. Expressions have access to variables:
//   - `title` (string): The lowercased role title
//   - `organization` (string): The lowercased organization name
//   - `text` (string): Title and organization joined by a single space
//
// Along with the standard CEL string functions, expressions can call
// `hasWord(text, word)`, which applies the same word-boundary matching as
// keywords:
//   - hasWord(text, "nurse") || hasWord(text, "midwife")
//   - title.startsWith("trainee") && hasWord(organization, "nhs")
type Rule struct {
	matchProgram    cel.Program      // Compiled CEL program, if Match is set.
	keywordPatterns []*regexp.Regexp // Compiled keyword patterns, in keyword order.

	// Category is the label of the rule. It is used for priority ordering
	// and reporting, and is never written to role records.
	Category string `json:"category" jsonschema:"title=Category,minLength=1"`
	// Keywords are lowercase words or phrases that select this rule.
	Keywords []string `json:"keywords,omitempty" jsonschema:"title=Keywords"`
	// Attributes are the attribute names assigned when this rule matches.
	Attributes []string `json:"attributes" jsonschema:"title=Attributes,minItems=1"`
	// Match is a CEL expression that selects this rule when no keyword matches.
	Match string `json:"match,omitempty" jsonschema:"title=Match Expression"`
}

// Opt configures a [Rule].
type Opt func(*Rule)

// WithMatch sets the rule's CEL match expression.
func WithMatch(match string) Opt {
	return func(r *Rule) {
		r.Match = match
	}
}

// New creates a new compiled rule.
func New(category string, keywords, attributes []string, opts ...Opt) (*Rule, error) {
	r := &Rule{
		Category:   category,
		Keywords:   keywords,
		Attributes: attributes,
	}
	for _, opt := range opts {
		opt(r)
	}

	err := r.Compile()
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", category, err)
	}

	return r, nil
}

// MustNew creates a new rule and panics if there's an error.
func MustNew(category string, keywords, attributes []string, opts ...Opt) *Rule {
	r, err := New(category, keywords, attributes, opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// Compile validates the rule and compiles its keywords and match expression.
// Calling Compile on an already compiled rule is a no-op.
func (r *Rule) Compile() error {
	if r.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidRule)
	}
	if len(r.Attributes) == 0 {
		return fmt.Errorf("%w: at least one attribute is required", ErrInvalidRule)
	}
	if len(r.Keywords) == 0 && r.Match == "" {
		return fmt.Errorf("%w: keywords or a match expression are required", ErrInvalidRule)
	}

	for _, attr := range r.Attributes {
		if strings.TrimSpace(attr) == "" {
			return fmt.Errorf("%w: attribute names must not be empty", ErrInvalidRule)
		}
	}

	if r.keywordPatterns == nil {
		patterns := make([]*regexp.Regexp, 0, len(r.Keywords))

		for _, kw := range r.Keywords {
			if kw != strings.ToLower(kw) {
				return fmt.Errorf("%w: keyword %q must be lowercase", ErrInvalidRule, kw)
			}

			re, err := expr.WordPattern(kw)
			if err != nil {
				return fmt.Errorf("%w: keyword %q: %w", ErrInvalidRule, kw, err)
			}

			patterns = append(patterns, re)
		}

		r.keywordPatterns = patterns
	}

	if r.Match != "" && r.matchProgram == nil {
		env, err := expr.NewEnvironment()
		if err != nil {
			return fmt.Errorf("create CEL environment: %w", err)
		}

		program, err := env.Compile(r.Match)
		if err != nil {
			return fmt.Errorf("%w: compile match expression: %w", ErrInvalidRule, err)
		}

		r.matchProgram = program
	}

	return nil
}

// MatchSubject evaluates the rule against a subject. It returns the first
// keyword that matched, in declared order. A match made by the CEL expression
// returns an empty keyword.
func (r *Rule) MatchSubject(s Subject) (string, bool) {
	if r.keywordPatterns == nil {
		panic(errors.New("rule is not compiled"))
	}

	for i, re := range r.keywordPatterns {
		if re.MatchString(s.Text) {
			return r.Keywords[i], true
		}
	}

	if r.matchProgram != nil {
		vars := expr.Vars(s.Title, s.Organization, s.Text)
		if expr.EvalBool(r.matchProgram, vars) {
			return "", true
		}
	}

	return "", false
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s: %s", r.Category, strings.Join(r.Attributes, ", "))
}
