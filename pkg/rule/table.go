package rule

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidTable indicates that a set of rules cannot form a [Table].
var ErrInvalidTable = errors.New("invalid rule table")

// Result is the outcome of evaluating a [Table] for one role.
type Result struct {
	// Category of the winning rule, empty when nothing matched.
	Category string `json:"category,omitempty"`
	// Keyword that selected the rule. Empty for expression matches.
	Keyword string `json:"keyword,omitempty"`
	// Attributes assigned by the winning rule, in declared order.
	Attributes []string `json:"attributes"`
}

// Matched reports whether a rule matched.
func (r Result) Matched() bool {
	return r.Category != ""
}

// Table is an ordered set of rules with an evaluation priority that is
// independent of the declaration order.
type Table struct {
	rules    []*Rule
	priority []string
	ordered  []*Rule
}

// NewTable creates a [Table]. Rules are evaluated in the order of the
// categories named in priority, followed by any remaining rules in declaration
// order. A nil or empty priority evaluates rules in declaration order.
func NewTable(rules []*Rule, priority []string) (*Table, error) {
	byCategory := make(map[string]*Rule, len(rules))

	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("%w: rule %d is empty", ErrInvalidTable, i)
		}

		err := r.Compile()
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, r.Category, err)
		}

		if _, ok := byCategory[r.Category]; ok {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidTable, r.Category)
		}

		byCategory[r.Category] = r
	}

	ordered := make([]*Rule, 0, len(rules))
	seen := make(map[string]bool, len(priority))

	for _, category := range priority {
		r, ok := byCategory[category]
		if !ok {
			return nil, fmt.Errorf("%w: priority names unknown category %q", ErrInvalidTable, category)
		}
		if seen[category] {
			return nil, fmt.Errorf("%w: priority lists category %q more than once", ErrInvalidTable, category)
		}

		seen[category] = true
		ordered = append(ordered, r)
	}

	for _, r := range rules {
		if !seen[r.Category] {
			ordered = append(ordered, r)
		}
	}

	return &Table{
		rules:    slices.Clone(rules),
		priority: slices.Clone(priority),
		ordered:  ordered,
	}, nil
}

// MustNewTable creates a [Table] and panics if there's an error.
func MustNewTable(rules []*Rule, priority []string) *Table {
	t, err := NewTable(rules, priority)
	if err != nil {
		panic(err)
	}

	return t
}

// Rules returns the rules in declaration order.
func (t *Table) Rules() []*Rule {
	return slices.Clone(t.rules)
}

// Ordered returns the rules in evaluation order.
func (t *Table) Ordered() []*Rule {
	return slices.Clone(t.ordered)
}

// Categories returns the rule categories in evaluation order.
func (t *Table) Categories() []string {
	categories := make([]string, 0, len(t.ordered))
	for _, r := range t.ordered {
		categories = append(categories, r.Category)
	}

	return categories
}

// Lookup returns the rule with the given category.
func (t *Table) Lookup(category string) (*Rule, bool) {
	for _, r := range t.rules {
		if r.Category == category {
			return r, true
		}
	}

	return nil, false
}

// Infer evaluates the table for a role title and organization name.
func (t *Table) Infer(title, organization string) Result {
	return t.InferSubject(NewSubject(title, organization))
}

// InferSubject evaluates the table for a prepared [Subject]. The first rule in
// evaluation order that matches determines the result; later rules are not
// consulted, even if they would match an earlier part of the text.
func (t *Table) InferSubject(s Subject) Result {
	for _, r := range t.ordered {
		keyword, ok := r.MatchSubject(s)
		if !ok {
			continue
		}

		return Result{
			Category:   r.Category,
			Keyword:    keyword,
			Attributes: slices.Clone(r.Attributes),
		}
	}

	return Result{}
}
