package rule

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Subject is the lowercased text that rules are evaluated against.
type Subject struct {
	Title        string
	Organization string
	// Text is Title and Organization joined by a single space.
	Text string
}

// NewSubject lowercases a role's title and organization name. Missing values
// should be passed as empty strings; a role without an organization name can
// then only match on its title.
func NewSubject(title, organization string) Subject {
	lower := cases.Lower(language.Und)
	t := lower.String(title)
	o := lower.String(organization)

	return Subject{
		Title:        t,
		Organization: o,
		Text:         t + " " + o,
	}
}

// SearchText returns the lowercased "{title} {organization}" text.
func SearchText(title, organization string) string {
	return NewSubject(title, organization).Text
}
