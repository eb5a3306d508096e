// Package rule determines which attribute set a job role receives.
//
// A [Rule] matches a role when one of its keywords occurs as a whole word in
// the role's lowercased title and organization name, or when its optional CEL
// match expression holds. A [Table] evaluates rules in priority order, and the
// first rule to match wins.
package rule
