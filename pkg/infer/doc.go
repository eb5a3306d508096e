// Package infer assigns inferred attributes to role records.
//
// A [Pass] evaluates a [rule.Table] against each record's title and
// organization, removes the attributes a previous pass inferred, and appends
// the attributes of the winning rule. Attributes from any other source are
// never touched, so running a pass twice gives the same result as running it
// once.
//
// [Run] wraps a pass with loading and saving of a role database file.
package infer
