// Package roles reads and writes the role database: a JSON array of job-role
// records.
//
// Records are kept as ordered sets of raw JSON fields, so that fields this
// program does not know about, and the order of all fields, survive a round
// trip unchanged. Only the attribute list is rewritten.
package roles
