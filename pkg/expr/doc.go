// Package expr provides CEL (Common Expression Language) functionality
// for evaluating rule expressions against job-role records.
//
// It creates CEL environments with custom functions for:
//   - Whole-word matching (hasWord)
//
// CEL expressions have access to variables:
//   - `title` (string): The lowercased role title
//   - `organization` (string): The lowercased organization name
//   - `text` (string): Title and organization joined by a single space
package expr
