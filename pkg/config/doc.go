// Package config loads roleattrs configuration files.
//
// A [Loader] decodes a YAML document into an API type, validates it against
// the type's JSON schema, and applies defaults. Errors point at the offending
// line of the document.
package config
