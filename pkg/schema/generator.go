// Package schema generates JSON schemas for configuration types.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Generator reflects a JSON schema from a Go value.
type Generator struct {
	reflector *jsonschema.Reflector
	root      any
	id        string
	comments  []commentSource
}

type commentSource struct {
	base string
	path string
}

// GeneratorOpt configures a [Generator].
type GeneratorOpt func(*Generator)

// WithID sets the schema's $id.
func WithID(id string) GeneratorOpt {
	return func(g *Generator) {
		g.id = id
	}
}

// WithComments uses the doc comments of the Go package in directory path,
// whose import path is base, as schema descriptions.
func WithComments(base, path string) GeneratorOpt {
	return func(g *Generator) {
		g.comments = append(g.comments, commentSource{base: base, path: path})
	}
}

// NewGenerator creates a [Generator] for root.
func NewGenerator(root any, opts ...GeneratorOpt) *Generator {
	g := &Generator{
		reflector: &jsonschema.Reflector{
			RequiredFromJSONSchemaTags: false,
		},
		root: root,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns the indented JSON schema.
func (g *Generator) Generate() ([]byte, error) {
	for _, c := range g.comments {
		err := g.reflector.AddGoComments(c.base, c.path)
		if err != nil {
			return nil, fmt.Errorf("read comments from %s: %w", c.path, err)
		}
	}

	s := g.reflector.Reflect(g.root)
	if g.id != "" {
		s.ID = jsonschema.ID(g.id)
	}

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return append(b, '\n'), nil
}
