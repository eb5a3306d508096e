// Package configs provides the Configuration type for roleattrs.
package configs

import (
	"fmt"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/scoutsearch/roleattrs/api"
	"github.com/scoutsearch/roleattrs/api/v1beta1"
	"github.com/scoutsearch/roleattrs/pkg/rule"
	"github.com/scoutsearch/roleattrs/pkg/yaml"
)

//go:generate go run ../../../internal/schemagen -o configs.v1beta1.json --root ../../..

const (
	// Kind is the kind of [Config] documents.
	Kind = "Configuration"

	// DefaultDatabase is the role database path used when none is configured.
	DefaultDatabase = "roles_db.json"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	//go:embed configs.v1beta1.json
	schemaJSON []byte

	// ValidKinds contains the valid kind values for configurations.
	ValidKinds = []string{Kind}

	// DefaultValidator validates configuration against the JSON schema.
	DefaultValidator = yaml.MustNewValidator("/configs.v1beta1.json", schemaJSON)

	// Compile-time interface checks.
	_ v1beta1.Object = (*Config)(nil)
)

// Config is the roleattrs configuration.
//
//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	v1beta1.TypeMeta `json:",inline"`

	// Database is the path of the role database file.
	Database string `json:"database,omitempty" jsonschema:"title=Database"`
	// Rules map keywords found in role titles and organization names to
	// attributes. When omitted, the built-in rules are used.
	Rules []*rule.Rule `json:"rules,omitempty" jsonschema:"title=Rules"`
	// Priority lists rule categories in evaluation order. Rules whose
	// category is not listed are evaluated afterwards, in declaration order.
	Priority []string `json:"priority,omitempty" jsonschema:"title=Priority"`
}

// New creates a new [Config] with default values.
func New() *Config {
	c := &Config{
		TypeMeta: v1beta1.TypeMeta{
			APIVersion: v1beta1.APIVersion,
			Kind:       Kind,
		},
	}
	c.EnsureDefaults()

	return c
}

// NewDocument returns an empty [Config] to decode a document into. Unlike
// [New], it has no defaults applied.
func NewDocument() *Config {
	return &Config{}
}

// EnsureDefaults fills in unset fields. The built-in priority is only applied
// together with the built-in rules.
func (c *Config) EnsureDefaults() {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}

	if c.Rules == nil {
		c.Rules = rule.DefaultRules()

		if c.Priority == nil {
			c.Priority = rule.DefaultPriority()
		}
	}
}

// Validate checks the type metadata and compiles the rule table. Errors
// carry the YAML path of the offending value.
func (c *Config) Validate() error {
	root := yaml.NewPathBuilder().Root()

	err := c.TypeMeta.Check(ValidKinds...)
	if err != nil {
		return yaml.NewError(err, yaml.WithPath(root.Build()))
	}

	for i, r := range c.Rules {
		if r == nil {
			continue
		}

		err := r.Compile()
		if err != nil {
			path := yaml.NewPathBuilder().Root().Child("rules").Index(uint(i)).Build()

			return yaml.NewError(fmt.Errorf("rule %q: %w", r.Category, err), yaml.WithPath(path))
		}
	}

	_, err = c.Table()
	if err != nil {
		field := "rules"
		if c.Priority != nil {
			field = "priority"
		}

		return yaml.NewError(err, yaml.WithPath(yaml.NewPathBuilder().Root().Child(field).Build()))
	}

	return nil
}

// Table builds the rule table described by the configuration.
func (c *Config) Table() (*rule.Table, error) {
	t, err := rule.NewTable(c.Rules, c.Priority)
	if err != nil {
		return nil, fmt.Errorf("build rule table: %w", err)
	}

	return t, nil
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	v1beta1.ExtendSchemaWithEnums(jss, v1beta1.ValidAPIVersions, ValidKinds)
}

// MarshalYAML serializes the config to YAML.
func (c Config) MarshalYAML() ([]byte, error) {
	type alias Config

	b, err := api.MarshalYAML(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return b, nil
}

// Write writes the config to path if it doesn't already exist.
func (c Config) Write(path string) error {
	b, err := c.MarshalYAML()
	if err != nil {
		return err
	}

	err = api.WriteIfNotExists(path, b)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultConfigYAML...)
}

// WriteDefault writes the embedded default config.yaml to path.
func WriteDefault(path string, force bool) error {
	err := api.WriteDefaultFile(path, defaultConfigYAML, force, "configuration")
	if err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	return nil
}

// GetPath returns the path to the user's configuration file.
func GetPath() string {
	return api.GetConfigPath("config.yaml")
}
