// Package v1beta1 contains the v1beta1 API types for roleattrs configuration.
package v1beta1

import (
	"errors"
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
)

// APIVersion is the current API version for all configuration kinds.
const APIVersion = "roleattrs.scoutsearch.dev/v1beta1"

var (
	// ValidAPIVersions contains all valid API versions.
	ValidAPIVersions = []string{APIVersion}

	// ErrUnknownType indicates an unsupported apiVersion or kind.
	ErrUnknownType = errors.New("unknown configuration type")
)

// TypeMeta contains the API version and kind metadata common to all config types.
type TypeMeta struct {
	// APIVersion specifies the API version for this configuration.
	APIVersion string `json:"apiVersion" jsonschema:"title=API Version"`
	// Kind defines the type of configuration.
	Kind string `json:"kind" jsonschema:"title=Kind"`
}

func (tm TypeMeta) GetAPIVersion() string {
	return tm.APIVersion
}

func (tm TypeMeta) GetKind() string {
	return tm.Kind
}

// Check returns [ErrUnknownType] unless the API version is one of
// [ValidAPIVersions] and the kind is one of kinds.
func (tm TypeMeta) Check(kinds ...string) error {
	if !slices.Contains(ValidAPIVersions, tm.APIVersion) {
		return fmt.Errorf("%w: apiVersion %q", ErrUnknownType, tm.APIVersion)
	}

	if !slices.Contains(kinds, tm.Kind) {
		return fmt.Errorf("%w: kind %q", ErrUnknownType, tm.Kind)
	}

	return nil
}

// Object is the interface that all config types implement.
type Object interface {
	GetAPIVersion() string
	GetKind() string
	EnsureDefaults()
	Validate() error
}

// ExtendSchemaWithEnums restricts the apiVersion and kind properties of jss
// to the given values.
func ExtendSchemaWithEnums(jss *jsonschema.Schema, apiVersions, kinds []string) {
	setConsts(jss, "apiVersion", "API Version", apiVersions)
	setConsts(jss, "kind", "Kind", kinds)
}

func setConsts(jss *jsonschema.Schema, property, title string, values []string) {
	prop, ok := jss.Properties.Get(property)
	if !ok {
		panic(property + " property not found in schema")
	}

	for _, v := range values {
		prop.OneOf = append(prop.OneOf, &jsonschema.Schema{
			Type:  "string",
			Const: v,
			Title: title,
		})
	}

	_, _ = jss.Properties.Set(property, prop)
}
