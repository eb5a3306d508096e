package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutsearch/roleattrs/api/v1beta1"
	"github.com/scoutsearch/roleattrs/api/v1beta1/configs"
	"github.com/scoutsearch/roleattrs/pkg/schema"
	"github.com/scoutsearch/roleattrs/pkg/yaml"
)

type generated struct {
	ID   string                     `json:"$id"`
	Ref  string                     `json:"$ref"`
	Defs map[string]json.RawMessage `json:"$defs"`
}

type definition struct {
	Properties map[string]struct {
		OneOf []struct {
			Const string `json:"const"`
		} `json:"oneOf"`
	} `json:"properties"`
	Required []string `json:"required"`
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	const id = "https://example.com/config.json"

	b, err := schema.NewGenerator(configs.New(), schema.WithID(id)).Generate()
	require.NoError(t, err)

	var got generated
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "#/$defs/Config", got.Ref)
	require.Contains(t, got.Defs, "Config")
	require.Contains(t, got.Defs, "Rule")

	var cfg definition
	require.NoError(t, json.Unmarshal(got.Defs["Config"], &cfg))
	assert.ElementsMatch(t, []string{"apiVersion", "kind"}, cfg.Required)
	require.Len(t, cfg.Properties["apiVersion"].OneOf, 1)
	assert.Equal(t, v1beta1.APIVersion, cfg.Properties["apiVersion"].OneOf[0].Const)
	assert.Contains(t, cfg.Properties, "priority")

	var r definition
	require.NoError(t, json.Unmarshal(got.Defs["Rule"], &r))
	assert.ElementsMatch(t, []string{"category", "attributes"}, r.Required)
	assert.NotContains(t, r.Properties, "matchProgram")
}

func TestGenerator_ValidatesDefaultConfig(t *testing.T) {
	t.Parallel()

	b, err := schema.NewGenerator(configs.New()).Generate()
	require.NoError(t, err)

	v, err := yaml.NewValidator("/generated.json", b)
	require.NoError(t, err)

	require.NoError(t, v.ValidateYAML(configs.DefaultYAML()))
	require.Error(t, v.ValidateYAML([]byte("apiVersion: v1\nkind: Configuration\n")))
}

func TestGenerator_CommentsError(t *testing.T) {
	t.Parallel()

	_, err := schema.NewGenerator(configs.New(),
		schema.WithComments("github.com/scoutsearch/roleattrs/missing", "./does-not-exist"),
	).Generate()
	require.Error(t, err)
}
