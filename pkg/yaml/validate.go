package yaml

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator checks documents against a JSON schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles schemaData, registered under url.
func NewValidator(url string, schemaData []byte) (*Validator, error) {
	schema, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()

	err = compiler.AddResource(url, schema)
	if err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	jss, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: jss}, nil
}

func MustNewValidator(url string, schemaData []byte) *Validator {
	v, err := NewValidator(url, schemaData)
	if err != nil {
		panic(err)
	}

	return v
}

// Validate checks a decoded document. Schema violations are returned as an
// [*Error] whose Path points at the most specific offending value.
func (s *Validator) Validate(data any) error {
	err := s.schema.Validate(normalize(data))
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	return &Error{
		Err:  validationErr,
		Path: pathFromLocation(deepestLocation(validationErr)),
	}
}

// ValidateYAML decodes a YAML document and validates it. Returned [*Error]s
// carry data as their source.
func (s *Validator) ValidateYAML(data []byte) error {
	var doc any

	err := NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err == nil {
		err = s.Validate(doc)
	}

	return NewErrorWrapper(WithSource(data)).Wrap(err)
}

// deepestLocation returns the longest instance location among err and its
// causes.
func deepestLocation(err *jsonschema.ValidationError) []string {
	longest := err.InstanceLocation

	for _, cause := range err.Causes {
		candidate := deepestLocation(cause)
		if len(candidate) > len(longest) {
			longest = candidate
		}
	}

	return longest
}

func pathFromLocation(location []string) *yaml.Path {
	pb := NewPathBuilder().Root()

	for _, part := range location {
		index, err := strconv.ParseUint(part, 10, 0)
		if err == nil {
			pb = pb.Index(uint(index))
		} else {
			pb = pb.Child(part)
		}
	}

	return pb.Build()
}

// normalize converts YAML-decoded values into the shapes the schema library
// accepts. Mapping keys become strings and numbers become [json.Number].
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalize(val)
		}

		return out

	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalize(val)
		}

		return out

	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalize(val)
		}

		return out

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return json.Number(fmt.Sprint(x))

	case float32, float64:
		return json.Number(strconv.FormatFloat(toFloat(x), 'g', -1, 64))

	default:
		return v
	}
}

func toFloat(v any) float64 {
	if f, ok := v.(float32); ok {
		return float64(f)
	}

	f, _ := v.(float64)

	return f
}
