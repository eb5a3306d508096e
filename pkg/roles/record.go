package roles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field names read and written by this package.
const (
	FieldTitle        = "role_title"
	FieldOrganization = "organization_name"
	FieldAttributes   = "attributes"
)

var errNotObject = errors.New("role record must be a JSON object")

// Record is a single job role. Fields keep their original order and encoding.
type Record struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// NewRecord creates an empty [Record].
func NewRecord() *Record {
	return &Record{fields: orderedmap.New[string, json.RawMessage]()}
}

// Set encodes value and stores it under key. New keys are appended after the
// existing ones; existing keys keep their position.
func (r *Record) Set(key string, value any) error {
	b, err := marshal(value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	r.init()
	r.fields.Set(key, b)

	return nil
}

// Field returns the raw value stored under key.
func (r *Record) Field(key string) (json.RawMessage, bool) {
	if r.fields == nil {
		return nil, false
	}

	return r.fields.Get(key)
}

// Keys returns the record's field names in order.
func (r *Record) Keys() []string {
	if r.fields == nil {
		return nil
	}

	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Title returns the role title, or an empty string if it is missing or not a
// string.
func (r *Record) Title() string {
	v, _ := r.Field(FieldTitle)

	return stringValue(v)
}

// Organization returns the organization name, or an empty string if it is
// missing or not a string.
func (r *Record) Organization() string {
	v, _ := r.Field(FieldOrganization)

	return stringValue(v)
}

// HasAttributes reports whether the record has an attribute list.
func (r *Record) HasAttributes() bool {
	v, ok := r.Field(FieldAttributes)

	return ok && isKind(v, '[')
}

// Attributes returns the record's attribute list. It returns nil when the
// record has no attribute list, or when the value is not a JSON array.
func (r *Record) Attributes() []Attribute {
	if !r.HasAttributes() {
		return nil
	}

	v, _ := r.Field(FieldAttributes)

	attrs := []Attribute{}

	err := json.Unmarshal(v, &attrs)
	if err != nil {
		return nil
	}

	return attrs
}

// SetAttributes replaces the record's attribute list.
func (r *Record) SetAttributes(attrs []Attribute) error {
	if attrs == nil {
		attrs = []Attribute{}
	}

	return r.Set(FieldAttributes, attrs)
}

// MarshalJSON implements [json.Marshaler].
func (r *Record) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')

	if r.fields != nil {
		first := true

		for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				b.WriteByte(',')
			}

			first = false

			key, err := marshal(pair.Key)
			if err != nil {
				return nil, err
			}

			b.Write(key)
			b.WriteByte(':')

			if len(pair.Value) == 0 {
				b.WriteString("null")
			} else {
				b.Write(pair.Value)
			}
		}
	}

	b.WriteByte('}')

	return b.Bytes(), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *Record) UnmarshalJSON(b []byte) error {
	if !isKind(b, '{') {
		return errNotObject
	}

	fields := orderedmap.New[string, json.RawMessage]()

	err := fields.UnmarshalJSON(bytes.TrimSpace(b))
	if err != nil {
		return fmt.Errorf("decode role record: %w", err)
	}

	r.fields = fields

	return nil
}

func (r *Record) init() {
	if r.fields == nil {
		r.fields = orderedmap.New[string, json.RawMessage]()
	}
}
