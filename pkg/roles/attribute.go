package roles

import (
	"encoding/json"
)

// SourceInferred is the source tag of attributes added by inference.
// Attributes with any other source are never modified.
const SourceInferred = "Inferred"

// Attribute is an entry in a record's attribute list.
//
// Attributes read from the database keep their original encoding, including
// any keys other than name and source, and are written back unchanged.
type Attribute struct {
	Name   string
	Source string

	raw json.RawMessage
}

type attributeJSON struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// NewAttribute creates an [Attribute].
func NewAttribute(name, source string) Attribute {
	return Attribute{Name: name, Source: source}
}

// NewInferred creates an [Attribute] tagged with [SourceInferred].
func NewInferred(name string) Attribute {
	return NewAttribute(name, SourceInferred)
}

// IsInferred reports whether the attribute was added by inference.
func (a Attribute) IsInferred() bool {
	return a.Source == SourceInferred
}

// MarshalJSON implements [json.Marshaler].
func (a Attribute) MarshalJSON() ([]byte, error) {
	if a.raw != nil {
		return a.raw, nil
	}

	return marshal(attributeJSON{Name: a.Name, Source: a.Source})
}

// UnmarshalJSON implements [json.Unmarshaler]. Entries that are not objects,
// or that lack string name or source values, are kept as they are and treated
// as non-inferred.
func (a *Attribute) UnmarshalJSON(b []byte) error {
	a.raw = append(json.RawMessage(nil), b...)
	a.Name, a.Source = "", ""

	var fields map[string]json.RawMessage

	err := json.Unmarshal(b, &fields)
	if err != nil {
		return nil //nolint:nilerr // Unknown shapes are preserved, not rejected.
	}

	a.Name = stringValue(fields["name"])
	a.Source = stringValue(fields["source"])

	return nil
}
