package yaml

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
)

var encodeOptions = []yaml.EncodeOption{
	yaml.Indent(2),
	yaml.IndentSequence(true),
	yaml.UseLiteralStyleIfMultiline(true),
}

// Marshal encodes v as a YAML document. Multi-line strings use the literal
// block style so that match expressions stay readable.
func Marshal(v any) ([]byte, error) {
	b, err := yaml.MarshalWithOptions(v, encodeOptions...)
	if err != nil {
		return nil, fromYAMLError(err)
	}

	return b, nil
}

type Encoder struct {
	e *yaml.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{e: yaml.NewEncoder(w, encodeOptions...)}
}

func (e *Encoder) Encode(v any) error {
	return fromYAMLError(e.e.Encode(v))
}

func (e *Encoder) Close() error {
	return e.e.Close() //nolint:wrapcheck // Return the original error.
}

// Decoder reads YAML documents. Duplicate mapping keys are rejected.
type Decoder struct {
	d *yaml.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{d: yaml.NewDecoder(r)}
}

// Decode reads the next document into v. Errors raised by the YAML parser
// are returned as an [*Error] carrying the offending token.
func (d *Decoder) Decode(v any) error {
	return fromYAMLError(d.d.Decode(v))
}

func fromYAMLError(err error) error {
	if err == nil {
		return nil
	}

	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return &Error{
			Err:   errors.New(yamlErr.GetMessage()),
			Token: yamlErr.GetToken(),
		}
	}

	//nolint:wrapcheck // Return the original error if it's not a [yaml.Error].
	return err
}
