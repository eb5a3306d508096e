package config

import (
	"bytes"
	"fmt"

	"github.com/scoutsearch/roleattrs/api"
	"github.com/scoutsearch/roleattrs/api/v1beta1"
	"github.com/scoutsearch/roleattrs/pkg/yaml"
)

// Validator validates configuration data against a schema.
type Validator interface {
	Validate(data any) error
}

// LoaderOpt configures a [Loader].
type LoaderOpt func(*loaderOptions)

type loaderOptions struct {
	validator Validator
	color     bool
}

// WithValidator sets a custom validator.
func WithValidator(v Validator) LoaderOpt {
	return func(o *loaderOptions) {
		o.validator = v
	}
}

// WithColor enables colored source excerpts in errors.
func WithColor(color bool) LoaderOpt {
	return func(o *loaderOptions) {
		o.color = color
	}
}

// Loader decodes and validates a configuration document of type T.
type Loader[T v1beta1.Object] struct {
	validator Validator
	newFunc   func() T
	yamlError *yaml.ErrorWrapper
	data      []byte
}

// NewLoaderFromBytes creates a [Loader] from byte data. The newFunc parameter
// returns the value the document is decoded into.
func NewLoaderFromBytes[T v1beta1.Object](
	data []byte,
	newFunc func() T,
	defaultValidator Validator,
	opts ...LoaderOpt,
) *Loader[T] {
	options := &loaderOptions{
		validator: defaultValidator,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Loader[T]{
		data:      data,
		newFunc:   newFunc,
		validator: options.validator,
		yamlError: yaml.NewErrorWrapper(
			yaml.WithSource(data),
			yaml.WithColor(options.color),
		),
	}
}

// NewLoaderFromFile creates a [Loader] from a file path.
func NewLoaderFromFile[T v1beta1.Object](
	path string,
	newFunc func() T,
	defaultValidator Validator,
	opts ...LoaderOpt,
) (*Loader[T], error) {
	data, err := api.ReadFile(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // Return the original error.
	}

	return NewLoaderFromBytes(data, newFunc, defaultValidator, opts...), nil
}

// Validate checks the document against the schema.
func (l *Loader[T]) Validate() error {
	var doc any

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(&doc)
	if err != nil {
		return l.yamlError.Wrap(err)
	}

	if l.validator != nil {
		err = l.validator.Validate(doc)
		if err != nil {
			return l.yamlError.Wrap(err)
		}
	}

	return nil
}

// Load decodes the document, applies defaults, and validates the result.
//
//nolint:ireturn // Generic type parameter return is intentional.
func (l *Loader[T]) Load() (T, error) {
	var zero T

	cfg := l.newFunc()

	err := yaml.NewDecoder(bytes.NewReader(l.data)).Decode(cfg)
	if err != nil {
		return zero, l.yamlError.Wrap(err)
	}

	cfg.EnsureDefaults()

	err = cfg.Validate()
	if err != nil {
		return zero, l.yamlError.Wrap(err)
	}

	return cfg, nil
}

// ValidateAndLoad runs [Loader.Validate] followed by [Loader.Load].
//
//nolint:ireturn // Generic type parameter return is intentional.
func (l *Loader[T]) ValidateAndLoad() (T, error) {
	err := l.Validate()
	if err != nil {
		var zero T

		return zero, fmt.Errorf("validate config: %w", err)
	}

	cfg, err := l.Load()
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
