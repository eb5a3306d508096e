package yaml

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/printer"
	"github.com/goccy/go-yaml/token"
)

// NewPathBuilder returns a builder for [yaml.Path] values.
func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}

// ErrorWrapper applies a fixed set of [ErrorOpt]s to every [*Error] it wraps.
type ErrorWrapper struct {
	Opts []ErrorOpt
}

func NewErrorWrapper(opts ...ErrorOpt) *ErrorWrapper {
	return &ErrorWrapper{
		Opts: opts,
	}
}

// Wrap applies the wrapper's options, followed by opts, to err if it is an
// [*Error]. Any other error is returned unmodified.
func (ew *ErrorWrapper) Wrap(err error, opts ...ErrorOpt) error {
	if err == nil {
		return nil
	}

	var yamlErr *Error
	if !errors.As(err, &yamlErr) {
		return err
	}

	for _, opt := range ew.Opts {
		opt(yamlErr)
	}

	for _, opt := range opts {
		opt(yamlErr)
	}

	return yamlErr
}

// Error is an error located in a YAML document, either by a [*yaml.Path] or
// by the [*token.Token] where it occurred. When Source is set, the message
// includes the surrounding lines of the document.
type Error struct {
	Err    error
	Path   *yaml.Path
	Token  *token.Token
	Source []byte
	// Color enables ANSI colors in the source excerpt.
	Color bool
}

func NewError(err error, opts ...ErrorOpt) *Error {
	e := &Error{Err: err}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

type ErrorOpt func(e *Error)

func WithPath(path *yaml.Path) ErrorOpt {
	return func(e *Error) {
		e.Path = path
	}
}

func WithToken(tk *token.Token) ErrorOpt {
	return func(e *Error) {
		e.Token = tk
	}
}

func WithSource(source []byte) ErrorOpt {
	return func(e *Error) {
		e.Source = source
	}
}

func WithColor(color bool) ErrorOpt {
	return func(e *Error) {
		e.Color = color
	}
}

func (e Error) Error() string {
	if e.Err == nil {
		return ""
	}
	if e.Path == nil && e.Token == nil {
		return e.Err.Error()
	}

	tk := e.Token
	if tk == nil {
		if len(e.Source) == 0 {
			return fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
		}

		var err error

		tk, err = getTokenFromPath(e.Source, e.Path)
		if err != nil {
			slog.Debug("could not locate error in source",
				slog.String("path", e.Path.String()),
				slog.Any("error", err),
			)

			return fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
		}
	}

	var p printer.Printer

	excerpt := p.PrintErrorToken(tk.Clone(), e.Color)

	return fmt.Sprintf("[%d:%d] %v:\n%s", tk.Position.Line, tk.Position.Column, e.Err, excerpt)
}

func (e Error) Unwrap() error {
	return e.Err
}

func getTokenFromPath(source []byte, path *yaml.Path) (*token.Token, error) {
	file, err := parser.ParseBytes(source, 0)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	node, err := path.FilterFile(file)
	if err != nil {
		return nil, fmt.Errorf("filter source by path: %w", err)
	}

	// FilterFile returns the value node, but the key reads better in errors.
	keyToken := findKeyToken(file, path)
	if keyToken != nil {
		return keyToken, nil
	}

	return node.GetToken(), nil
}

// findKeyToken returns the token of the mapping key addressed by path, or nil
// when path ends in a sequence index or addresses the root.
func findKeyToken(file *ast.File, path *yaml.Path) *token.Token {
	pathStr := path.String()

	lastDot := strings.LastIndex(pathStr, ".")
	lastBracket := strings.LastIndex(pathStr, "[")

	if lastDot == -1 || lastDot <= lastBracket {
		return nil
	}

	parentPath, err := yaml.PathString(pathStr[:lastDot])
	if err != nil {
		return nil
	}

	parentNode, err := parentPath.FilterFile(file)
	if err != nil {
		return nil
	}

	var values []*ast.MappingValueNode

	switch n := parentNode.(type) {
	case *ast.MappingNode:
		values = n.Values
	case *ast.MappingValueNode:
		values = []*ast.MappingValueNode{n}
	default:
		return nil
	}

	key := pathStr[lastDot+1:]
	for _, val := range values {
		if val.Key.String() == key {
			return val.Key.GetToken()
		}
	}

	return nil
}
