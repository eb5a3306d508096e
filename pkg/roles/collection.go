package roles

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/scoutsearch/roleattrs/api"
)

var (
	// ErrNotFound indicates that the role database file does not exist.
	ErrNotFound = errors.New("role database not found")
	// ErrMalformed indicates that the role database is not a JSON array of
	// role records.
	ErrMalformed = errors.New("malformed role database")
)

// Indent is the indentation used when writing the role database.
const Indent = "    "

// Collection is the full content of a role database.
type Collection []*Record

// Decode parses a role database.
func Decode(data []byte) (Collection, error) {
	var c Collection

	err := json.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if c == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of role records", ErrMalformed)
	}

	for i, r := range c {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformed, i, errNotObject)
		}
	}

	return c, nil
}

// Encode writes the collection as a JSON array indented with [Indent].
func (c Collection) Encode() ([]byte, error) {
	if c == nil {
		c = Collection{}
	}

	b := &bytes.Buffer{}

	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)

	err := enc.Encode(c)
	if err != nil {
		return nil, fmt.Errorf("encode role database: %w", err)
	}

	return b.Bytes(), nil
}

// Load reads and decodes the role database at path. It also returns the file
// content as read.
func Load(path string) (Collection, []byte, error) {
	data, err := api.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read role database: %w", err)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded role database",
		slog.String("path", path),
		slog.Int("records", len(c)),
	)

	return c, data, nil
}

// Save replaces the role database at path with data. The content is written
// to a temporary file first, so an interrupted save leaves the previous
// database in place.
func Save(path string, data []byte) error {
	err := api.WriteFileAtomic(path, data)
	if err != nil {
		return fmt.Errorf("save role database: %w", err)
	}

	return nil
}
