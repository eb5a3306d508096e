package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/scoutsearch/roleattrs/api/v1beta1/configs"
)

// ErrInvalid indicates a configuration file that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Load reads the configuration at path. When required is false, a missing
// file yields the built-in defaults.
func Load(path string, required bool, opts ...LoaderOpt) (*configs.Config, error) {
	loader, err := NewLoaderFromFile(path, configs.NewDocument, configs.DefaultValidator, opts...)
	if errors.Is(err, fs.ErrNotExist) && !required {
		slog.Debug("no configuration file, using defaults", slog.String("path", path))

		return configs.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	cfg, err := loader.ValidateAndLoad()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	slog.Debug("loaded configuration",
		slog.String("path", path),
		slog.Int("rules", len(cfg.Rules)),
	)

	return cfg, nil
}
