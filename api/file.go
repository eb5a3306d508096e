package api

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/scoutsearch/roleattrs/pkg/yaml"
)

// AppName names the application's configuration directory.
const AppName = "roleattrs"

// GetConfigPath returns the path to a configuration file in the user's config directory.
// It checks $XDG_CONFIG_HOME first, then falls back to ~/.config, and finally to a temp directory.
func GetConfigPath(filename string) string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, AppName, filename)
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", AppName, filename)
	}

	tmpPath := filepath.Join(os.TempDir(), AppName, filename)

	slog.Warn("could not determine user config directory, using temp path",
		slog.String("path", tmpPath),
		slog.Any("error", fmt.Errorf("$XDG_CONFIG_HOME is unset, fall back to home directory: %w", err)),
	)

	return tmpPath
}

// ReadFile reads a file from disk with proper error handling.
func ReadFile(path string) ([]byte, error) {
	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		if err == nil && pathInfo.IsDir() {
			return nil, fmt.Errorf("%s: path is a directory", path)
		}
		if err == nil && !pathInfo.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: unknown file state", path)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// MarshalYAML serializes an object to YAML bytes.
func MarshalYAML(obj any) ([]byte, error) {
	b, err := yaml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return b, nil
}

// WriteIfNotExists writes data to a path if the file doesn't already exist.
func WriteIfNotExists(path string, data []byte) error {
	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		if err == nil && pathInfo.Mode().IsRegular() {
			return nil // File already exists.
		}
		if pathInfo.IsDir() {
			return fmt.Errorf("%s: path is a directory", path)
		}

		return fmt.Errorf("%s: unknown file state", path)
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// WriteDefaultFile writes default content to a path.
// Using `force` will back up and replace any existing files.
func WriteDefaultFile(path string, defaultData []byte, force bool, kind string) error {
	fileExists := false

	pathInfo, err := os.Stat(path)
	if pathInfo != nil {
		switch {
		case err == nil && pathInfo.Mode().IsRegular():
			fileExists = true
		case pathInfo.IsDir():
			return fmt.Errorf("%s: path is a directory", path)
		default:
			return fmt.Errorf("%s: unknown file state", path)
		}
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	if fileExists && force {
		backupFile := fmt.Sprintf("%s.%d.old", filepath.Base(path), time.Now().UnixNano())
		backupPath := filepath.Join(filepath.Dir(path), backupFile)
		slog.Info("backing up existing file",
			slog.String("type", kind),
			slog.String("path", backupPath),
		)

		err = os.Rename(path, backupPath)
		if err != nil {
			return fmt.Errorf("rename existing %s file to backup: %w", kind, err)
		}

		fileExists = false
	}

	if !fileExists {
		slog.Info("write default file",
			slog.String("type", kind),
			slog.String("path", path),
		)

		err = os.WriteFile(path, defaultData, 0o600)
		if err != nil {
			return fmt.Errorf("write %s file: %w", kind, err)
		}
	} else {
		slog.Debug("file already exists, skipping write",
			slog.String("type", kind),
			slog.String("path", path),
		)
	}

	return nil
}

// WriteFileAtomic replaces the file at path with data. The data is written to
// a temporary file in the same directory, which is then renamed over path.
// An existing file's permissions are kept.
func WriteFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)

	pathInfo, err := os.Stat(path)
	switch {
	case err == nil && pathInfo.IsDir():
		return fmt.Errorf("%s: path is a directory", path)
	case err == nil:
		mode = pathInfo.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat file: %w", err)
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}

	tmpPath := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpPath) //nolint:errcheck // Best effort.
	}()

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close() //nolint:errcheck // Already failing.
		return fmt.Errorf("write temporary file: %w", err)
	}

	err = tmp.Sync()
	if err != nil {
		_ = tmp.Close() //nolint:errcheck // Already failing.
		return fmt.Errorf("sync temporary file: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}

	err = os.Chmod(tmpPath, mode)
	if err != nil {
		return fmt.Errorf("set file mode: %w", err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	return nil
}
