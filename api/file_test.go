package api_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutsearch/roleattrs/api"
)

//nolint:paralleltest // We need to set environment variables, so run tests sequentially.
func TestGetConfigPath(t *testing.T) {
	tcs := map[string]struct {
		env  map[string]string
		want string
	}{
		"XDG_CONFIG_HOME is set": {
			env:  map[string]string{"XDG_CONFIG_HOME": "/custom/config"},
			want: "/custom/config/roleattrs/config.yaml",
		},
		"XDG_CONFIG_HOME is empty and HOME is set": {
			env:  map[string]string{"XDG_CONFIG_HOME": "", "HOME": "/test/home"},
			want: "/test/home/.config/roleattrs/config.yaml",
		},
		"XDG_CONFIG_HOME and HOME are empty": {
			env:  map[string]string{"XDG_CONFIG_HOME": "", "HOME": ""},
			want: filepath.Join(os.TempDir(), "roleattrs", "config.yaml"), //nolint:usetesting // Needs to equal host.
		},
	}

	if runtime.GOOS == "windows" {
		t.Skip("HOME is not used on windows")
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			assert.Equal(t, tc.want, api.GetConfigPath("config.yaml"))
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("regular file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "roles.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

		got, err := api.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("[]"), got)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		got, err := api.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, fs.ErrNotExist)
		assert.Nil(t, got)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		got, err := api.ReadFile(t.TempDir())
		require.ErrorContains(t, err, "path is a directory")
		assert.Nil(t, got)
	})
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	data, err := api.MarshalYAML(struct {
		Database string   `json:"database"`
		Priority []string `json:"priority"`
	}{
		Database: "roles_db.json",
		Priority: []string{"Digital/Software"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "database: roles_db.json")
	assert.Contains(t, string(data), "- Digital/Software")
}

func TestWriteIfNotExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	nested := filepath.Join(dir, "nested", "config.yaml")
	require.NoError(t, api.WriteIfNotExists(nested, []byte("first")))
	require.NoError(t, api.WriteIfNotExists(nested, []byte("second")))

	got, err := os.ReadFile(nested)
	require.NoError(t, err)
	assert.Equal(t, "first", string(got), "existing files are not overwritten")

	err = api.WriteIfNotExists(dir, []byte("x"))
	require.ErrorContains(t, err, "path is a directory")
}

func TestWriteDefaultFile(t *testing.T) {
	t.Parallel()

	t.Run("keeps existing file without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("custom"), 0o600))

		require.NoError(t, api.WriteDefaultFile(path, []byte("default"), false, "configuration"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "custom", string(got))
	})

	t.Run("force backs up existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("custom"), 0o600))

		require.NoError(t, api.WriteDefaultFile(path, []byte("default"), true, "configuration"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "default", string(got))

		backups, err := filepath.Glob(filepath.Join(dir, "config.yaml.*.old"))
		require.NoError(t, err)
		require.Len(t, backups, 1)

		backup, err := os.ReadFile(backups[0])
		require.NoError(t, err)
		assert.Equal(t, "custom", string(backup))
	})

	t.Run("path is directory", func(t *testing.T) {
		t.Parallel()

		err := api.WriteDefaultFile(t.TempDir(), []byte("default"), false, "configuration")
		require.ErrorContains(t, err, "path is a directory")
	})
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("replaces content and keeps mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "roles_db.json")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o640))

		require.NoError(t, api.WriteFileAtomic(path, []byte("new")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files are cleaned up")
	})

	t.Run("creates missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "roles_db.json")
		require.NoError(t, api.WriteFileAtomic(path, []byte("[]")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("path is directory", func(t *testing.T) {
		t.Parallel()

		err := api.WriteFileAtomic(t.TempDir(), []byte("[]"))
		require.ErrorContains(t, err, "path is a directory")
	})

	t.Run("missing parent directory", func(t *testing.T) {
		t.Parallel()

		err := api.WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "roles.json"), []byte("[]"))
		require.Error(t, err)
	})
}
