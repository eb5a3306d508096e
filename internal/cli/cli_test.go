package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scoutsearch/roleattrs/api/v1beta1/configs"
	"github.com/scoutsearch/roleattrs/internal/cli"
)

const rolesDB = `[
    {
        "role_title": "Software Engineer",
        "organization_name": "Acme Corp",
        "attributes": []
    },
    {
        "role_title": "Itax Officer",
        "organization_name": "Revenue Office",
        "attributes": []
    }
]
`

// execute runs the root command with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func defaultConfig(t *testing.T) string {
	t.Helper()

	return writeTemp(t, "config.yaml", string(configs.DefaultYAML()))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}
