package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantica/units/internal/catalog"
)

// newTestProject writes a config and the default catalog into a temp dir
// and returns the config path
func newTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	data, err := catalog.Default().Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), data, 0o644))

	config := "catalog: catalog.yaml\noutput: pkg/units\nmodule: example.com/lab\nlog_level: warn\n"
	configPath := filepath.Join(dir, "unitgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	return configPath
}

// runCommand executes the root command with args and captured output
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--no-color"))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
