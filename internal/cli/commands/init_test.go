package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantica/units/internal/catalog"
	"github.com/quantica/units/internal/cli/config"
)

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/lab\n\ngo 1.23\n"), 0o644))

	stdout, _, err := runCommand(t, "init", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	cfg, err := config.Load(filepath.Join(dir, "unitgen.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "example.com/lab", cfg.Module)
	assert.Equal(t, "example.com/lab/pkg/units", cfg.CoreImport())

	cat, err := catalog.Load(cfg.CatalogPath())
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Units(), cat.Units())
}

func TestInitRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCommand(t, "init", "--dir", dir, "--module", "example.com/lab")
	require.NoError(t, err)

	_, _, err = runCommand(t, "init", "--dir", dir, "--module", "example.com/lab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runCommand(t, "init", "--dir", dir, "--module", "example.com/lab", "--force")
	assert.NoError(t, err)
}

func TestInitRequiresModule(t *testing.T) {
	_, _, err := runCommand(t, "init", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module path required")
}

func TestInitOptions(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCommand(t, "init", "--dir", dir, "--module", "example.com/lab",
		"--output", "internal/units", "--storage", "float32", "--prefixes=false")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "unitgen.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "internal/units", cfg.Output)

	cat, err := catalog.Load(cfg.CatalogPath())
	require.NoError(t, err)
	assert.Empty(t, cat.Prefixes)
	require.Len(t, cat.Storage, 1)
	assert.Equal(t, "f32", cat.Storage[0].Package)
	assert.Len(t, cat.Units(), 7)
}

func TestStarterCatalogRejectsUnknownStorage(t *testing.T) {
	_, err := starterCatalog(initOptions{Storage: []string{"complex128"}})
	assert.Error(t, err)

	_, err = starterCatalog(initOptions{})
	assert.Error(t, err)
}

func TestReadModulePath(t *testing.T) {
	dir := t.TempDir()
	gomod := filepath.Join(dir, "go.mod")

	tests := []struct {
		content  string
		expected string
	}{
		{"module example.com/a\n", "example.com/a"},
		{"// comment\nmodule   \"example.com/b\"\n", "example.com/b"},
		{"modules example.com/c\n", ""},
		{"go 1.23\n", ""},
	}
	for _, tt := range tests {
		require.NoError(t, os.WriteFile(gomod, []byte(tt.content), 0o644))
		assert.Equal(t, tt.expected, readModulePath(gomod))
	}

	assert.Equal(t, "", readModulePath(filepath.Join(dir, "missing.mod")))
}
