package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantica/units/internal/codegen"
)

func TestGenerateCommand(t *testing.T) {
	configPath := newTestProject(t)
	root := filepath.Join(filepath.Dir(configPath), "pkg", "units")

	stdout, _, err := runCommand(t, "generate", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ generated 4 files")

	for _, name := range []string{
		codegen.PrefixesFile,
		codegen.DimensionsFile,
		filepath.Join("i", codegen.UnitsFile),
		filepath.Join("f", codegen.UnitsFile),
	} {
		assert.FileExists(t, filepath.Join(root, name))
	}

	units, err := os.ReadFile(filepath.Join(root, "i", codegen.UnitsFile))
	require.NoError(t, err)
	assert.Contains(t, string(units), `import "example.com/lab/pkg/units"`)
	assert.Contains(t, string(units), "type Kilometer = units.Quantity[units.Distance, units.Kilo, int64]")
}

func TestGenerateCheck(t *testing.T) {
	configPath := newTestProject(t)
	root := filepath.Join(filepath.Dir(configPath), "pkg", "units")

	_, stderr, err := runCommand(t, "generate", "--config", configPath, "--check")
	require.Error(t, err)
	assert.Contains(t, stderr, "GENERATED CODE IS STALE")
	assert.Contains(t, stderr, codegen.PrefixesFile)

	_, _, err = runCommand(t, "generate", "--config", configPath)
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "generate", "--config", configPath, "--check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "up to date")

	require.NoError(t, os.WriteFile(filepath.Join(root, codegen.DimensionsFile), []byte("package units\n"), 0o644))
	_, stderr, err = runCommand(t, "generate", "--config", configPath, "--check")
	require.Error(t, err)
	assert.Contains(t, stderr, "1 generated file(s)")
}

func TestGenerateDryRun(t *testing.T) {
	configPath := newTestProject(t)

	stdout, _, err := runCommand(t, "generate", "--config", configPath, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, stdout, codegen.PrefixesFile)
	assert.NoDirExists(t, filepath.Join(filepath.Dir(configPath), "pkg"))
}

func TestGenerateInvalidCatalog(t *testing.T) {
	configPath := newTestProject(t)
	catalogPath := filepath.Join(filepath.Dir(configPath), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("base_units:\n  - {name: Meter, axis: length}\nstorage:\n  - {package: f, type: float64}\n"), 0o644))

	_, stderr, err := runCommand(t, "generate", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, stderr, "INVALID CATALOG")
	assert.Contains(t, stderr, "length")
}
