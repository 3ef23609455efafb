package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/quantica/units/internal/catalog"
	"github.com/quantica/units/internal/cli/config"
	"github.com/quantica/units/internal/codegen"
)

func TestNewWatchCommand(t *testing.T) {
	cmd := NewWatchCommand()

	assert.Equal(t, "watch", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("skip-initial"))
	assert.NotEmpty(t, cmd.Long)
}

func TestRegenerateWritesOnlyChangedFiles(t *testing.T) {
	configPath := newTestProject(t)
	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	cat, err := catalog.Load(cfg.CatalogPath())
	require.NoError(t, err)

	p := &project{cfg: cfg, cat: cat, logger: zaptest.NewLogger(t)}
	require.NoError(t, regenerate(p))

	prefixes := filepath.Join(cfg.OutputDir(), codegen.PrefixesFile)
	before, err := os.Stat(prefixes)
	require.NoError(t, err)

	cat.Derived = cat.Derived[:1]
	require.NoError(t, cat.Validate())
	require.NoError(t, regenerate(p))

	after, err := os.Stat(prefixes)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())

	dims, err := os.ReadFile(filepath.Join(cfg.OutputDir(), codegen.DimensionsFile))
	require.NoError(t, err)
	assert.Contains(t, string(dims), "type Area =")
	assert.NotContains(t, string(dims), "type Velocity =")
}
