package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UNITGEN_MODULE", "example.com/project")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "catalog.yaml", cfg.Catalog)
	assert.Equal(t, "pkg/units", cfg.Output)
	assert.Equal(t, "example.com/project", cfg.Module)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, "example.com/project/pkg/units", cfg.CoreImport())
}

func TestLoadRequiresModule(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module must be set")
}

func TestLoadWithConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	content := `
catalog: defs/units.yaml
output: internal/units
module: example.com/lab
log_level: debug
watch:
  debounce: 250ms
  ignore: ["*.swp"]
`
	require.NoError(t, os.WriteFile("unitgen.yaml", []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "defs/units.yaml", cfg.Catalog)
	assert.Equal(t, "example.com/lab/internal/units", cfg.CoreImport())
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, []string{"*.swp"}, cfg.Watch.Ignore)
	assert.Equal(t, filepath.Join(".", "defs", "units.yaml"), cfg.CatalogPath())
	assert.Equal(t, filepath.Join(".", "internal", "units"), cfg.OutputDir())
}

func TestLoadExplicitFileResolvesRelativeToIt(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("module: example.com/x\n"), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "catalog.yaml"), cfg.CatalogPath())
	assert.Equal(t, filepath.Join(dir, "pkg", "units"), cfg.OutputDir())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("unitgen.yaml", []byte("module: example.com/x\nlog_level: info\n"), 0o644))
	t.Setenv("UNITGEN_LOG_LEVEL", "warn")
	t.Setenv("UNITGEN_WATCH_DEBOUNCE", "1s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, zapcore.WarnLevel, cfg.Level())
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
}

func TestValidateConfig(t *testing.T) {
	valid := func() Config {
		return Config{Catalog: "catalog.yaml", Output: "pkg/units", Module: "example.com/x", LogLevel: "info"}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty catalog", func(c *Config) { c.Catalog = "" }, "catalog must not be empty"},
		{"empty output", func(c *Config) { c.Output = "" }, "output must not be empty"},
		{"output escapes module", func(c *Config) { c.Output = "../units" }, "output must be a directory inside the module"},
		{"bad module", func(c *Config) { c.Module = "example.com/x/" }, "module is not a valid import path"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level must be one of"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, "watch.debounce must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := validateConfig(&cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "unitgen.yml"), []byte(""), 0o644))

	subDir := filepath.Join(tmpDir, "pkg", "units", "i")
	require.NoError(t, os.MkdirAll(subDir, 0o755))
	chdir(t, subDir)

	root, err := FindProjectRoot()
	require.NoError(t, err)

	// /tmp may be a symlink, e.g. on macOS
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedTmpDir, _ := filepath.EvalSymlinks(tmpDir)
	assert.Equal(t, resolvedTmpDir, resolvedRoot)
}

func TestFindProjectRootNotInProject(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := FindProjectRoot()
	assert.ErrorIs(t, err, ErrNoProject)
}
