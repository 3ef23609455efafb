package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndStale(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.go":   "package a\n",
		"b/b.go": "package b\n",
	}

	stale, err := Stale(root, files)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "b/b.go"}, stale)

	require.NoError(t, Write(root, files))

	data, err := os.ReadFile(filepath.Join(root, "b", "b.go"))
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(data))

	stale, err = Stale(root, files)
	require.NoError(t, err)
	assert.Empty(t, stale)

	files["a.go"] = "package a\n\nconst X = 1\n"
	stale, err = Stale(root, files)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go"}, stale)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Write(root, map[string]string{"x.go": "package x\n"}))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x.go", entries[0].Name())

	info, err := os.Stat(filepath.Join(root, "x.go"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSortedNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b/c", "d"}, SortedNames(map[string]string{"d": "", "a": "", "b/c": ""}))
	assert.Empty(t, SortedNames(nil))
}
