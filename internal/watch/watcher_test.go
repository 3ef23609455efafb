package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFileWatcher_DetectsCatalogWrite(t *testing.T) {
	tmpDir := t.TempDir()
	catalogFile := filepath.Join(tmpDir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogFile, []byte("prefixes: []\n"), 0o644))

	var mu sync.Mutex
	var runs []string
	var changed [][]string

	watcher, err := NewFileWatcher(Options{
		Dirs:     []string{tmpDir},
		Debounce: 50 * time.Millisecond,
		Logger:   zaptest.NewLogger(t),
	}, func(runID string, files []string) error {
		mu.Lock()
		defer mu.Unlock()
		runs = append(runs, runID)
		changed = append(changed, files)
		return nil
	})
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, watcher.Start())

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(catalogFile, []byte("prefixes: []\nbase_units: []\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("ignored"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 2*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{catalogFile}, changed[0])
	_, err = uuid.Parse(runs[0])
	assert.NoError(t, err)
}

func TestDebouncer_Add(t *testing.T) {
	var mu sync.Mutex
	var called bool
	var files []string

	debouncer := NewDebouncer(50 * time.Millisecond)
	debouncer.SetCallback(func(f []string) {
		mu.Lock()
		defer mu.Unlock()
		called = true
		files = f
	})

	debouncer.Add("units.yaml")
	debouncer.Add("catalog.yaml")
	debouncer.Add("units.yaml")

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	assert.True(t, called)
	assert.Equal(t, []string{"catalog.yaml", "units.yaml"}, files)
}

func TestDebouncer_MultipleFlushes(t *testing.T) {
	var mu sync.Mutex
	var callCount int

	debouncer := NewDebouncer(30 * time.Millisecond)
	debouncer.SetCallback(func(f []string) {
		mu.Lock()
		defer mu.Unlock()
		callCount++
	})

	debouncer.Add("a.yaml")
	time.Sleep(80 * time.Millisecond)

	debouncer.Add("b.yaml")
	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, callCount)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var mu sync.Mutex
	var called bool

	debouncer := NewDebouncer(30 * time.Millisecond)
	debouncer.SetCallback(func([]string) {
		mu.Lock()
		defer mu.Unlock()
		called = true
	})

	debouncer.Add("catalog.yaml")
	debouncer.Stop()
	debouncer.Add("catalog.yaml")
	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, called)
}

func TestFileWatcher_ShouldIgnore(t *testing.T) {
	watcher := &FileWatcher{
		ignored: []string{"*.swp", "*.bak"},
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{"catalog.yaml", false},
		{"catalog.yaml.swp", true},
		{"catalog.bak", true},
		{".catalog.yaml", true},
		{"catalog.yaml~", true},
		{"dir/catalog.yml", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, watcher.shouldIgnore(tt.path))
		})
	}
}

func TestFileWatcher_MatchesPattern(t *testing.T) {
	tests := []struct {
		patterns []string
		path     string
		expected bool
	}{
		{DefaultPatterns, "catalog.yaml", true},
		{DefaultPatterns, "dir/catalog.yml", true},
		{DefaultPatterns, "catalog.json", false},
		{[]string{"catalog.*"}, "catalog.json", true},
		{[]string{}, "anything.txt", true},
	}

	for _, tt := range tests {
		watcher := &FileWatcher{patterns: tt.patterns}
		assert.Equal(t, tt.expected, watcher.matchesPattern(tt.path), "matchesPattern(%v, %q)", tt.patterns, tt.path)
	}
}

func TestFileWatcher_Stop(t *testing.T) {
	watcher, err := NewFileWatcher(Options{Dirs: []string{t.TempDir()}}, func(string, []string) error { return nil })
	require.NoError(t, err)

	require.NoError(t, watcher.Start())
	assert.NoError(t, watcher.Stop())
	assert.NoError(t, watcher.Stop())
}

func TestNewFileWatcher_Defaults(t *testing.T) {
	watcher, err := NewFileWatcher(Options{}, func(string, []string) error { return nil })
	require.NoError(t, err)
	defer watcher.Stop()

	assert.Equal(t, []string{"."}, watcher.dirs)
	assert.Equal(t, DefaultPatterns, watcher.patterns)
	assert.Equal(t, DefaultDebounce, watcher.debouncer.duration)
}

func BenchmarkDebouncer_Add(b *testing.B) {
	debouncer := NewDebouncer(100 * time.Millisecond)
	debouncer.SetCallback(func(files []string) {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		debouncer.Add("catalog.yaml")
	}
}
