package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Write stores files under root, replacing each target atomically
func Write(root string, files map[string]string) error {
	for _, name := range SortedNames(files) {
		target := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", name, err)
		}

		tmp, err := os.CreateTemp(filepath.Dir(target), ".unitgen-*")
		if err != nil {
			return fmt.Errorf("failed to create temp file for %s: %w", name, err)
		}
		if _, err := tmp.WriteString(files[name]); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		if err := os.Chmod(tmp.Name(), 0o644); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		if err := os.Rename(tmp.Name(), target); err != nil {
			os.Remove(tmp.Name())
			return fmt.Errorf("failed to replace %s: %w", name, err)
		}
	}
	return nil
}

// Stale returns the files whose content under root differs from files,
// including missing ones
func Stale(root string, files map[string]string) ([]string, error) {
	var stale []string
	for _, name := range SortedNames(files) {
		current, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		if os.IsNotExist(err) {
			stale = append(stale, name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if !bytes.Equal(current, []byte(files[name])) {
			stale = append(stale, name)
		}
	}
	return stale, nil
}

// SortedNames returns the file names of a generated set in order
func SortedNames(files map[string]string) []string {
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
