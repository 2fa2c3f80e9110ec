// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified
// directory, creating parent directories as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ModuleDir creates a module directory with a zephyr/module.yml holding the
// given content, and returns the module root.
func ModuleDir(t *testing.T, parent, name, moduleYML string) string {
	t.Helper()
	root := filepath.Join(parent, name)
	WriteFile(t, root, filepath.Join("zephyr", "module.yml"), moduleYML)
	return root
}

// ImplicitModuleDir creates a module directory qualifying through the
// implicit convention (zephyr/CMakeLists.txt + zephyr/Kconfig).
func ImplicitModuleDir(t *testing.T, parent, name string) string {
	t.Helper()
	root := filepath.Join(parent, name)
	WriteFile(t, root, filepath.Join("zephyr", "CMakeLists.txt"), "# stub\n")
	WriteFile(t, root, filepath.Join("zephyr", "Kconfig"), "# stub\n")
	return root
}
