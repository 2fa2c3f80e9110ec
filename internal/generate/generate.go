// Package generate produces the build artifacts derived from the resolved
// module list: a Kconfig include snippet, a CMake name/path table, a
// root-settings file and a twister argument file.
//
// Every generator is a pure, order-preserving fold over the resolved
// modules; none of them mutates metadata. Paths are emitted absolute, with
// forward slashes.
package generate

import (
	"os"
	"path/filepath"
)

// SettingsHeader is the fixed boilerplate prepended to the generated
// root-settings file.
const SettingsHeader = `# WARNING. THIS FILE IS AUTO-GENERATED. DO NOT MODIFY!
#
# This file contains build system settings derived from your modules.
#
# Modules may be set via ZEPHYR_MODULES, ZEPHYR_EXTRA_MODULES,
# and/or the west manifest file.
#
# See the Modules guide for more information.
`

// posixPath returns the path with forward slashes, as emitted in all
// generated artifacts.
func posixPath(path string) string {
	return filepath.ToSlash(path)
}

// absPosixPath resolves the path to an absolute one with forward slashes.
func absPosixPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return filepath.ToSlash(abs)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
