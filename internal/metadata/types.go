// Package metadata discovers and validates per-module build metadata.
//
// A directory qualifies as a module if it carries a zephyr/module.yml
// metadata file, or if it follows the implicit convention of providing both
// zephyr/CMakeLists.txt and zephyr/Kconfig.
package metadata

import (
	"path/filepath"
	"regexp"
)

// MetadataFile is the per-module metadata file, relative to the module root.
const MetadataFile = "zephyr/module.yml"

// Conventional locations used when the build section omits explicit settings.
const (
	// DefaultCMakeDir is the conventional directory holding the module's
	// CMakeLists.txt.
	DefaultCMakeDir = "zephyr"

	// DefaultKconfigFile is the conventional Kconfig fragment path.
	DefaultKconfigFile = "zephyr/Kconfig"
)

// RootKinds are the build-system search-path categories a module may extend,
// in the fixed order they are emitted in the settings file.
var RootKinds = []string{"board", "dts", "soc", "arch", "module_ext"}

// Module is the validated metadata record for one discovered module.
// It is immutable after Load returns it; consumers must not modify it.
type Module struct {
	// Name is the declared module name, or the root directory's base name
	// when the metadata omits one.
	Name string

	// SanitizedName is Name with every non-alphanumeric character replaced
	// by an underscore. It is used to build generated identifier tokens.
	SanitizedName string

	// Path is the module's root directory as supplied by the caller.
	Path string

	// Build holds the optional build section. Nil when the metadata file
	// declared none.
	Build *BuildSection

	// Tests, Samples and Boards are relative paths contributed to the
	// twister argument file.
	Tests   []string
	Samples []string
	Boards  []string

	// Implicit marks a module that qualified through the CMakeLists.txt +
	// Kconfig convention rather than a metadata file.
	Implicit bool
}

// BuildSection holds the optional build integration settings of a module.
type BuildSection struct {
	// CMake is the relative subpath containing the module's CMakeLists.txt.
	CMake string

	// Kconfig is the relative path to the module's Kconfig fragment.
	Kconfig string

	// CMakeExt delegates CMake integration to a build-provided variable.
	CMakeExt bool

	// KconfigExt delegates the Kconfig fragment to a build-provided variable.
	KconfigExt bool

	// Depends lists names of modules that must be processed first.
	Depends []string

	// Settings maps a root-kind (see RootKinds) to a relative path.
	Settings map[string]string
}

// DependsOn returns the module's dependency names, or nil when it has none.
func (m *Module) DependsOn() []string {
	if m.Build == nil {
		return nil
	}
	return m.Build.Depends
}

// CMakeDir returns the relative directory expected to hold CMakeLists.txt,
// falling back to the conventional default.
func (m *Module) CMakeDir() string {
	if m.Build != nil && m.Build.CMake != "" {
		return m.Build.CMake
	}
	return DefaultCMakeDir
}

// KconfigFile returns the relative Kconfig fragment path, falling back to
// the conventional default.
func (m *Module) KconfigFile() string {
	if m.Build != nil && m.Build.Kconfig != "" {
		return m.Build.Kconfig
	}
	return DefaultKconfigFile
}

// MetadataPath returns the module's metadata file path.
func (m *Module) MetadataPath() string {
	return filepath.Join(m.Path, MetadataFile)
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeName replaces every non-alphanumeric character with an underscore.
// The replacement is 1:1, so length and character positions are preserved.
func SanitizeName(name string) string {
	return nonAlnum.ReplaceAllString(name, "_")
}
