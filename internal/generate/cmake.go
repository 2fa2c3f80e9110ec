package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zmodtool/cli/internal/metadata"
)

// CMake returns the module name/path table consumed by the CMake side of
// the build: one `"name":"path":"cmakeDir"` row per module.
//
// A missing conventional CMakeLists.txt is not an error; the row is emitted
// with an empty third field. Declared cmake settings were already validated
// at load time.
func CMake(modules []*metadata.Module) string {
	var b strings.Builder
	for _, m := range modules {
		b.WriteString(cmakeRow(m))
	}
	return b.String()
}

func cmakeRow(m *metadata.Module) string {
	if m.Build != nil && m.Build.CMakeExt {
		ref := fmt.Sprintf("${ZEPHYR_%s_CMAKE_DIR}", strings.ToUpper(m.SanitizedName))
		return fmt.Sprintf("\"%s\":\"%s\":\"%s\"\n", m.Name, posixPath(m.Path), ref)
	}

	cmakeDir := filepath.Join(m.Path, m.CMakeDir())
	if !isFile(filepath.Join(cmakeDir, "CMakeLists.txt")) {
		return fmt.Sprintf("\"%s\":\"%s\":\"\"\n", m.Name, posixPath(m.Path))
	}
	return fmt.Sprintf("\"%s\":\"%s\":\"%s\"\n", m.Name, posixPath(m.Path), absPosixPath(cmakeDir))
}
