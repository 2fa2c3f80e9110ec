package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zmodtool/cli/internal/metadata"
)

// Kconfig returns the ordered concatenation of per-module Kconfig menu
// blocks. A module whose conventional Kconfig fragment does not exist
// contributes nothing; declared fragments were already validated at load
// time.
func Kconfig(modules []*metadata.Module) string {
	var b strings.Builder
	for _, m := range modules {
		b.WriteString(kconfigSnippet(m))
	}
	return b.String()
}

func kconfigSnippet(m *metadata.Module) string {
	if m.Build != nil && m.Build.KconfigExt {
		return kconfigMenu(m, "")
	}

	fragment := filepath.Join(m.Path, m.KconfigFile())
	if !isFile(fragment) {
		return ""
	}
	return kconfigMenu(m, absPosixPath(fragment))
}

// kconfigMenu renders one menu block. An empty fragment path means the
// fragment is provided externally through a build-time variable.
func kconfigMenu(m *metadata.Module, fragment string) string {
	token := strings.ToUpper(m.SanitizedName)

	source := fragment
	if source == "" {
		source = fmt.Sprintf("$(ZEPHYR_%s_KCONFIG)", token)
	}

	lines := []string{
		fmt.Sprintf("menu %q", fmt.Sprintf("%s (%s)", m.Name, posixPath(m.Path))),
		fmt.Sprintf("osource %q", source),
		fmt.Sprintf("config ZEPHYR_%s_MODULE", token),
		"\tbool",
		"\tdefault y",
		"endmenu\n",
	}
	return strings.Join(lines, "\n")
}
