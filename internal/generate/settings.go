package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zmodtool/cli/internal/metadata"
)

// Settings returns one `"<KIND>_ROOT":"<path>"` line for every root-kind a
// module declares, across modules in resolution order. Root-kind existence
// is not checked here; the consumer of the settings file decides what a
// missing root means.
func Settings(modules []*metadata.Module) string {
	var b strings.Builder
	for _, m := range modules {
		if m.Build == nil || m.Build.Settings == nil {
			continue
		}
		for _, kind := range metadata.RootKinds {
			setting, ok := m.Build.Settings[kind]
			if !ok {
				continue
			}
			rootPath := absPosixPath(filepath.Join(m.Path, setting))
			fmt.Fprintf(&b, "\"%s_ROOT\":\"%s\"\n", strings.ToUpper(kind), rootPath)
		}
	}
	return b.String()
}
