package generate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zmodtool/cli/internal/metadata"
)

// Twister returns the twister argument file contents: a `-T`/path line pair
// for every test and sample root, then a `--board-root`/path pair for every
// board root, across modules in resolution order. Empty path entries are
// skipped.
func Twister(modules []*metadata.Module) string {
	var b strings.Builder
	for _, m := range modules {
		for _, pth := range append(append([]string(nil), m.Tests...), m.Samples...) {
			if pth == "" {
				continue
			}
			fmt.Fprintf(&b, "-T\n%s\n", absPosixPath(filepath.Join(m.Path, pth)))
		}
		for _, pth := range m.Boards {
			if pth == "" {
				continue
			}
			fmt.Fprintf(&b, "--board-root\n%s\n", absPosixPath(filepath.Join(m.Path, pth)))
		}
	}
	return b.String()
}
