// Package revision looks up the version-control revision of a directory.
//
// The lookup is best effort by contract: any git failure, including git not
// being installed or the directory not being a work tree, reports the
// revision as absent and never fails the run.
package revision

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

var errStderr = errors.New("git wrote to stderr")

// Lookup returns the current commit of the git work tree containing path.
// The second return value is false when the path is not inside a work tree
// or the lookup fails for any reason. A work tree with uncommitted changes
// gets a "-dirty" suffix.
func Lookup(path string) (string, bool) {
	if !insideWorkTree(path) {
		return "", false
	}

	head, err := gitOutput(path, "rev-parse", "HEAD")
	if err != nil {
		return "", false
	}

	if dirty(path) {
		head += "-dirty"
	}
	return head, true
}

func insideWorkTree(path string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = path
	return cmd.Run() == nil
}

// gitOutput runs git and returns trimmed stdout. Any write to stderr counts
// as a failure, matching the conservative contract of the lookup.
func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}
	if stderr.Len() > 0 {
		return "", errStderr
	}
	return strings.TrimSpace(stdout.String()), nil
}

func dirty(path string) bool {
	cmd := exec.Command("git", "diff-index", "--quiet", "HEAD", "--")
	cmd.Dir = path
	return cmd.Run() != nil
}
