// Package pipeline orchestrates module discovery, dependency resolution and
// artifact generation.
package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	zerrors "github.com/zmodtool/cli/internal/errors"
	"github.com/zmodtool/cli/internal/generate"
	"github.com/zmodtool/cli/internal/metadata"
	"github.com/zmodtool/cli/internal/output"
	"github.com/zmodtool/cli/internal/resolver"
	"github.com/zmodtool/cli/internal/west"
)

// Options controls one pipeline run.
type Options struct {
	// BasePath is the main tree root. It is never treated as a
	// contributed module, even when listed.
	BasePath string

	// Modules is the explicit module path list. When empty, the list
	// comes from the west manifest.
	Modules []string

	// ExtraModules are additional module paths. Unlike auto-discovered
	// candidates, an extra module that fails qualification is fatal.
	ExtraModules []string

	// WorkDir is where west workspace discovery starts. Defaults to the
	// current directory.
	WorkDir string
}

// Result carries the resolved modules and the generated artifacts.
type Result struct {
	// Modules is the dependency-ordered module list.
	Modules []*metadata.Module

	// West is the workspace the module list came from, when one was used.
	West *west.Workspace

	// Generated artifacts, each the ordered concatenation of per-module
	// fragments.
	Kconfig  string
	CMake    string
	Settings string
	Twister  string
}

// Run executes the pipeline.
//
// Phase sequence:
//  1. DISCOVERY:  explicit list or west project list → metadata.Load per path
//  2. RESOLUTION: resolver.Resolve → dependency-ordered module list
//  3. GENERATION: the four artifact folds over the ordered list
//
// Any fatal condition during discovery or resolution aborts the run before
// any artifact is produced; Run itself writes no files.
func Run(opts Options) (*Result, error) {
	mods, ws, err := discover(opts)
	if err != nil {
		return nil, err
	}

	sorted, err := resolver.Resolve(mods)
	if err != nil {
		return nil, err
	}

	return &Result{
		Modules:  sorted,
		West:     ws,
		Kconfig:  generate.Kconfig(sorted),
		CMake:    generate.CMake(sorted),
		Settings: generate.Settings(sorted),
		Twister:  generate.Twister(sorted),
	}, nil
}

// discover builds the candidate path list and loads metadata for each
// qualifying module.
func discover(opts Options) ([]*metadata.Module, *west.Workspace, error) {
	paths := opts.Modules

	var ws *west.Workspace
	if len(paths) == 0 {
		workDir := opts.WorkDir
		if workDir == "" {
			workDir = "."
		}
		var err error
		ws, err = west.Discover(workDir)
		if err != nil {
			// Not being in a workspace is (nil, nil); an error means a
			// workspace is present but broken, which must not silently
			// degrade to an empty module list.
			return nil, nil, err
		}
		if ws != nil {
			paths = ws.Projects
		}
	}

	extra := make(map[string]bool, len(opts.ExtraModules))
	for _, p := range opts.ExtraModules {
		extra[p] = true
	}

	var mods []*metadata.Module
	for _, path := range append(append([]string(nil), paths...), opts.ExtraModules...) {
		if samePath(path, opts.BasePath) {
			continue
		}

		m, err := metadata.Load(path)
		if errors.Is(err, zerrors.ErrNotModule) {
			if extra[path] {
				return nil, nil, zerrors.Wrap(zerrors.ErrExplicitModule,
					fmt.Sprintf("%s, given as extra module", path))
			}
			output.Debug("not a module, skipping", "path", path)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		mods = append(mods, m)
	}

	return mods, ws, nil
}

// samePath compares two paths after cleaning. The base path exclusion must
// hold regardless of trailing slashes or redundant elements.
func samePath(a, b string) bool {
	if b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
