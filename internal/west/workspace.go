// Package west reads the project list of a west workspace.
//
// A west workspace is marked by a .west/config file (INI format) in an
// ancestor directory; it names the manifest repository and manifest file.
// Not being inside a workspace is an allowed setup, not an error.
package west

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/zmodtool/cli/internal/output"
)

// Workspace describes an active west workspace.
type Workspace struct {
	// TopDir is the workspace top-level directory.
	TopDir string

	// ManifestPath is the resolved path of the manifest file.
	ManifestPath string

	// Projects are the manifest's project directories, in manifest order.
	Projects []string
}

// manifestDoc mirrors the subset of the west manifest this tool consumes.
// West manifests carry many more keys (remotes, defaults, imports); those
// are not ours to validate, so decoding is deliberately not strict.
type manifestDoc struct {
	Manifest struct {
		Projects []struct {
			Name string `yaml:"name"`
			Path string `yaml:"path"`
		} `yaml:"projects"`
		Self struct {
			Path string `yaml:"path"`
		} `yaml:"self"`
	} `yaml:"manifest"`
}

// Discover locates the west workspace containing start and returns its
// manifest path and project list. It returns (nil, nil) when start is not
// inside a workspace.
func Discover(start string) (*Workspace, error) {
	topdir, ok := findTopDir(start)
	if !ok {
		return nil, nil
	}

	cfg, err := ini.Load(filepath.Join(topdir, ".west", "config"))
	if err != nil {
		return nil, fmt.Errorf("reading west config in %s: %w", topdir, err)
	}

	section := cfg.Section("manifest")
	manifestDir := section.Key("path").String()
	manifestFile := section.Key("file").MustString("west.yml")

	manifestPath := filepath.Join(topdir, manifestDir, manifestFile)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading west manifest: %w", err)
	}

	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing west manifest %s: %w", manifestPath, err)
	}

	ws := &Workspace{
		TopDir:       topdir,
		ManifestPath: manifestPath,
	}
	for _, p := range doc.Manifest.Projects {
		dir := p.Path
		if dir == "" {
			dir = p.Name
		}
		ws.Projects = append(ws.Projects, filepath.Join(topdir, dir))
	}

	output.Debug("west workspace",
		"topdir", topdir, "manifest", manifestPath, "projects", len(ws.Projects))

	return ws, nil
}

// findTopDir walks up from start looking for a .west/config marker.
func findTopDir(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, ".west", "config")); err == nil && info.Mode().IsRegular() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
