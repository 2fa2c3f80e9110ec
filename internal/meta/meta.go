// Package meta builds the provenance document describing where every piece
// of the build came from: the base tree, the west projects and the resolved
// modules, each with its best-effort git revision.
package meta

import (
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/zmodtool/cli/internal/metadata"
	"github.com/zmodtool/cli/internal/west"
)

// Project is one provenance entry: a path and its revision. Revision is
// null when the path is not a version-controlled work tree.
type Project struct {
	Name     string  `json:"name,omitempty"`
	Path     string  `json:"path"`
	Revision *string `json:"revision"`
}

// West records the manifest and project list of the west workspace, when
// one was in effect.
type West struct {
	Manifest string    `json:"manifest"`
	Projects []Project `json:"projects"`
}

// Document is the generated provenance document.
type Document struct {
	Zephyr  Project   `json:"zephyr"`
	West    *West     `json:"west,omitempty"`
	Modules []Project `json:"modules"`
}

// RevisionFunc looks up a path's revision; ok is false when absent.
type RevisionFunc func(path string) (revision string, ok bool)

// Build assembles the provenance document for the given base tree,
// workspace and resolved modules. rev is consulted once per path and its
// failures are recorded as null revisions, never propagated.
func Build(base string, ws *west.Workspace, modules []*metadata.Module, rev RevisionFunc) *Document {
	doc := &Document{
		Zephyr: project("", base, rev),
	}

	if ws != nil {
		doc.West = &West{Manifest: filepath.ToSlash(ws.ManifestPath)}
		for _, p := range ws.Projects {
			doc.West.Projects = append(doc.West.Projects, project("", p, rev))
		}
	}

	doc.Modules = make([]Project, 0, len(modules))
	for _, m := range modules {
		doc.Modules = append(doc.Modules, project(m.Name, m.Path, rev))
	}

	return doc
}

// Encode marshals the document as YAML.
func (d *Document) Encode() ([]byte, error) {
	return yaml.Marshal(d)
}

func project(name, path string, rev RevisionFunc) Project {
	p := Project{Name: name, Path: filepath.ToSlash(path)}
	if r, ok := rev(path); ok {
		p.Revision = &r
	}
	return p
}
