package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmodtool/cli/internal/metadata"
	"github.com/zmodtool/cli/internal/west"
)

func fakeRevisions(revs map[string]string) RevisionFunc {
	return func(path string) (string, bool) {
		r, ok := revs[path]
		return r, ok
	}
}

func TestBuild(t *testing.T) {
	mods := []*metadata.Module{
		{Name: "a", Path: "/w/a"},
		{Name: "b", Path: "/w/b"},
	}

	t.Run("records base, projects and modules", func(t *testing.T) {
		ws := &west.Workspace{
			ManifestPath: "/w/zephyr/west.yml",
			Projects:     []string{"/w/a", "/w/b"},
		}
		doc := Build("/w/zephyr", ws, mods, fakeRevisions(map[string]string{
			"/w/zephyr": "abc123",
			"/w/a":      "def456-dirty",
		}))

		assert.Equal(t, "/w/zephyr", doc.Zephyr.Path)
		require.NotNil(t, doc.Zephyr.Revision)
		assert.Equal(t, "abc123", *doc.Zephyr.Revision)

		require.NotNil(t, doc.West)
		assert.Equal(t, "/w/zephyr/west.yml", doc.West.Manifest)
		require.Len(t, doc.West.Projects, 2)
		require.NotNil(t, doc.West.Projects[0].Revision)
		assert.Equal(t, "def456-dirty", *doc.West.Projects[0].Revision)
		assert.Nil(t, doc.West.Projects[1].Revision)

		require.Len(t, doc.Modules, 2)
		assert.Equal(t, "a", doc.Modules[0].Name)
		assert.Equal(t, "/w/a", doc.Modules[0].Path)
	})

	t.Run("west section absent without a workspace", func(t *testing.T) {
		doc := Build("/w/zephyr", nil, mods, fakeRevisions(nil))
		assert.Nil(t, doc.West)
	})

	t.Run("encodes as yaml", func(t *testing.T) {
		doc := Build("/w/zephyr", nil, mods, fakeRevisions(map[string]string{
			"/w/a": "abc123",
		}))
		data, err := doc.Encode()
		require.NoError(t, err)

		out := string(data)
		assert.Contains(t, out, "zephyr:")
		assert.Contains(t, out, "modules:")
		assert.Contains(t, out, "revision: abc123")
		// Absent revisions are explicit nulls, not omitted.
		assert.Contains(t, out, "revision: null")
		assert.NotContains(t, out, "west:")
	})
}
