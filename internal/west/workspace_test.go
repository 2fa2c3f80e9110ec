package west

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmodtool/cli/internal/testutil"
)

func writeWorkspace(t *testing.T, topdir string) {
	t.Helper()
	testutil.WriteFile(t, topdir, filepath.Join(".west", "config"),
		"[manifest]\npath = zephyr\nfile = west.yml\n")
	testutil.WriteFile(t, topdir, filepath.Join("zephyr", "west.yml"), `
manifest:
  remotes:
    - name: upstream
      url-base: https://example.org
  projects:
    - name: hal_foo
      remote: upstream
    - name: lib_bar
      path: modules/lib/bar
  self:
    path: zephyr
`)
}

func TestDiscover(t *testing.T) {
	t.Run("finds workspace from topdir", func(t *testing.T) {
		tmp := t.TempDir()
		writeWorkspace(t, tmp)

		ws, err := Discover(tmp)
		require.NoError(t, err)
		require.NotNil(t, ws)
		assert.Equal(t, tmp, ws.TopDir)
		assert.Equal(t, filepath.Join(tmp, "zephyr", "west.yml"), ws.ManifestPath)
		assert.Equal(t, []string{
			filepath.Join(tmp, "hal_foo"),
			filepath.Join(tmp, "modules", "lib", "bar"),
		}, ws.Projects)
	})

	t.Run("finds workspace from a nested directory", func(t *testing.T) {
		tmp := t.TempDir()
		writeWorkspace(t, tmp)
		nested := filepath.Join(tmp, "zephyr", "drivers")
		testutil.WriteFile(t, nested, "placeholder", "")

		ws, err := Discover(nested)
		require.NoError(t, err)
		require.NotNil(t, ws)
		assert.Equal(t, tmp, ws.TopDir)
	})

	t.Run("not a workspace returns nil", func(t *testing.T) {
		ws, err := Discover(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, ws)
	})

	t.Run("manifest file defaults to west.yml", func(t *testing.T) {
		tmp := t.TempDir()
		testutil.WriteFile(t, tmp, filepath.Join(".west", "config"),
			"[manifest]\npath = zephyr\n")
		testutil.WriteFile(t, tmp, filepath.Join("zephyr", "west.yml"),
			"manifest:\n  projects:\n    - name: p\n")

		ws, err := Discover(tmp)
		require.NoError(t, err)
		require.NotNil(t, ws)
		assert.Equal(t, []string{filepath.Join(tmp, "p")}, ws.Projects)
	})

	t.Run("missing manifest file is an error", func(t *testing.T) {
		tmp := t.TempDir()
		testutil.WriteFile(t, tmp, filepath.Join(".west", "config"),
			"[manifest]\npath = zephyr\n")

		_, err := Discover(tmp)
		assert.Error(t, err)
	})
}
