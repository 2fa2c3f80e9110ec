package metadata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zerrors "github.com/zmodtool/cli/internal/errors"
	"github.com/zmodtool/cli/internal/testutil"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "mymodule", "mymodule"},
		{"hyphen", "foo-bar", "foo_bar"},
		{"dots and slashes", "hal.st/f4", "hal_st_f4"},
		{"mixed case preserved", "Foo-Bar", "Foo_Bar"},
		{"digits kept", "lib2", "lib2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeName(tc.in)
			assert.Equal(t, tc.want, got)
			// Replacement is 1:1: length and positions are preserved.
			assert.Len(t, got, len(tc.in))
			assert.Regexp(t, `^[A-Za-z0-9_]*$`, got)
		})
	}
}

func TestLoadDeclared(t *testing.T) {
	t.Run("full metadata file", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", `
name: my-module
build:
  cmake: lib
  kconfig: Kconfig.module
  depends:
    - other
  settings:
    board_root: boards
tests:
  - tests/foo
samples:
  - samples/bar
boards:
  - boards
`)
		testutil.WriteFile(t, root, "lib/CMakeLists.txt", "# stub\n")
		testutil.WriteFile(t, root, "Kconfig.module", "# stub\n")

		m, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, "my-module", m.Name)
		assert.Equal(t, "my_module", m.SanitizedName)
		assert.Equal(t, root, m.Path)
		assert.False(t, m.Implicit)
		require.NotNil(t, m.Build)
		assert.Equal(t, "lib", m.Build.CMake)
		assert.Equal(t, "Kconfig.module", m.Build.Kconfig)
		assert.Equal(t, []string{"other"}, m.DependsOn())
		assert.Equal(t, map[string]string{"board": "boards"}, m.Build.Settings)
		assert.Equal(t, []string{"tests/foo"}, m.Tests)
		assert.Equal(t, []string{"samples/bar"}, m.Samples)
		assert.Equal(t, []string{"boards"}, m.Boards)
	})

	t.Run("name defaults to directory name", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "hal_foo", "build:\n  kconfig-ext: true\n")

		m, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, "hal_foo", m.Name)
		assert.Equal(t, "hal_foo", m.SanitizedName)
	})

	t.Run("minimal metadata without build section", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", "name: bare\n")

		m, err := Load(root)
		require.NoError(t, err)
		assert.Nil(t, m.Build)
		assert.Empty(t, m.DependsOn())
		assert.Equal(t, DefaultCMakeDir, m.CMakeDir())
		assert.Equal(t, DefaultKconfigFile, m.KconfigFile())
	})

	t.Run("unknown top-level key is a schema violation", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", "name: bad\nfrobnicate: yes\n")

		_, err := Load(root)
		require.Error(t, err)
		assert.ErrorIs(t, err, zerrors.ErrSchema)
		assert.Contains(t, err.Error(), filepath.Join(root, "zephyr", "module.yml"))
	})

	t.Run("unknown build key is a schema violation", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", "build:\n  cmakelists: zephyr\n")

		_, err := Load(root)
		assert.ErrorIs(t, err, zerrors.ErrSchema)
	})

	t.Run("wrong value type is a schema violation", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", "tests: not-a-sequence\n")

		_, err := Load(root)
		assert.ErrorIs(t, err, zerrors.ErrSchema)
	})

	t.Run("empty metadata file is a schema violation", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", "")

		_, err := Load(root)
		assert.ErrorIs(t, err, zerrors.ErrSchema)
	})

	t.Run("null metadata document is a schema violation", func(t *testing.T) {
		for _, content := range []string{"null\n", "~\n", "---\n"} {
			tmp := t.TempDir()
			root := testutil.ModuleDir(t, tmp, "mod", content)

			_, err := Load(root)
			assert.ErrorIs(t, err, zerrors.ErrSchema, "content %q", content)
		}
	})

	t.Run("declared cmake without CMakeLists.txt fails", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", "build:\n  cmake: missing\n")

		_, err := Load(root)
		require.Error(t, err)
		assert.ErrorIs(t, err, zerrors.ErrInvalidSetting)
		assert.Contains(t, err.Error(), `"cmake"`)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("declared kconfig pointing nowhere fails", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", "build:\n  kconfig: Kconfig.gone\n")

		_, err := Load(root)
		require.Error(t, err)
		assert.ErrorIs(t, err, zerrors.ErrInvalidSetting)
		assert.Contains(t, err.Error(), `"kconfig"`)
	})

	t.Run("ext flags skip declared setting validation", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", `
build:
  cmake: missing
  cmake-ext: true
  kconfig: Kconfig.gone
  kconfig-ext: true
`)

		m, err := Load(root)
		require.NoError(t, err)
		assert.True(t, m.Build.CMakeExt)
		assert.True(t, m.Build.KconfigExt)
	})

	t.Run("root settings are recorded without existence check", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ModuleDir(t, tmp, "mod", `
build:
  settings:
    dts_root: dts
    soc_root: soc
`)

		m, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"dts": "dts", "soc": "soc"}, m.Build.Settings)
	})
}

func TestLoadImplicit(t *testing.T) {
	t.Run("CMakeLists and Kconfig qualify", func(t *testing.T) {
		tmp := t.TempDir()
		root := testutil.ImplicitModuleDir(t, tmp, "my-lib")

		m, err := Load(root)
		require.NoError(t, err)
		assert.True(t, m.Implicit)
		assert.Equal(t, "my-lib", m.Name)
		assert.Equal(t, "my_lib", m.SanitizedName)
		require.NotNil(t, m.Build)
		assert.Equal(t, DefaultCMakeDir, m.Build.CMake)
		assert.Equal(t, DefaultKconfigFile, m.Build.Kconfig)
		assert.Empty(t, m.DependsOn())
	})

	t.Run("only one conventional file does not qualify", func(t *testing.T) {
		tmp := t.TempDir()
		root := filepath.Join(tmp, "half")
		testutil.WriteFile(t, root, filepath.Join("zephyr", "Kconfig"), "# stub\n")

		_, err := Load(root)
		assert.ErrorIs(t, err, zerrors.ErrNotModule)
	})

	t.Run("plain directory is not a module", func(t *testing.T) {
		tmp := t.TempDir()

		_, err := Load(tmp)
		assert.ErrorIs(t, err, zerrors.ErrNotModule)
	})
}
