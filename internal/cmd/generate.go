package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	zerrors "github.com/zmodtool/cli/internal/errors"
	"github.com/zmodtool/cli/internal/generate"
	"github.com/zmodtool/cli/internal/meta"
	"github.com/zmodtool/cli/internal/output"
	"github.com/zmodtool/cli/internal/pipeline"
	"github.com/zmodtool/cli/internal/revision"
)

// Generate command flags
var (
	genModulesFlags []string
	genExtraFlags   []string
	genKconfigOut   string
	genCMakeOut     string
	genSettingsOut  string
	genTwisterOut   string
	genMetaOut      string
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate build include files from module metadata",
		Long: `Discover modules, resolve their dependency order and write the
generated build files.

The module list comes from --modules, or from the west manifest when no
list is given. Each output is written only when its flag is set, and no
file is written at all if discovery or resolution fails.

Examples:
  # Generate everything a build consumes
  zmod generate -z ~/zephyr --kconfig-out Kconfig.modules \
      --cmake-out zephyr_modules.txt --settings-out zephyr_settings.txt

  # Explicit module list plus an extra out-of-manifest module
  zmod generate -z ~/zephyr -m ./hal_foo -m ./lib_bar -x ./my_module \
      --meta-out zephyr_meta.yml`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().StringArrayVarP(&genModulesFlags, "modules", "m", nil,
		"Module path to parse instead of the west project list (can be repeated)")
	cmd.Flags().StringArrayVarP(&genExtraFlags, "extra-modules", "x", nil,
		"Extra module path to parse (can be repeated)")
	cmd.Flags().StringVar(&genKconfigOut, "kconfig-out", "",
		"File to write with resulting Kconfig import statements")
	cmd.Flags().StringVar(&genCMakeOut, "cmake-out", "",
		"File to write with resulting <name>:<path> values for CMake")
	cmd.Flags().StringVar(&genSettingsOut, "settings-out", "",
		"File to write with resulting build system settings")
	cmd.Flags().StringVar(&genTwisterOut, "twister-out", "",
		"File to write with resulting twister parameters")
	cmd.Flags().StringVar(&genMetaOut, "meta-out", "",
		"File to write with build meta info (modules, projects, revisions)")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	result, err := pipeline.Run(pipeline.Options{
		BasePath:     GetBase(),
		Modules:      genModulesFlags,
		ExtraModules: genExtraFlags,
	})
	if err != nil {
		return zerrors.NewExitError(err, ExitCodeFromError(err))
	}

	outputs := []struct {
		path    string
		content string
	}{
		{genKconfigOut, result.Kconfig},
		{genCMakeOut, result.CMake},
		{genSettingsOut, generate.SettingsHeader + result.Settings},
		{genTwisterOut, result.Twister},
	}

	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := writeArtifact(out.path, []byte(out.content)); err != nil {
			return err
		}
	}

	if genMetaOut != "" {
		doc := meta.Build(GetBase(), result.West, result.Modules, revision.Lookup)
		data, err := doc.Encode()
		if err != nil {
			return fmt.Errorf("encoding meta document: %w", err)
		}
		if err := writeArtifact(genMetaOut, data); err != nil {
			return err
		}
	}

	output.Debug("generation complete", "modules", len(result.Modules))
	return nil
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	output.Debug("wrote artifact", "path", path, "bytes", len(data))
	return nil
}
