package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	zerrors "github.com/zmodtool/cli/internal/errors"
	"github.com/zmodtool/cli/internal/output"
	"github.com/zmodtool/cli/internal/pipeline"
)

// Vet command flags
var (
	vetModulesFlags []string
	vetExtraFlags   []string
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate module metadata without generating files",
		Long: `Run module discovery and dependency resolution without writing any
output file. Purely a pass/fail validation tool with per-module feedback.

Examples:
  # Validate the modules of the current west workspace
  zmod vet -z ~/zephyr

  # Validate an explicit module list
  zmod vet -z ~/zephyr -m ./hal_foo -m ./lib_bar`,
		Args: cobra.NoArgs,
		RunE: runVet,
	}

	cmd.Flags().StringArrayVarP(&vetModulesFlags, "modules", "m", nil,
		"Module path to parse instead of the west project list (can be repeated)")
	cmd.Flags().StringArrayVarP(&vetExtraFlags, "extra-modules", "x", nil,
		"Extra module path to parse (can be repeated)")

	return cmd
}

// runVet executes the vet command.
func runVet(cmd *cobra.Command, args []string) error {
	result, err := pipeline.Run(pipeline.Options{
		BasePath:     GetBase(),
		Modules:      vetModulesFlags,
		ExtraModules: vetExtraFlags,
	})
	if err != nil {
		output.Error("validation failed", "err", err)
		return &zerrors.ExitError{
			Code:    ExitCodeFromError(err),
			Err:     err,
			Printed: true,
		}
	}

	for _, m := range result.Modules {
		status := output.StatusResolved
		if m.Implicit {
			status = output.StatusImplicit
		}
		output.Println(output.FormatModuleLine(m.Name, m.Path, status))
	}

	summary := fmt.Sprintf("Modules valid (%d modules)", len(result.Modules))
	output.Println(output.FormatCheckmark(summary))

	return nil
}
