package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	zerrors "github.com/zmodtool/cli/internal/errors"
	"github.com/zmodtool/cli/internal/output"
	"github.com/zmodtool/cli/internal/pipeline"
	"github.com/zmodtool/cli/internal/revision"
)

// List command flags
var (
	listModulesFlags []string
	listExtraFlags   []string
	listRevisionFlag bool
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List modules in resolved dependency order",
		Long: `Discover modules, resolve their dependency order and print one line
per module: name, path and (with --revisions) the git revision.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringArrayVarP(&listModulesFlags, "modules", "m", nil,
		"Module path to parse instead of the west project list (can be repeated)")
	cmd.Flags().StringArrayVarP(&listExtraFlags, "extra-modules", "x", nil,
		"Extra module path to parse (can be repeated)")
	cmd.Flags().BoolVar(&listRevisionFlag, "revisions", false,
		"Include the git revision of each module")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	result, err := pipeline.Run(pipeline.Options{
		BasePath:     GetBase(),
		Modules:      listModulesFlags,
		ExtraModules: listExtraFlags,
	})
	if err != nil {
		return zerrors.NewExitError(err, ExitCodeFromError(err))
	}

	for _, m := range result.Modules {
		line := fmt.Sprintf("%s %s",
			output.StyleNoun.Render(m.Name), m.Path)
		if listRevisionFlag {
			rev := "-"
			if r, ok := revision.Lookup(m.Path); ok {
				rev = r
			}
			line += " " + output.StyleDim.Render(rev)
		}
		output.Println(line)
	}

	return nil
}
