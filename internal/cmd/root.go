package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zmodtool/cli/internal/config"
	"github.com/zmodtool/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	baseFlag       string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	zmodConfig *config.Config
)

// NewRootCmd creates the root command for the zmod CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zmod",
		Short:         "Zephyr module metadata tool",
		Long:          `zmod discovers Zephyr modules, validates their metadata and generates the Kconfig, CMake, settings, twister and provenance files consumed by the build.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: ZMOD_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&baseFlag, "base", "z", "", "Path to the main tree (env: ZMOD_BASE)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Commands that don't need config should still work.
		loaded = (&config.Config{}).WithDefaults()
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	zmodConfig = loaded

	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if zmodConfig.Log.Timestamps != nil {
		logCfg.Timestamps = zmodConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"base", GetBase(),
		)
	}

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return zmodConfig
}

// GetBase returns the main tree path, flag value winning over config.
func GetBase() string {
	if baseFlag != "" {
		return baseFlag
	}
	if zmodConfig != nil {
		return zmodConfig.Base
	}
	return ""
}
