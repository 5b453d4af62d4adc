package cli

import (
	"github.com/ParkerLab/mka/internal/config"
	"github.com/ParkerLab/mka/internal/logging"
	"github.com/ParkerLab/mka/internal/pathutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute builds the root command tree and runs the CLI. Usage and
// error text go through the logger, so both pick up level coloring on
// a terminal.
func Execute() error {
	loader := &config.Loader{ConfigPath: config.DefaultConfigPath}
	rootOpts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "mka",
		Short:         "Set up pipeline working areas",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.SetVersionTemplate("mka version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigPath, "config", config.DefaultConfigPath, "Path to mka.config.yml (optional)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&rootOpts.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logging.Setup(rootOpts.Verbose, rootOpts.NoColor)

		if cmd.Flags().Changed("config") {
			check := pathutil.FileCheck{RequireExists: true, RequireReadable: true}
			if err := check.Validate(rootOpts.ConfigPath); err != nil {
				return err
			}
		}
		if rootOpts.ConfigPath != "" {
			loader.ConfigPath = rootOpts.ConfigPath
		}
		return nil
	}

	rootCmd.SetOut(logging.Writer(logrus.StandardLogger(), logrus.InfoLevel))
	rootCmd.SetErr(logging.Writer(logrus.StandardLogger(), logrus.ErrorLevel))

	rootCmd.AddCommand(
		newInitCmd(loader),
		newLinkCmd(),
		newDoctorCmd(loader),
	)

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		return err
	}
	return nil
}

type rootOptions struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
}
