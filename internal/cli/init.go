package cli

import (
	"fmt"

	"github.com/ParkerLab/mka/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd(loader *config.Loader) *cobra.Command {
	flags := &scaffoldFlagSet{}
	var summaryFile string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the working area for a pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			mode, err := cfg.Mode()
			if err != nil {
				return err
			}

			result, err := buildWorkingArea(cfg, mode)
			if err != nil {
				return err
			}

			for _, path := range result.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			}
			for _, path := range result.Existing {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already present\n", path)
			}
			for _, path := range result.Links {
				fmt.Fprintf(cmd.OutOrStdout(), "linked %s\n", path)
			}

			if summaryFile != "" {
				if err := writeSummary(summaryFile, result); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Working area ready in %s\n", result.Root)
			return nil
		},
	}

	bindScaffoldFlags(cmd, flags)
	cmd.Flags().StringVar(&summaryFile, "summary-file", "", "Optional summary JSON output path")

	return cmd
}
