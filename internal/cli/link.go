package cli

import (
	"fmt"

	"github.com/ParkerLab/mka/internal/pathutil"
	"github.com/spf13/cobra"
)

func newLinkCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "link SOURCE TARGET",
		Short: "Create a symlink to shared data",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, target := args[0], args[1]
			if err := pathutil.Symlink(source, target, overwrite); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "linked %s -> %s\n", target, source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace TARGET if it already exists")

	return cmd
}
