package cli

import (
	"github.com/ParkerLab/mka/internal/config"
	"github.com/spf13/cobra"
)

// scaffoldFlagSet tracks shared init/doctor flags before they are converted into config overrides.
type scaffoldFlagSet struct {
	name      string
	outputDir string
	dirs      string
	dirMode   string
}

func bindScaffoldFlags(cmd *cobra.Command, flags *scaffoldFlagSet) {
	cmd.Flags().StringVar(&flags.name, "name", "", "Working-area name (overrides config)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Base directory for working areas")
	cmd.Flags().StringVar(&flags.dirs, "dirs", "", "Comma-separated subdirectories to create")
	cmd.Flags().StringVar(&flags.dirMode, "dir-mode", "", "Octal permission mode for created directories")
}

func (f scaffoldFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	if cmd.Flags().Changed("name") {
		ov.Name = f.name
	}

	if cmd.Flags().Changed("output-dir") {
		ov.OutputDir = f.outputDir
	}

	if cmd.Flags().Changed("dirs") {
		ov.Dirs = config.ParseDirList(f.dirs)
	}

	if cmd.Flags().Changed("dir-mode") {
		ov.DirMode = f.dirMode
	}

	return ov
}
