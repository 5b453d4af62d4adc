package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ParkerLab/mka/internal/config"
	"github.com/ParkerLab/mka/internal/logging"
	"github.com/ParkerLab/mka/internal/pathutil"
	"github.com/spf13/cobra"
)

type doctorCheck struct {
	Name   string
	Status string // "✓", "✗", or "⊘"
	Detail string
	Error  error
}

func newDoctorCmd(loader *config.Loader) *cobra.Command {
	flags := &scaffoldFlagSet{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the configuration and execution environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			checks := runDoctorChecks(&cfg)
			printDoctorReport(cmd, checks)

			for _, check := range checks {
				if check.Error != nil {
					return fmt.Errorf("doctor checks failed")
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "All checks passed.")
			return nil
		},
	}

	bindScaffoldFlags(cmd, flags)

	return cmd
}

func runDoctorChecks(cfg *config.RuntimeConfig) []doctorCheck {
	return []doctorCheck{
		checkGoVersion(),
		checkConfiguration(cfg),
		checkDirMode(cfg),
		checkOutputDirectory(cfg),
		checkColorSupport(),
	}
}

func checkGoVersion() doctorCheck {
	return doctorCheck{
		Name:   "Go Runtime",
		Status: "✓",
		Detail: fmt.Sprintf("Version %s", runtime.Version()),
	}
}

func checkConfiguration(cfg *config.RuntimeConfig) doctorCheck {
	if err := cfg.Validate(); err != nil {
		return doctorCheck{
			Name:   "Configuration",
			Status: "✗",
			Detail: "Invalid configuration",
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   "Configuration",
		Status: "✓",
		Detail: fmt.Sprintf("name=%s, %d dirs, %d links", cfg.Name, len(cfg.Dirs), len(cfg.Links)),
	}
}

func checkDirMode(cfg *config.RuntimeConfig) doctorCheck {
	mode, err := cfg.Mode()
	if err != nil {
		return doctorCheck{
			Name:   "Directory Mode",
			Status: "✗",
			Detail: cfg.DirMode,
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   "Directory Mode",
		Status: "✓",
		Detail: fmt.Sprintf("%04o", mode),
	}
}

func checkOutputDirectory(cfg *config.RuntimeConfig) doctorCheck {
	if cfg.OutputDir == "" {
		return doctorCheck{
			Name:   "Output Directory",
			Status: "✗",
			Detail: "not configured",
			Error:  fmt.Errorf("output directory cannot be empty"),
		}
	}

	if _, err := pathutil.EnsureDir(cfg.OutputDir, 0o755); err != nil {
		return doctorCheck{
			Name:   "Output Directory",
			Status: "✗",
			Detail: cfg.OutputDir,
			Error:  err,
		}
	}

	// Writability is probed directly; directory permission bits alone
	// do not account for ownership or ACLs.
	probe, err := os.CreateTemp(cfg.OutputDir, ".mka-doctor-*")
	if err != nil {
		return doctorCheck{
			Name:   "Output Directory",
			Status: "✗",
			Detail: fmt.Sprintf("%s is not writable", cfg.OutputDir),
			Error:  err,
		}
	}
	probe.Close()
	os.Remove(probe.Name())

	return doctorCheck{
		Name:   "Output Directory",
		Status: "✓",
		Detail: filepath.Clean(cfg.OutputDir),
	}
}

func checkColorSupport() doctorCheck {
	if !logging.StderrIsTerminal() {
		return doctorCheck{
			Name:   "Colored Output",
			Status: "⊘",
			Detail: "stderr is not a terminal; output will be plain",
		}
	}

	return doctorCheck{
		Name:   "Colored Output",
		Status: "✓",
		Detail: "terminal detected",
	}
}

func printDoctorReport(cmd *cobra.Command, checks []doctorCheck) {
	fmt.Fprintln(cmd.OutOrStdout(), "Running environment diagnostics...")

	for _, check := range checks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-20s %s\n", check.Status, check.Name+":", check.Detail)
		if check.Error != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "   Error: %v\n", check.Error)
		}
	}
}
