package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoadWithFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "mka.config.yml")
	configBody := []byte("name: atac-2026\noutputDir: areas\ndirMode: \"0750\"\ndirs:\n  - data\n  - work\n")
	if err := os.WriteFile(configPath, configBody, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(envOutputDir, "env-areas")
	t.Setenv(envDirs, "raw,aligned")

	loader := Loader{ConfigPath: configPath}
	cfg, err := loader.Load(Overrides{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}

	if cfg.Name != "atac-2026" {
		t.Fatalf("expected name atac-2026, got %s", cfg.Name)
	}

	if cfg.OutputDir != "env-areas" {
		t.Fatalf("env override should set output dir to env-areas, got %s", cfg.OutputDir)
	}

	if len(cfg.Dirs) != 2 || cfg.Dirs[0] != "raw" || cfg.Dirs[1] != "aligned" {
		t.Fatalf("unexpected dirs: %#v", cfg.Dirs)
	}

	mode, err := cfg.Mode()
	if err != nil {
		t.Fatalf("parse mode: %v", err)
	}
	if mode != 0o750 {
		t.Fatalf("expected mode 750, got %o", mode)
	}
}

func TestOverridesTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "mka.config.yml")
	if err := os.WriteFile(configPath, []byte("name: from-file\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := Loader{ConfigPath: configPath}
	cfg, err := loader.Load(Overrides{Name: "from-flag"})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Name != "from-flag" {
		t.Fatalf("expected flag override to win, got %s", cfg.Name)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loader := Loader{ConfigPath: filepath.Join(t.TempDir(), "absent.yml")}
	cfg, err := loader.Load(Overrides{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.OutputDir != "pipelines" {
		t.Fatalf("expected default output dir, got %s", cfg.OutputDir)
	}
	if len(cfg.Dirs) != 3 {
		t.Fatalf("expected default dirs, got %#v", cfg.Dirs)
	}
	if cfg.DirMode != "0755" {
		t.Fatalf("expected default mode string, got %s", cfg.DirMode)
	}
}

func TestDirsScalarForm(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "mka.config.yml")
	if err := os.WriteFile(configPath, []byte("name: x\ndirs: data,work,logs\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := Loader{ConfigPath: configPath}
	cfg, err := loader.Load(Overrides{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if len(cfg.Dirs) != 3 {
		t.Fatalf("expected 3 dirs from scalar form, got %#v", cfg.Dirs)
	}
}

func TestLinksFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "mka.config.yml")
	body := []byte("name: x\nlinks:\n  - source: /lab/refs/hg38\n    target: refs/hg38\n    overwrite: true\n")
	if err := os.WriteFile(configPath, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := Loader{ConfigPath: configPath}
	cfg, err := loader.Load(Overrides{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if len(cfg.Links) != 1 {
		t.Fatalf("expected 1 link, got %#v", cfg.Links)
	}
	link := cfg.Links[0]
	if link.Source != "/lab/refs/hg38" || link.Target != "refs/hg38" || !link.Overwrite {
		t.Fatalf("unexpected link: %#v", link)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name string
		cfg  RuntimeConfig
	}{
		{
			name: "missing name",
			cfg:  RuntimeConfig{OutputDir: "out", Dirs: []string{"data"}, DirMode: "0755"},
		},
		{
			name: "empty output dir",
			cfg:  RuntimeConfig{Name: "x", Dirs: []string{"data"}, DirMode: "0755"},
		},
		{
			name: "no dirs",
			cfg:  RuntimeConfig{Name: "x", OutputDir: "out", DirMode: "0755"},
		},
		{
			name: "bad mode",
			cfg:  RuntimeConfig{Name: "x", OutputDir: "out", Dirs: []string{"data"}, DirMode: "rwxr-xr-x"},
		},
		{
			name: "out of range mode",
			cfg:  RuntimeConfig{Name: "x", OutputDir: "out", Dirs: []string{"data"}, DirMode: "7777"},
		},
		{
			name: "link without target",
			cfg: RuntimeConfig{
				Name: "x", OutputDir: "out", Dirs: []string{"data"}, DirMode: "0755",
				Links: []Link{{Source: "/lab/refs"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestModeAcceptsGoOctalPrefix(t *testing.T) {
	cfg := RuntimeConfig{DirMode: "0o700"}
	mode, err := cfg.Mode()
	if err != nil {
		t.Fatalf("parse mode: %v", err)
	}
	if mode != 0o700 {
		t.Fatalf("expected mode 700, got %o", mode)
	}
}
