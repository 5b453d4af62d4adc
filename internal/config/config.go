// Package config resolves the settings used to lay out a pipeline
// working area, merging a YAML file, environment variables, and CLI
// flags in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "mka.config.yml"

	envName      = "MKA_NAME"
	envOutputDir = "MKA_OUTPUT_DIR"
	envDirs      = "MKA_DIRS"
	envDirMode   = "MKA_DIR_MODE"
)

// Loader merges configuration coming from files, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
}

// Link describes one symlink to create inside the working area.
type Link struct {
	Source    string `yaml:"source"`
	Target    string `yaml:"target"`
	Overwrite bool   `yaml:"overwrite"`
}

// RuntimeConfig contains the fully merged settings required by mka sub-commands.
type RuntimeConfig struct {
	Name      string
	OutputDir string
	Dirs      []string
	DirMode   string
	Links     []Link
}

// Overrides captures values coming from env vars or CLI flags.
type Overrides struct {
	Name      string
	OutputDir string
	Dirs      []string
	DirMode   string
	Links     []Link
}

// DefaultRuntimeConfig returns the baseline configuration when no overrides are provided.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		OutputDir: "pipelines",
		Dirs:      []string{"data", "work", "logs"},
		DirMode:   "0755",
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg.apply(fileOv)
	}

	cfg.apply(overridesFromEnv())
	cfg.apply(override)

	return cfg, nil
}

// Validate ensures the config contains the minimum required data for the init command.
func (c RuntimeConfig) Validate() error {
	if c.Name == "" {
		return errors.New("no working-area name configured; provide --name or set MKA_NAME")
	}

	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	if len(c.Dirs) == 0 {
		return errors.New("at least one subdirectory must be configured")
	}

	if _, err := c.Mode(); err != nil {
		return err
	}

	for _, link := range c.Links {
		if link.Source == "" || link.Target == "" {
			return fmt.Errorf("link entries need both source and target (got source=%q target=%q)", link.Source, link.Target)
		}
	}

	return nil
}

// Mode parses the configured octal permission string.
func (c RuntimeConfig) Mode() (os.FileMode, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(c.DirMode, "0o"), "0O")
	parsed, err := strconv.ParseUint(raw, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("dirMode %q is not an octal permission string", c.DirMode)
	}
	if parsed > 0o777 {
		return 0, fmt.Errorf("dirMode %q is out of range", c.DirMode)
	}
	return os.FileMode(parsed), nil
}

func (c *RuntimeConfig) apply(src Overrides) {
	if src.Name != "" {
		c.Name = src.Name
	}

	if src.OutputDir != "" {
		c.OutputDir = src.OutputDir
	}

	if len(src.Dirs) > 0 {
		c.Dirs = cleanList(src.Dirs)
	}

	if src.DirMode != "" {
		c.DirMode = src.DirMode
	}

	if len(src.Links) > 0 {
		c.Links = src.Links
	}
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawConfig struct {
		Name      string  `yaml:"name"`
		OutputDir string  `yaml:"outputDir"`
		Dirs      dirList `yaml:"dirs"`
		DirMode   string  `yaml:"dirMode"`
		Links     []Link  `yaml:"links"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, err
	}

	return Overrides{
		Name:      raw.Name,
		OutputDir: raw.OutputDir,
		Dirs:      raw.Dirs,
		DirMode:   raw.DirMode,
		Links:     raw.Links,
	}, nil
}

func overridesFromEnv() Overrides {
	ov := Overrides{}

	if value := os.Getenv(envName); value != "" {
		ov.Name = value
	}

	if value := os.Getenv(envOutputDir); value != "" {
		ov.OutputDir = value
	}

	if value := os.Getenv(envDirs); value != "" {
		ov.Dirs = ParseDirList(value)
	}

	if value := os.Getenv(envDirMode); value != "" {
		ov.DirMode = value
	}

	return ov
}

// ParseDirList turns comma or newline separated input into individual directory names.
func ParseDirList(input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	return cleanList(parts)
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		candidate := strings.TrimSpace(v)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dirList enables YAML fields that can be specified as a scalar or sequence.
type dirList []string

func (d *dirList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, node := range value.Content {
			out = append(out, strings.TrimSpace(node.Value))
		}
		*d = cleanList(out)
	case yaml.ScalarNode:
		*d = ParseDirList(value.Value)
	default:
		return fmt.Errorf("unsupported YAML type for dirs")
	}
	return nil
}
