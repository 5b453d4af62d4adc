package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ParkerLab/mka/internal/config"
	"github.com/ParkerLab/mka/internal/pathutil"
)

// buildResult records what an init run actually changed on disk.
type buildResult struct {
	Root     string   `json:"root"`
	Created  []string `json:"created,omitempty"`
	Existing []string `json:"existing,omitempty"`
	Links    []string `json:"links,omitempty"`
}

// buildWorkingArea creates the configured directory layout under
// outputDir/name and then the configured symlinks. Created collects
// the shallowest newly created component of each directory chain, so
// the report names only paths that this run actually introduced.
func buildWorkingArea(cfg config.RuntimeConfig, mode os.FileMode) (buildResult, error) {
	result := buildResult{Root: filepath.Join(cfg.OutputDir, cfg.Name)}

	for _, dir := range cfg.Dirs {
		target := filepath.Join(result.Root, dir)
		first, err := pathutil.EnsureDir(target, mode)
		if err != nil {
			return result, err
		}
		if first == "" {
			result.Existing = append(result.Existing, target)
		} else {
			result.Created = append(result.Created, first)
		}
	}

	for _, link := range cfg.Links {
		linkPath := filepath.Join(result.Root, link.Target)
		if _, err := pathutil.EnsureDir(filepath.Dir(linkPath), mode); err != nil {
			return result, err
		}
		if err := pathutil.Symlink(link.Source, linkPath, link.Overwrite); err != nil {
			return result, err
		}
		result.Links = append(result.Links, linkPath)
	}

	return result, nil
}

func writeSummary(path string, result buildResult) error {
	payload := struct {
		GeneratedAt string `json:"generatedAt"`
		buildResult
	}{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		buildResult: result,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if _, err := pathutil.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("summary directory: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
