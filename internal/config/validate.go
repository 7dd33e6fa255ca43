package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nerdash/nerdash/internal/output"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if strings.ContainsAny(cfg.Title, "\r\n") {
		errs = append(errs, "title: must be a single line")
	}

	if cfg.Stats.Format != "" {
		if _, err := output.GetFormatter(cfg.Stats.Format); err != nil {
			errs = append(errs, fmt.Sprintf("stats.format: %v", err))
		}
	}

	if cfg.Generate.Input != "" && cfg.Generate.Input == cfg.Generate.Output {
		errs = append(errs, fmt.Sprintf("generate.output: must differ from generate.input, got %q for both", cfg.Generate.Input))
	}
	if cfg.Refresh.Input != "" && cfg.Refresh.Input == cfg.Refresh.Dashboard {
		errs = append(errs, fmt.Sprintf("refresh.dashboard: must differ from refresh.input, got %q for both", cfg.Refresh.Input))
	}

	for _, f := range []struct{ key, path string }{
		{"generate.output", cfg.Generate.Output},
		{"refresh.dashboard", cfg.Refresh.Dashboard},
	} {
		if f.path == "" {
			continue
		}
		if ext := strings.ToLower(filepath.Ext(f.path)); ext != ".html" && ext != ".htm" {
			errs = append(errs, fmt.Sprintf("%s: must name an .html file, got %q", f.key, f.path))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
