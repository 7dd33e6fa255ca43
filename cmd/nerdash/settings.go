package main

import (
	"github.com/spf13/cobra"

	"github.com/nerdash/nerdash/internal/config"
)

// loadSettings layers built-in defaults, the global config and the project
// config in the working directory. Command flags are applied by the caller,
// and only when explicitly set.
func loadSettings() (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "nerdash: loading global config: %v", err)
	}
	project, err := config.Load(".")
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "nerdash: loading config: %v", err)
	}

	cfg := config.Merge(config.Defaults(), global, project)
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "nerdash: %v", err)
	}
	return cfg, nil
}

// strictMode resolves --strict against the config file.
func strictMode(cfg *config.Config) bool {
	if rootCmd.PersistentFlags().Changed("strict") {
		return strict
	}
	return cfg.StrictEnabled()
}

// stringFlag returns the value of a string flag when it was set on the
// command line, and def otherwise.
func stringFlag(cmd *cobra.Command, name, def string) string {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return f.Value.String()
	}
	return def
}

// argOr returns args[i] when present, and def otherwise.
func argOr(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}
