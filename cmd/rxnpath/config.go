package main

import (
	"os"

	"github.com/matsen/rxnpath/internal/config"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after applying the config file, environment and flags.

Config file: ~/.config/rxnpath/config.yml (respects XDG_CONFIG_HOME)

Keys:
  reactions_path  Reaction catalog file (env RXNPATH_REACTIONS, flag --reactions)
  max_compounds   Compound capacity, 0 for unbounded (env RXNPATH_MAX_COMPOUNDS)
  max_reactions   Reaction capacity, 0 for unbounded (env RXNPATH_MAX_REACTIONS)
  layout          Diagram layout: chain, circle, or grid
  jobs            Concurrent searches in batch mode

A .env file in the working directory is loaded before the environment is read.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	Path   string         `json:"path"`
	Exists bool           `json:"exists"`
	Config *config.Config `json:"config"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := config.GlobalConfigPath()
	_, statErr := os.Stat(path)
	resp := ConfigResponse{Path: path, Exists: statErr == nil, Config: cfg}

	if humanOutput {
		status := "not found, using defaults"
		if resp.Exists {
			status = "loaded"
		}
		outputHuman("%s %s\n\n", titleStyle.Render(path), mutedStyle.Render("("+status+")"))
		outputHuman("reactions_path: %s\n", cfg.ReactionsPath)
		outputHuman("max_compounds:  %d\n", cfg.MaxCompounds)
		outputHuman("max_reactions:  %d\n", cfg.MaxReactions)
		outputHuman("layout:         %s\n", cfg.Layout)
		outputHuman("jobs:           %d\n", cfg.Jobs)
		return nil
	}
	return outputJSON(resp)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.GlobalConfigPath()
	if path == "" {
		exitWithError(ExitConfigError, "cannot determine config directory")
	}
	if _, err := os.Stat(path); err == nil && !configInitForce {
		exitWithError(ExitConfigError, "config file already exists: %s (use --force to overwrite)", path)
	}

	if err := config.Default().Save(path); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("Wrote default config to %s\n", path)
		return nil
	}
	return outputJSON(StatusResponse{Status: "created", Path: path})
}
