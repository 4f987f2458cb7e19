// Package cmd provides the CLI commands for cropcost.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cropcost/internal/config"
	"cropcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cropcost",
	Short: "Analyze crop input plans",
	Long: `cropcost turns a tiered crop input plan into per-acre cost, nutrient
delivery, coverage groupings, and a program intensity score.

Examples:
  cropcost analyze plan.yaml
  cropcost analyze --format json --farm-avg 120 plan.yaml
  cropcost passes plan.yaml`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cropcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(passesCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads the config file and reinitializes logging
func initConfig() {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		path = filepath.Join(home, ".cropcost.json")
	}

	cfg, err := config.Load(path)
	if err != nil {
		logging.Sugar.Warnw("could not load config, using defaults", "path", path, "error", err)
		cfg = config.Default()
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)
	_ = logging.Initialize(cfg.Logging)
}
