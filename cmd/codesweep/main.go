// Package main provides the command-line interface for codesweep.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/codesweep/codesweep/pkg/config"
	"github.com/codesweep/codesweep/pkg/dependencies"
	"github.com/codesweep/codesweep/pkg/logger"
	"github.com/codesweep/codesweep/pkg/sweeper"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// resolveConfigPath returns the explicit --config path or the default
// location under the user's home directory.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".codesweep", "config.yaml")
}

// buildSweeper assembles the dependency container and the Sweeper facade.
func buildSweeper() (sweeper.Sweeper, error) {
	deps := dependencies.New().
		WithConfig(config.NewManager(resolveConfigPath()))
	if !quiet {
		deps.WithLogger(logger.NewDefaultLogger())
	}

	s, err := sweeper.NewSweeper(sweeper.NewSweeperParams{Dependencies: deps})
	if err != nil {
		return nil, err
	}
	s.SetVerbose(verbose)
	return s, nil
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "codesweep",
		Short: "Codesweep - Unused Source File Detector",
		Long: `A CLI tool for finding source files that nothing references and ` +
			`cleaning them up with an auditable completion report.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createScanCmd(), createCleanCmd(), createInitCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
