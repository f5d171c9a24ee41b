package main

import (
	"github.com/codesweep/codesweep/pkg/sweeper"
	"github.com/spf13/cobra"
)

var (
	initForce      bool
	nonInteractive bool
	rootDir        string
	initReportFile string
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force] [--non-interactive] [--root-dir <path>]",
		Short: "Initialize codesweep configuration",
		Long: `Initialize codesweep configuration with interactive prompts or direct
flag values.

Flags:
  --force           Overwrite an existing configuration
  --non-interactive Accept defaults instead of prompting
  --root-dir        Set the source root directly (skips the prompt)
  --report-file     Set the completion report location directly (skips the prompt)`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := buildSweeper()
			if err != nil {
				return err
			}

			return s.Init(sweeper.InitOpts{
				Force:          initForce,
				NonInteractive: nonInteractive,
				RootDir:        rootDir,
				ReportFile:     initReportFile,
			})
		},
	}

	// Add flags
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration")
	initCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Accept defaults instead of prompting")
	initCmd.Flags().StringVar(&rootDir, "root-dir", "", "Set the source root directly (skips interactive prompt)")
	initCmd.Flags().StringVar(&initReportFile, "report-file", "",
		"Set the completion report location directly (skips interactive prompt)")

	return initCmd
}
